// seehuhn.de/go/glyphsheet - build colour font tables from a glyph sheet
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package float

import (
	"strconv"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		x         float64
		precision int
		want      string
	}{
		{0, 3, "0"},
		{1, 3, "1"},
		{45, -1, "45"},
		{0.5, -1, ".5"},
		{-0.5, -1, "-.5"},
		{1.25, 1, "1.2"},
		{1.2500, 4, "1.25"},
		{-0.0001, 2, "0"},
		{100.125, -1, "100.125"},
		{-3, 2, "-3"},
	}
	for _, c := range cases {
		got := Format(c.x, c.precision)
		if got != c.want {
			t.Errorf("Format(%g, %d) = %q, want %q", c.x, c.precision, got, c.want)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, x := range []float64{1.0 / 3, -2.0 / 7, 1e-9, 123456.789, 0.1 + 0.2} {
		s := Format(x, -1)
		y, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatal(err)
		}
		if y != x {
			t.Errorf("%g -> %q -> %g", x, s, y)
		}
	}
}

func TestRound(t *testing.T) {
	if got := Round(2.345678, 2); got != 2.35 {
		t.Errorf("Round = %g", got)
	}
	if got := Round(-1.5, 0); got != -2 {
		t.Errorf("Round = %g", got)
	}
}
