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

package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseNumbers(t *testing.T) {
	got, err := parseNumbers("1.5, -2,3e2", 3)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{1.5, -2, 300}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	for _, in := range []string{"1", "1,2,3", "a,b", ""} {
		if _, err := parseNumbers(in, 2); err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
}
