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

package hexcolor

import (
	"fmt"
	"image/color"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#ff0000", color.RGBA{R: 0xFF, A: 0xFF}, true},
		{"#00Ff80", color.RGBA{G: 0xFF, B: 0x80, A: 0xFF}, true},
		{"#0f0", color.RGBA{G: 0xFF, A: 0xFF}, true},
		{"#123", color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}, true},
		{"red", color.RGBA{}, false},
		{"none", color.RGBA{}, false},
		{"#12345", color.RGBA{}, false},
		{"#gg0000", color.RGBA{}, false},
		{"#+12345", color.RGBA{}, false},
		{"", color.RGBA{}, false},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%q", c.in), func(t *testing.T) {
			got, ok := Parse(c.in)
			if got != c.want || ok != c.ok {
				t.Errorf("got %v, %t, want %v, %t", got, ok, c.want, c.ok)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	cases := []struct {
		in, want string
		ok       bool
	}{
		{"#ff0000", "#ff0000", true},
		{"#F00", "#ff0000", true},
		{"#A1b2C3", "#a1b2c3", true},
		{"none", "", false},
		{"url(#grad)", "", false},
	}
	for _, c := range cases {
		got, ok := Canonical(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("%q: got %q, %t, want %q, %t", c.in, got, ok, c.want, c.ok)
		}
	}
}
