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

// Package hexcolor reads the hexadecimal color notation used in SVG
// fill properties.
package hexcolor

import (
	"fmt"
	"image/color"
	"strconv"
)

// Parse converts a color of the form "#rgb" or "#rrggbb" into an opaque
// RGBA value.  The second return value is false if s has a different
// form.
func Parse(s string) (color.RGBA, bool) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return color.RGBA{}, false
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	if len(hex) == 3 {
		r := uint8(v>>8) & 0xF
		g := uint8(v>>4) & 0xF
		b := uint8(v) & 0xF
		return color.RGBA{R: r * 17, G: g * 17, B: b * 17, A: 0xFF}, true
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, true
}

// Canonical returns s in the form "#rrggbb", using lower case digits.
// The second return value is false if s is not a hexadecimal color.
func Canonical(s string) (string, bool) {
	c, ok := Parse(s)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), true
}
