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

package pathdata

import (
	"math"
	"strings"

	"seehuhn.de/go/glyphsheet/internal/float"
)

// Translate moves all points of the path by (dx, dy).
// The path is modified in place and returned.
func (p Path) Translate(dx, dy float64) Path {
	for _, c := range p {
		for i, tp := range signatures[c.Kind] {
			switch tp {
			case argX:
				c.Args[i] += dx
			case argY:
				c.Args[i] += dy
			}
		}
	}
	return p
}

// Scale multiplies all x coordinates by sx and all y coordinates by sy.
// Arc radii are scaled by sx.  If the scaling mirrors the path, the sweep
// flag of arcs is inverted, and if sy is negative, the arc rotation angle
// changes sign.
// The path is modified in place and returned.
func (p Path) Scale(sx, sy float64) Path {
	for _, c := range p {
		for i, tp := range signatures[c.Kind] {
			switch tp {
			case argX, argRadius:
				c.Args[i] *= sx
			case argY:
				c.Args[i] *= sy
			case argSweep:
				if sx*sy < 0 {
					c.Args[i] = 1 - c.Args[i]
				}
			case argAngle:
				if sy < 0 {
					c.Args[i] = -c.Args[i]
				}
			}
		}
	}
	return p
}

// Rotate rotates all points of the path by the given angle (in radians)
// around the center (cx, cy).  A zero angle leaves the path unchanged.
// The path is modified in place and returned.
func (p Path) Rotate(angle, cx, cy float64) Path {
	if angle == 0 {
		return p
	}
	for _, c := range p {
		for i, tp := range signatures[c.Kind] {
			if tp != argX {
				continue
			}
			x := c.Args[i] - cx
			y := c.Args[i+1] - cy
			r := math.Hypot(x, y)
			if r == 0 {
				continue
			}
			theta := math.Atan2(y, x) + angle
			c.Args[i] = r*math.Cos(theta) + cx
			c.Args[i+1] = r*math.Sin(theta) + cy
		}
	}
	return p
}

// String formats the path as SVG path data.
//
// Numbers are written in the shortest form which reads back as the same
// value, so that parsing the result reproduces p.
func (p Path) String() string {
	b := &strings.Builder{}
	for _, c := range p {
		b.WriteByte(byte(c.Kind))
		for i, v := range c.Args {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(float.Format(v, -1))
		}
	}
	return b.String()
}
