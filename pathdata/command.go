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

// Package pathdata parses and transforms SVG path data.
//
// Parsed paths are normalized: all coordinates are absolute and the
// shorthand forms H, V, S and T are expanded, so that a [Path] only
// contains the command kinds [MoveTo], [LineTo], [CubeTo], [QuadTo],
// [ArcTo] and [Close].
//
// # Argument types
//
// Every command kind has a fixed argument signature.  The transformations
// in this package use the signature to decide how to treat each argument:
// x and y coordinates are translated, scaled and rotated, arc radii are
// scaled, and the arc flags are adjusted when a scaling mirrors the path.
package pathdata

import (
	"math"

	"seehuhn.de/go/geom/rect"
)

// Kind identifies the type of a path command.
// The values coincide with the absolute SVG command letters.
type Kind byte

// These are the command kinds which can occur in a normalized path.
const (
	MoveTo Kind = 'M'
	LineTo Kind = 'L'
	CubeTo Kind = 'C'
	QuadTo Kind = 'Q'
	ArcTo  Kind = 'A'
	Close  Kind = 'Z'
)

func (k Kind) String() string {
	return string(rune(k))
}

// NumArgs returns the number of arguments for commands of kind k.
func (k Kind) NumArgs() int {
	return len(signatures[k])
}

type argType byte

const (
	argX argType = iota + 1
	argY
	argRadius
	argAngle
	argFlag
	argSweep
)

var (
	sigXY    = []argType{argX, argY}
	sigCubic = []argType{argX, argY, argX, argY, argX, argY}
	sigQuad  = []argType{argX, argY, argX, argY}
	sigArc   = []argType{argRadius, argRadius, argAngle, argFlag, argSweep, argX, argY}
)

// signatures lists the argument types of the normalized command kinds.
var signatures = map[Kind][]argType{
	MoveTo: sigXY,
	LineTo: sigXY,
	CubeTo: sigCubic,
	QuadTo: sigQuad,
	ArcTo:  sigArc,
	Close:  nil,
}

// Command is a single drawing command with absolute coordinates.
//
// The arguments are stored in SVG order:
//
//	MoveTo, LineTo: x y
//	CubeTo:         c1x c1y c2x c2y x y
//	QuadTo:         cx cy x y
//	ArcTo:          rx ry angle large-arc-flag sweep-flag x y
//	Close:          (none)
type Command struct {
	Kind Kind
	Args []float64
}

// End returns the end point of the command.
// For [Close] commands, ok is false.
func (c Command) End() (x, y float64, ok bool) {
	n := len(c.Args)
	if c.Kind == Close || n < 2 {
		return 0, 0, false
	}
	return c.Args[n-2], c.Args[n-1], true
}

// Path is a normalized SVG path.  A non-empty path always starts with a
// [MoveTo] command.
type Path []Command

// Clone returns a deep copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	res := make(Path, len(p))
	for i, c := range p {
		res[i] = Command{
			Kind: c.Kind,
			Args: append([]float64(nil), c.Args...),
		}
	}
	return res
}

// Equal reports whether p and other consist of the same commands with
// arguments which differ by at most eps.
func (p Path) Equal(other Path, eps float64) bool {
	if len(p) != len(other) {
		return false
	}
	for i, c := range p {
		o := other[i]
		if c.Kind != o.Kind || len(c.Args) != len(o.Args) {
			return false
		}
		for j, v := range c.Args {
			if math.Abs(v-o.Args[j]) > eps {
				return false
			}
		}
	}
	return true
}

// Bounds returns the smallest rectangle which contains all points and
// control points of the path.  Arc radii are ignored.
// The result is the zero rectangle if the path has no points.
func (p Path) Bounds() rect.Rect {
	var bbox rect.Rect
	first := true
	p.points(func(x, y float64) {
		if first {
			bbox = rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
			first = false
			return
		}
		bbox.LLx = math.Min(bbox.LLx, x)
		bbox.LLy = math.Min(bbox.LLy, y)
		bbox.URx = math.Max(bbox.URx, x)
		bbox.URy = math.Max(bbox.URy, y)
	})
	return bbox
}

// points calls yield for every (x, y) argument pair of the path.
func (p Path) points(yield func(x, y float64)) {
	for _, c := range p {
		sig := signatures[c.Kind]
		for i, tp := range sig {
			if tp == argX && i+1 < len(c.Args) {
				yield(c.Args[i], c.Args[i+1])
			}
		}
	}
}

// Subpaths splits the path into runs which each start with a [MoveTo]
// command.  The returned paths share storage with p.
func (p Path) Subpaths() []Path {
	var res []Path
	start := 0
	for i, c := range p {
		if c.Kind == MoveTo && i > start {
			res = append(res, p[start:i])
			start = i
		}
	}
	if start < len(p) {
		res = append(res, p[start:])
	}
	return res
}
