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
	"io"
	"math"
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// grammar describes the SVG path commands before normalization.
// The implicit successor is used when numbers follow a command's
// arguments without a new command letter.
var grammar = map[byte]struct {
	next byte
	args []argType
}{
	'M': {'L', sigXY},
	'L': {'L', sigXY},
	'H': {'H', []argType{argX}},
	'V': {'V', []argType{argY}},
	'C': {'C', sigCubic},
	'S': {'S', sigQuad},
	'Q': {'Q', sigQuad},
	'T': {'T', sigXY},
	'A': {'A', sigArc},
	'Z': {'L', nil},
}

// Parse reads SVG path data and returns the normalized path.
//
// Relative commands are converted to absolute coordinates.  The shorthand
// commands H and V are replaced by [LineTo], S by [CubeTo] and T by
// [QuadTo].  For S and T, the missing control point is the reflection of
// the previous curve's last control point about the current point.
//
// If d is not valid path data, the error is a *[MalformedPathError].
func Parse(d string) (Path, error) {
	lx := &lexer{data: d}

	var res Path
	var pen, start, lastCtrl vec.Vec2
	var last byte
	for {
		tok, err := lx.next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		var cmd byte
		pending := false // whether tok already holds the first argument
		if tok.isCommand() {
			if last == 0 && upper(tok.cmd) != 'M' {
				return nil, malformed(tok.pos, "path must begin with a moveto command")
			}
			cmd = tok.cmd
		} else {
			if last == 0 {
				return nil, malformed(tok.pos, "path must begin with a moveto command")
			}
			cmd = grammar[upper(last)].next
			if isLower(last) {
				cmd = lower(cmd)
			}
			pending = true
		}

		rule := grammar[upper(cmd)]
		relative := isLower(cmd)
		args := make([]float64, 0, len(rule.args)+2)
		for _, tp := range rule.args {
			if !pending {
				tok, err = lx.next()
				if err == io.EOF {
					return nil, malformed(len(d), "unexpected end of path data")
				} else if err != nil {
					return nil, err
				}
				if tok.isCommand() {
					return nil, malformed(tok.pos,
						"missing arguments for command "+strconv.QuoteRune(rune(cmd)))
				}
			}
			pending = false

			v := tok.val
			switch tp {
			case argX:
				if relative {
					v += pen.X
				}
			case argY:
				if relative {
					v += pen.Y
				}
			case argFlag, argSweep:
				if v != 0 && v != 1 {
					return nil, malformed(tok.pos, "arc flag must be 0 or 1")
				}
			}
			args = append(args, v)
		}

		var kind Kind
		switch upper(cmd) {
		case 'M':
			kind = MoveTo
		case 'L':
			kind = LineTo
		case 'H':
			kind = LineTo
			args = append(args, pen.Y)
		case 'V':
			kind = LineTo
			args = append([]float64{pen.X}, args...)
		case 'C':
			kind = CubeTo
		case 'S':
			kind = CubeTo
			r := pen.Add(pen.Sub(lastCtrl))
			args = append([]float64{r.X, r.Y}, args...)
		case 'Q':
			kind = QuadTo
		case 'T':
			kind = QuadTo
			r := pen.Add(pen.Sub(lastCtrl))
			args = append([]float64{r.X, r.Y}, args...)
		case 'A':
			kind = ArcTo
		case 'Z':
			kind = Close
		}

		for _, v := range args {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return nil, malformed(tok.pos, "coordinate out of range")
			}
		}

		n := len(args)
		switch kind {
		case MoveTo:
			start = vec.Vec2{X: args[0], Y: args[1]}
			pen = start
		case Close:
			pen = start
		default:
			pen = vec.Vec2{X: args[n-2], Y: args[n-1]}
		}
		if kind == CubeTo || kind == QuadTo {
			lastCtrl = vec.Vec2{X: args[n-4], Y: args[n-3]}
		} else {
			lastCtrl = pen
		}
		last = cmd

		res = append(res, Command{Kind: kind, Args: args})
	}
	return res, nil
}

func upper(c byte) byte {
	return c &^ 0x20
}

func lower(c byte) byte {
	return c | 0x20
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}
