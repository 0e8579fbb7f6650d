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

import "strconv"

// MalformedPathError is returned by [Parse] if the path data does not
// follow the SVG path grammar.
type MalformedPathError struct {
	Pos    int // byte offset in the input
	Reason string
}

func (err *MalformedPathError) Error() string {
	return "malformed path data: " + err.Reason +
		" (at byte " + strconv.Itoa(err.Pos) + ")"
}

func malformed(pos int, reason string) error {
	return &MalformedPathError{Pos: pos, Reason: reason}
}
