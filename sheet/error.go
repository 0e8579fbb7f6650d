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

package sheet

import (
	"errors"
	"strconv"
)

// ErrNoCanvasSize is returned by [Ingest] if the document does not declare
// a usable width and height on its svg element.
var ErrNoCanvasSize = errors.New("sheet: document does not declare its canvas size")

// MissingFillError reports a path element without a fill color.  The path
// is drawn with the most recently declared color, given in Color.  If no
// color was declared before the path, Color is empty.
type MissingFillError struct {
	Layer int // index into Document.Layers
	Line  int
	Color string
}

func (err *MissingFillError) Error() string {
	msg := "sheet: path " + strconv.Itoa(err.Layer) + " (line " +
		strconv.Itoa(err.Line) + ") has no fill"
	if err.Color != "" {
		msg += ", using " + err.Color
	}
	return msg
}

// LayerError reports a path whose data could not be used.  The layer
// is kept in the document, but has an empty path.
type LayerError struct {
	Layer int
	Line  int
	Err   error
}

func (err *LayerError) Error() string {
	return "sheet: path " + strconv.Itoa(err.Layer) + " (line " +
		strconv.Itoa(err.Line) + "): " + err.Err.Error()
}

func (err *LayerError) Unwrap() error {
	return err.Err
}
