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

package ttx

import "strconv"

// MissingMetricsWarning is reported when a glyph has a glyph ID but no
// ink on the sheet, so that no horizontal metrics can be computed.
type MissingMetricsWarning struct {
	Name string
}

func (err *MissingMetricsWarning) Error() string {
	return "no bounds for glyph " + err.Name
}

// InvalidColorWarning is reported for fill colors which cannot be
// stored in the CPAL table.  Such colors are left out of the palette.
type InvalidColorWarning struct {
	Color string
}

func (err *InvalidColorWarning) Error() string {
	return "fill " + strconv.Quote(err.Color) + " is not a hexadecimal color, not added to the palette"
}
