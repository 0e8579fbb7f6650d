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

// Package ttx writes the font tables of a colour font built from a glyph
// sheet, in the XML format used by the fontTools "ttx" program.
//
// The tables GlyphOrder, cmap, glyf, hmtx, CPAL and SVG are generated from
// the extracted glyph sheet.  All other tables are taken from a template
// file, in which each generated table is represented by a single marker
// line such as
//
//	<!-- glyf -->
//
// See [Synthesizer.Substitute] for the list of markers.
package ttx

// Config holds the parameters of the table synthesis.
type Config struct {
	// UnitsPerCell is the height of a glyph sheet cell in font design
	// units.
	UnitsPerCell float64

	// CellHeight, if non-zero, replaces the cell height of the sheet when
	// converting pixels to font design units.
	CellHeight float64

	// Baseline is the y coordinate, in design units, of the top edge of
	// a cell.
	Baseline float64

	// WidthFactor converts the width of the glyph ink, in pixels, into
	// the advance width.
	WidthFactor float64

	// Fixed lists the horizontal metrics of glyphs which are not taken
	// from the sheet.
	Fixed []Metric

	// Layered selects the output of a single colour layer instead of an
	// SVG colour font.  If set, the SVG table is not generated.
	Layered bool

	// Instructions is the TrueType program written for every glyph with
	// an outline, in ttx assembly form.
	Instructions string

	// ViewBoxY is the vertical origin of the viewBox of the per-glyph
	// SVG documents.
	ViewBoxY float64
}

// Metric is an entry of the hmtx table.
type Metric struct {
	Name  string
	Width int
	LSB   int
}

// DefaultConfig returns the default synthesis parameters.
func DefaultConfig() Config {
	return Config{
		UnitsPerCell: 1000,
		Baseline:     750,
		WidthFactor:  2.9,
		Fixed: []Metric{
			{Name: ".notdef", Width: 500, LSB: 30},
			{Name: ".null", Width: 0, LSB: 0},
			{Name: "space", Width: 200, LSB: 0},
			{Name: "nonmarkingreturn", Width: 250, LSB: 0},
		},
		Instructions: "    <instructions><assembly> </assembly></instructions>\n",
		ViewBoxY:     250,
	}
}
