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

import (
	"golang.org/x/exp/slices"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/glyphsheet/charnames"
	"seehuhn.de/go/glyphsheet/grid"
	"seehuhn.de/go/glyphsheet/internal/hexcolor"
)

// Glyph describes the glyph generated for one cell of the sheet.
type Glyph struct {
	Name        string
	Code        rune
	Description string

	// Known is false if the code point has no entry in the character
	// name table.  Such glyphs get a placeholder name and no glyph ID.
	Known bool

	// GID is the glyph ID.  It is only valid if Known is true.
	GID glyph.ID

	// Record is the geometry of the cell, or nil if the cell is empty.
	Record *grid.Record
}

// Synthesizer generates the font tables for an extracted glyph sheet.
type Synthesizer struct {
	cfg   Config
	sheet *grid.Sheet
	scale float64

	order   *GlyphOrder
	glyphs  []*Glyph // one per cell, row-major
	byName  map[string]*Glyph
	codes   []rune // code points of mapped glyphs, sorted
	palette []string

	// Warnings lists non-fatal problems found while building the tables.
	Warnings []error
}

// New prepares the tables for the given sheet.
//
// Glyph IDs are assigned in row-major cell order, after the three fixed
// glyphs .notdef, .null and nonmarkingreturn.  Every cell with a known
// code point gets an ID, whether it is occupied or not.
func New(s *grid.Sheet, cfg Config) *Synthesizer {
	cellHeight := cfg.CellHeight
	if cellHeight == 0 {
		cellHeight = s.CellHeight
	}
	syn := &Synthesizer{
		cfg:    cfg,
		sheet:  s,
		scale:  cfg.UnitsPerCell / cellHeight,
		order:  NewGlyphOrder(),
		byName: make(map[string]*Glyph),
	}

	for idx, rec := range s.Records {
		code := s.Grid.Start + rune(idx)
		g := &Glyph{Code: code, Record: rec}
		name, desc, err := charnames.Lookup(code)
		if err != nil {
			syn.Warnings = append(syn.Warnings, err)
			g.Name = charnames.Placeholder(code)
		} else {
			g.Name = name
			g.Description = desc
			g.Known = true
			g.GID = syn.order.Add(name)
			if _, seen := syn.byName[name]; !seen {
				syn.byName[name] = g
			}
			if rec != nil {
				pos, found := slices.BinarySearch(syn.codes, code)
				if !found {
					syn.codes = slices.Insert(syn.codes, pos, code)
				}
			}
		}
		syn.glyphs = append(syn.glyphs, g)
	}

	var bad []string
	for _, c := range s.Colors {
		hex, ok := hexcolor.Canonical(c)
		if !ok {
			if !slices.Contains(bad, c) {
				bad = append(bad, c)
				syn.Warnings = append(syn.Warnings, &InvalidColorWarning{Color: c})
			}
			continue
		}
		if !slices.Contains(syn.palette, hex) {
			syn.palette = append(syn.palette, hex)
		}
	}

	return syn
}

// GlyphOrder returns the glyph order of the font.
func (syn *Synthesizer) GlyphOrder() *GlyphOrder {
	return syn.order
}

// Glyphs returns the glyphs for all cells of the sheet, in row-major
// order.
func (syn *Synthesizer) Glyphs() []*Glyph {
	return syn.glyphs
}

// Glyph returns the glyph with the given name, or nil if there is no
// such glyph on the sheet.
func (syn *Synthesizer) Glyph(name string) *Glyph {
	return syn.byName[name]
}

// Palette returns the distinct fill colours of the sheet, in the order
// they were first used.  The colours have the form "#rrggbb".  Fills
// which are not hexadecimal colours are left out.
func (syn *Synthesizer) Palette() []string {
	return syn.palette
}

// Scale returns the factor which converts sheet pixels into font design
// units.
func (syn *Synthesizer) Scale() float64 {
	return syn.scale
}
