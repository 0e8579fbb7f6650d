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

// Package glyphsheet builds the tables of an OpenType colour font from a
// glyph sheet.
//
// A glyph sheet is an SVG drawing in which the glyphs of a font are
// arranged on a regular grid, one character per cell, in code point
// order.  Every filled path of the drawing is a colour layer.  The
// processing runs in four stages:
//
//   - [sheet.Ingest] reads the drawing and parses the path data,
//   - [grid.Grid.Sweep] assigns the paths to grid cells,
//   - [ttx.New] assigns glyph names and IDs and prepares the font tables,
//   - [ttx.Synthesizer.Substitute] writes the tables into a TTX template.
//
// [Run] chains these stages together:
//
//	opt := glyphsheet.DefaultOptions()
//	opt.LetterDir = "letters"
//	opt.TemplatePath = "template.ttx"
//	opt.OutputPath = "VillaPazza.ttx"
//	res, err := glyphsheet.Run(ctx, src, opt)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, w := range res.Warnings {
//		log.Println(w)
//	}
//
// The resulting TTX file can be compiled into a font using the "ttx"
// program from fontTools.
package glyphsheet
