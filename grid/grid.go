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

// Package grid divides a glyph sheet into character cells and extracts
// the geometry which belongs to each cell.
//
// # Cell geometry
//
// A sheet of width W and height H is divided into Columns×Rows cells of
// size w=W/Columns and h=H/Rows.  To compensate for shapes bleeding over
// the cell boundaries, all cells are shifted by a fixed offset: the cell in
// row r and column c covers
//
//	w*c - XOffset ≤ x ≤ w*(c+1) - XOffset
//	h*r - YOffset ≤ y ≤ h*(r+1) - YOffset
//
// Cells are numbered in row-major order, and cell i shows the character
// with code point Start+i.
package grid

import (
	"fmt"

	"seehuhn.de/go/geom/rect"
)

// Grid describes the layout of a glyph sheet.
type Grid struct {
	Columns, Rows int

	// XOffset and YOffset are subtracted from all cell boundaries.
	XOffset, YOffset float64

	// Start is the code point shown in the top-left cell.
	Start rune

	// Primary is the index of the layer which provides the monochrome
	// glyph outlines.
	Primary int
}

// Default returns the standard glyph sheet layout: 16×6 cells starting
// at U+0020, which covers printable ASCII.
func Default() Grid {
	return Grid{
		Columns: 16,
		Rows:    6,
		XOffset: 5,
		YOffset: -5,
		Start:   ' ',
	}
}

// Validate checks that the grid has a usable size.
func (g Grid) Validate() error {
	if g.Columns <= 0 || g.Rows <= 0 {
		return fmt.Errorf("grid: invalid size %dx%d", g.Columns, g.Rows)
	}
	if g.Start < 0 {
		return fmt.Errorf("grid: invalid start code %d", g.Start)
	}
	if g.Primary < 0 {
		return fmt.Errorf("grid: invalid primary layer %d", g.Primary)
	}
	return nil
}

// NumCells returns the number of cells in the grid.
func (g Grid) NumCells() int {
	return g.Columns * g.Rows
}

// Cell is one character cell of a glyph sheet.
type Cell struct {
	Row, Col int

	// Code is the code point of the character in this cell.
	Code rune

	// Bounds is the region of the sheet covered by the cell.  Since SVG
	// coordinates grow downwards, LLy is the top edge of the cell.
	Bounds rect.Rect
}

// Contains reports whether the point (x, y) lies inside the cell.
// Points on the boundary are inside.
func (c Cell) Contains(x, y float64) bool {
	b := c.Bounds
	return x >= b.LLx && x <= b.URx && y >= b.LLy && y <= b.URy
}

// CellSize returns the size of a cell on a sheet of the given size.
func (g Grid) CellSize(width, height float64) (w, h float64) {
	return width / float64(g.Columns), height / float64(g.Rows)
}

// Cell returns the cell in the given row and column of a sheet with the
// given size.
func (g Grid) Cell(width, height float64, row, col int) Cell {
	w, h := g.CellSize(width, height)
	return Cell{
		Row:  row,
		Col:  col,
		Code: g.Start + rune(row*g.Columns+col),
		Bounds: rect.Rect{
			LLx: w*float64(col) - g.XOffset,
			URx: w*float64(col+1) - g.XOffset,
			LLy: h*float64(row) - g.YOffset,
			URy: h*float64(row+1) - g.YOffset,
		},
	}
}

// CellAt returns the row and column of the cell which contains the
// point (x, y), ignoring the offset compensation.  This is used to
// locate text labels on the sheet.
func (g Grid) CellAt(width, height, x, y float64) (row, col int, ok bool) {
	w, h := g.CellSize(width, height)
	if x < 0 || y < 0 || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	col = int(x / w)
	row = int(y / h)
	if col >= g.Columns || row >= g.Rows {
		return 0, 0, false
	}
	return row, col, true
}
