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

package grid

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync"

	"seehuhn.de/go/glyphsheet/sheet"
)

// Sheet is the result of extracting all cells of a glyph sheet.
type Sheet struct {
	Grid Grid

	// Width and Height give the size of the source document.
	Width, Height float64

	// CellWidth and CellHeight give the size of a single cell.
	CellWidth, CellHeight float64

	// Records has one entry per cell, in row-major order.
	// Entries for empty cells are nil.
	Records []*Record

	// Colors lists the fill colors of the document in drawing order.
	Colors []string

	// Warnings lists non-fatal problems found during extraction.
	Warnings []error
}

// Record returns the record for the given cell, or nil if the cell is
// empty.
func (s *Sheet) Record(row, col int) *Record {
	return s.Records[row*s.Grid.Columns+col]
}

// Cell returns the given cell of the sheet.
func (s *Sheet) Cell(row, col int) Cell {
	return s.Grid.Cell(s.Width, s.Height, row, col)
}

// MissingColorError reports a layer which is ignored because no fill
// color was declared for it.
type MissingColorError struct {
	Layer int
}

func (err *MissingColorError) Error() string {
	return "grid: layer " + strconv.Itoa(err.Layer) + " has no color, skipped"
}

// EmptyCellWarning reports a cell without any geometry.
type EmptyCellWarning struct {
	Row, Col int
	Code     rune
}

func (err *EmptyCellWarning) Error() string {
	return fmt.Sprintf("grid: cell (%d,%d) for U+%04X is empty", err.Row, err.Col, err.Code)
}

// Sweep extracts all cells of the document.
//
// The cells are processed concurrently.  The result does not depend on
// the order in which the cells complete.
func (g Grid) Sweep(ctx context.Context, doc *sheet.Document) (*Sheet, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	res := &Sheet{
		Grid:    g,
		Width:   doc.Width,
		Height:  doc.Height,
		Records: make([]*Record, g.NumCells()),
		Colors:  doc.Colors,
	}
	res.CellWidth, res.CellHeight = g.CellSize(doc.Width, doc.Height)

	for i, l := range doc.Layers {
		if l.Color == "" {
			res.Warnings = append(res.Warnings, &MissingColorError{Layer: i})
		}
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	workers := min(runtime.GOMAXPROCS(0), g.NumCells())
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				row, col := idx/g.Columns, idx%g.Columns
				cell := g.Cell(doc.Width, doc.Height, row, col)
				res.Records[idx] = g.ExtractCell(cell, doc.Layers)
			}
		}()
	}

	var err error
feed:
	for idx := range res.Records {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case jobs <- idx:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	if err != nil {
		return nil, err
	}

	for idx, rec := range res.Records {
		if rec == nil {
			row, col := idx/g.Columns, idx%g.Columns
			res.Warnings = append(res.Warnings, &EmptyCellWarning{
				Row:  row,
				Col:  col,
				Code: g.Start + rune(idx),
			})
		}
	}
	return res, nil
}
