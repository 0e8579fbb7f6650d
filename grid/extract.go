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
	"math"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/glyphsheet/pathdata"
	"seehuhn.de/go/glyphsheet/sheet"
)

// Fragment is the part of one layer which belongs to a cell.
type Fragment struct {
	Layer int
	Color string

	// Path is given in cell coordinates, relative to the top-left corner
	// of the cell bounds.
	Path pathdata.Path

	// BBox covers all points of the layer which were found inside the
	// cell, in cell coordinates.
	BBox rect.Rect
}

// Record holds the geometry of one occupied cell.
type Record struct {
	Cell Cell

	// Fragments lists the layers which touch the cell, in drawing order.
	Fragments []Fragment

	// Primary is the fragment of the primary layer, or nil if the primary
	// layer does not touch the cell.
	Primary pathdata.Path

	// BBox is the union of the fragment bounding boxes.
	BBox rect.Rect
}

// ExtractCell collects the parts of the given layers which belong to the
// cell.  If no layer touches the cell, nil is returned.
//
// A subpath belongs to the cell if any of its points lies inside the
// cell bounds.  For curves, the control points are tested as well.  Whole
// subpaths are copied, even if some of their points lie outside the cell.
// Layers without a color are ignored.
func (g Grid) ExtractCell(cell Cell, layers []sheet.Layer) *Record {
	var rec *Record
	for i, l := range layers {
		if l.Color == "" {
			continue
		}
		frag, bbox, ok := extractLayer(cell, l.Path)
		if !ok {
			continue
		}

		origin := cell.Bounds
		frag = frag.Clone().Translate(-origin.LLx, -origin.LLy)
		bbox = rect.Rect{
			LLx: bbox.LLx - origin.LLx,
			LLy: bbox.LLy - origin.LLy,
			URx: bbox.URx - origin.LLx,
			URy: bbox.URy - origin.LLy,
		}

		if rec == nil {
			rec = &Record{Cell: cell, BBox: bbox}
		} else {
			rec.BBox = union(rec.BBox, bbox)
		}
		rec.Fragments = append(rec.Fragments, Fragment{
			Layer: i,
			Color: l.Color,
			Path:  frag,
			BBox:  bbox,
		})
		if i == g.Primary {
			rec.Primary = frag
		}
	}
	return rec
}

// extractLayer returns the subpaths of p which touch the cell, and the
// bounding box of all points found inside the cell.  The returned path
// shares storage with p.
func extractLayer(cell Cell, p pathdata.Path) (pathdata.Path, rect.Rect, bool) {
	var frag pathdata.Path
	var bbox rect.Rect
	found := false
	test := func(x, y float64) bool {
		if !cell.Contains(x, y) {
			return false
		}
		if !found {
			bbox = rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
			found = true
		} else {
			bbox.LLx = math.Min(bbox.LLx, x)
			bbox.LLy = math.Min(bbox.LLy, y)
			bbox.URx = math.Max(bbox.URx, x)
			bbox.URy = math.Max(bbox.URy, y)
		}
		return true
	}

	start := 0 // first command of the current run
	var startX, startY float64
	hit := false
	flush := func(end int) {
		if hit && end > start {
			if p[start].Kind != pathdata.MoveTo {
				// the run continues a closed subpath
				frag = append(frag, pathdata.Command{
					Kind: pathdata.MoveTo,
					Args: []float64{startX, startY},
				})
			}
			frag = append(frag, p[start:end]...)
		}
		hit = false
		start = end
	}

	for i, c := range p {
		a := c.Args
		switch c.Kind {
		case pathdata.MoveTo:
			flush(i)
			startX, startY = a[0], a[1]
			hit = test(a[0], a[1])
		case pathdata.Close:
			flush(i + 1)
		case pathdata.CubeTo:
			// evaluate all three points, so that all of them count
			// towards the bounding box
			h1 := test(a[4], a[5])
			h2 := test(a[0], a[1])
			h3 := test(a[2], a[3])
			hit = hit || h1 || h2 || h3
		case pathdata.QuadTo:
			h1 := test(a[2], a[3])
			h2 := test(a[0], a[1])
			hit = hit || h1 || h2
		default: // LineTo, ArcTo
			if x, y, ok := c.End(); ok && test(x, y) {
				hit = true
			}
		}
	}
	flush(len(p))

	return frag, bbox, found
}

func union(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: math.Min(a.LLx, b.LLx),
		LLy: math.Min(a.LLy, b.LLy),
		URx: math.Max(a.URx, b.URx),
		URy: math.Max(a.URy, b.URy),
	}
}
