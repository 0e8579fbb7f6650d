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
	"bytes"
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyf"

	"seehuhn.de/go/glyphsheet/pathdata"
)

// Outline returns the TrueType contours for the primary layer of the
// named glyph, in font design units.  If the glyph has no outline, nil
// is returned.
//
// Curve control points become off-curve points.  Cubic segments are not
// converted, so a cubic curve contributes two consecutive off-curve
// points.
func (syn *Synthesizer) Outline(name string) []glyf.Contour {
	g := syn.byName[name]
	if g == nil || g.Record == nil || len(g.Record.Primary) == 0 {
		return nil
	}
	return contours(g.Record.Primary, syn.scale, syn.cfg.Baseline)
}

func contours(p pathdata.Path, scale, baseline float64) []glyf.Contour {
	pt := func(x, y float64, onCurve bool) glyf.Point {
		return glyf.Point{
			X:       toFUnit(x * scale),
			Y:       toFUnit(baseline - y*scale),
			OnCurve: onCurve,
		}
	}

	var res []glyf.Contour
	var cur glyf.Contour
	for _, c := range p {
		a := c.Args
		switch c.Kind {
		case pathdata.MoveTo:
			if len(cur) > 0 {
				res = append(res, cur)
			}
			cur = glyf.Contour{pt(a[0], a[1], true)}
		case pathdata.LineTo:
			cur = append(cur, pt(a[0], a[1], true))
		case pathdata.CubeTo:
			cur = append(cur,
				pt(a[0], a[1], false),
				pt(a[2], a[3], false),
				pt(a[4], a[5], true))
		case pathdata.QuadTo:
			cur = append(cur,
				pt(a[0], a[1], false),
				pt(a[2], a[3], true))
		case pathdata.ArcTo:
			cur = append(cur, pt(a[5], a[6], true))
		}
	}
	if len(cur) > 0 {
		res = append(res, cur)
	}
	return res
}

func toFUnit(x float64) funit.Int16 {
	x = math.Round(x)
	switch {
	case x > math.MaxInt16:
		return math.MaxInt16
	case x < math.MinInt16:
		return math.MinInt16
	}
	return funit.Int16(x)
}

// outlineBBox returns the bounding box of the contour points.
func outlineBBox(cc []glyf.Contour) funit.Rect16 {
	var bbox funit.Rect16
	first := true
	for _, c := range cc {
		for _, p := range c {
			if first {
				bbox = funit.Rect16{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
				first = false
				continue
			}
			bbox.LLx = min(bbox.LLx, p.X)
			bbox.LLy = min(bbox.LLy, p.Y)
			bbox.URx = max(bbox.URx, p.X)
			bbox.URy = max(bbox.URy, p.Y)
		}
	}
	return bbox
}

// WriteGlyf writes the glyf table.
//
// Glyphs are written in glyph ID order.  Glyphs without an outline are
// written as empty glyphs.  The bounding boxes are informational, font
// compilers recompute them.
func (syn *Synthesizer) WriteGlyf(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.WriteString("<glyf>\n")
	for _, name := range syn.order.names {
		cc := syn.Outline(name)
		if cc == nil {
			fmt.Fprintf(buf, "  <TTGlyph name=\"%s\" xMin=\"0\" yMin=\"0\" xMax=\"0\" yMax=\"0\" />\n", name)
			continue
		}

		bbox := outlineBBox(cc)
		fmt.Fprintf(buf, "  <TTGlyph name=\"%s\" xMin=\"%d\" yMin=\"%d\" xMax=\"%d\" yMax=\"%d\">\n",
			name, bbox.LLx, bbox.LLy, bbox.URx, bbox.URy)
		for _, c := range cc {
			buf.WriteString("    <contour>\n")
			for _, p := range c {
				on := 0
				if p.OnCurve {
					on = 1
				}
				fmt.Fprintf(buf, "      <pt x=\"%d\" y=\"%d\" on=\"%d\"/>\n", p.X, p.Y, on)
			}
			buf.WriteString("    </contour>\n")
		}
		buf.WriteString(syn.cfg.Instructions)
		buf.WriteString("  </TTGlyph>\n")
	}
	buf.WriteString("</glyf>\n")

	_, err := w.Write(buf.Bytes())
	return err
}
