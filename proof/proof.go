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

// Package proof renders an extracted glyph sheet into a bitmap, so that
// the grid alignment can be checked by eye.
package proof

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"seehuhn.de/go/glyphsheet/charnames"
	"seehuhn.de/go/glyphsheet/grid"
	"seehuhn.de/go/glyphsheet/internal/hexcolor"
	"seehuhn.de/go/glyphsheet/pathdata"
)

// Colors used for the decorations of the proof sheet.
var (
	GridColor  = color.RGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}
	LabelColor = color.RGBA{R: 0x80, G: 0x80, B: 0xA0, A: 0xFF}
)

// Render draws the sheet onto a white image.  Sheet coordinates are
// multiplied by scale to get pixel coordinates.
//
// Every cell is outlined and labelled with its glyph name.  The ink of
// each occupied cell is drawn on top, one fill per layer fragment, in
// the fill color of the layer.  Elliptical arcs are drawn as straight
// lines.
func Render(s *grid.Sheet, scale float64) *image.RGBA {
	w := int(math.Ceil(s.Width * scale))
	h := int(math.Ceil(s.Height * scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(LabelColor),
		Face: basicfont.Face7x13,
	}
	for row := 0; row < s.Grid.Rows; row++ {
		for col := 0; col < s.Grid.Columns; col++ {
			cell := s.Cell(row, col)
			b := cell.Bounds
			x0 := int(math.Round(b.LLx * scale))
			y0 := int(math.Round(b.LLy * scale))
			x1 := int(math.Round(b.URx * scale))
			y1 := int(math.Round(b.URy * scale))
			outline(img, x0, y0, x1, y1, GridColor)

			d.Dot = fixed.P(x0+2, y0+12)
			d.DrawString(charnames.Name(cell.Code))
		}
	}

	z := vector.NewRasterizer(w, h)
	for _, rec := range s.Records {
		if rec == nil {
			continue
		}
		origin := rec.Cell.Bounds
		for _, frag := range rec.Fragments {
			z.Reset(w, h)
			fill(z, frag.Path, origin.LLx, origin.LLy, scale)
			z.Draw(img, img.Bounds(), image.NewUniform(ParseColor(frag.Color)), image.Point{})
		}
	}

	return img
}

// fill adds the outline of p, shifted by (dx, dy) and scaled, to the
// rasterizer.
func fill(z *vector.Rasterizer, p pathdata.Path, dx, dy, scale float64) {
	pt := func(x, y float64) (float32, float32) {
		return float32((x + dx) * scale), float32((y + dy) * scale)
	}

	open := false
	for _, c := range p {
		a := c.Args
		switch c.Kind {
		case pathdata.MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(a[0], a[1]))
			open = true
		case pathdata.LineTo:
			z.LineTo(pt(a[0], a[1]))
		case pathdata.CubeTo:
			x1, y1 := pt(a[0], a[1])
			x2, y2 := pt(a[2], a[3])
			x3, y3 := pt(a[4], a[5])
			z.CubeTo(x1, y1, x2, y2, x3, y3)
		case pathdata.QuadTo:
			x1, y1 := pt(a[0], a[1])
			x2, y2 := pt(a[2], a[3])
			z.QuadTo(x1, y1, x2, y2)
		case pathdata.ArcTo:
			z.LineTo(pt(a[5], a[6]))
		case pathdata.Close:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
}

// outline draws a one pixel wide rectangle.  Parts outside the image
// are clipped.
func outline(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for x := x0; x <= x1; x++ {
		setPixel(img, x, y0, c)
		setPixel(img, x, y1, c)
	}
	for y := y0; y <= y1; y++ {
		setPixel(img, x0, y, c)
		setPixel(img, x1, y, c)
	}
}

func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, c)
	}
}

// ParseColor converts a color of the form "#rgb" or "#rrggbb" into an
// opaque RGBA value.  Colors which cannot be parsed are returned as
// black.
func ParseColor(s string) color.RGBA {
	c, ok := hexcolor.Parse(s)
	if !ok {
		return color.RGBA{A: 0xFF}
	}
	return c
}
