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

package proof

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"testing"

	"seehuhn.de/go/glyphsheet/grid"
	"seehuhn.de/go/glyphsheet/sheet"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff0000", color.RGBA{R: 0xFF, A: 0xFF}},
		{"#00Ff80", color.RGBA{G: 0xFF, B: 0x80, A: 0xFF}},
		{"#0f0", color.RGBA{G: 0xFF, A: 0xFF}},
		{"#123", color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}},
		{"red", color.RGBA{A: 0xFF}},
		{"#12345", color.RGBA{A: 0xFF}},
		{"#gg0000", color.RGBA{A: 0xFF}},
		{"", color.RGBA{A: 0xFF}},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%q", c.in), func(t *testing.T) {
			if got := ParseColor(c.in); got != c.want {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	in := `<?xml version="1.0" encoding="UTF-8"?>
<svg
   width="720"
   height="270">
  <path
     style="fill:#ff0000"
     d="M90 10L125 10L125 45L90 45Z" />
</svg>
`
	doc, err := sheet.Ingest(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	s, err := grid.Default().Sweep(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}

	img := Render(s, 1)
	if b := img.Bounds(); b.Dx() != 720 || b.Dy() != 270 {
		t.Fatalf("image size %v", b)
	}

	red := color.RGBA{R: 0xFF, A: 0xFF}
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	for _, p := range [][2]int{{107, 27}, {120, 40}, {95, 40}} {
		if got := img.RGBAAt(p[0], p[1]); got != red {
			t.Errorf("pixel %v is %v, want red", p, got)
		}
	}
	if got := img.RGBAAt(300, 200); got != white {
		t.Errorf("background pixel is %v", got)
	}

	// vertical grid line between columns 1 and 2
	if got := img.RGBAAt(85, 100); got != GridColor {
		t.Errorf("grid pixel is %v", got)
	}

	img = Render(s, 2)
	if b := img.Bounds(); b.Dx() != 1440 || b.Dy() != 540 {
		t.Fatalf("image size %v", b)
	}
	if got := img.RGBAAt(214, 54); got != red {
		t.Errorf("scaled pixel is %v, want red", got)
	}
}
