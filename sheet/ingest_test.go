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

package sheet

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphsheet/pathdata"
)

const testSheet = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<svg
   xmlns="http://www.w3.org/2000/svg"
   width="720"
   height="270"
   id="svg2"
   version="1.1">
  <sodipodi:namedview
     inkscape:window-width="1280"
     inkscape:window-height="720" />
  <g
     id="layer1"
     transform="translate(10,-5)">
    <path
       style="fill:#ff0000;fill-opacity:1;stroke:none"
       d="M 90,55 L 90,85 Z"
       id="path1" />
    <path
       d="m 200,10 10,0 0,10 z"
       id="path2" />
    <path
       style="fill:#00ff00"
       d="M 1 2 X"
       id="path3" />
    <text
       x="360.5"
       y="135"
       id="text1"><tspan
         x="360.5"
         y="135"
         id="tspan1">alt</tspan></text>
  </g>
</svg>
`

func TestIngest(t *testing.T) {
	doc, err := Ingest(strings.NewReader(testSheet))
	if err != nil {
		t.Fatal(err)
	}

	if doc.Width != 720 || doc.Height != 270 {
		t.Errorf("canvas size %gx%g, want 720x270", doc.Width, doc.Height)
	}
	if doc.Offset != (vec.Vec2{X: 10, Y: -5}) {
		t.Errorf("offset %v", doc.Offset)
	}
	if d := cmp.Diff([]string{"#ff0000", "#00ff00"}, doc.Colors); d != "" {
		t.Errorf("colors: %s", d)
	}
	if d := cmp.Diff([]Label{{X: 360.5, Y: 135, Text: "alt"}}, doc.Labels); d != "" {
		t.Errorf("labels: %s", d)
	}

	if len(doc.Layers) != 3 {
		t.Fatalf("got %d layers, want 3", len(doc.Layers))
	}
	wantColors := []string{"#ff0000", "#ff0000", "#00ff00"}
	wantPaths := []string{
		"M100 50L100 80Z",
		"M210 5L220 5L220 15Z",
		"",
	}
	for i, l := range doc.Layers {
		if l.Color != wantColors[i] {
			t.Errorf("layer %d: color %q, want %q", i, l.Color, wantColors[i])
		}
		if got := l.Path.String(); got != wantPaths[i] {
			t.Errorf("layer %d: path %q, want %q", i, got, wantPaths[i])
		}
	}

	var missing *MissingFillError
	var layerErr *LayerError
	var pathErr *pathdata.MalformedPathError
	foundMissing, foundLayer := false, false
	for _, w := range doc.Warnings {
		if errors.As(w, &missing) {
			foundMissing = true
			if missing.Layer != 1 || missing.Color != "#ff0000" {
				t.Errorf("unexpected warning %v", w)
			}
		}
		if errors.As(w, &layerErr) {
			foundLayer = true
			if layerErr.Layer != 2 || !errors.As(w, &pathErr) {
				t.Errorf("unexpected warning %v", w)
			}
		}
	}
	if !foundMissing || !foundLayer {
		t.Errorf("missing warnings, got %v", doc.Warnings)
	}
}

func TestIngestSingleLine(t *testing.T) {
	in := `<svg xmlns="http://www.w3.org/2000/svg" width="160" height="60.5">
<path style="fill:#123456" d="M0 0L1 1"/>
<path style="stroke:#000000" d="M5 5h1"/>
</svg>`
	doc, err := Ingest(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Width != 160 || doc.Height != 60.5 {
		t.Errorf("canvas size %gx%g", doc.Width, doc.Height)
	}
	if len(doc.Layers) != 2 {
		t.Fatalf("got %d layers", len(doc.Layers))
	}
	if doc.Layers[1].Color != "#123456" || doc.Layers[1].Path.String() != "M5 5L6 5" {
		t.Errorf("unexpected layer %+v", doc.Layers[1])
	}
	if len(doc.Warnings) != 1 {
		t.Errorf("got warnings %v", doc.Warnings)
	}
}

func TestIngestNoSize(t *testing.T) {
	in := "<svg\n   id=\"svg2\">\n<path\n style=\"fill:#000\"\n d=\"M0 0\" />\n</svg>\n"
	_, err := Ingest(strings.NewReader(in))
	if !errors.Is(err, ErrNoCanvasSize) {
		t.Errorf("expected ErrNoCanvasSize, got %v", err)
	}
}

func TestIngestEncoding(t *testing.T) {
	in := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<svg width=\"10\" height=\"10\">\n" +
		"<text\n x=\"1\"\n y=\"2\"\n id=\"t\"><tspan\n id=\"s\">caf\xe9</tspan></text>\n" +
		"</svg>\n"
	doc, err := Ingest(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Labels) != 1 || doc.Labels[0].Text != "café" {
		t.Errorf("labels %v", doc.Labels)
	}

	bom := "\xef\xbb\xbf" + testSheet
	doc, err = Ingest(strings.NewReader(bom))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Layers) != 3 {
		t.Errorf("BOM: got %d layers", len(doc.Layers))
	}
}

func TestParseStyle(t *testing.T) {
	got := parseStyle("fill:#ff0000; stroke : none;fill-opacity:1;;bogus;fill:#00ff00")
	want := map[string]string{
		"fill":         "#00ff00",
		"stroke":       "none",
		"fill-opacity": "1",
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}
