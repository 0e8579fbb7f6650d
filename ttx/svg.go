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

	"seehuhn.de/go/glyphsheet/internal/float"
)

// FileName returns the name of the file which holds the SVG document of
// the named glyph.
func FileName(name string) string {
	return "char-" + name + ".svg"
}

// GlyphDocument returns a stand-alone SVG document which draws all
// colour layers of the glyph.  The document has the size of one sheet
// cell.  If the glyph has no ink, nil is returned.
//
// Glyphs without a glyph ID still get a document, so that they can be
// inspected, but they are not included in the SVG table.
func (syn *Synthesizer) GlyphDocument(g *Glyph) []byte {
	if g == nil || g.Record == nil || len(g.Record.Fragments) == 0 {
		return nil
	}

	w := float.Format(syn.sheet.CellWidth, -1)
	h := float.Format(syn.sheet.CellHeight, -1)

	buf := &bytes.Buffer{}
	buf.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	buf.WriteString("<svg xmlns=\"http://www.w3.org/2000/svg\" xmlns:xlink=\"http://www.w3.org/1999/xlink\" version=\"1.2\"\n")
	if g.Known {
		fmt.Fprintf(buf, "   id=\"glyph%d\"\n", g.GID)
	}
	fmt.Fprintf(buf, "   width=\"%s\"\n", w)
	fmt.Fprintf(buf, "   height=\"%s\"\n", h)
	fmt.Fprintf(buf, "   viewBox=\"0 %s %s %s\"\n", float.Format(syn.cfg.ViewBoxY, -1), w, h)
	buf.WriteString("   >\n<g>\n")
	for _, frag := range g.Record.Fragments {
		fmt.Fprintf(buf, "<path style=\"fill:%s;\" d=\"%s\"/>\n", frag.Color, frag.Path)
	}
	buf.WriteString("</g>\n</svg>\n")
	return buf.Bytes()
}

// WriteSVG writes the SVG table.  There is one document per glyph ID
// which has ink on the sheet.
//
// In layered mode, the table is empty.
func (syn *Synthesizer) WriteSVG(w io.Writer) error {
	if syn.cfg.Layered {
		return nil
	}

	buf := &bytes.Buffer{}
	buf.WriteString("<SVG>\n")
	for gid, name := range syn.order.names {
		doc := syn.GlyphDocument(syn.byName[name])
		if doc == nil {
			continue
		}
		fmt.Fprintf(buf, "  <svgDoc startGlyphID=\"%d\" endGlyphID=\"%d\">\n", gid, gid)
		buf.WriteString("    <![CDATA[\n")
		buf.Write(doc)
		buf.WriteString("]]>\n")
		buf.WriteString("  </svgDoc>\n")
	}
	buf.WriteString("  <colorPalettes></colorPalettes>\n")
	buf.WriteString("</SVG>\n")

	_, err := w.Write(buf.Bytes())
	return err
}
