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

	"seehuhn.de/go/sfnt/glyph"
)

// The glyphs at the start of every glyph order.
const (
	NotDef           = ".notdef"
	Null             = ".null"
	NonMarkingReturn = "nonmarkingreturn"
)

// GlyphOrder assigns consecutive glyph IDs to glyph names.
type GlyphOrder struct {
	names []string
	ids   map[string]glyph.ID
}

// NewGlyphOrder returns a glyph order which contains the glyphs
// .notdef, .null and nonmarkingreturn with IDs 0, 1 and 2.
func NewGlyphOrder() *GlyphOrder {
	o := &GlyphOrder{ids: make(map[string]glyph.ID)}
	o.Add(NotDef)
	o.Add(Null)
	o.Add(NonMarkingReturn)
	return o
}

// Add assigns the next free glyph ID to name.  If name already has an
// ID, the existing ID is returned.
func (o *GlyphOrder) Add(name string) glyph.ID {
	if gid, ok := o.ids[name]; ok {
		return gid
	}
	gid := glyph.ID(len(o.names))
	o.names = append(o.names, name)
	o.ids[name] = gid
	return gid
}

// ID returns the glyph ID of name.
func (o *GlyphOrder) ID(name string) (glyph.ID, bool) {
	gid, ok := o.ids[name]
	return gid, ok
}

// Name returns the name of the glyph with the given ID.
func (o *GlyphOrder) Name(gid glyph.ID) string {
	if int(gid) >= len(o.names) {
		return ""
	}
	return o.names[gid]
}

// Len returns the number of glyphs.
func (o *GlyphOrder) Len() int {
	return len(o.names)
}

// Names returns the glyph names, ordered by glyph ID.
func (o *GlyphOrder) Names() []string {
	return append([]string(nil), o.names...)
}

// WriteGlyphOrder writes the GlyphOrder table.
func (syn *Synthesizer) WriteGlyphOrder(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.WriteString("  <GlyphOrder>\n")
	for gid, name := range syn.order.names {
		fmt.Fprintf(buf, "    <GlyphID id=\"%d\" name=\"%s\"/>\n", gid, name)
	}
	buf.WriteString("  </GlyphOrder>\n")
	_, err := w.Write(buf.Bytes())
	return err
}
