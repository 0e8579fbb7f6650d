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

	sfntcmap "seehuhn.de/go/sfnt/cmap"
)

// cmapKeys lists the generated cmap subtables: Unicode BMP and
// Windows Unicode BMP.
var cmapKeys = []sfntcmap.Key{
	{PlatformID: 0, EncodingID: 3},
	{PlatformID: 3, EncodingID: 1},
}

// WriteCMap writes the cmap table.
//
// Every glyph which has ink on the sheet is mapped from its code point.
// In addition, U+0000 is mapped to .null and U+000D to nonmarkingreturn.
func (syn *Synthesizer) WriteCMap(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.WriteString("<cmap>\n")
	buf.WriteString("  <tableVersion version=\"0\"/>\n")
	for _, key := range cmapKeys {
		fmt.Fprintf(buf, "  <cmap_format_4 platformID=\"%d\" platEncID=\"%d\" language=\"%d\">\n",
			key.PlatformID, key.EncodingID, key.Language)
		buf.WriteString("    <map code=\"0x0\" name=\".null\"/><!-- NULL -->\n")
		buf.WriteString("    <map code=\"0xd\" name=\"nonmarkingreturn\"/><!-- CARRIAGE RETURN -->\n")
		for _, code := range syn.codes {
			g := syn.glyphs[code-syn.sheet.Grid.Start]
			fmt.Fprintf(buf, "    <map code=\"0x%x\" name=\"%s\"/><!-- %s -->\n",
				code, g.Name, g.Description)
		}
		buf.WriteString("  </cmap_format_4>\n")
	}
	buf.WriteString("</cmap>\n")

	_, err := w.Write(buf.Bytes())
	return err
}

// CMap returns the character to glyph mapping of the font.
func (syn *Synthesizer) CMap() sfntcmap.Format4 {
	res := sfntcmap.Format4{}
	if gid, ok := syn.order.ID(Null); ok {
		res[0x0000] = gid
	}
	if gid, ok := syn.order.ID(NonMarkingReturn); ok {
		res[0x000D] = gid
	}
	for _, code := range syn.codes {
		if code > 0xFFFF {
			continue
		}
		g := syn.glyphs[code-syn.sheet.Grid.Start]
		res[uint16(code)] = g.GID
	}
	return res
}

// CMapTable returns the binary form of the cmap table, for use with
// font compilers which do not read ttx files.
func (syn *Synthesizer) CMapTable() []byte {
	subtable := syn.CMap().Encode(0)
	table := sfntcmap.Table{}
	for _, key := range cmapKeys {
		table[key] = subtable
	}
	return table.Encode()
}

