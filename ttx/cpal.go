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
)

// WriteCPAL writes the CPAL table, with a single palette holding every
// fill color of the sheet.  The colors are fully opaque.
//
// If the sheet has no colors, nothing is written.
func (syn *Synthesizer) WriteCPAL(w io.Writer) error {
	if len(syn.palette) == 0 {
		return nil
	}

	buf := &bytes.Buffer{}
	buf.WriteString("  <CPAL>\n    <version value=\"0\"/>\n")
	fmt.Fprintf(buf, "    <numPaletteEntries value=\"%d\"/>\n", len(syn.palette))
	buf.WriteString("    <palette index=\"0\">\n")
	for i, color := range syn.palette {
		fmt.Fprintf(buf, "      <color index=\"%d\" value=\"%sFF\"/>\n", i, color)
	}
	buf.WriteString("    </palette>\n")
	buf.WriteString("  </CPAL>\n")

	_, err := w.Write(buf.Bytes())
	return err
}
