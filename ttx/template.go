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
	"bufio"
	"io"
	"strings"
)

// marker pairs a template marker with the writer of the corresponding
// table.
type marker struct {
	text  string
	write func(io.Writer) error
}

func (syn *Synthesizer) markers() []marker {
	res := []marker{
		{"<!-- GlyphOrder -->", syn.WriteGlyphOrder},
		{"<!-- cmap -->", syn.WriteCMap},
		{"<!-- glyf -->", syn.WriteGlyf},
		{"<!-- hmtx -->", syn.WriteHmtx},
		{"<!-- CPAL -->", syn.WriteCPAL},
	}
	if !syn.cfg.Layered {
		res = append(res, marker{"<!-- SVG -->", syn.WriteSVG})
	}
	return res
}

// Substitute copies the template to w, replacing every line which
// contains one of the markers
//
//	<!-- GlyphOrder -->
//	<!-- cmap -->
//	<!-- glyf -->
//	<!-- hmtx -->
//	<!-- CPAL -->
//	<!-- SVG -->
//
// with the corresponding generated table.  All other lines are copied
// unchanged.  In layered mode, the SVG marker is copied unchanged as well.
func (syn *Synthesizer) Substitute(template io.Reader, w io.Writer) error {
	markers := syn.markers()

	out := bufio.NewWriter(w)
	in := bufio.NewReader(template)
lines:
	for {
		line, err := in.ReadString('\n')
		if line != "" {
			for _, m := range markers {
				if strings.Contains(line, m.text) {
					if err := m.write(out); err != nil {
						return err
					}
					continue lines
				}
			}
			if _, err := out.WriteString(line); err != nil {
				return err
			}
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
	}
	return out.Flush()
}
