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
)

// Metrics returns the hmtx entries of the font, in glyph ID order.
//
// The fixed metrics from the configuration come first.  They are followed
// by one entry for every glyph which has ink on the sheet.  Glyphs with a
// glyph ID but without ink are skipped, and a [MissingMetricsWarning] is
// recorded for each of them.
func (syn *Synthesizer) Metrics() []Metric {
	res := make([]Metric, 0, len(syn.cfg.Fixed)+len(syn.order.names))
	seen := make(map[string]bool)
	for _, m := range syn.cfg.Fixed {
		res = append(res, m)
		seen[m.Name] = true
	}

	for gid, name := range syn.order.names {
		if seen[name] {
			continue
		}
		seen[name] = true

		g := syn.byName[name]
		if g == nil || g.Record == nil {
			if gid > 2 {
				syn.warnOnce(&MissingMetricsWarning{Name: name})
			}
			continue
		}
		bbox := g.Record.BBox
		res = append(res, Metric{
			Name:  name,
			Width: int(math.Round(syn.cfg.WidthFactor * (bbox.URx - bbox.LLx))),
			LSB:   int(math.Round(bbox.LLx)),
		})
	}
	return res
}

// WriteHmtx writes the hmtx table.
func (syn *Synthesizer) WriteHmtx(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.WriteString("<hmtx>\n")
	for _, m := range syn.Metrics() {
		fmt.Fprintf(buf, "  <mtx name=\"%s\" width=\"%d\" lsb=\"%d\"/>\n",
			m.Name, m.Width, m.LSB)
	}
	buf.WriteString("</hmtx>\n")

	_, err := w.Write(buf.Bytes())
	return err
}

// warnOnce records a missing metrics warning, unless the same warning
// has been recorded before.
func (syn *Synthesizer) warnOnce(w *MissingMetricsWarning) {
	for _, old := range syn.Warnings {
		if m, ok := old.(*MissingMetricsWarning); ok && m.Name == w.Name {
			return
		}
	}
	syn.Warnings = append(syn.Warnings, w)
}
