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
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeInput returns a reader which converts the document to UTF-8.
// A byte order mark takes precedence over the encoding declared in
// the XML prolog.  Without either, the input is taken to be UTF-8.
func decodeInput(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(512)

	fallback := unicode.UTF8.NewDecoder()
	if m := prologEncoding.FindSubmatch(head); m != nil {
		name := strings.ToLower(string(m[1]))
		if name != "utf-8" && name != "utf8" {
			enc, err := htmlindex.Get(name)
			if err != nil {
				return nil, fmt.Errorf("unsupported document encoding %q: %w", name, err)
			}
			fallback = enc.NewDecoder()
		}
	}
	return transform.NewReader(br, unicode.BOMOverride(fallback)), nil
}

var prologEncoding = regexp.MustCompile(`^<\?xml[^>]*\bencoding=["']([A-Za-z0-9._-]+)["']`)
