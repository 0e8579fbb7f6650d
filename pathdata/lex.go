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

package pathdata

import (
	"io"
	"strconv"
)

// token is either a command letter or a number.
type token struct {
	pos int
	cmd byte // 0 for numbers
	val float64
}

func (t token) isCommand() bool {
	return t.cmd != 0
}

// lexer splits SVG path data into tokens.
type lexer struct {
	data string
	pos  int
}

// next returns the next token, or io.EOF at the end of the input.
func (lx *lexer) next() (token, error) {
	lx.skipSeparators()
	if lx.pos >= len(lx.data) {
		return token{}, io.EOF
	}

	start := lx.pos
	c := lx.data[start]
	if isCommandLetter(c) {
		lx.pos++
		return token{pos: start, cmd: c}, nil
	}

	end := scanNumber(lx.data, start)
	if end == start {
		return token{}, malformed(start, "unexpected character "+strconv.QuoteRune(rune(c)))
	}
	val, err := strconv.ParseFloat(lx.data[start:end], 64)
	if err != nil {
		// only possible for out of range values
		return token{}, malformed(start, "invalid number "+strconv.Quote(lx.data[start:end]))
	}
	lx.pos = end
	return token{pos: start, val: val}, nil
}

func (lx *lexer) skipSeparators() {
	for lx.pos < len(lx.data) {
		switch lx.data[lx.pos] {
		case ' ', '\t', '\r', '\n', ',':
			lx.pos++
		default:
			return
		}
	}
}

// scanNumber returns the end of the number starting at data[pos].
// If there is no number at pos, the return value equals pos.
//
// The accepted syntax is
//
//	[-+]? ( digits ( "." digits? )? | "." digits ) ( [eE] [-+]? digits )?
func scanNumber(data string, pos int) int {
	i := pos
	if i < len(data) && (data[i] == '+' || data[i] == '-') {
		i++
	}
	intEnd := skipDigits(data, i)
	if intEnd > i {
		i = intEnd
		if i < len(data) && data[i] == '.' {
			i = skipDigits(data, i+1)
		}
	} else {
		if i >= len(data) || data[i] != '.' {
			return pos
		}
		fracEnd := skipDigits(data, i+1)
		if fracEnd == i+1 {
			return pos
		}
		i = fracEnd
	}

	if i < len(data) && (data[i] == 'e' || data[i] == 'E') {
		j := i + 1
		if j < len(data) && (data[j] == '+' || data[j] == '-') {
			j++
		}
		if expEnd := skipDigits(data, j); expEnd > j {
			i = expEnd
		}
	}
	return i
}

func skipDigits(data string, pos int) int {
	for pos < len(data) && data[pos] >= '0' && data[pos] <= '9' {
		pos++
	}
	return pos
}

func isCommandLetter(c byte) bool {
	switch c | 0x20 {
	case 'm', 'l', 'h', 'v', 'c', 's', 'q', 't', 'a', 'z':
		return true
	}
	return false
}
