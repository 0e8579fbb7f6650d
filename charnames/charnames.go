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

// Package charnames maps Unicode code points to glyph names.
//
// The table covers printable ASCII, Latin-1, parts of Latin Extended and
// Greek, and a selection of punctuation, currency, arrow, mathematical,
// box drawing and other symbols.  Each entry has a PostScript glyph name
// and the Unicode character description.
package charnames

import (
	"bufio"
	_ "embed"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/unicode/runenames"
)

// Entry is one row of the character name table.
type Entry struct {
	Rune        rune
	Name        string
	Description string
}

// UnknownCodepointError is returned by [Lookup] for code points which are
// not in the table.
type UnknownCodepointError struct {
	Rune rune
}

func (err *UnknownCodepointError) Error() string {
	msg := fmt.Sprintf("no glyph name for U+%04X", err.Rune)
	if desc := runenames.Name(err.Rune); desc != "" {
		msg += " (" + desc + ")"
	}
	return msg
}

// Lookup returns the glyph name and description for r.
// If r is not in the table, the error is an *[UnknownCodepointError].
func Lookup(r rune) (name, description string, err error) {
	e, ok := table.get()[r]
	if !ok {
		return "", "", &UnknownCodepointError{Rune: r}
	}
	return e.Name, e.Description, nil
}

// Name returns the glyph name for r, or the placeholder name if r is
// not in the table.
func Name(r rune) string {
	name, _, err := Lookup(r)
	if err != nil {
		return Placeholder(r)
	}
	return name
}

// Placeholder returns the name used for code points without a table
// entry.  The name is not a valid glyph name, so that the problem is
// visible in the generated font tables.
func Placeholder(r rune) string {
	return fmt.Sprintf("MISSING-U+%04X", r)
}

// IsPlaceholder reports whether name was generated by [Placeholder].
func IsPlaceholder(name string) bool {
	return strings.HasPrefix(name, "MISSING-U+")
}

// All returns all table entries, ordered by code point.
func All() []Entry {
	m := table.get()
	res := make([]Entry, 0, len(m))
	for _, e := range m {
		res = append(res, e)
	}
	slices.SortFunc(res, func(a, b Entry) int {
		return int(a.Rune - b.Rune)
	})
	return res
}

type nameTable struct {
	sync.Mutex
	entries map[rune]Entry
}

func (t *nameTable) get() map[rune]Entry {
	t.Lock()
	defer t.Unlock()

	if t.entries != nil {
		return t.entries
	}

	entries := make(map[rune]Entry)
	scanner := bufio.NewScanner(strings.NewReader(tableData))
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		ww := strings.SplitN(line, ";", 3)
		if len(ww) != 3 {
			panic("corrupted character name table: " + line)
		}
		code, err := strconv.ParseInt(ww[0], 16, 32)
		if err != nil {
			panic("corrupted character name table: " + line)
		}
		r := rune(code)
		entries[r] = Entry{Rune: r, Name: ww[1], Description: ww[2]}
	}
	if err := scanner.Err(); err != nil {
		panic("corrupted character name table")
	}

	t.entries = entries
	return entries
}

var table = &nameTable{}

//go:embed charnames.txt
var tableData string
