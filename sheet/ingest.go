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

// Package sheet reads glyph sheets: SVG documents which show a grid of
// hand-drawn, flat-colored character shapes.
//
// The reader is line oriented and only understands the layout written by
// common vector editors: one attribute per line, path elements with a
// fill in their style attribute, and translate transforms on groups.  It
// is not an XML parser.  Nested transforms are flattened by adding up all
// translations found anywhere in the document.
package sheet

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphsheet/pathdata"
)

// Document is the content of a glyph sheet.
type Document struct {
	// Width and Height give the canvas size in pixels.
	Width, Height float64

	// Offset is the sum of all translations in the document.
	// It has already been applied to the layer paths.
	Offset vec.Vec2

	// Layers lists the path elements in drawing order.
	Layers []Layer

	// Colors lists every declared fill color in drawing order.
	// Colors can repeat.
	Colors []string

	// Labels are the text elements of the sheet.  Glyph sheets use
	// them to mark alternate glyphs.
	Labels []Label

	// Warnings lists non-fatal problems found while reading the document.
	Warnings []error
}

// Layer is a single path element of the glyph sheet.
type Layer struct {
	Color string
	Data  string // the unparsed path data
	Line  int
	Path  pathdata.Path
}

// Label is the text of a text element, together with its position.
type Label struct {
	X, Y float64
	Text string
}

// Ingest reads a glyph sheet.
//
// Problems with individual path elements are recorded in the Warnings
// field of the result.  An error is returned if the document cannot be
// read, or if it does not declare its canvas size.
func Ingest(r io.Reader) (*Document, error) {
	in, err := decodeInput(r)
	if err != nil {
		return nil, err
	}

	s := &scanner{
		doc:    &Document{},
		offset: matrix.Identity,
	}
	lines := bufio.NewScanner(in)
	lines.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for lines.Scan() {
		s.lineNo++
		s.scanLine(lines.Text())
	}
	if err := lines.Err(); err != nil {
		return nil, fmt.Errorf("sheet: reading document: %w", err)
	}
	s.endElement()

	doc := s.doc
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, ErrNoCanvasSize
	}

	doc.Offset = vec.Vec2{X: s.offset[4], Y: s.offset[5]}
	for i := range doc.Layers {
		l := &doc.Layers[i]
		p, err := pathdata.Parse(l.Data)
		if err != nil {
			doc.Warnings = append(doc.Warnings, &LayerError{Layer: i, Line: l.Line, Err: err})
			continue
		}
		l.Path = p.Translate(doc.Offset.X, doc.Offset.Y)
	}
	return doc, nil
}

const maxLineLength = 64 << 20

// scanner holds the state of the line-by-line document scan.
type scanner struct {
	doc    *Document
	lineNo int

	offset   matrix.Matrix
	lastTag  string
	inSpan   bool
	curColor string

	elem *pathElement

	labelX, labelY float64
}

// pathElement collects the attributes of the current path element.
type pathElement struct {
	line    int
	data    string
	hasData bool
	fill    string
	hasFill bool
}

func (s *scanner) scanLine(line string) {
	if m := openTag.FindStringSubmatch(line); m != nil {
		s.endElement()
		s.lastTag = m[1]
		s.inSpan = false
		if s.lastTag == "path" {
			s.elem = &pathElement{line: s.lineNo}
		}
	}

	var attribute string
	if m := attrName.FindStringSubmatch(line); m != nil {
		attribute = m[1]
	}

	if s.lastTag == "svg" {
		if m := widthAttr.FindStringSubmatch(line); m != nil {
			s.doc.Width, _ = strconv.ParseFloat(m[1], 64)
		}
		if m := heightAttr.FindStringSubmatch(line); m != nil {
			s.doc.Height, _ = strconv.ParseFloat(m[1], 64)
		}
	}

	if m := translateAttr.FindStringSubmatch(line); m != nil {
		s.addTranslation(m[1], m[2])
	}

	switch s.lastTag {
	case "path":
		if m := styleAttr.FindStringSubmatch(line); m != nil {
			props := parseStyle(m[1])
			if fill, ok := props["fill"]; ok {
				s.elem.fill = fill
				s.elem.hasFill = true
				s.doc.Colors = append(s.doc.Colors, fill)
			}
		}
		if m := dataAttr.FindStringSubmatch(line); m != nil {
			s.elem.data = m[1]
			s.elem.hasData = true
		}

	case "text":
		switch {
		case strings.Contains(line, "<tspan"):
			s.inSpan = true
		case attribute == "x" && !s.inSpan:
			s.labelX = quotedNumber(line)
		case attribute == "y" && !s.inSpan:
			s.labelY = quotedNumber(line)
		default:
			if m := spanText.FindStringSubmatch(line); m != nil {
				s.doc.Labels = append(s.doc.Labels, Label{
					X:    s.labelX,
					Y:    s.labelY,
					Text: m[1],
				})
			}
		}
	}
}

// endElement finishes the current path element, if any.
func (s *scanner) endElement() {
	e := s.elem
	s.elem = nil
	if e == nil {
		return
	}

	if e.hasData {
		idx := len(s.doc.Layers)
		color := s.curColor
		if e.hasFill {
			color = e.fill
		} else {
			s.doc.Warnings = append(s.doc.Warnings, &MissingFillError{
				Layer: idx,
				Line:  e.line,
				Color: color,
			})
		}
		s.doc.Layers = append(s.doc.Layers, Layer{
			Color: color,
			Data:  e.data,
			Line:  e.line,
		})
	}
	if e.hasFill {
		s.curColor = e.fill
	}
}

func (s *scanner) addTranslation(xs, ys string) {
	dx, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		s.doc.Warnings = append(s.doc.Warnings,
			fmt.Errorf("sheet: line %d: invalid translation %q", s.lineNo, xs))
		return
	}
	var dy float64
	if ys != "" {
		dy, err = strconv.ParseFloat(ys, 64)
		if err != nil {
			s.doc.Warnings = append(s.doc.Warnings,
				fmt.Errorf("sheet: line %d: invalid translation %q", s.lineNo, ys))
			return
		}
	}
	s.offset = s.offset.Mul(matrix.Translate(dx, dy))
}

// quotedNumber returns the value of the first quoted number on the line,
// or 0 if there is none.
func quotedNumber(line string) float64 {
	m := quotedNum.FindStringSubmatch(line)
	if m == nil {
		return 0
	}
	x, _ := strconv.ParseFloat(m[1], 64)
	return x
}

var (
	openTag       = regexp.MustCompile(`^\s*<(\w+)`)
	attrName      = regexp.MustCompile(`^\s*([a-zA-Z]+)`)
	widthAttr     = regexp.MustCompile(`(?:^|[\s<])width="(\d+(?:\.\d*)?)(?:px)?"`)
	heightAttr    = regexp.MustCompile(`(?:^|[\s<])height="(\d+(?:\.\d*)?)(?:px)?"`)
	translateAttr = regexp.MustCompile(`transform="translate\(\s*([-+0-9.eE]+)(?:\s*[,\s]\s*([-+0-9.eE]+))?\s*\)"`)
	styleAttr     = regexp.MustCompile(`(?:^|\s)style="([^"]*)"`)
	dataAttr      = regexp.MustCompile(`(?:^|\s)d="([^"]*)"`)
	quotedNum     = regexp.MustCompile(`"([-+]?[0-9.]+)"`)
	spanText      = regexp.MustCompile(`>([^<]+)</tspan`)
)
