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

package glyphsheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"seehuhn.de/go/glyphsheet/grid"
	"seehuhn.de/go/glyphsheet/sheet"
	"seehuhn.de/go/glyphsheet/ttx"
)

// BaseName is the stem of the default output file name.
const BaseName = "VillaPazza"

// Options controls the conversion of a glyph sheet.
type Options struct {
	// Grid describes the layout of the glyph sheet.  Grid.Start is the
	// code point of the top-left cell.  Grid.Primary selects the layer
	// which provides the glyph outlines.
	Grid grid.Grid

	// Tables holds the parameters of the generated font tables.
	Tables ttx.Config

	// LetterDir, if set, is the directory where one SVG file per glyph
	// is written.  The directory is created if needed.
	LetterDir string

	// TemplatePath and OutputPath name the TTX template and the
	// generated TTX file.  If TemplatePath is empty, no TTX file is
	// written.  If OutputPath is empty, [Options.OutputName] is used.
	TemplatePath string
	OutputPath   string

	// CMapPath, if set, is the name of a file where the cmap table is
	// written in binary form.
	CMapPath string
}

// DefaultOptions returns the options for the standard glyph sheet layout.
func DefaultOptions() Options {
	return Options{
		Grid:   grid.Default(),
		Tables: ttx.DefaultConfig(),
	}
}

// SetLayer selects layered mode, using the given layer for the glyph
// outlines.
func (opt *Options) SetLayer(layer int) {
	opt.Grid.Primary = layer
	opt.Tables.Layered = true
}

// OutputName returns the name of the generated TTX file.
func (opt *Options) OutputName() string {
	if opt.OutputPath != "" {
		return opt.OutputPath
	}
	if opt.Tables.Layered {
		return BaseName + strconv.Itoa(opt.Grid.Primary) + ".ttx"
	}
	return BaseName + ".ttx"
}

// Result describes the outcome of [Run].
type Result struct {
	// The results of the individual stages.  Stages which did not run
	// are nil.
	Document *sheet.Document
	Sheet    *grid.Sheet
	Tables   *ttx.Synthesizer

	// Files lists the files written, in the order they were written.
	Files []string

	// Warnings collects the non-fatal problems from all stages.
	Warnings []error
}

// Run converts the glyph sheet read from src into font tables, and
// writes the output files selected in opt.
//
// Warnings are logged as soon as the stage which found them is done.  If
// a stage fails, Run returns the error together with the results of the
// stages which completed, including the files already written.
func Run(ctx context.Context, src io.Reader, opt Options) (*Result, error) {
	log := Logger()
	res := &Result{}

	doc, err := sheet.Ingest(src)
	if err != nil {
		return res, err
	}
	res.Document = doc
	log.Debug("sheet read",
		slog.Float64("width", doc.Width),
		slog.Float64("height", doc.Height),
		slog.Int("layers", len(doc.Layers)))
	for _, l := range doc.Labels {
		log.Debug("label", slog.String("text", l.Text),
			slog.Float64("x", l.X), slog.Float64("y", l.Y))
	}
	res.warn(doc.Warnings)

	s, err := opt.Grid.Sweep(ctx, doc)
	if err != nil {
		return res, err
	}
	res.Sheet = s
	log.Debug("grid extracted",
		slog.Float64("cellWidth", s.CellWidth),
		slog.Float64("cellHeight", s.CellHeight))
	res.warn(s.Warnings)

	syn := ttx.New(s, opt.Tables)
	res.Tables = syn
	log.Debug("glyphs assigned", slog.Int("glyphs", syn.GlyphOrder().Len()))
	seen := len(syn.Warnings)
	res.warn(syn.Warnings)

	if opt.LetterDir != "" {
		err = res.writeLetters(ctx, opt.LetterDir)
		if err != nil {
			return res, err
		}
	}

	if opt.TemplatePath != "" {
		out := opt.OutputName()
		err = writeTTX(syn, opt.TemplatePath, out)
		// table writers can add warnings, even if writing fails later
		res.warn(syn.Warnings[seen:])
		if err != nil {
			return res, err
		}
		res.Files = append(res.Files, out)
		log.Info("font tables written", slog.String("file", out))
	}

	if opt.CMapPath != "" {
		err = os.WriteFile(opt.CMapPath, syn.CMapTable(), 0o644)
		if err != nil {
			return res, err
		}
		res.Files = append(res.Files, opt.CMapPath)
		log.Info("cmap written", slog.String("file", opt.CMapPath))
	}

	return res, nil
}

// warn records and logs warnings.  Empty cells are normal on a glyph
// sheet and are only logged at debug level.
func (res *Result) warn(warnings []error) {
	log := Logger()
	for _, w := range warnings {
		var empty *grid.EmptyCellWarning
		if errors.As(w, &empty) {
			log.Debug(w.Error())
		} else {
			log.Warn(w.Error())
		}
	}
	res.Warnings = append(res.Warnings, warnings...)
}

// writeLetters writes one SVG document per glyph with ink.
func (res *Result) writeLetters(ctx context.Context, dir string) error {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return err
	}
	n := 0
	for _, g := range res.Tables.Glyphs() {
		if err := ctx.Err(); err != nil {
			return err
		}
		doc := res.Tables.GlyphDocument(g)
		if doc == nil {
			continue
		}
		fname := filepath.Join(dir, ttx.FileName(g.Name))
		err := os.WriteFile(fname, doc, 0o644)
		if err != nil {
			return err
		}
		res.Files = append(res.Files, fname)
		n++
	}
	Logger().Info("glyph documents written",
		slog.String("dir", dir), slog.Int("count", n))
	return nil
}

func writeTTX(syn *ttx.Synthesizer, templatePath, outPath string) (err error) {
	template, err := os.Open(templatePath)
	if err != nil {
		return fmt.Errorf("cannot read template: %w", err)
	}
	defer template.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer func() {
		err2 := out.Close()
		if err == nil {
			err = err2
		}
	}()

	return syn.Substitute(template, out)
}
