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

// Glyphsheet converts a glyph sheet into the tables of a colour font.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/term"

	"seehuhn.de/go/glyphsheet"
	"seehuhn.de/go/glyphsheet/internal/buildinfo"
	"seehuhn.de/go/glyphsheet/internal/profile"
	"seehuhn.de/go/glyphsheet/proof"
)

// pipeName is the file name which selects standard input.
const pipeName = "-"

var (
	letters     = flag.String("letters", "letters", "write per-glyph SVG files to `dir` (empty to skip)")
	template    = flag.String("template", "VillaPazza-TEMPLATE.ttx", "TTX template `file` (empty to skip)")
	output      = flag.String("o", "", "output TTX `file` (default VillaPazza.ttx or VillaPazza<layer>.ttx)")
	columns     = flag.Int("columns", 16, "number of grid columns")
	rows        = flag.Int("rows", 6, "number of grid rows")
	start       = flag.Int("start", 0x20, "code point of the top-left cell")
	layer       = flag.Int("layer", -1, "generate a single-colour font from layer `n`")
	xoff        = flag.Float64("xoff", 5, "horizontal grid offset in pixels")
	yoff        = flag.Float64("yoff", -5, "vertical grid offset in pixels")
	baseline    = flag.Float64("baseline", 750, "baseline position in font units")
	widthFactor = flag.Float64("widthfactor", 2.9, "advance width per pixel of ink")
	proofFile   = flag.String("proof", "", "write a PNG proof sheet to `file`")
	proofScale  = flag.Float64("proofscale", 2, "pixels per sheet unit in the proof sheet")
	cmapFile    = flag.String("cmap", "", "write the binary cmap table to `file`")
	verbose     = flag.Bool("v", false, "show progress information")
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile  = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "glyphsheet \u2014 build colour font tables from a glyph sheet\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("glyphsheet"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  glyphsheet [options] <sheet.svg>\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  sheet.svg  the glyph sheet, or \"-\" to read from standard input\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  glyphsheet -template base.ttx sheet.svg\n")
		fmt.Fprintf(os.Stderr, "  glyphsheet -layer 1 -letters \"\" sheet.svg\n")
		fmt.Fprintf(os.Stderr, "  glyphsheet -template \"\" -proof proof.png sheet.svg\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(fname string) (err error) {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, stop())
	}()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	glyphsheet.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	opt := glyphsheet.DefaultOptions()
	opt.Grid.Columns = *columns
	opt.Grid.Rows = *rows
	opt.Grid.Start = rune(*start)
	opt.Grid.XOffset = *xoff
	opt.Grid.YOffset = *yoff
	opt.Tables.Baseline = *baseline
	opt.Tables.WidthFactor = *widthFactor
	if *layer >= 0 {
		opt.SetLayer(*layer)
	}
	opt.LetterDir = *letters
	opt.TemplatePath = *template
	opt.OutputPath = *output
	opt.CMapPath = *cmapFile

	src, err := openInput(fname)
	if err != nil {
		return err
	}
	defer src.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	res, err := glyphsheet.Run(ctx, src, opt)

	// the proof sheet is useful for finding the cause of later errors
	if *proofFile != "" && res != nil && res.Sheet != nil {
		err = errors.Join(err, writeProof(res, *proofFile))
	}
	return err
}

func writeProof(res *glyphsheet.Result, fname string) error {
	img := proof.Render(res.Sheet, *proofScale)
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(out, img)
	err = errors.Join(err, out.Close())
	if err != nil {
		return err
	}
	glyphsheet.Logger().Info("proof sheet written", slog.String("file", fname))
	return nil
}

func openInput(fname string) (io.ReadCloser, error) {
	if fname != pipeName {
		return os.Open(fname)
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("`-` should be used with a pipe for stdin")
	}
	return io.NopCloser(os.Stdin), nil
}
