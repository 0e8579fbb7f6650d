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
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	sfntcmap "seehuhn.de/go/sfnt/cmap"

	"seehuhn.de/go/glyphsheet/sheet"
	"seehuhn.de/go/glyphsheet/ttx"
)

const testSheet = `<?xml version="1.0" encoding="UTF-8"?>
<svg
   width="720"
   height="270">
  <g
     transform="translate(0,0)">
  <path
     style="fill:#ff0000"
     d="M100,50 L100,80 Z" />
  <path
     style="fill:#0000ff"
     d="M60,105 L80,105 L80,135 Z" />
  </g>
</svg>
`

const testTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<ttFont sfntVersion="\x00\x01\x00\x00" ttLibVersion="3.0">
<!-- GlyphOrder -->
<!-- cmap -->
<!-- glyf -->
<!-- hmtx -->
<!-- CPAL -->
<!-- SVG -->
</ttFont>
`

func TestRun(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "template.ttx")
	err := os.WriteFile(templatePath, []byte(testTemplate), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	opt := DefaultOptions()
	opt.LetterDir = filepath.Join(dir, "letters")
	opt.TemplatePath = templatePath
	opt.OutputPath = filepath.Join(dir, "out.ttx")
	opt.CMapPath = filepath.Join(dir, "cmap.bin")

	res, err := Run(context.Background(), strings.NewReader(testSheet), opt)
	if err != nil {
		t.Fatal(err)
	}

	// the red stroke starts on the edge between the cells of quotedbl
	// and two, and is drawn in both
	want := []string{
		filepath.Join(dir, "letters", "char-quotedbl.svg"),
		filepath.Join(dir, "letters", "char-two.svg"),
		filepath.Join(dir, "letters", "char-A.svg"),
		opt.OutputPath,
		opt.CMapPath,
	}
	if d := cmp.Diff(want, res.Files); d != "" {
		t.Errorf("files (-want +got):\n%s", d)
	}

	letter, err := os.ReadFile(want[2])
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(letter, []byte(`fill:#0000ff;`)) {
		t.Errorf("unexpected glyph document:\n%s", letter)
	}

	out, err := os.ReadFile(opt.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, marker := range []string{"<GlyphOrder>", "<cmap>", "<glyf>", "<hmtx>", "<CPAL>", "<SVG>"} {
		if !bytes.Contains(out, []byte(marker)) {
			t.Errorf("output is missing %s", marker)
		}
	}
	if !bytes.HasSuffix(out, []byte("</ttFont>\n")) {
		t.Error("template tail was not copied")
	}

	data, err := os.ReadFile(opt.CMapPath)
	if err != nil {
		t.Fatal(err)
	}
	table, err := sfntcmap.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != 2 {
		t.Errorf("%d cmap subtables, want 2", len(table))
	}

	var missing *ttx.MissingMetricsWarning
	found := false
	for _, w := range res.Warnings {
		if errors.As(w, &missing) {
			found = true
			break
		}
	}
	if !found {
		t.Error("no missing metrics warnings reported")
	}
}

func TestRunLayered(t *testing.T) {
	opt := DefaultOptions()
	opt.SetLayer(1)
	if got := opt.OutputName(); got != "VillaPazza1.ttx" {
		t.Errorf("output name %q", got)
	}

	res, err := Run(context.Background(), strings.NewReader(testSheet), opt)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Files) != 0 {
		t.Errorf("unexpected files %v", res.Files)
	}
	if syn := res.Tables; syn.Outline("A") == nil || syn.Outline("quotedbl") != nil || syn.Outline("two") != nil {
		t.Error("wrong primary layer")
	}
}

func TestRunErrors(t *testing.T) {
	_, err := Run(context.Background(), strings.NewReader("<svg>\n</svg>\n"), DefaultOptions())
	if !errors.Is(err, sheet.ErrNoCanvasSize) {
		t.Errorf("got %v, want %v", err, sheet.ErrNoCanvasSize)
	}

	opt := DefaultOptions()
	opt.TemplatePath = filepath.Join(t.TempDir(), "missing.ttx")
	_, err = Run(context.Background(), strings.NewReader(testSheet), opt)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want a missing file error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, strings.NewReader(testSheet), DefaultOptions())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want %v", err, context.Canceled)
	}
}

func TestLogger(t *testing.T) {
	defer SetLogger(nil)

	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	_, err := Run(context.Background(), strings.NewReader(testSheet), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "no glyph name for U+007F") {
		t.Errorf("missing warnings in log output:\n%s", buf)
	}
	if strings.Contains(buf.String(), "is empty") {
		t.Error("empty cells logged at warning level")
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestRunPartial(t *testing.T) {
	defer SetLogger(nil)
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	dir := t.TempDir()
	opt := DefaultOptions()
	opt.LetterDir = filepath.Join(dir, "letters")
	opt.TemplatePath = filepath.Join(dir, "missing.ttx")
	opt.OutputPath = filepath.Join(dir, "out.ttx")

	res, err := Run(context.Background(), strings.NewReader(testSheet), opt)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v, want a missing file error", err)
	}
	if res == nil || res.Sheet == nil || res.Tables == nil {
		t.Fatal("results of the completed stages are missing")
	}
	if len(res.Files) != 3 {
		t.Errorf("letter files not reported: %v", res.Files)
	}
	for _, fname := range res.Files {
		if _, err := os.Stat(fname); err != nil {
			t.Error(err)
		}
	}
	if _, err := os.Stat(opt.OutputPath); !errors.Is(err, os.ErrNotExist) {
		t.Error("output file was created")
	}

	if !strings.Contains(buf.String(), "no glyph name for U+007F") {
		t.Errorf("sheet warnings were not logged:\n%s", buf)
	}
	if len(res.Warnings) == 0 {
		t.Error("no warnings returned")
	}
}
