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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/rect"
)

func mustParse(t *testing.T, d string) Path {
	t.Helper()
	p, err := Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestTranslateComposition(t *testing.T) {
	const d = "M10 20C1 2 3 4 5 6Q7 8 9 10A5 5 30 1 0 10 0Z"
	for _, off := range [][4]float64{
		{1, 2, 3, 4},
		{-10.5, 0, 0.25, -7},
		{0, 0, 0, 0},
	} {
		p1 := mustParse(t, d).Translate(off[0], off[1]).Translate(off[2], off[3])
		p2 := mustParse(t, d).Translate(off[0]+off[2], off[1]+off[3])
		if !p1.Equal(p2, 1e-12) {
			t.Errorf("translate %v: %v != %v", off, p1, p2)
		}
	}
}

func TestTranslate(t *testing.T) {
	p := mustParse(t, "M0 0A5 6 30 1 0 10 0L1 1Z")
	p.Translate(100, 200)
	want := Path{
		{MoveTo, []float64{100, 200}},
		{ArcTo, []float64{5, 6, 30, 1, 0, 110, 200}},
		{LineTo, []float64{101, 201}},
		{Close, []float64{}},
	}
	if d := cmp.Diff(want, p, cmpopts.EquateEmpty()); d != "" {
		t.Error(d)
	}
}

func TestScale(t *testing.T) {
	p := mustParse(t, "M1 2A5 10 30 0 1 10 4")
	p.Scale(-1, 2)
	want := Path{
		{MoveTo, []float64{-1, 4}},
		{ArcTo, []float64{-5, -10, 30, 0, 0, -10, 8}},
	}
	if d := cmp.Diff(want, p); d != "" {
		t.Error(d)
	}

	q := mustParse(t, "M1 2A5 10 30 0 1 10 4")
	q.Scale(2, -1)
	want = Path{
		{MoveTo, []float64{2, -2}},
		{ArcTo, []float64{10, 20, -30, 0, 0, 20, -4}},
	}
	if d := cmp.Diff(want, q); d != "" {
		t.Error(d)
	}

	// mirroring in both axes keeps the sweep direction
	r := mustParse(t, "M0 0A5 10 30 0 1 10 4")
	r.Scale(-1, -1)
	if got := r[1].Args[4]; got != 1 {
		t.Errorf("sweep flag = %g, want 1", got)
	}
	if got := r[1].Args[2]; got != -30 {
		t.Errorf("angle = %g, want -30", got)
	}
}

func TestRotate(t *testing.T) {
	p := mustParse(t, "M1 0L0 0C2 0 0 2 3 0")
	p.Rotate(math.Pi/2, 0, 0)
	want := Path{
		{MoveTo, []float64{0, 1}},
		{LineTo, []float64{0, 0}},
		{CubeTo, []float64{0, 2, -2, 0, 0, 3}},
	}
	if d := cmp.Diff(want, p, cmpopts.EquateApprox(1e-9, 1e-9)); d != "" {
		t.Error(d)
	}

	q := mustParse(t, "M2 1L3 1")
	q.Rotate(math.Pi, 2, 1)
	want = Path{
		{MoveTo, []float64{2, 1}},
		{LineTo, []float64{1, 1}},
	}
	if d := cmp.Diff(want, q, cmpopts.EquateApprox(1e-9, 1e-9)); d != "" {
		t.Error(d)
	}
}

func TestRotateZero(t *testing.T) {
	p := mustParse(t, "M1.5 2.5L3 4")
	orig := p.Clone()
	q := p.Rotate(0, 10, 10)
	if &q[0] != &p[0] {
		t.Error("zero rotation returned a different path")
	}
	if d := cmp.Diff(orig, q); d != "" {
		t.Error(d)
	}
}

func TestClone(t *testing.T) {
	p := mustParse(t, "M1 2L3 4")
	q := p.Clone()
	q.Translate(10, 10)
	if p[0].Args[0] != 1 {
		t.Error("Clone shares argument storage")
	}
}

func TestBounds(t *testing.T) {
	p := mustParse(t, "M0 0C10 -5 20 30 5 5Z")
	want := rect.Rect{LLx: 0, LLy: -5, URx: 20, URy: 30}
	if got := p.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if got := Path(nil).Bounds(); got != (rect.Rect{}) {
		t.Errorf("empty path: Bounds() = %v", got)
	}
}

func TestSubpaths(t *testing.T) {
	p := mustParse(t, "M0 0L1 1ZM5 5L6 6")
	sub := p.Subpaths()
	if len(sub) != 2 {
		t.Fatalf("got %d subpaths", len(sub))
	}
	if sub[0].String() != "M0 0L1 1Z" || sub[1].String() != "M5 5L6 6" {
		t.Errorf("unexpected subpaths %q, %q", sub[0], sub[1])
	}
}
