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

// Svgpath normalizes SVG path data and applies affine transformations.
//
// The path data is read from the command line, or from standard input if
// no argument is given.  The output uses absolute coordinates and the
// commands M, L, C, Q, A and Z only.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/glyphsheet/internal/buildinfo"
	"seehuhn.de/go/glyphsheet/pathdata"
)

var (
	translateArg = flag.String("translate", "", "translate by `dx,dy`")
	scaleArg     = flag.String("scale", "", "scale by `sx,sy`")
	rotateArg    = flag.String("rotate", "", "rotate by `deg,cx,cy` around (cx,cy)")
	boundsArg    = flag.Bool("bounds", false, "print the bounding box instead of the path")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "svgpath \u2014 normalize and transform SVG path data\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("svgpath"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  svgpath [options] [path-data]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nTransformations are applied in the order translate, scale, rotate.\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  svgpath 'm10 10 h20 v20 z'\n")
		fmt.Fprintf(os.Stderr, "  svgpath -scale 2,-1 'M0 0 A5 5 0 0 1 10 0'\n")
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var data string
	if flag.NArg() == 1 {
		data = flag.Arg(0)
	} else {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("no path data given")
		}
		body, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		data = string(body)
	}

	p, err := pathdata.Parse(data)
	if err != nil {
		return err
	}

	if *translateArg != "" {
		v, err := parseNumbers(*translateArg, 2)
		if err != nil {
			return fmt.Errorf("-translate: %w", err)
		}
		p.Translate(v[0], v[1])
	}
	if *scaleArg != "" {
		v, err := parseNumbers(*scaleArg, 2)
		if err != nil {
			return fmt.Errorf("-scale: %w", err)
		}
		p.Scale(v[0], v[1])
	}
	if *rotateArg != "" {
		v, err := parseNumbers(*rotateArg, 3)
		if err != nil {
			return fmt.Errorf("-rotate: %w", err)
		}
		p.Rotate(v[0]*math.Pi/180, v[1], v[2])
	}

	if *boundsArg {
		b := p.Bounds()
		fmt.Println(strings.Join([]string{
			strconv.FormatFloat(b.LLx, 'g', -1, 64),
			strconv.FormatFloat(b.LLy, 'g', -1, 64),
			strconv.FormatFloat(b.URx, 'g', -1, 64),
			strconv.FormatFloat(b.URy, 'g', -1, 64),
		}, " "))
		return nil
	}
	fmt.Println(p)
	return nil
}

// parseNumbers parses a comma separated list of exactly n numbers.
func parseNumbers(s string, n int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d numbers, got %q", n, s)
	}
	res := make([]float64, n)
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		res[i] = x
	}
	return res, nil
}
