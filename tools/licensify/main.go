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

// Licensify adds the license header to all Go source files below the
// current directory which do not have it yet.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const header = `// seehuhn.de/go/glyphsheet - build colour font tables from a glyph sheet
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

`

var dryRun = flag.Bool("n", false, "only list the files which would be changed")

// skipDirs lists directories which contain third-party code.
var skipDirs = map[string]bool{
	"_examples": true,
	"testdata":  true,
	"vendor":    true,
}

func main() {
	flag.Parse()
	root := "."
	if flag.NArg() > 0 {
		root = flag.Arg(0)
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (skipDirs[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		switch status(body) {
		case hasHeader:
			return nil
		case unknownPrefix:
			fmt.Println("ATTENTION " + path)
			return nil
		}

		fmt.Println("updating " + path)
		if *dryRun {
			return nil
		}
		return os.WriteFile(path, addHeader(body), 0o644)
	})
	if err != nil {
		log.Fatal(err)
	}
}

type headerStatus int

const (
	hasHeader headerStatus = iota
	missingHeader
	unknownPrefix
)

// status reports whether body starts with the license header.  Files
// which start with something other than the header, a package clause or
// a build constraint are reported as unknownPrefix.
func status(body []byte) headerStatus {
	switch {
	case bytes.HasPrefix(body, []byte(header)):
		return hasHeader
	case bytes.HasPrefix(body, []byte("package ")),
		bytes.HasPrefix(body, []byte("//go:build ")):
		return missingHeader
	default:
		return unknownPrefix
	}
}

func addHeader(body []byte) []byte {
	res := make([]byte, 0, len(header)+len(body))
	res = append(res, header...)
	return append(res, body...)
}
