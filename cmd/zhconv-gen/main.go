// seehuhn.de/go/zhconv - a library for Chinese/Japanese script conversion
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

// Command zhconv-gen reads the eighteen plain-text dictionary sources
// from a base directory and writes out a single persisted Set in one
// of three container formats: a self-describing JSON document, a
// compact binary container, or gzip-framed JSON.
package main

import (
	"flag"
	"fmt"
	"os"

	"seehuhn.de/go/zhconv/dict"
)

func main() {
	baseDir := flag.String("base-dir", ".", "directory containing the 18 dictionary text files")
	format := flag.String("format", "self-describing", "output format: binary, self-describing, or compressed-json")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [options] output-file\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	outputFile := flag.Arg(0)

	if err := run(*baseDir, *format, outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "zhconv-gen: %v\n", err)
		os.Exit(1)
	}
}

func parseFormat(name string) (dict.Format, error) {
	switch name {
	case "binary":
		return dict.FormatBinary, nil
	case "self-describing":
		return dict.FormatJSON, nil
	case "compressed-json":
		return dict.FormatCompressedJSON, nil
	default:
		return 0, fmt.Errorf("unknown format %q (want binary, self-describing, or compressed-json)", name)
	}
}

func run(baseDir, formatName, outputFile string) error {
	format, err := parseFormat(formatName)
	if err != nil {
		return err
	}

	set, err := dict.LoadDir(baseDir)
	if err != nil {
		return fmt.Errorf("loading dictionary sources: %w", err)
	}

	out, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	if err := set.Save(out, format); err != nil {
		return fmt.Errorf("writing %s: %w", outputFile, err)
	}

	fmt.Printf("wrote %s (%s) from %s\n", outputFile, formatName, baseDir)
	return nil
}
