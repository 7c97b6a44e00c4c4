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

// Command zhconv converts Chinese text between scripts on the command
// line, reading from stdin (or --input) and writing to stdout (or
// --output).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/zhconv"
	"seehuhn.de/go/zhconv/dict"
)

func main() {
	config := flag.String("config", "", "conversion direction, e.g. s2t, t2s, s2tw (required)")
	input := flag.String("input", "", "input file (default stdin)")
	output := flag.String("output", "", "output file (default stdout)")
	punct := flag.Bool("punct", false, "also convert punctuation")
	dictFile := flag.String("dict", "", "path to a FormatBinary persisted dictionary (mmap-loaded) to use instead of the bundled default")
	flag.Parse()

	if err := run(*config, *input, *output, *dictFile, *punct); err != nil {
		fmt.Fprintf(os.Stderr, "zhconv: %v\n", err)
		os.Exit(1)
	}
}

func run(config, input, output, dictFile string, punct bool) error {
	if config == "" {
		return fmt.Errorf("--config is required (one of: %v)", zhconv.AllDirectionNames())
	}
	direction, ok := zhconv.ParseDirection(config)
	if !ok {
		return fmt.Errorf("unknown direction %q (one of: %v)", config, zhconv.AllDirectionNames())
	}

	if dictFile != "" {
		set, err := dict.LoadBinaryFile(dictFile)
		if err != nil {
			return fmt.Errorf("loading --dict %s: %w", dictFile, err)
		}
		zhconv.UseCustom(set)
	}

	in := os.Stdin
	if input != "" {
		f, err := os.Open(input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	} else if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "zhconv: reading from terminal, press Ctrl-D to end input")
	}

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	text, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	converted := zhconv.Convert(string(text), direction, punct)
	if _, err := io.WriteString(out, converted); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
