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

package zhconv

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned by Converter.SetDirection for an
// unknown name (ParseDirection itself reports an unknown name through
// its boolean result). Conversions never return it: an unknown direction falls back to
// DefaultDirection and records a last-error note (see LastError).
var ErrInvalidDirection = errors.New("zhconv: invalid direction name")

// ErrEmptyInput is recorded as a last-error note when Convert is called
// with an empty string; it is never returned, since Convert always
// produces a string.
var ErrEmptyInput = errors.New("zhconv: empty input")

// DictionarySourceMissingError indicates that one or more of the 18
// required dictionary text files were absent from a load directory.
type DictionarySourceMissingError struct {
	Missing []string
}

func (err *DictionarySourceMissingError) Error() string {
	return fmt.Sprintf("zhconv: missing dictionary source files: %s",
		strings.Join(err.Missing, ", "))
}

// DictionaryCorruptError indicates that a persisted dictionary blob
// failed to deserialize, or failed one of the §3 invariants on load.
type DictionaryCorruptError struct {
	Reason string
	Err    error
}

func (err *DictionaryCorruptError) Error() string {
	msg := "zhconv: corrupt dictionary: " + err.Reason
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *DictionaryCorruptError) Unwrap() error {
	return err.Err
}

// IOError wraps an underlying read or write failure encountered while
// loading or persisting a dictionary set.
type IOError struct {
	Op  string
	Err error
}

func (err *IOError) Error() string {
	return fmt.Sprintf("zhconv: %s: %v", err.Op, err.Err)
}

func (err *IOError) Unwrap() error {
	return err.Err
}
