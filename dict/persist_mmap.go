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

package dict

import (
	"fmt"
	"io"

	"golang.org/x/exp/mmap"
)

// LoadBinaryFile builds a Set from a FormatBinary blob stored at path,
// using golang.org/x/exp/mmap so a large lexicon is paged in by the OS
// on demand rather than read wholesale into the heap up front.
func LoadBinaryFile(path string) (*Set, error) {
	ra, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dict: mmap open %s: %w", path, err)
	}
	defer ra.Close()

	r := io.NewSectionReader(ra, 0, int64(ra.Len()))
	set, err := Load(r, FormatBinary)
	if err != nil {
		return nil, fmt.Errorf("dict: load %s: %w", path, err)
	}
	return set, nil
}
