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
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

// MissingFilesError is returned by LoadDir and LoadFS; the caller-facing
// error type lives in the root package (DictionarySourceMissingError)
// and wraps this one's Missing list. It is exported here so callers
// that only import dict can still inspect which files were absent.
type MissingFilesError struct {
	Missing []string
}

func (err *MissingFilesError) Error() string {
	return fmt.Sprintf("dict: missing source files: %s", strings.Join(err.Missing, ", "))
}

// LoadDir builds a Set from a directory on disk containing the 18
// fixed tab-separated text files listed in SlotFile. All 18 files
// must exist; a missing file fails the whole load with a
// *MissingFilesError enumerating every missing name.
func LoadDir(dir string) (*Set, error) {
	return LoadFS(os.DirFS(dir), ".")
}

// LoadFS is LoadDir generalized to any fs.FS, so a Set can be built
// from files embedded in the binary (see Bundled) as readily as from
// files on disk.
func LoadFS(fsys fs.FS, dir string) (*Set, error) {
	var missing []string
	for _, slot := range SlotFile {
		if _, err := fs.Stat(fsys, path.Join(dir, slot.File)); err != nil {
			missing = append(missing, slot.File)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFilesError{Missing: missing}
	}

	set := &Set{}
	for _, slot := range SlotFile {
		m, err := parseFile(fsys, path.Join(dir, slot.File))
		if err != nil {
			return nil, fmt.Errorf("dict: %s: %w", slot.File, err)
		}
		entry, err := NewEntry(m)
		if err != nil {
			return nil, fmt.Errorf("dict: %s: %w", slot.File, err)
		}
		*slot.Set(set) = entry
	}
	return set, nil
}

// parseFile reads one dictionary text file: KEY<TAB>VALUE[SPACE...] per
// line. Empty lines, whitespace-only lines, and lines starting with '#'
// are ignored. The value is the substring before the first space after
// the tab. Duplicate keys: last occurrence wins. Leading/trailing
// whitespace on key and extracted value is trimmed; if either becomes
// empty after trimming, the line is skipped.
func parseFile(fsys fs.FS, name string) (map[string]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m := make(map[string]string)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		tab := strings.IndexByte(line, '\t')
		if tab < 0 {
			continue
		}
		key := strings.TrimSpace(line[:tab])

		rest := line[tab+1:]
		if sp := strings.IndexByte(rest, ' '); sp >= 0 {
			rest = rest[:sp]
		}
		value := strings.TrimSpace(rest)

		if key == "" || value == "" {
			continue
		}
		m[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}
