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

import "embed"

//go:embed bundled/*.txt
var bundledFiles embed.FS

// Bundled builds a Set from the dictionary text files embedded in the
// module at build time. Unlike LoadDir, it does not depend on the
// calling process's working directory, so it is what the root
// package's default Provider uses. The files under bundled/ are a
// small hand-authored lexicon, identical to the test fixtures in
// testdata/dict, not the full upstream OpenCC lexicon.
func Bundled() (*Set, error) {
	return LoadFS(bundledFiles, "bundled")
}
