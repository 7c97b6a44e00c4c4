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

import "testing"

func TestBundledLoadsIndependentlyOfWorkingDirectory(t *testing.T) {
	set, err := Bundled()
	if err != nil {
		t.Fatalf("Bundled() error = %v", err)
	}
	if v, ok := set.STCharacters.Lookup("汉"); !ok || v != "漢" {
		t.Errorf("STCharacters[汉] = %q, %v, want 漢, true", v, ok)
	}
}
