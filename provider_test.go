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
	"testing"

	"seehuhn.de/go/zhconv/dict"
)

func TestProviderReturnsDefaultSet(t *testing.T) {
	defer ResetToDefault()
	set := Provider()
	if set == nil {
		t.Fatal("Provider() returned nil")
	}
	if set.STCharacters == nil {
		t.Errorf("default set has no STCharacters entry")
	}
}

func TestUseCustomOverridesProvider(t *testing.T) {
	defer ResetToDefault()

	custom, err := dict.NewEntry(map[string]string{"x": "y"})
	if err != nil {
		t.Fatal(err)
	}
	set := &dict.Set{}
	set.STCharacters = custom
	set.STPhrases = mustEmptyEntry(t)
	set.TSCharacters = mustEmptyEntry(t)
	set.TSPhrases = mustEmptyEntry(t)
	set.TWPhrases = mustEmptyEntry(t)
	set.TWPhrasesRev = mustEmptyEntry(t)
	set.TWVariants = mustEmptyEntry(t)
	set.TWVariantsRev = mustEmptyEntry(t)
	set.TWVariantsRevPhrases = mustEmptyEntry(t)
	set.HKVariants = mustEmptyEntry(t)
	set.HKVariantsRev = mustEmptyEntry(t)
	set.HKVariantsRevPhrases = mustEmptyEntry(t)
	set.JPShinjitaiCharacters = mustEmptyEntry(t)
	set.JPShinjitaiPhrases = mustEmptyEntry(t)
	set.JPVariants = mustEmptyEntry(t)
	set.JPVariantsRev = mustEmptyEntry(t)
	set.STPunctuations = mustEmptyEntry(t)
	set.TSPunctuations = mustEmptyEntry(t)

	UseCustom(set)
	if Provider() != set {
		t.Errorf("Provider() did not return the custom set")
	}
	got := Convert("x", S2T, false)
	if got != "y" {
		t.Errorf("Convert with custom set = %q, want y", got)
	}
}

func TestResetToDefaultRestoresBundledSet(t *testing.T) {
	defer ResetToDefault()

	custom := &dict.Set{}
	for _, sf := range dict.SlotFile {
		e := mustEmptyEntry(t)
		*sf.Set(custom) = e
	}
	UseCustom(custom)

	if err := ResetToDefault(); err != nil {
		t.Fatal(err)
	}
	if Provider() == custom {
		t.Errorf("ResetToDefault did not replace the custom set")
	}
}

func TestLoadDictionaryDir(t *testing.T) {
	defer ResetToDefault()

	if err := LoadDictionaryDir("testdata/dict"); err != nil {
		t.Fatalf("LoadDictionaryDir error = %v", err)
	}
	got := Convert("汉字", S2T, false)
	if got != "漢字" {
		t.Errorf("Convert after LoadDictionaryDir = %q, want 漢字", got)
	}
}

func TestLoadDictionaryDirMissingFiles(t *testing.T) {
	defer ResetToDefault()

	err := LoadDictionaryDir(t.TempDir())
	var missing *DictionarySourceMissingError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *DictionarySourceMissingError, got %T: %v", err, err)
	}
	if len(missing.Missing) != len(dict.SlotFile) {
		t.Errorf("expected %d missing files, got %d", len(dict.SlotFile), len(missing.Missing))
	}
}

func mustEmptyEntry(t *testing.T) *dict.Entry {
	t.Helper()
	e, err := dict.NewEntry(map[string]string{})
	if err != nil {
		t.Fatal(err)
	}
	return e
}
