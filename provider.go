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
	"sync"
	"sync/atomic"

	"seehuhn.de/go/zhconv/dict"
	"seehuhn.de/go/zhconv/plan"
)

// providerCache bundles a dictionary Set with the Plan cache built
// against it, behind a single atomic reference. Swapping the whole
// record guarantees an observer sees either the old or the new
// (set, cache) pair, never a mix of old set with new cache or vice
// versa.
type providerCache struct {
	set   *dict.Set
	cache *plan.Cache
}

var active atomic.Pointer[providerCache]

var (
	defaultOnce sync.Once
	defaultSet  *dict.Set
	defaultErr  error
)

// buildDefaultSet lazily constructs the bundled default dictionary set
// on first need. It is a variable (not a plain function call) so test
// code in this package can substitute a small fixture set without
// needing to rely on the embedded bundle. dict.Bundled reads its
// sources from files embedded at build time, so the default set loads
// the same way regardless of the calling process's working directory.
var buildDefaultSet = func() (*dict.Set, error) {
	return dict.Bundled()
}

func getDefaultSet() (*dict.Set, error) {
	defaultOnce.Do(func() {
		defaultSet, defaultErr = buildDefaultSet()
	})
	return defaultSet, defaultErr
}

func ensureActive() *providerCache {
	if pc := active.Load(); pc != nil {
		return pc
	}
	set, err := getDefaultSet()
	if err != nil {
		// A missing bundled lexicon is a programming/packaging error,
		// not a runtime input error; callers that cannot tolerate a
		// panic here should call UseCustom with their own Set before
		// ever calling Convert.
		panic(&DictionaryCorruptError{Reason: "failed to load default dictionary set", Err: err})
	}
	pc := &providerCache{set: set, cache: plan.NewCache(set)}
	active.CompareAndSwap(nil, pc)
	return active.Load()
}

// Provider returns the currently active dictionary set.
func Provider() *dict.Set {
	return ensureActive().set
}

// UseCustom replaces the active provider atomically, publishing a
// freshly empty plan cache bound to the new set. Existing Plan values
// already obtained from the old cache remain valid and keep using the
// dictionaries they were built against: swapping never mutates an
// existing Set or Cache in place.
func UseCustom(set *dict.Set) {
	pc := &providerCache{set: set, cache: plan.NewCache(set)}
	active.Store(pc)
}

// ResetToDefault is identical to UseCustom(defaultSet).
func ResetToDefault() error {
	set, err := getDefaultSet()
	if err != nil {
		return err
	}
	UseCustom(set)
	return nil
}

// LoadDictionaryDir builds a dictionary set from the 18 text files in
// dir and installs it as the active provider. A missing file fails the
// whole load with a *DictionarySourceMissingError enumerating every
// absent file; any other failure is reported as an *IOError.
func LoadDictionaryDir(dir string) error {
	set, err := dict.LoadDir(dir)
	if err != nil {
		var missing *dict.MissingFilesError
		if errors.As(err, &missing) {
			return &DictionarySourceMissingError{Missing: missing.Missing}
		}
		return &IOError{Op: "load dictionary directory " + dir, Err: err}
	}
	UseCustom(set)
	return nil
}

func currentCache() *plan.Cache {
	return ensureActive().cache
}
