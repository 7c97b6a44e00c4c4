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

package plan

import (
	"sync"
	"testing"

	"seehuhn.de/go/zhconv/dict"
)

func loadTestSet(t *testing.T) *dict.Set {
	t.Helper()
	set, err := dict.LoadDir("../testdata/dict")
	if err != nil {
		t.Fatal(err)
	}
	return set
}

func TestBuildRoundCounts(t *testing.T) {
	set := loadTestSet(t)
	cache := NewCache(set)

	cases := map[string]int{
		"s2t":   1,
		"s2tw":  2,
		"s2twp": 3,
		"tw2sp": 2,
	}
	for name, wantRounds := range cases {
		p, err := cache.Get(name, false)
		if err != nil {
			t.Fatalf("Get(%s) error = %v", name, err)
		}
		if len(p.Rounds) != wantRounds {
			t.Errorf("Get(%s) rounds = %d, want %d", name, len(p.Rounds), wantRounds)
		}
	}
}

func TestUnknownDirection(t *testing.T) {
	set := loadTestSet(t)
	cache := NewCache(set)
	if _, err := cache.Get("not-a-direction", false); err == nil {
		t.Errorf("expected an error for an unknown direction")
	}
}

func TestPunctuationSwapsSlot(t *testing.T) {
	set := loadTestSet(t)
	cache := NewCache(set)

	plain, err := cache.Get("s2t", false)
	if err != nil {
		t.Fatal(err)
	}
	punct, err := cache.Get("s2t", true)
	if err != nil {
		t.Fatal(err)
	}
	if len(plain.Rounds[0].Dicts) == len(punct.Rounds[0].Dicts) {
		t.Errorf("expected punctuation round to include an extra dict")
	}
}

func TestCacheReturnsSamePlanInstance(t *testing.T) {
	set := loadTestSet(t)
	cache := NewCache(set)
	p1, _ := cache.Get("s2t", false)
	p2, _ := cache.Get("s2t", false)
	if p1 != p2 {
		t.Errorf("expected cached Get to return the same *Plan instance")
	}
}

func TestCacheConcurrentBuildRace(t *testing.T) {
	set := loadTestSet(t)
	cache := NewCache(set)

	var wg sync.WaitGroup
	results := make([]*Plan, 32)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := cache.Get("s2twp", true)
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = p
		}()
	}
	wg.Wait()

	first := results[0]
	for i, p := range results {
		if p != first {
			t.Errorf("result %d: got different *Plan instance than result 0", i)
		}
	}
}

func TestClear(t *testing.T) {
	set := loadTestSet(t)
	cache := NewCache(set)
	p1, _ := cache.Get("s2t", false)
	cache.Clear()
	p2, _ := cache.Get("s2t", false)
	if p1 == p2 {
		t.Errorf("expected Clear to force a fresh Plan to be built")
	}
}
