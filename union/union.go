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

// Package union aggregates per-starter length metadata across a group
// of dictionary entries used together in one conversion round: per
// starter, the longest and shortest key length in the group, and a
// bitmask of which key lengths occur.
package union

import "seehuhn.de/go/zhconv/dict"

// starterInfo is the per-starter aggregate: max key length across the
// group (Cap), the union of per-length bitmasks (Mask), and the
// smallest key length seen for this starter (MinLen).
type starterInfo struct {
	Cap    int
	Mask   uint64
	MinLen int
}

// Union is an immutable per-starter aggregate over a fixed group of
// *dict.Entry values. It is built once by Build and safe for
// concurrent use thereafter.
type Union struct {
	byStarter map[string]starterInfo
	globalCap int
}

// Build aggregates starter metadata across entries, in the order
// given. Mask only represents lengths up to 64; entries with keys
// longer than 64 units for a given starter still contribute to that
// starter's Cap through StarterMaxLen, even though no single bit of
// Mask represents them.
func Build(entries []*dict.Entry) *Union {
	u := &Union{byStarter: make(map[string]starterInfo)}

	for _, e := range entries {
		if e == nil || e.Len() == 0 {
			continue
		}
		// StarterMaxLen covers every starter, including those whose
		// only keys are longer than 64 units and therefore have no
		// bits in StarterLenMask.
		for starter, maxLen := range e.StarterMaxLen {
			info := u.byStarter[starter]
			mask := e.StarterLenMask[starter]
			info.Mask |= mask
			if maxLen > info.Cap {
				info.Cap = maxLen
			}
			minForStarter := minLenForStarter(mask)
			if minForStarter == 0 {
				// Keys longer than 64 units only; their exact minimum
				// is not tracked, 65 is a sound lower bound.
				minForStarter = 65
			}
			if info.MinLen == 0 || minForStarter < info.MinLen {
				info.MinLen = minForStarter
			}
			u.byStarter[starter] = info
		}
	}

	for _, info := range u.byStarter {
		if info.Cap > u.globalCap {
			u.globalCap = info.Cap
		}
	}
	return u
}

// minLenForStarter returns the smallest length (1..64) whose bit is
// set in mask, or 0 if mask is empty.
func minLenForStarter(mask uint64) int {
	if mask == 0 {
		return 0
	}
	for n := 1; n <= 64; n++ {
		if mask&(1<<uint(n-1)) != 0 {
			return n
		}
	}
	return 0
}

// Lookup returns the aggregate for the grapheme starter formed by the
// first 1 or 2 UTF-16 units of units (per dict.GraphemeStep), along
// with the step size used and whether the union recognises that
// starter at all.
//
// Lookup first tries the 2-unit starter if units begins with a valid
// surrogate pair; if the union has no entry for that 2-unit starter,
// it falls back to the 1-unit starter. The step is 2 only when the
// position begins a valid surrogate pair and the union recognises the
// 2-unit starter.
func (u *Union) Lookup(units []uint16) (step int, hasStarter bool, cap int, mask uint64, minLen int) {
	if len(units) == 0 {
		return 0, false, 0, 0, 0
	}

	if dict.GraphemeStep(units) == 2 {
		starter := dict.Starter(units[:2])
		if info, ok := u.byStarter[starter]; ok {
			return 2, true, info.Cap, info.Mask, info.MinLen
		}
	}

	starter := dict.Starter(units[:1])
	info, ok := u.byStarter[starter]
	return 1, ok, info.Cap, info.Mask, info.MinLen
}

// GlobalCap is the maximum Cap over all starters in the union: the
// largest scratch buffer the match engine ever needs for this union.
func (u *Union) GlobalCap() int {
	return u.globalCap
}
