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

// Package engine performs one round's greedy longest-match replacement
// over a span of UTF-16 code units.
package engine

import (
	"unicode/utf16"

	"seehuhn.de/go/zhconv/dict"
	"seehuhn.de/go/zhconv/segment"
	"seehuhn.de/go/zhconv/union"
)

// ConvertSegment applies one round to span: greedy longest-match using
// dicts (probed in declared order at each candidate length) gated by
// union. Every entry of dicts must have been included when union was
// built (precondition, not re-checked here).
//
// ConvertSegment never errors: if nothing matches at any length, the
// current grapheme is echoed unchanged.
func ConvertSegment(span []uint16, dicts []*dict.Entry, u *union.Union) string {
	n := len(span)
	if n == 0 {
		return ""
	}
	if n == 1 && segment.IsDelimiter(span[0]) {
		return string(utf16.Decode(span))
	}

	var out []uint16
	out = make([]uint16, 0, n+n/8)

	var scratch []uint16
	if cap := u.GlobalCap(); cap > 0 {
		scratch = make([]uint16, cap)
	}

	i := 0
	for i < n {
		rest := span[i:]
		step, hasStarter, capLen, mask, minLen := u.Lookup(rest)

		remaining := n - i
		tryMax := capLen
		if remaining < tryMax {
			tryMax = remaining
		}

		if !hasStarter || capLen == 0 || minLen == 0 || minLen > tryMax {
			out = append(out, rest[:step]...)
			i += step
			continue
		}

		// Single-grapheme fast path.
		trimmedMask := mask
		if tryMax < 64 {
			trimmedMask &= (uint64(1) << uint(tryMax)) - 1
		}
		hasLonger := false
		for l := step + 1; l <= tryMax; l++ {
			if l <= 64 && trimmedMask&(1<<uint(l-1)) != 0 {
				hasLonger = true
				break
			}
		}
		if !hasLonger && step >= minLen && step <= 64 && mask&(1<<uint(step-1)) != 0 {
			key := string(utf16.Decode(rest[:step]))
			if val, ok := probe(dicts, key, step); ok {
				out = append(out, utf16.Encode([]rune(val))...)
				i += step
				continue
			}
		}

		// General longest-first search.
		lower := minLen
		if step > lower {
			lower = step
		}
		matched := false
		copy(scratch[:tryMax], rest[:tryMax])
		for length := tryMax; length >= lower; length-- {
			if length <= 64 && mask&(1<<uint(length-1)) == 0 {
				continue
			}
			if !anyDictSupports(dicts, length) {
				continue
			}
			key := string(utf16.Decode(scratch[:length]))
			if val, ok := probe(dicts, key, length); ok {
				out = append(out, utf16.Encode([]rune(val))...)
				i += length
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		// Fallback: echo the grapheme unchanged.
		out = append(out, rest[:step]...)
		i += step
	}

	return string(utf16.Decode(out))
}

// probe tries dicts in declared order, using SupportsLength as a cheap
// filter before each map lookup. The first dict with a hit wins,
// matching the tie-break rule for equal-length candidates across
// dicts within one round.
func probe(dicts []*dict.Entry, key string, length int) (string, bool) {
	for _, d := range dicts {
		if d == nil || !d.SupportsLength(length) {
			continue
		}
		if val, ok := d.Lookup(key); ok {
			return val, true
		}
	}
	return "", false
}

func anyDictSupports(dicts []*dict.Entry, length int) bool {
	for _, d := range dicts {
		if d != nil && d.SupportsLength(length) {
			return true
		}
	}
	return false
}
