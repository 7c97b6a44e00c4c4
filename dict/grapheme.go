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

// Package dict implements the dictionary data model: keyed mappings with
// precomputed length and starter indices.
package dict

// IsHighSurrogate reports whether u is a UTF-16 high surrogate.
func IsHighSurrogate(u uint16) bool {
	return u >= 0xD800 && u <= 0xDBFF
}

// IsLowSurrogate reports whether u is a UTF-16 low surrogate.
func IsLowSurrogate(u uint16) bool {
	return u >= 0xDC00 && u <= 0xDFFF
}

// GraphemeStep returns the number of UTF-16 code units (1 or 2) that make
// up the grapheme starting at units[0]: 2 iff units[0] is a high
// surrogate immediately followed by a low surrogate, otherwise 1.
func GraphemeStep(units []uint16) int {
	if len(units) == 0 {
		return 0
	}
	if len(units) >= 2 && IsHighSurrogate(units[0]) && IsLowSurrogate(units[1]) {
		return 2
	}
	return 1
}

// Starter returns the string formed by the first grapheme of units,
// suitable for use as a starter-union or starter-length-mask key.
func Starter(units []uint16) string {
	step := GraphemeStep(units)
	if step == 0 {
		return ""
	}
	return string(unitsToRunes(units[:step]))
}

// unitsToRunes decodes a (possibly surrogate-paired) slice of UTF-16
// units into the corresponding rune sequence. A unit that is not part
// of a valid surrogate pair is converted to a rune as is.
func unitsToRunes(units []uint16) []rune {
	if len(units) == 2 && IsHighSurrogate(units[0]) && IsLowSurrogate(units[1]) {
		r := ((rune(units[0]) - 0xD800) << 10) + (rune(units[1]) - 0xDC00) + 0x10000
		return []rune{r}
	}
	out := make([]rune, len(units))
	for i, u := range units {
		out[i] = rune(u)
	}
	return out
}
