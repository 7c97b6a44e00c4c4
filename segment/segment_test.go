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

package segment

import (
	"testing"
	"unicode/utf16"
)

func units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func TestIsDelimiter(t *testing.T) {
	cases := map[rune]bool{
		' ': true, '\t': true, ',': true, '。': true, '～': true,
		'汉': false, 'a': false, 'A': false,
	}
	for r, want := range cases {
		if got := IsDelimiter(uint16(r)); got != want {
			t.Errorf("IsDelimiter(%q) = %v, want %v", r, got, want)
		}
	}
}

func TestSplitInclusive(t *testing.T) {
	ranges := Split(units("汉字,转换。"), true)
	var got []string
	u := units("汉字,转换。")
	for _, r := range ranges {
		got = append(got, string(utf16.Decode(u[r.Start:r.End])))
	}
	want := []string{"汉字,", "转换。"}
	if len(got) != len(want) {
		t.Fatalf("got %v ranges, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("range %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitNonInclusive(t *testing.T) {
	u := units("汉,字")
	ranges := Split(u, false)
	var got []string
	for _, r := range ranges {
		got = append(got, string(utf16.Decode(u[r.Start:r.End])))
	}
	want := []string{"汉", ",", "字"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("range %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitLeadingAndConsecutiveDelimiters(t *testing.T) {
	u := units(",,汉")
	ranges := Split(u, true)
	if len(ranges) != 3 {
		t.Fatalf("got %d ranges, want 3 (two lone delimiters + one run)", len(ranges))
	}
}

func TestSplitEmpty(t *testing.T) {
	if got := Split(nil, true); len(got) != 0 {
		t.Errorf("Split(nil) = %v, want empty", got)
	}
}
