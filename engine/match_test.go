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

package engine

import (
	"strings"
	"testing"
	"unicode/utf16"

	"seehuhn.de/go/zhconv/dict"
	"seehuhn.de/go/zhconv/union"
)

func mustEntry(t *testing.T, m map[string]string) *dict.Entry {
	t.Helper()
	e, err := dict.NewEntry(m)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func convert(t *testing.T, s string, dicts []*dict.Entry) string {
	t.Helper()
	u := union.Build(dicts)
	return ConvertSegment(utf16.Encode([]rune(s)), dicts, u)
}

func TestEmptySpan(t *testing.T) {
	if got := ConvertSegment(nil, nil, union.Build(nil)); got != "" {
		t.Errorf("ConvertSegment(nil) = %q, want empty", got)
	}
}

func TestLongestMatchWins(t *testing.T) {
	dicts := []*dict.Entry{mustEntry(t, map[string]string{
		"计":   "計",
		"计算":  "計算",
		"计算机": "電腦",
	})}
	got := convert(t, "计算机内", dicts)
	want := "電腦内"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEarlierDictWinsAtEqualLength(t *testing.T) {
	first := mustEntry(t, map[string]string{"汉": "A"})
	second := mustEntry(t, map[string]string{"汉": "B"})
	got := convert(t, "汉", []*dict.Entry{first, second})
	if got != "A" {
		t.Errorf("got %q, want A (earlier dict should win)", got)
	}
}

func TestUnmatchedEchoedUnchanged(t *testing.T) {
	dicts := []*dict.Entry{mustEntry(t, map[string]string{"汉": "漢"})}
	got := convert(t, "字", dicts)
	if got != "字" {
		t.Errorf("got %q, want 字 unchanged", got)
	}
}

func TestDelimiterPreserved(t *testing.T) {
	dicts := []*dict.Entry{mustEntry(t, map[string]string{",": "，"})}
	// even if a dict technically has a key matching a delimiter's
	// code point, the fast-out path for a single delimiter unit
	// echoes it unchanged only when the whole span is exactly that
	// one unit; multi-unit spans still go through ordinary matching.
	got := ConvertSegment(utf16.Encode([]rune(",")), dicts, union.Build(dicts))
	if got != "," {
		t.Errorf("got %q, want , unchanged", got)
	}
}

func TestAstralKeyMatches(t *testing.T) {
	astral := string(rune(0x20000))
	dicts := []*dict.Entry{mustEntry(t, map[string]string{astral: "x"})}
	got := convert(t, astral, dicts)
	if got != "x" {
		t.Errorf("got %q, want x", got)
	}
}

func TestLoneHighSurrogateEchoed(t *testing.T) {
	lone := []uint16{0xD800}
	u := union.Build(nil)
	got := ConvertSegment(lone, nil, u)
	want := string(utf16.Decode(lone))
	if got != want {
		t.Errorf("got %q, want %q (lone surrogate echoed)", got, want)
	}
}

func TestKeyLongerThanRemainingNotMatched(t *testing.T) {
	dicts := []*dict.Entry{mustEntry(t, map[string]string{
		"计算机": "電腦",
		"计":   "計",
	})}
	got := convert(t, "计算", dicts)
	if got != "計算" {
		t.Errorf("got %q, want 計算 (only 计 matches, 算 echoed)", got)
	}
}

func TestIdempotenceOfNonMappedText(t *testing.T) {
	dicts := []*dict.Entry{mustEntry(t, map[string]string{"汉": "漢"})}
	text := "hello world 123"
	got := convert(t, text, dicts)
	if got != text {
		t.Errorf("got %q, want unchanged %q", got, text)
	}
}

func BenchmarkConvertSegment(b *testing.B) {
	m := map[string]string{
		"汉":   "漢",
		"转":   "轉",
		"换":   "換",
		"计算机": "電腦",
	}
	e, err := dict.NewEntry(m)
	if err != nil {
		b.Fatal(err)
	}
	dicts := []*dict.Entry{e}
	u := union.Build(dicts)

	var text strings.Builder
	for i := 0; i < 200; i++ {
		text.WriteString("汉字转换和计算机词汇")
	}
	span := utf16.Encode([]rune(text.String()))

	b.ResetTimer()
	b.SetBytes(int64(2 * len(span)))
	for i := 0; i < b.N; i++ {
		ConvertSegment(span, dicts, u)
	}
}
