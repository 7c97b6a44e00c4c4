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

package transform

import (
	"bytes"
	"io"
	"testing"

	xtransform "golang.org/x/text/transform"

	"seehuhn.de/go/zhconv"
)

func TestConverterViaNewReader(t *testing.T) {
	c := NewConverter(zhconv.S2T, false)
	r := xtransform.NewReader(bytes.NewReader([]byte("汉字转换")), c)
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	want := "漢字轉換"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestConverterResetAllowsReuse(t *testing.T) {
	c := NewConverter(zhconv.T2S, false)
	r1 := xtransform.NewReader(bytes.NewReader([]byte("漢字")), c)
	if _, err := io.ReadAll(r1); err != nil {
		t.Fatal(err)
	}

	c.Reset()
	r2 := xtransform.NewReader(bytes.NewReader([]byte("轉換")), c)
	got, err := io.ReadAll(r2)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "转换" {
		t.Errorf("got %q, want 转换", got)
	}
}

func TestConverterSmallDstBuffer(t *testing.T) {
	c := NewConverter(zhconv.S2T, false)
	src := []byte("汉字转换汉字转换汉字转换")
	dst := make([]byte, 4)

	var out bytes.Buffer
	srcOff := 0
	for {
		nDst, nSrc, err := c.Transform(dst, src[srcOff:], true)
		out.Write(dst[:nDst])
		srcOff += nSrc
		if err == nil {
			break
		}
		if err != xtransform.ErrShortDst {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	want := zhconv.Convert("汉字转换汉字转换汉字转换", zhconv.S2T, false)
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}
