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

// Package transform adapts zhconv's whole-string conversion to the
// golang.org/x/text/transform.Transformer interface, so a Converter
// composes into x/text pipelines (transform.NewReader, or
// transform.Chain together with an encoding transformer).
package transform

import (
	"bytes"

	xtransform "golang.org/x/text/transform"

	"seehuhn.de/go/zhconv"
)

// Converter implements transform.Transformer. The underlying engine
// only defines whole-text semantics (a greedy longest match can in
// principle span the entire input), so Converter buffers every byte
// it is given and performs the actual conversion only once atEOF is
// reached; until then it reports transform.ErrShortSrc so the caller
// keeps feeding it bytes.
type Converter struct {
	direction   zhconv.Direction
	punctuation bool

	buf     bytes.Buffer
	out     []byte
	outOff  int
	haveOut bool
}

// NewConverter returns a transform.Transformer that converts UTF-8
// text from direction's source script to its target script.
func NewConverter(direction zhconv.Direction, punctuation bool) *Converter {
	return &Converter{direction: direction, punctuation: punctuation}
}

// Reset discards any buffered input and prepares c for reuse.
func (c *Converter) Reset() {
	c.buf.Reset()
	c.out = nil
	c.outOff = 0
	c.haveOut = false
}

// Transform implements transform.Transformer.
func (c *Converter) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if c.haveOut {
		n := copy(dst, c.out[c.outOff:])
		c.outOff += n
		if c.outOff == len(c.out) {
			c.haveOut = false
			c.out = nil
			c.outOff = 0
		} else {
			return n, 0, xtransform.ErrShortDst
		}
		return n, 0, nil
	}

	c.buf.Write(src)
	nSrc = len(src)
	if !atEOF {
		return 0, nSrc, xtransform.ErrShortSrc
	}

	converted := zhconv.Convert(c.buf.String(), c.direction, c.punctuation)
	c.buf.Reset()

	n := copy(dst, converted)
	if n < len(converted) {
		c.out = []byte(converted)
		c.outOff = n
		c.haveOut = true
		return n, nSrc, xtransform.ErrShortDst
	}
	return n, nSrc, nil
}
