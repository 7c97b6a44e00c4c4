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
	"sync"

	"golang.org/x/text/width"
)

// Convert rewrites every dictionary-matched segment of text according
// to direction and punctuation, leaving all other code points
// unchanged. It never errors: an empty string converts to an empty
// string, and conversions never fail on malformed or unexpected input
// text.
func Convert(text string, direction Direction, punctuation bool) string {
	if text == "" {
		return ""
	}
	p, err := currentCache().Get(direction.Name(), punctuation)
	if err != nil {
		// Unreachable for the declared Direction constants:
		// direction.Name() panics first on an out-of-range value.
		return text
	}
	return runPlan(text, p)
}

// Converter holds a mutable (direction, punctuation) pair plus a
// last-error note, for callers that prefer a stateful setter/getter
// API over passing direction and punctuation on every call. Setters
// fall back to DefaultDirection on an invalid name and record a
// last-error message retrievable with LastError.
//
// A zero Converter is ready to use, defaulting to DefaultDirection
// with punctuation conversion disabled.
type Converter struct {
	mu          sync.Mutex
	direction   Direction
	punctuation bool
	lastErr     error
}

// SetDirection parses name and installs it as the active direction. On
// an unrecognized name, the active direction falls back to
// DefaultDirection, ErrInvalidDirection is recorded as the last error,
// and SetDirection returns ErrInvalidDirection.
func (c *Converter) SetDirection(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := ParseDirection(name)
	if !ok {
		c.direction = DefaultDirection
		c.lastErr = ErrInvalidDirection
		return ErrInvalidDirection
	}
	c.direction = d
	c.lastErr = nil
	return nil
}

// SetPunctuation sets whether subsequent conversions also rewrite
// punctuation.
func (c *Converter) SetPunctuation(enabled bool) {
	c.mu.Lock()
	c.punctuation = enabled
	c.mu.Unlock()
}

// Direction returns the currently active direction.
func (c *Converter) Direction() Direction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.direction
}

// Convert converts text using the Converter's current direction and
// punctuation setting. An empty input records ErrEmptyInput as the
// last-error note (Convert still returns "" rather than an error).
func (c *Converter) Convert(text string) string {
	c.mu.Lock()
	d, punct := c.direction, c.punctuation
	if text == "" {
		c.lastErr = ErrEmptyInput
	}
	c.mu.Unlock()
	return Convert(text, d, punct)
}

// LastError returns the most recent last-error note recorded by
// SetDirection or Convert, or nil if none has been recorded, or if it
// was cleared by a subsequent successful SetDirection.
func (c *Converter) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// ScriptGuess is the result of DetectScript: which script an input
// sample appears to be written in.
type ScriptGuess int

const (
	ScriptNeither ScriptGuess = iota
	ScriptTraditional
	ScriptSimplified
)

// asciiOrDigitOrLatin reports whether r should be stripped from the
// DetectScript sample window: ASCII, whitespace, digits, or Latin
// letters, plus the literal character 著, which OpenCC-compatible
// detectors exclude because it is common to both scripts.
func asciiOrDigitOrLatin(r rune) bool {
	switch {
	case r <= 0x7F:
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '著':
		return true
	case (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z'):
		return true
	case (r >= 0x00C0 && r <= 0x024F): // Latin-1 Supplement + Latin Extended-A/B
		return true
	}
	return false
}

// DetectScript guesses whether text is written in Traditional or
// Simplified Chinese, or neither. Fullwidth Latin letters
// and digits are folded to their halfwidth form first (width.Fold), so
// that "Ａ１" strips the same as "A1" before the remaining
// ASCII/whitespace/digit/Latin/著 stripping and the 100-grapheme
// sampling that follows; the sample is then checked for whether the
// traditional->simplified or simplified->traditional single-character
// mapping changes it.
func DetectScript(text string) ScriptGuess {
	folded := width.Fold.String(text)

	var sample []rune
	for _, r := range folded {
		if len(sample) >= 100 {
			break
		}
		if asciiOrDigitOrLatin(r) {
			continue
		}
		sample = append(sample, r)
	}
	if len(sample) == 0 {
		return ScriptNeither
	}
	s := string(sample)

	set := Provider()
	if set.TSCharacters != nil {
		if convertedDiffers(s, set.TSCharacters.Map) {
			return ScriptTraditional
		}
	}
	if set.STCharacters != nil {
		if convertedDiffers(s, set.STCharacters.Map) {
			return ScriptSimplified
		}
	}
	return ScriptNeither
}

// convertedDiffers reports whether applying m as a single-character
// substitution changes s. Multi-character matching is deliberately not
// used here: the sample window is at most 100 graphemes, and the
// single-character mappings alone decide the script question.
func convertedDiffers(s string, m map[string]string) bool {
	var b []rune
	changed := false
	for _, r := range s {
		if v, ok := m[string(r)]; ok && v != string(r) {
			changed = true
			b = append(b, []rune(v)...)
		} else {
			b = append(b, r)
		}
	}
	return changed
}
