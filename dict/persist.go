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

package dict

import (
	"compress/gzip"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
)

// Format names one of the three supported persisted forms. No part of
// the conversion engine depends on any one container format; all three
// reconstruct an equivalent *Set.
type Format int

const (
	// FormatJSON is a self-describing JSON document: one object per
	// slot, each holding the key->value map only. Metadata (min/max
	// length, masks) is re-derived on load via NewEntry.
	FormatJSON Format = iota

	// FormatBinary is a compact self-describing binary container: a
	// fixed 4-byte magic, a version byte, then one length-prefixed
	// section per slot with its key/value pairs. No corpus dependency
	// provides a ready-made schema-binary codec (protobuf/flatbuffers/
	// msgpack), so this format is hand-rolled with encoding/binary.
	FormatBinary

	// FormatCompressedJSON is FormatJSON's document, gzip-framed.
	FormatCompressedJSON
)

const binaryMagic = "ZHC1"

// CorruptError indicates that a persisted blob failed to deserialize.
// The root package wraps it in its caller-facing DictionaryCorruptError
// where appropriate; it is exported here so callers that only import
// dict can still distinguish a corrupt blob from an I/O failure.
type CorruptError struct {
	Reason string
	Err    error
}

func (err *CorruptError) Error() string {
	msg := "dict: corrupt dictionary: " + err.Reason
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *CorruptError) Unwrap() error {
	return err.Err
}

// jsonSet is the wire shape for FormatJSON / FormatCompressedJSON: only
// the raw key->value maps travel over the wire. Derived metadata
// (MinLen, MaxLen, masks) is rebuilt by NewEntry on load, so this type
// never needs to serialize non-BMP-safe integers; Go's encoding/json
// already round-trips surrogate-pair escapes in \uXXXX strings back to
// the scalar rune the decoder produces, so no special handling is
// needed for astral characters.
type jsonSet struct {
	STCharacters          map[string]string `json:"st_characters"`
	STPhrases             map[string]string `json:"st_phrases"`
	TSCharacters          map[string]string `json:"ts_characters"`
	TSPhrases             map[string]string `json:"ts_phrases"`
	TWPhrases             map[string]string `json:"tw_phrases"`
	TWPhrasesRev          map[string]string `json:"tw_phrases_rev"`
	TWVariants            map[string]string `json:"tw_variants"`
	TWVariantsRev         map[string]string `json:"tw_variants_rev"`
	TWVariantsRevPhrases  map[string]string `json:"tw_variants_rev_phrases"`
	HKVariants            map[string]string `json:"hk_variants"`
	HKVariantsRev         map[string]string `json:"hk_variants_rev"`
	HKVariantsRevPhrases  map[string]string `json:"hk_variants_rev_phrases"`
	JPShinjitaiCharacters map[string]string `json:"jps_characters"`
	JPShinjitaiPhrases    map[string]string `json:"jps_phrases"`
	JPVariants            map[string]string `json:"jp_variants"`
	JPVariantsRev         map[string]string `json:"jp_variants_rev"`
	STPunctuations        map[string]string `json:"st_punctuations"`
	TSPunctuations        map[string]string `json:"ts_punctuations"`
}

// slotMaps returns the 18 slot maps of s in SlotFile order, suitable for
// both JSON and binary encoding.
func (s *Set) slotMaps() []map[string]string {
	out := make([]map[string]string, len(SlotFile))
	for i, slot := range SlotFile {
		e := *slot.Set(s)
		if e != nil {
			out[i] = e.Map
		} else {
			out[i] = map[string]string{}
		}
	}
	return out
}

func setFromJSON(js *jsonSet) (*Set, error) {
	maps := []map[string]string{
		js.STCharacters, js.STPhrases, js.TSCharacters, js.TSPhrases,
		js.TWPhrases, js.TWPhrasesRev, js.TWVariants, js.TWVariantsRev,
		js.TWVariantsRevPhrases, js.HKVariants, js.HKVariantsRev,
		js.HKVariantsRevPhrases, js.JPShinjitaiCharacters, js.JPShinjitaiPhrases,
		js.JPVariants, js.JPVariantsRev, js.STPunctuations, js.TSPunctuations,
	}
	return setFromSlotMaps(maps)
}

func setFromSlotMaps(maps []map[string]string) (*Set, error) {
	if len(maps) != len(SlotFile) {
		return nil, fmt.Errorf("dict: expected %d slots, got %d", len(SlotFile), len(maps))
	}
	set := &Set{}
	for i, slot := range SlotFile {
		m := maps[i]
		if m == nil {
			m = map[string]string{}
		}
		entry, err := NewEntry(m)
		if err != nil {
			return nil, fmt.Errorf("dict: slot %s: %w", slot.File, err)
		}
		*slot.Set(set) = entry
	}
	return set, nil
}

func (s *Set) toJSON() *jsonSet {
	m := s.slotMaps()
	return &jsonSet{
		STCharacters: m[0], STPhrases: m[1], TSCharacters: m[2], TSPhrases: m[3],
		TWPhrases: m[4], TWPhrasesRev: m[5], TWVariants: m[6], TWVariantsRev: m[7],
		TWVariantsRevPhrases: m[8], HKVariants: m[9], HKVariantsRev: m[10],
		HKVariantsRevPhrases: m[11], JPShinjitaiCharacters: m[12], JPShinjitaiPhrases: m[13],
		JPVariants: m[14], JPVariantsRev: m[15], STPunctuations: m[16], TSPunctuations: m[17],
	}
}

// Save writes s to w in the given format.
func (s *Set) Save(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		return enc.Encode(s.toJSON())
	case FormatCompressedJSON:
		gw := gzip.NewWriter(w)
		if err := json.NewEncoder(gw).Encode(s.toJSON()); err != nil {
			gw.Close()
			return err
		}
		return gw.Close()
	case FormatBinary:
		return writeBinary(w, s)
	default:
		return fmt.Errorf("dict: unknown format %d", format)
	}
}

// Load reads a Set from r in the given format. Consumers must tolerate
// a persisted form that omits starter_len_mask: this implementation
// never persists derived metadata at all, deriving it fresh via
// NewEntry on every load, so that case is handled unconditionally.
func Load(r io.Reader, format Format) (*Set, error) {
	switch format {
	case FormatJSON:
		var js jsonSet
		if err := json.NewDecoder(r).Decode(&js); err != nil {
			return nil, fmt.Errorf("dict: decode json: %w", err)
		}
		return setFromJSON(&js)
	case FormatCompressedJSON:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("dict: open gzip: %w", err)
		}
		defer gr.Close()
		var js jsonSet
		if err := json.NewDecoder(gr).Decode(&js); err != nil {
			return nil, fmt.Errorf("dict: decode compressed json: %w", err)
		}
		return setFromJSON(&js)
	case FormatBinary:
		return readBinary(r)
	default:
		return nil, fmt.Errorf("dict: unknown format %d", format)
	}
}

func writeBinary(w io.Writer, s *Set) error {
	bw := &binWriter{w: w}
	bw.bytes([]byte(binaryMagic))
	bw.u8(1) // version

	maps := s.slotMaps()
	bw.u32(uint32(len(maps)))
	for _, m := range maps {
		bw.u32(uint32(len(m)))
		for k, v := range m {
			bw.str(k)
			bw.str(v)
		}
	}
	return bw.err
}

func readBinary(r io.Reader) (*Set, error) {
	br := &binReader{r: r}
	magic := br.bytes(4)
	if br.err == nil && string(magic) != binaryMagic {
		return nil, &CorruptError{Reason: "bad magic"}
	}
	version := br.u8()
	if br.err == nil && version != 1 {
		return nil, &CorruptError{Reason: fmt.Sprintf("unsupported version %d", version)}
	}

	nSlots := br.u32()
	maps := make([]map[string]string, 0, nSlots)
	for i := uint32(0); br.err == nil && i < nSlots; i++ {
		n := br.u32()
		m := make(map[string]string, n)
		for j := uint32(0); br.err == nil && j < n; j++ {
			k := br.readStr()
			v := br.readStr()
			m[k] = v
		}
		maps = append(maps, m)
	}
	if br.err != nil {
		return nil, &CorruptError{Reason: "truncated binary blob", Err: br.err}
	}
	return setFromSlotMaps(maps)
}

// binWriter/binReader are small helpers around encoding/binary: fixed
// width fields with explicit byte order, propagating the first error
// seen.

type binWriter struct {
	w   io.Writer
	err error
}

func (bw *binWriter) bytes(b []byte) {
	if bw.err != nil {
		return
	}
	_, bw.err = bw.w.Write(b)
}

func (bw *binWriter) u8(v uint8) {
	bw.bytes([]byte{v})
}

func (bw *binWriter) u32(v uint32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	bw.bytes(buf[:])
}

func (bw *binWriter) str(s string) {
	bw.u32(uint32(len(s)))
	bw.bytes([]byte(s))
}

type binReader struct {
	r   io.Reader
	err error
}

func (br *binReader) bytes(n int) []byte {
	if br.err != nil {
		return nil
	}
	buf := make([]byte, n)
	_, br.err = io.ReadFull(br.r, buf)
	return buf
}

func (br *binReader) u8() uint8 {
	b := br.bytes(1)
	if br.err != nil {
		return 0
	}
	return b[0]
}

func (br *binReader) u32() uint32 {
	b := br.bytes(4)
	if br.err != nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

func (br *binReader) readStr() string {
	n := br.u32()
	if br.err != nil {
		return ""
	}
	b := br.bytes(int(n))
	if br.err != nil {
		return ""
	}
	return string(b)
}
