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

// Package office converts the text fragments of Office (.docx) and
// EPUB (.epub) containers, both of which are Zip archives of XML
// parts. Only the fragment-level contract is load-bearing here:
// ConvertFragments converts a slice of already-extracted text
// fragments, and ConvertArchive walks a container's text-bearing XML
// parts and feeds each text node through that same contract, copying
// the bytes of all markup through unchanged. Converted text nodes are
// written back XML-escaped (a CDATA section comes back as escaped
// character data), and the Zip container itself is rewritten: entry
// metadata such as compression method and modification time is not
// preserved.
package office

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"path/filepath"
	"strings"
)

// ConvertFragments applies convertFn to every fragment in frags,
// returning their converted forms in the same order. It stops and
// returns the first error convertFn reports.
func ConvertFragments(convertFn func(string) (string, error), frags []string) ([]string, error) {
	out := make([]string, len(frags))
	for i, f := range frags {
		c, err := convertFn(f)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// IsTextBearing reports whether a Zip entry name has the extension of
// an XML or (X)HTML part (.xml, .xhtml, .html, .htm), the parts that
// hold human-readable text in a .docx or .epub container. Every .xml
// entry counts, [Content_Types].xml included. IsTextBearing only
// controls which parts ConvertArchive parses as XML and has their
// character data rewritten; all other parts (media, fonts) are copied
// through unchanged.
func IsTextBearing(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xml", ".xhtml", ".html", ".htm":
		return true
	}
	return false
}

// ConvertArchive reads a Zip archive (docx, epub, or any similarly
// structured container) from r and writes a converted copy to w.
// Every text-bearing entry (see IsTextBearing) has its character-data
// nodes passed through convertFn; every other entry, and all markup
// surrounding converted text, is copied through unchanged.
func ConvertArchive(r io.ReaderAt, size int64, w io.Writer, convertFn func(string) (string, error)) error {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return err
	}
	zw := zip.NewWriter(w)

	for _, f := range zr.File {
		data, err := readZipFile(f)
		if err != nil {
			zw.Close()
			return err
		}

		if IsTextBearing(f.Name) {
			data, err = convertXMLText(data, convertFn)
			if err != nil {
				zw.Close()
				return err
			}
		}

		fw, err := zw.Create(f.Name)
		if err != nil {
			zw.Close()
			return err
		}
		if _, err := fw.Write(data); err != nil {
			zw.Close()
			return err
		}
	}

	return zw.Close()
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// convertXMLText scans data token by token, routing every non-blank
// CharData token through convertFn and copying every other byte of
// data (start/end elements, comments, processing instructions,
// whitespace) through untouched.
func convertXMLText(data []byte, convertFn func(string) (string, error)) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var buf bytes.Buffer
	copied := int64(0)

	for {
		start := dec.InputOffset()
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if cd, ok := tok.(xml.CharData); ok && strings.TrimSpace(string(cd)) != "" {
			converted, err := convertFn(string(cd))
			if err != nil {
				return nil, err
			}
			buf.Write(data[copied:start])
			if err := xml.EscapeText(&buf, []byte(converted)); err != nil {
				return nil, err
			}
			copied = dec.InputOffset()
		}
	}
	buf.Write(data[copied:])
	return buf.Bytes(), nil
}
