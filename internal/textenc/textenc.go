// Package textenc transcodes patch documents to UTF-8.
//
// Patch files produced on Windows tooling are frequently UTF-16LE with a BOM
// or legacy Windows-1252. Decoding is delegated to golang.org/x/text.
package textenc

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding names accepted by Lookup (case-insensitive).
const (
	UTF8        = "UTF-8"
	UTF16LE     = "UTF-16LE"
	UTF16BE     = "UTF-16BE"
	Windows1252 = "WINDOWS-1252"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Lookup returns the x/text encoding for name. An empty name means UTF-8.
func Lookup(name string) (encoding.Encoding, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", UTF8, "UTF8":
		return unicode.UTF8, nil
	case UTF16LE, "UTF16LE":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case UTF16BE, "UTF16BE":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case Windows1252, "CP1252", "LATIN-1", "LATIN1":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
}

// Detect returns the encoding signalled by a byte order mark in data, or ""
// if data has none.
func Detect(data []byte) string {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return UTF8
	case bytes.HasPrefix(data, bomUTF16LE):
		return UTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		return UTF16BE
	default:
		return ""
	}
}

// Decode converts data to UTF-8.
//
// A byte order mark takes precedence over declared. The BOM itself is
// stripped from the result.
func Decode(data []byte, declared string) ([]byte, error) {
	name := declared
	if bom := Detect(data); bom != "" {
		name = bom
		switch bom {
		case UTF8:
			data = data[len(bomUTF8):]
		case UTF16LE, UTF16BE:
			data = data[2:]
		}
	}

	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if enc == unicode.UTF8 {
		return data, nil
	}

	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return out, nil
}

// NewReader wraps r so that it yields UTF-8 text decoded from declared.
// Unlike Decode it does not sniff a BOM.
func NewReader(r io.Reader, declared string) (io.Reader, error) {
	enc, err := Lookup(declared)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
