// Package transcode converts dictionary source files from legacy 8-bit
// encodings into UTF-8, for Hunspell-style distributions that still ship
// ISO-8859-1 or Windows-1252 text.
package transcode

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// EncodingID names a supported source encoding.
type EncodingID int

const (
	UTF8 EncodingID = iota
	ISO8859_1
	Windows1252
)

var nameToEncoding = map[string]EncodingID{
	"utf-8":        UTF8,
	"utf8":         UTF8,
	"iso-8859-1":   ISO8859_1,
	"iso8859-1":    ISO8859_1,
	"latin1":       ISO8859_1,
	"windows-1252": Windows1252,
	"cp1252":       Windows1252,
}

// ParseEncoding resolves a case-insensitive encoding name.
func ParseEncoding(name string) (EncodingID, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if enc, ok := nameToEncoding[key]; ok {
		return enc, nil
	}
	return 0, fmt.Errorf("unknown encoding: %s", name)
}

// Get returns the encoding.Encoding backing an EncodingID.
func Get(e EncodingID) (encoding.Encoding, error) {
	switch e {
	case UTF8:
		return unicode.UTF8, nil
	case ISO8859_1:
		return charmap.ISO8859_1, nil
	case Windows1252:
		return charmap.Windows1252, nil
	}
	return nil, fmt.Errorf("unsupported encoding id %d", e)
}

// ToUTF8 decodes input (encoded as src) into a UTF-8 string.
func ToUTF8(input []byte, src EncodingID) (string, error) {
	if src == UTF8 {
		return string(input), nil
	}
	enc, err := Get(src)
	if err != nil {
		return "", err
	}
	reader := transform.NewReader(strings.NewReader(string(input)), enc.NewDecoder())
	out, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return string(out), nil
}

// Sniff guesses the encoding of a dictionary file: valid UTF-8 is taken at
// face value, otherwise the bytes are assumed to be Windows-1252 (a
// superset of ISO-8859-1 for the printable range, and the more common of
// the two in practice for older Hunspell distributions).
func Sniff(input []byte) EncodingID {
	if utf8.Valid(input) {
		return UTF8
	}
	return Windows1252
}
