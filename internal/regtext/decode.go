// Package regtext handles the text side of regedit exports: encoding
// detection, line splitting, value-name escaping and hex byte lists.
package regtext

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var errUnsupportedEncoding = errors.New("regtext: unsupported encoding")

// newDecoder returns a decoder that honours a leading UTF-8 or UTF-16 BOM and
// otherwise falls back to enc.
func newDecoder(enc string) (transform.Transformer, error) {
	var fallback *encoding.Decoder
	switch strings.ToUpper(enc) {
	case "", EncodingUTF8:
		fallback = unicode.UTF8.NewDecoder()
	case EncodingUTF16LE:
		fallback = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	case EncodingWindows1252:
		fallback = charmap.Windows1252.NewDecoder()
	default:
		return nil, errUnsupportedEncoding
	}
	return unicode.BOMOverride(fallback), nil
}

// Lines reads an export from r and returns its lines converted to UTF-8 with
// line terminators removed. Regedit writes UTF-16LE with a BOM; files without
// a BOM are read as UTF-8.
func Lines(r io.Reader) ([]string, error) {
	return LinesWithEncoding(r, "")
}

// LinesWithEncoding is Lines with an explicit fallback encoding for input
// that carries no BOM.
func LinesWithEncoding(r io.Reader, enc string) ([]string, error) {
	dec, err := newDecoder(enc)
	if err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(transform.NewReader(r, dec))
	buf := make([]byte, 0, ScannerInitialBufferSize)
	scanner.Buffer(buf, ScannerMaxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// LinesFromBytes is Lines over an in-memory export. Input without a BOM is
// read as Windows-1252 when it carries the REGEDIT4 header or is not valid
// UTF-8.
func LinesFromBytes(data []byte) ([]string, error) {
	enc := EncodingUTF8
	if !hasBOM(data) && (bytes.HasPrefix(data, []byte(RegEdit4Header)) || !utf8.Valid(data)) {
		enc = EncodingWindows1252
	}
	return LinesWithEncoding(bytes.NewReader(data), enc)
}

func hasBOM(data []byte) bool {
	return bytes.HasPrefix(data, UTF8BOM) || bytes.HasPrefix(data, UTF16LEBOM) ||
		bytes.HasPrefix(data, []byte{0xFE, 0xFF})
}

// LooksLikeText reports whether data could be a text file in a single-byte
// or UTF-8 encoding: it is non-empty and holds no NUL bytes.
func LooksLikeText(data []byte) bool {
	return len(data) > 0 && bytes.IndexByte(data, 0) < 0
}

// LooksLikeExport reports whether data starts, after an optional BOM, with
// a regedit header line of either export version.
func LooksLikeExport(data []byte) bool {
	const probe = 256
	if len(data) > probe {
		data = data[:probe]
	}
	dec, err := newDecoder("")
	if err != nil {
		return false
	}
	out, _, err := transform.Bytes(dec, data)
	if err != nil && len(out) == 0 {
		return false
	}
	text := strings.TrimSpace(string(out))
	return strings.HasPrefix(text, RegFileHeader) || strings.HasPrefix(text, RegEdit4Header)
}
