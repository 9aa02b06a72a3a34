package regtext

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Writer accumulates .reg text in regedit's layout: CRLF line endings, a
// blank line after each key block, hex data wrapped at LineWidth.
type Writer struct {
	buf     bytes.Buffer
	inBlock bool
}

// NewWriter returns a Writer that has already emitted the file header.
func NewWriter() *Writer {
	w := &Writer{}
	w.buf.WriteString(RegFileHeader + CRLF + CRLF)
	return w
}

// Key starts a new key block.
func (w *Writer) Key(path string) {
	w.closeBlock()
	w.buf.WriteString(KeyOpenBracket)
	w.buf.WriteString(path)
	w.buf.WriteString(KeyCloseBracket + CRLF)
	w.inBlock = true
}

// Binary writes a REG_BINARY value line.
func (w *Writer) Binary(name string, data []byte) {
	line := Quote + EscapeName(name) + Quote + ValueAssignment + HexPrefix
	w.buf.WriteString(line)
	col := len(line)
	for i, b := range data {
		tok := fmt.Sprintf(HexByteFormat, b)
		if i < len(data)-1 {
			tok += HexByteSeparator
		}
		// room for the continuation backslash
		if i > 0 && col+len(tok) > LineWidth-1 {
			w.buf.WriteString(Backslash + CRLF + ContinuationIndent)
			col = len(ContinuationIndent)
		}
		w.buf.WriteString(tok)
		col += len(tok)
	}
	w.buf.WriteString(CRLF)
}

func (w *Writer) closeBlock() {
	if w.inBlock {
		w.buf.WriteString(CRLF)
		w.inBlock = false
	}
}

// Bytes finishes the document and encodes it. UTF-16LE output carries a BOM
// when withBOM is set, matching regedit.
func (w *Writer) Bytes(enc string, withBOM bool) ([]byte, error) {
	w.closeBlock()
	switch strings.ToUpper(enc) {
	case "", EncodingUTF8:
		return bytes.Clone(w.buf.Bytes()), nil
	case EncodingUTF16LE:
		policy := unicode.IgnoreBOM
		if withBOM {
			policy = unicode.UseBOM
		}
		out, _, err := transform.Bytes(unicode.UTF16(unicode.LittleEndian, policy).NewEncoder(), w.buf.Bytes())
		return out, err
	default:
		return nil, errUnsupportedEncoding
	}
}
