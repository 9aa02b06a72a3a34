package format

import (
	"errors"
	"fmt"

	"github.com/joshuapare/uakit/internal/buf"
)

// Cell is a single allocation within an HBIN.
//
//	Offset  Size  Description
//	0x00    4     Signed size. Negative => allocated, positive => free.
//	              The absolute value includes the 4-byte header.
//	0x04    ...   Payload. First two bytes form the record tag when allocated.
type Cell struct {
	Size int
	Free bool
	Data []byte // aliases the underlying buffer
}

// ParseCell decodes the cell that starts at b[0].
func ParseCell(b []byte) (Cell, error) {
	if len(b) < CellHeaderSize {
		return Cell{}, fmt.Errorf("cell: %w", ErrTruncated)
	}
	raw := buf.I32LE(b)
	if raw == 0 {
		return Cell{}, errors.New("cell: zero length")
	}
	size := int(raw)
	if raw < 0 {
		size = -size
	}
	if size < CellHeaderSize || size > len(b) {
		return Cell{}, fmt.Errorf("cell: %w", ErrTruncated)
	}
	return Cell{Size: size, Free: raw > 0, Data: b[CellHeaderSize:size]}, nil
}
