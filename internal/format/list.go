package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/uakit/internal/buf"
)

// IsRIList reports whether b holds an indirect subkey list.
func IsRIList(b []byte) bool {
	return len(b) >= SignatureSize && bytes.Equal(b[:SignatureSize], RISignature)
}

// IsDBRecord reports whether b holds a big-data record.
func IsDBRecord(b []byte) bool {
	return len(b) >= SignatureSize && bytes.Equal(b[:SignatureSize], DBSignature)
}

// DecodeSubkeyList extracts child NK offsets from LI, LF, LH and RI lists.
// For RI lists the returned offsets point at further lists, not at NK cells.
func DecodeSubkeyList(b []byte) ([]uint32, error) {
	if len(b) < ListHeaderSize {
		return nil, fmt.Errorf("subkey list: %w", ErrTruncated)
	}
	sig := b[:SignatureSize]
	count := int(buf.U16LE(b[SignatureSize:]))
	stride := OffsetFieldSize
	switch {
	case bytes.Equal(sig, LISignature), bytes.Equal(sig, RISignature):
	case bytes.Equal(sig, LFSignature), bytes.Equal(sig, LHSignature):
		stride = LFEntrySize
	default:
		return nil, fmt.Errorf("subkey list %q: %w", sig, ErrUnsupported)
	}
	if !buf.Has(b, ListHeaderSize, count*stride) {
		return nil, fmt.Errorf("subkey list: %w", ErrTruncated)
	}
	out := make([]uint32, count)
	for i := range out {
		out[i] = buf.U32LE(b[ListHeaderSize+i*stride:])
	}
	return out, nil
}

// DecodeValueList decodes a value list containing offsets to VK records.
func DecodeValueList(b []byte, count uint32) ([]uint32, error) {
	if count == 0 {
		return nil, nil
	}
	if !buf.Has(b, 0, int(count)*OffsetFieldSize) {
		return nil, fmt.Errorf("value list: %w", ErrTruncated)
	}
	out := make([]uint32, count)
	for i := range out {
		out[i] = buf.U32LE(b[i*OffsetFieldSize:])
	}
	return out, nil
}
