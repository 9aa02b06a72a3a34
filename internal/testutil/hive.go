// Package testutil builds small, valid registry hives in memory so tests can
// exercise the offline reader and the sources layered on top of it without
// shipping binary fixtures.
package testutil

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/uakit/internal/format"
)

// Key describes a key to place in a generated hive.
type Key struct {
	Name    string
	Values  []Value
	Subkeys []*Key
}

// Value describes a value to place in a generated hive. Names that are pure
// ASCII are stored compressed unless WideName is set.
type Value struct {
	Name     string
	Type     uint32
	Data     []byte
	WideName bool
}

// Binary is shorthand for a REG_BINARY value.
func Binary(name string, data []byte) Value {
	return Value{Name: name, Type: format.RegBinary, Data: data}
}

// String is shorthand for a REG_SZ value stored as UTF-16LE with terminator.
func String(name, s string) Value {
	return Value{Name: name, Type: format.RegSz, Data: append(utf16LE(s), 0, 0)}
}

// Path builds a chain of nested keys from path segments and returns the
// outermost and innermost keys.
func Path(segments ...string) (outer, inner *Key) {
	for i := len(segments) - 1; i >= 0; i-- {
		k := &Key{Name: segments[i]}
		if inner == nil {
			inner = k
		} else {
			k.Subkeys = []*Key{outer}
		}
		outer = k
	}
	return outer, inner
}

// BuildHive serialises root and its descendants into a single-HBIN hive image.
func BuildHive(root *Key) []byte {
	b := &builder{bins: make([]byte, format.HBINHeaderSize)}
	rootOff := b.key(root)

	for len(b.bins)%format.HBINAlignment != 0 {
		b.bins = append(b.bins, 0)
	}
	copy(b.bins, format.HBINSignature)
	binary.LittleEndian.PutUint32(b.bins[format.HBINSizeOffset:], uint32(len(b.bins)))

	out := make([]byte, format.HeaderSize, format.HeaderSize+len(b.bins))
	copy(out, format.REGFSignature)
	binary.LittleEndian.PutUint32(out[format.REGFPrimarySeqOffset:], 1)
	binary.LittleEndian.PutUint32(out[format.REGFSecondarySeqOffset:], 1)
	binary.LittleEndian.PutUint32(out[format.REGFMajorVersionOffset:], 1)
	binary.LittleEndian.PutUint32(out[format.REGFMinorVersionOffset:], 5)
	binary.LittleEndian.PutUint32(out[format.REGFRootCellOffset:], rootOff)
	binary.LittleEndian.PutUint32(out[format.REGFDataSizeOffset:], uint32(len(b.bins)))
	return append(out, b.bins...)
}

// WriteHive writes the hive built from root into a temporary file and
// returns its path.
func WriteHive(t *testing.T, root *Key) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "NTUSER.DAT")
	if err := os.WriteFile(path, BuildHive(root), 0o644); err != nil {
		t.Fatalf("write hive: %v", err)
	}
	return path
}

type builder struct {
	bins []byte
}

// alloc appends an allocated cell holding payload and returns its offset
// relative to the first HBIN.
func (b *builder) alloc(payload []byte) uint32 {
	size := format.CellHeaderSize + len(payload)
	size = (size + 7) &^ 7
	off := uint32(len(b.bins))
	cell := make([]byte, size)
	binary.LittleEndian.PutUint32(cell, uint32(-int32(size)))
	copy(cell[format.CellHeaderSize:], payload)
	b.bins = append(b.bins, cell...)
	return off
}

func (b *builder) key(k *Key) uint32 {
	children := make([]uint32, 0, len(k.Subkeys))
	for _, sk := range k.Subkeys {
		children = append(children, b.key(sk))
	}

	subList := uint32(format.InvalidOffset)
	if len(children) > 0 {
		lf := make([]byte, format.ListHeaderSize+len(children)*format.LFEntrySize)
		copy(lf, format.LFSignature)
		binary.LittleEndian.PutUint16(lf[format.SignatureSize:], uint16(len(children)))
		for i, off := range children {
			binary.LittleEndian.PutUint32(lf[format.ListHeaderSize+i*format.LFEntrySize:], off)
		}
		subList = b.alloc(lf)
	}

	valueList := uint32(format.InvalidOffset)
	if len(k.Values) > 0 {
		offs := make([]byte, len(k.Values)*format.OffsetFieldSize)
		for i, v := range k.Values {
			binary.LittleEndian.PutUint32(offs[i*format.OffsetFieldSize:], b.value(v))
		}
		valueList = b.alloc(offs)
	}

	name := []byte(k.Name)
	nk := make([]byte, format.NKNameOffset+len(name))
	copy(nk, format.NKSignature)
	binary.LittleEndian.PutUint16(nk[format.NKFlagsOffset:], format.NKFlagCompressedName)
	binary.LittleEndian.PutUint32(nk[format.NKSubkeyCountOffset:], uint32(len(children)))
	binary.LittleEndian.PutUint32(nk[format.NKSubkeyListOffset:], subList)
	binary.LittleEndian.PutUint32(nk[format.NKValueCountOffset:], uint32(len(k.Values)))
	binary.LittleEndian.PutUint32(nk[format.NKValueListOffset:], valueList)
	binary.LittleEndian.PutUint16(nk[format.NKNameLenOffset:], uint16(len(name)))
	copy(nk[format.NKNameOffset:], name)
	return b.alloc(nk)
}

func (b *builder) value(v Value) uint32 {
	var flags uint16
	name := []byte(v.Name)
	if v.WideName || !isASCII(v.Name) {
		name = utf16LE(v.Name)
	} else {
		flags = format.VKFlagASCIIName
	}

	dataLen := uint32(len(v.Data))
	var dataOff uint32
	if len(v.Data) <= format.OffsetFieldSize {
		var inline [format.OffsetFieldSize]byte
		copy(inline[:], v.Data)
		dataOff = binary.LittleEndian.Uint32(inline[:])
		dataLen |= format.VKDataInlineBit
	} else {
		dataOff = b.alloc(v.Data)
	}

	vk := make([]byte, format.VKNameOffset+len(name))
	copy(vk, format.VKSignature)
	binary.LittleEndian.PutUint16(vk[format.VKNameLenOffset:], uint16(len(name)))
	binary.LittleEndian.PutUint32(vk[format.VKDataLenOffset:], dataLen)
	binary.LittleEndian.PutUint32(vk[format.VKDataOffOffset:], dataOff)
	binary.LittleEndian.PutUint32(vk[format.VKTypeOffset:], v.Type)
	binary.LittleEndian.PutUint16(vk[format.VKFlagsOffset:], flags)
	copy(vk[format.VKNameOffset:], name)
	return b.alloc(vk)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func utf16LE(s string) []byte {
	out, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().String(s)
	if err != nil {
		panic(err)
	}
	return []byte(out)
}
