// Package reader is a read-only parser for offline registry hive files
// (NTUSER.DAT, UsrClass.dat, SOFTWARE). It resolves key paths and enumerates
// values in their stored order, which is all the UserAssist sources need.
package reader

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/joshuapare/uakit/internal/format"
	"github.com/joshuapare/uakit/internal/mmfile"
)

var (
	// ErrNotFound indicates a missing key or value.
	ErrNotFound = errors.New("reader: not found")
	// ErrClosed is returned by every method after Close.
	ErrClosed = errors.New("reader: closed")
	// ErrCorrupt indicates a structural inconsistency in the hive.
	ErrCorrupt = errors.New("reader: corrupt hive")
)

// maxListDepth bounds RI list nesting so crafted hives cannot recurse forever.
const maxListDepth = 4

// NodeID identifies a key by its cell offset.
type NodeID uint32

// ValueID identifies a value by its VK cell offset.
type ValueID uint32

// Value is a decoded value record.
type Value struct {
	Name string
	Type uint32
	Data []byte
}

// Reader provides read-only access to a hive image.
type Reader struct {
	buf     []byte
	release func() error
	head    format.Header
	closed  bool
}

// Open maps the hive at path.
func Open(path string) (*Reader, error) {
	data, release, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("open hive: %w", err)
	}
	r, err := newReader(data, release)
	if err != nil {
		_ = release()
		return nil, err
	}
	return r, nil
}

// OpenBytes creates a reader backed by the provided buffer.
func OpenBytes(b []byte) (*Reader, error) {
	return newReader(b, nil)
}

func newReader(b []byte, release func() error) (*Reader, error) {
	head, err := format.ParseHeader(b)
	if err != nil {
		return nil, err
	}
	if _, _, err := format.NextHBIN(b, format.HeaderSize); err != nil {
		return nil, err
	}
	return &Reader{buf: b, release: release, head: head}, nil
}

// Close releases the mapping. Values returned earlier must not be used afterwards.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.release != nil {
		return r.release()
	}
	return nil
}

// Header returns the parsed REGF header.
func (r *Reader) Header() format.Header { return r.head }

// Root returns the root key.
func (r *Reader) Root() NodeID { return NodeID(r.head.RootCellOffset) }

// KeyName returns the decoded name of a key.
func (r *Reader) KeyName(id NodeID) (string, error) {
	nk, err := r.nk(id)
	if err != nil {
		return "", err
	}
	return decodeName(nk.NameRaw, nk.NameIsCompressed())
}

// Subkeys returns the children of id in stored order.
func (r *Reader) Subkeys(id NodeID) ([]NodeID, error) {
	nk, err := r.nk(id)
	if err != nil {
		return nil, err
	}
	if nk.SubkeyCount == 0 || nk.SubkeyListOffset == format.InvalidOffset {
		return nil, nil
	}
	offs, err := r.subkeyList(nk.SubkeyListOffset, 0)
	if err != nil {
		return nil, err
	}
	out := make([]NodeID, len(offs))
	for i, off := range offs {
		out[i] = NodeID(off)
	}
	return out, nil
}

// Values returns the values of id in stored order.
func (r *Reader) Values(id NodeID) ([]ValueID, error) {
	nk, err := r.nk(id)
	if err != nil {
		return nil, err
	}
	if nk.ValueCount == 0 || nk.ValueListOffset == format.InvalidOffset {
		return nil, nil
	}
	cell, err := r.cell(nk.ValueListOffset)
	if err != nil {
		return nil, err
	}
	offs, err := format.DecodeValueList(cell.Data, nk.ValueCount)
	if err != nil {
		return nil, err
	}
	out := make([]ValueID, len(offs))
	for i, off := range offs {
		out[i] = ValueID(off)
	}
	return out, nil
}

// Value decodes the value record id together with its data. Data shorter
// than the declared length is returned as far as it is present.
func (r *Reader) Value(id ValueID) (Value, error) {
	cell, err := r.cell(uint32(id))
	if err != nil {
		return Value{}, err
	}
	vk, err := format.DecodeVK(cell.Data)
	if err != nil {
		return Value{}, err
	}
	name, err := decodeName(vk.NameRaw, vk.NameIsASCII())
	if err != nil {
		return Value{}, err
	}
	data, err := r.valueData(vk)
	if err != nil {
		return Value{}, fmt.Errorf("value %q: %w", name, err)
	}
	return Value{Name: name, Type: vk.Type, Data: data}, nil
}

func (r *Reader) valueData(vk format.VKRecord) ([]byte, error) {
	length := vk.Length()
	if vk.DataInline() {
		if length > format.OffsetFieldSize {
			return nil, fmt.Errorf("inline length %d: %w", length, ErrCorrupt)
		}
		var inline [format.OffsetFieldSize]byte
		binary.LittleEndian.PutUint32(inline[:], vk.DataOffset)
		return append([]byte(nil), inline[:length]...), nil
	}
	if length == 0 {
		return nil, nil
	}
	cell, err := r.cell(vk.DataOffset)
	if err != nil {
		return nil, err
	}
	if format.IsDBRecord(cell.Data) && length > len(cell.Data) {
		return nil, fmt.Errorf("big data value: %w", format.ErrUnsupported)
	}
	if len(cell.Data) < length {
		length = len(cell.Data)
	}
	return cell.Data[:length], nil
}

func (r *Reader) nk(id NodeID) (format.NKRecord, error) {
	cell, err := r.cell(uint32(id))
	if err != nil {
		return format.NKRecord{}, err
	}
	return format.DecodeNK(cell.Data)
}

func (r *Reader) subkeyList(offset uint32, depth int) ([]uint32, error) {
	if depth > maxListDepth {
		return nil, fmt.Errorf("subkey list nesting: %w", ErrCorrupt)
	}
	cell, err := r.cell(offset)
	if err != nil {
		return nil, err
	}
	offs, err := format.DecodeSubkeyList(cell.Data)
	if err != nil {
		return nil, err
	}
	if !format.IsRIList(cell.Data) {
		return offs, nil
	}
	var out []uint32
	for _, sub := range offs {
		children, err := r.subkeyList(sub, depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, children...)
	}
	return out, nil
}

func (r *Reader) cell(offset uint32) (format.Cell, error) {
	if r.closed {
		return format.Cell{}, ErrClosed
	}
	abs := format.HeaderSize + int(offset)
	if offset == format.InvalidOffset || abs >= len(r.buf) {
		return format.Cell{}, fmt.Errorf("cell offset 0x%x out of range: %w", offset, ErrCorrupt)
	}
	cell, err := format.ParseCell(r.buf[abs:])
	if err != nil {
		return format.Cell{}, err
	}
	if cell.Free {
		return format.Cell{}, fmt.Errorf("cell 0x%x is free: %w", offset, ErrCorrupt)
	}
	return cell, nil
}
