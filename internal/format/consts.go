// Package format houses read-only decoders for the Windows Registry hive
// file format. Only the structures needed to walk keys and read small values
// are modeled; every decoder bounds-checks its input and never panics on
// malformed data.
package format

var (
	// REGFSignature is the four-byte signature at the start of every hive file.
	REGFSignature = []byte{'r', 'e', 'g', 'f'}

	// HBINSignature is the four-byte signature at the beginning of each hive bin.
	HBINSignature = []byte{'h', 'b', 'i', 'n'}

	NKSignature = []byte{'n', 'k'}
	VKSignature = []byte{'v', 'k'}

	// LF/LH carry a name hint or hash per entry, LI is a bare offset list.
	LFSignature = []byte{'l', 'f'}
	LHSignature = []byte{'l', 'h'}
	LISignature = []byte{'l', 'i'}

	// RISignature identifies an indirect list whose entries point at LF/LH/LI lists.
	RISignature = []byte{'r', 'i'}

	// DBSignature identifies a big-data record. Values stored this way are
	// larger than anything UserAssist writes and are reported as unsupported.
	DBSignature = []byte{'d', 'b'}
)

const (
	// HeaderSize is the size of the REGF header. Cell offsets are relative to
	// the first byte after it.
	HeaderSize = 4096

	HBINHeaderSize = 0x20
	HBINAlignment  = 0x1000

	CellHeaderSize = 4
	SignatureSize  = 2

	// InvalidOffset marks an unused cell reference.
	InvalidOffset = 0xFFFFFFFF
)

// REGF header offsets.
const (
	REGFSignatureSize      = 4
	REGFPrimarySeqOffset   = 0x004
	REGFSecondarySeqOffset = 0x008
	REGFTimeStampOffset    = 0x00C
	REGFMajorVersionOffset = 0x014
	REGFMinorVersionOffset = 0x018
	REGFRootCellOffset     = 0x024
	REGFDataSizeOffset     = 0x028
)

// HBIN header offsets.
const (
	HBINFileOffsetField = 0x04
	HBINSizeOffset      = 0x08
)

// NK record offsets, relative to the start of the cell payload.
const (
	NKFlagsOffset       = 0x02
	NKLastWriteOffset   = 0x04
	NKParentOffset      = 0x10
	NKSubkeyCountOffset = 0x14
	NKSubkeyListOffset  = 0x1C
	NKValueCountOffset  = 0x24
	NKValueListOffset   = 0x28
	NKNameLenOffset     = 0x48
	NKNameOffset        = 0x4C

	NKMinSize = NKNameOffset

	// NKFlagCompressedName marks names stored as Windows-1252 bytes.
	NKFlagCompressedName = 0x20
)

// VK record offsets, relative to the start of the cell payload.
const (
	VKNameLenOffset = 0x02
	VKDataLenOffset = 0x04
	VKDataOffOffset = 0x08
	VKTypeOffset    = 0x0C
	VKFlagsOffset   = 0x10
	VKNameOffset    = 0x14

	VKMinSize = VKNameOffset

	// VKFlagASCIIName marks names stored as Windows-1252 bytes.
	VKFlagASCIIName = 0x0001

	// DataLength bit 31 means the data (at most 4 bytes) lives in the DataOffset field.
	VKDataInlineBit  = 0x80000000
	VKDataLengthMask = 0x7FFFFFFF
)

// List layout.
const (
	ListHeaderSize  = 4
	OffsetFieldSize = 4
	LFEntrySize     = 8
)

// Sanity limits applied while decoding untrusted hives.
const (
	MaxSubkeyCount = 1 << 20
	MaxValueCount  = 1 << 20
	MaxNameLen     = 1 << 14
)

// Registry value types.
const (
	RegNone     uint32 = 0
	RegSz       uint32 = 1
	RegExpandSz uint32 = 2
	RegBinary   uint32 = 3
	RegDword    uint32 = 4
)
