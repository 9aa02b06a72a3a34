package format

import (
	"encoding/binary"
	"testing"
)

func TestDecodeVKInline(t *testing.T) {
	name := []byte("A")
	buf := make([]byte, VKNameOffset+len(name))
	copy(buf, VKSignature)
	binary.LittleEndian.PutUint16(buf[VKNameLenOffset:], uint16(len(name)))
	binary.LittleEndian.PutUint32(buf[VKDataLenOffset:], VKDataInlineBit|4)
	binary.LittleEndian.PutUint32(buf[VKDataOffOffset:], 0x11223344)
	binary.LittleEndian.PutUint32(buf[VKTypeOffset:], RegDword)
	binary.LittleEndian.PutUint16(buf[VKFlagsOffset:], VKFlagASCIIName)
	copy(buf[VKNameOffset:], name)

	vk, err := DecodeVK(buf)
	if err != nil {
		t.Fatalf("DecodeVK: %v", err)
	}
	if !vk.DataInline() || vk.Length() != 4 {
		t.Fatalf("expected inline data: %+v", vk)
	}
	if !vk.NameIsASCII() || string(vk.NameRaw) != "A" {
		t.Fatalf("unexpected name: %+v", vk)
	}
}

func TestDecodeVKReferenced(t *testing.T) {
	buf := make([]byte, VKNameOffset)
	copy(buf, VKSignature)
	binary.LittleEndian.PutUint32(buf[VKDataLenOffset:], 72)
	binary.LittleEndian.PutUint32(buf[VKDataOffOffset:], 0x200)
	binary.LittleEndian.PutUint32(buf[VKTypeOffset:], RegBinary)

	vk, err := DecodeVK(buf)
	if err != nil {
		t.Fatalf("DecodeVK: %v", err)
	}
	if vk.DataInline() || vk.Length() != 72 || vk.DataOffset != 0x200 {
		t.Fatalf("expected out-of-line data: %+v", vk)
	}
}

func TestDecodeVKTruncatedName(t *testing.T) {
	buf := make([]byte, VKNameOffset+2)
	copy(buf, VKSignature)
	binary.LittleEndian.PutUint16(buf[VKNameLenOffset:], 8)
	if _, err := DecodeVK(buf); err == nil {
		t.Fatalf("expected truncation error")
	}
}
