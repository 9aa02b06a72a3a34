package format

import (
	"encoding/binary"
	"testing"
)

func TestNextHBIN(t *testing.T) {
	buf := make([]byte, 2*HBINAlignment)
	copy(buf, HBINSignature)
	binary.LittleEndian.PutUint32(buf[HBINFileOffsetField:], 0)
	binary.LittleEndian.PutUint32(buf[HBINSizeOffset:], HBINAlignment)

	h, next, err := NextHBIN(buf, 0)
	if err != nil {
		t.Fatalf("NextHBIN: %v", err)
	}
	if h.Size != HBINAlignment || next != HBINAlignment {
		t.Fatalf("unexpected hbin %+v next=%d", h, next)
	}
}

func TestNextHBINErrors(t *testing.T) {
	buf := make([]byte, HBINAlignment)
	if _, _, err := NextHBIN(buf, 0); err == nil {
		t.Fatalf("expected signature error")
	}
	copy(buf, HBINSignature)
	binary.LittleEndian.PutUint32(buf[HBINSizeOffset:], 0x123)
	if _, _, err := NextHBIN(buf, 0); err == nil {
		t.Fatalf("expected size error")
	}
	binary.LittleEndian.PutUint32(buf[HBINSizeOffset:], 2*HBINAlignment)
	if _, _, err := NextHBIN(buf, 0); err == nil {
		t.Fatalf("expected truncation error")
	}
	if _, _, err := NextHBIN(buf, len(buf)-4); err == nil {
		t.Fatalf("expected header truncation error")
	}
}
