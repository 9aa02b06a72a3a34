package regtext

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHexList parses a comma-separated list of hexadecimal byte tokens such
// as "01,00,ff". Spaces anywhere in the list are ignored. Every token must be
// one or two hex digits; an empty or malformed token fails the whole list.
// An empty list yields an empty, non-nil slice.
func ParseHexList(s string) ([]byte, error) {
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return []byte{}, nil
	}
	parts := strings.Split(s, HexByteSeparator)
	out := make([]byte, 0, len(parts))
	for _, p := range parts {
		if p == "" || len(p) > 2 {
			return nil, fmt.Errorf("invalid hex byte %q", p)
		}
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid hex byte %q: %w", p, err)
		}
		out = append(out, byte(v))
	}
	return out, nil
}

// FormatHexList renders data as lower-case, comma-separated hex bytes.
func FormatHexList(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf(HexByteFormat, b)
	}
	return strings.Join(parts, HexByteSeparator)
}
