package regtext

import "strings"

// UnescapeName collapses doubled backslashes in a quoted value name. Other
// sequences are left alone.
func UnescapeName(s string) string {
	if strings.IndexByte(s, '\\') == -1 {
		return s
	}
	return strings.ReplaceAll(s, EscapedBackslash, Backslash)
}

// EscapeName quotes a value name the way regedit does.
func EscapeName(s string) string {
	s = strings.ReplaceAll(s, Backslash, EscapedBackslash)
	s = strings.ReplaceAll(s, Quote, EscapedQuote)
	return s
}
