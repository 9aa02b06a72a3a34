package userassist

import "strings"

// ClearPrefix marks value names that were stored without obfuscation.
const ClearPrefix = "UEME"

// IsCleartext reports whether name is stored unobfuscated.
func IsCleartext(name string) bool {
	return strings.HasPrefix(name, ClearPrefix)
}

// DecodeName reverses the ROT13 obfuscation of a value name. Letters come
// back upper-cased; cleartext names are returned unchanged.
func DecodeName(name string) string {
	if IsCleartext(name) {
		return name
	}
	return ROT13(name)
}

// ROT13 upper-cases every ASCII letter and rotates it 13 places. Other
// characters pass through.
func ROT13(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if r >= 'A' && r <= 'Z' {
			return 'A' + (r-'A'+13)%26
		}
		return r
	}, s)
}
