// Package clsid resolves COM class identifiers to their registered names.
// Every lookup is best effort: failures report "not found".
package clsid

import (
	"strings"

	"github.com/google/uuid"
)

// Lookup is implemented by every resolver in this package.
type Lookup interface {
	Lookup(guid string) (string, bool)
}

// Canonical returns guid in braced upper-case form, or false when guid does
// not parse.
func Canonical(guid string) (string, bool) {
	u, err := uuid.Parse(strings.TrimSpace(guid))
	if err != nil {
		return "", false
	}
	return "{" + strings.ToUpper(u.String()) + "}", true
}

// Map is a fixed table. Keys may use any GUID spelling.
type Map map[string]string

// Lookup implements Lookup.
func (m Map) Lookup(guid string) (string, bool) {
	want, ok := Canonical(guid)
	if !ok {
		return "", false
	}
	for k, v := range m {
		if c, ok := Canonical(k); ok && c == want {
			return v, true
		}
	}
	return "", false
}

// Chain tries each resolver in order and returns the first hit.
type Chain []Lookup

// Lookup implements Lookup.
func (c Chain) Lookup(guid string) (string, bool) {
	for _, l := range c {
		if l == nil {
			continue
		}
		if name, ok := l.Lookup(guid); ok {
			return name, true
		}
	}
	return "", false
}
