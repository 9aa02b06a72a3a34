//go:build windows

package clsid

import (
	"golang.org/x/sys/windows/registry"
)

// Registry reads HKEY_CLASSES_ROOT\CLSID of the machine the tool runs on.
type Registry struct{}

// Lookup implements Lookup.
func (Registry) Lookup(guid string) (string, bool) {
	key, ok := Canonical(guid)
	if !ok {
		return "", false
	}
	k, err := registry.OpenKey(registry.CLASSES_ROOT, `CLSID\`+key, registry.QUERY_VALUE)
	if err != nil {
		return "", false
	}
	defer k.Close()
	name, _, err := k.GetStringValue("")
	if err != nil || name == "" {
		return "", false
	}
	return name, true
}
