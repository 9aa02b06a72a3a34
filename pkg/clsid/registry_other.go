//go:build !windows

package clsid

// Registry reads the local classes registration, which only exists on
// Windows. Elsewhere every lookup misses.
type Registry struct{}

// Lookup implements Lookup.
func (Registry) Lookup(string) (string, bool) { return "", false }
