package reader

import (
	"strings"
)

// Lookup returns the child of parent whose name matches name
// case-insensitively.
func (r *Reader) Lookup(parent NodeID, name string) (NodeID, error) {
	children, err := r.Subkeys(parent)
	if err != nil {
		return 0, err
	}
	for _, child := range children {
		childName, err := r.KeyName(child)
		if err != nil {
			continue
		}
		if strings.EqualFold(childName, name) {
			return child, nil
		}
	}
	return 0, ErrNotFound
}

// Find resolves a backslash-separated path relative to the root key. A
// leading segment equal to the root key's own name is skipped.
func (r *Reader) Find(path string) (NodeID, error) {
	current := r.Root()
	segments := splitPath(path)
	if len(segments) == 0 {
		return current, nil
	}
	if rootName, err := r.KeyName(current); err == nil && strings.EqualFold(rootName, segments[0]) {
		segments = segments[1:]
	}
	for _, seg := range segments {
		next, err := r.Lookup(current, seg)
		if err != nil {
			return 0, err
		}
		current = next
	}
	return current, nil
}

// GetValue returns the value of node whose name matches name
// case-insensitively. The empty name selects the default value.
func (r *Reader) GetValue(node NodeID, name string) (Value, error) {
	ids, err := r.Values(node)
	if err != nil {
		return Value{}, err
	}
	for _, id := range ids {
		v, err := r.Value(id)
		if err != nil {
			continue
		}
		if strings.EqualFold(v.Name, name) {
			return v, nil
		}
	}
	return Value{}, ErrNotFound
}

func splitPath(path string) []string {
	path = strings.ReplaceAll(strings.TrimSpace(path), "/", `\`)
	parts := strings.Split(path, `\`)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
