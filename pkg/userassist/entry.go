// Package userassist decodes the program-execution records Windows Explorer
// keeps under the UserAssist registry key.
//
// Entries reach a Store from a Source: an offline NTUSER.DAT hive, a regedit
// export, or a fixed list. Payloads are decoded when an entry is stored;
// names are decoded on demand.
package userassist

// EntryKey identifies an entry by group and its position within the group.
type EntryKey struct {
	Group Group
	Index int
}

// RawEntry is one value as a source found it.
type RawEntry struct {
	Group Group
	Index int
	Name  string
	Data  []byte
}

// Entry is a decoded UserAssist value. It is immutable once built.
type Entry struct {
	Key  EntryKey
	Name string // as stored, usually ROT13 obfuscated
	Data []byte
	Fields
}

// Explainer turns a decoded entry name into prose.
type Explainer interface {
	Explain(name string) string
}

// NewEntry decodes data and returns the entry stored under key.
func NewEntry(key EntryKey, name string, data []byte) *Entry {
	return &Entry{
		Key:    key,
		Name:   name,
		Data:   append([]byte(nil), data...),
		Fields: DecodePayload(data),
	}
}

// ReadableName returns the deobfuscated name.
func (e *Entry) ReadableName() string {
	return DecodeName(e.Name)
}

// Explain describes the entry using x.
func (e *Entry) Explain(x Explainer) string {
	return x.Explain(e.ReadableName())
}

// CountRemoved reports whether the count marks an entry its owner removed
// from the start menu list: a zero stored count adjusted by a timestamp.
func (e *Entry) CountRemoved() bool {
	return e.Count != nil && *e.Count == -countBias
}
