package userassist

import (
	"context"
	"slices"

	"github.com/joshuapare/uakit/internal/logger"
)

// Source supplies raw entries for a load.
type Source interface {
	FetchRawEntries(ctx context.Context) ([]RawEntry, error)
}

// Store is an ordered collection of entries keyed by (group, index). It is
// not safe for concurrent mutation.
type Store struct {
	entries map[EntryKey]*Entry
	next    map[Group]int
	format  Format
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		entries: make(map[EntryKey]*Entry),
		next:    make(map[Group]int),
	}
}

// Load clears the store and fills it from src. When src fails the store is
// left empty and the error is returned for reporting.
func (s *Store) Load(ctx context.Context, src Source) error {
	s.Clear()
	raws, err := src.FetchRawEntries(ctx)
	if err != nil {
		logger.Debug("userassist source failed", "error", err)
		return err
	}
	for _, raw := range raws {
		key := EntryKey{Group: raw.Group, Index: raw.Index}
		if !s.insert(key, raw.Name, raw.Data) {
			logger.Debug("userassist duplicate entry skipped", "group", raw.Group.String(), "index", raw.Index, "name", raw.Name)
		}
	}
	logger.Info("userassist entries loaded", "entries", s.Len(), "format", s.format.String())
	return nil
}

// Add stores a new entry at the next free index of group and returns it.
func (s *Store) Add(group Group, name string, data []byte) *Entry {
	key := EntryKey{Group: group, Index: s.next[group]}
	s.insert(key, name, data)
	return s.entries[key]
}

func (s *Store) insert(key EntryKey, name string, data []byte) bool {
	if _, exists := s.entries[key]; exists {
		return false
	}
	s.entries[key] = NewEntry(key, name, data)
	if key.Index >= s.next[key.Group] {
		s.next[key.Group] = key.Index + 1
	}
	s.format = key.Group.Format
	return true
}

// Get returns the entry stored under key.
func (s *Store) Get(key EntryKey) (*Entry, bool) {
	e, ok := s.entries[key]
	return e, ok
}

// Remove deletes the entry under key. Indexes of other entries are kept.
func (s *Store) Remove(key EntryKey) bool {
	if _, ok := s.entries[key]; !ok {
		return false
	}
	delete(s.entries, key)
	return true
}

// Len returns the number of stored entries.
func (s *Store) Len() int { return len(s.entries) }

// Clear removes every entry.
func (s *Store) Clear() {
	clear(s.entries)
	clear(s.next)
	s.format = FormatUnknown
}

// Keys returns all keys ordered by group enumeration order, then index.
func (s *Store) Keys() []EntryKey {
	keys := make([]EntryKey, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b EntryKey) int {
		if ra, rb := groupRank(a.Group), groupRank(b.Group); ra != rb {
			return ra - rb
		}
		return a.Index - b.Index
	})
	return keys
}

// Entries returns all entries in Keys order.
func (s *Store) Entries() []*Entry {
	keys := s.Keys()
	out := make([]*Entry, len(keys))
	for i, k := range keys {
		out[i] = s.entries[k]
	}
	return out
}

// FormatKind reports the layout family of the group that supplied the most
// recently stored entry. Mixed sets are not detected; FormatUnknown means
// nothing has been stored since the last Clear.
func (s *Store) FormatKind() Format {
	if len(s.entries) == 0 {
		return FormatUnknown
	}
	return s.format
}
