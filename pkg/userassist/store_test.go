package userassist

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	legacyGroup = Groups()[0]
	modernGroup = Groups()[3]
)

type failingSource struct{ err error }

func (f failingSource) FetchRawEntries(context.Context) ([]RawEntry, error) { return nil, f.err }

func TestStoreAddAssignsIndexes(t *testing.T) {
	s := NewStore()
	a := s.Add(modernGroup, "a", nil)
	b := s.Add(modernGroup, "b", nil)
	c := s.Add(legacyGroup, "c", nil)

	assert.Equal(t, EntryKey{Group: modernGroup, Index: 0}, a.Key)
	assert.Equal(t, EntryKey{Group: modernGroup, Index: 1}, b.Key)
	assert.Equal(t, EntryKey{Group: legacyGroup, Index: 0}, c.Key)
	assert.Equal(t, 3, s.Len())

	got, ok := s.Get(EntryKey{Group: modernGroup, Index: 1})
	require.True(t, ok)
	assert.Equal(t, "b", got.Name)
}

func TestStoreKeysOrder(t *testing.T) {
	s := NewStore()
	s.Add(modernGroup, "m0", nil)
	s.Add(legacyGroup, "l0", nil)
	s.Add(modernGroup, "m1", nil)
	s.Add(legacyGroup, "l1", nil)

	var names []string
	for _, e := range s.Entries() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"l0", "l1", "m0", "m1"}, names)
}

func TestStoreFormatKindLastGroupWins(t *testing.T) {
	s := NewStore()
	assert.Equal(t, FormatUnknown, s.FormatKind())

	s.Add(modernGroup, "m", nil)
	assert.Equal(t, FormatModern, s.FormatKind())
	s.Add(legacyGroup, "l", nil)
	assert.Equal(t, FormatLegacy, s.FormatKind())

	s.Clear()
	assert.Equal(t, FormatUnknown, s.FormatKind())
	assert.Zero(t, s.Len())
}

func TestStoreRemoveKeepsIndexes(t *testing.T) {
	s := NewStore()
	s.Add(modernGroup, "a", nil)
	s.Add(modernGroup, "b", nil)

	require.True(t, s.Remove(EntryKey{Group: modernGroup, Index: 0}))
	require.False(t, s.Remove(EntryKey{Group: modernGroup, Index: 0}))

	c := s.Add(modernGroup, "c", nil)
	assert.Equal(t, 2, c.Key.Index)
	_, ok := s.Get(EntryKey{Group: modernGroup, Index: 1})
	assert.True(t, ok)
}

func TestStoreLoadReplacesContents(t *testing.T) {
	s := NewStore()
	s.Add(legacyGroup, "old", nil)

	src := StaticSource{
		{Group: modernGroup, Index: 0, Name: "HRZR_PGYFRFFVBA", Data: []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		{Group: modernGroup, Index: 1, Name: "second"},
		{Group: modernGroup, Index: 1, Name: "duplicate"},
	}
	require.NoError(t, s.Load(t.Context(), src))
	require.Equal(t, 2, s.Len())

	var names []string
	for _, e := range s.Entries() {
		names = append(names, e.ReadableName())
	}
	if diff := cmp.Diff([]string{"UEME_CTLSESSION", "FRPBAQ"}, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, FormatModern, s.FormatKind())

	first := s.Entries()[0]
	require.NotNil(t, first.Session)
	assert.EqualValues(t, 0x08070605, *first.Session)
}

func TestStoreLoadFailureLeavesEmpty(t *testing.T) {
	s := NewStore()
	s.Add(legacyGroup, "old", nil)

	boom := errors.New("boom")
	err := s.Load(t.Context(), failingSource{err: boom})
	require.ErrorIs(t, err, boom)
	assert.Zero(t, s.Len())
	assert.Equal(t, FormatUnknown, s.FormatKind())
}

func TestEntryCopiesData(t *testing.T) {
	data := []byte{1, 2}
	e := NewEntry(EntryKey{Group: legacyGroup}, "x", data)
	data[0] = 9
	assert.Equal(t, []byte{1, 2}, e.Data)
}

func TestEntryCountRemoved(t *testing.T) {
	e := NewEntry(EntryKey{Group: legacyGroup}, "x", legacyPayload(1, 0, 1))
	assert.True(t, e.CountRemoved())
	e = NewEntry(EntryKey{Group: legacyGroup}, "x", legacyPayload(1, 0, 0))
	assert.False(t, e.CountRemoved())
}

type upperExplainer struct{}

func (upperExplainer) Explain(name string) string { return "explained " + name }

func TestEntryExplain(t *testing.T) {
	e := NewEntry(EntryKey{Group: legacyGroup}, "HRZR_PGYFRFFVBA", nil)
	assert.Equal(t, "explained UEME_CTLSESSION", e.Explain(upperExplainer{}))
}
