package clsid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/uakit/internal/testutil"
)

func TestCanonical(t *testing.T) {
	got, ok := Canonical("{20d04fe0-3aea-1069-a2d8-08002b30309d}")
	require.True(t, ok)
	assert.Equal(t, "{20D04FE0-3AEA-1069-A2D8-08002B30309D}", got)

	got, ok = Canonical("20D04FE0-3AEA-1069-A2D8-08002B30309D")
	require.True(t, ok)
	assert.Equal(t, "{20D04FE0-3AEA-1069-A2D8-08002B30309D}", got)

	_, ok = Canonical("{nope}")
	assert.False(t, ok)
}

func TestMapAndChain(t *testing.T) {
	m := Map{"{aaaaaaaa-0000-0000-0000-000000000001}": "First"}
	name, ok := m.Lookup("{AAAAAAAA-0000-0000-0000-000000000001}")
	require.True(t, ok)
	assert.Equal(t, "First", name)
	_, ok = m.Lookup("garbage")
	assert.False(t, ok)

	second := Map{"{AAAAAAAA-0000-0000-0000-000000000002}": "Second"}
	c := Chain{nil, m, second, Registry{}}
	name, ok = c.Lookup("{AAAAAAAA-0000-0000-0000-000000000002}")
	require.True(t, ok)
	assert.Equal(t, "Second", name)
	_, ok = c.Lookup("{AAAAAAAA-0000-0000-0000-000000000003}")
	assert.False(t, ok)
}

func TestHiveLookup(t *testing.T) {
	const guid = "{11111111-2222-3333-4444-555555555555}"
	const usr = "{66666666-7777-8888-9999-AAAAAAAAAAAA}"

	software, _ := testutil.Path("ROOT", "Classes", "CLSID")
	clsidKey := software.Subkeys[0].Subkeys[0]
	clsidKey.Subkeys = []*testutil.Key{
		{Name: guid, Values: []testutil.Value{testutil.String("", "Contoso Shell Folder")}},
		{Name: "{00000000-0000-0000-0000-00000000000B}", Values: []testutil.Value{testutil.Binary("", []byte{1})}},
	}
	software.Subkeys = append(software.Subkeys, &testutil.Key{
		Name: "CLSID",
		Subkeys: []*testutil.Key{
			{Name: usr, Values: []testutil.Value{testutil.String("", "Per User Thing")}},
		},
	})

	h, err := OpenHive(testutil.WriteHive(t, software))
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	name, ok := h.Lookup("{11111111-2222-3333-4444-555555555555}")
	require.True(t, ok)
	assert.Equal(t, "Contoso Shell Folder", name)

	name, ok = h.Lookup(usr)
	require.True(t, ok)
	assert.Equal(t, "Per User Thing", name)

	_, ok = h.Lookup("{00000000-0000-0000-0000-00000000000B}")
	assert.False(t, ok, "binary default value is ignored")
	_, ok = h.Lookup("{99999999-9999-9999-9999-999999999999}")
	assert.False(t, ok)

	// served from cache
	name, ok = h.Lookup(guid)
	require.True(t, ok)
	assert.Equal(t, "Contoso Shell Folder", name)
}

func TestOpenHiveMissing(t *testing.T) {
	_, err := OpenHive(t.TempDir() + "/absent.dat")
	require.Error(t, err)
}
