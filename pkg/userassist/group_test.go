package userassist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupsTable(t *testing.T) {
	gs := Groups()
	require.Len(t, gs, 5)
	want := []struct {
		id     string
		format Format
	}{
		{"{0D6D4F41-2994-4BA0-8FEF-620E43CD2812}", FormatLegacy},
		{"{5E6AB780-7743-11CF-A12B-00AA004AE837}", FormatLegacy},
		{"{75048700-EF1F-11D0-9888-006097DEACF9}", FormatLegacy},
		{"{CEBFF5CD-ACE2-4F4F-9178-9926F41749EA}", FormatModern},
		{"{F4E57C4B-2036-45F0-A9AB-443BCFE33D9F}", FormatModern},
	}
	for i, w := range want {
		assert.Equal(t, w.id, gs[i].String())
		assert.Equal(t, w.format, gs[i].Format)
	}

	gs[0] = Group{}
	assert.NotEqual(t, Group{}, Groups()[0], "Groups returns a copy")
}

func TestLookupGroup(t *testing.T) {
	for _, in := range []string{
		"{cebff5cd-ace2-4f4f-9178-9926f41749ea}",
		"CEBFF5CD-ACE2-4F4F-9178-9926F41749EA",
		" {CEBFF5CD-ACE2-4F4F-9178-9926F41749EA} ",
	} {
		g, ok := LookupGroup(in)
		require.True(t, ok, in)
		assert.Equal(t, FormatModern, g.Format)
	}

	_, ok := LookupGroup("{00000000-0000-0000-0000-000000000000}")
	assert.False(t, ok)
	_, ok = LookupGroup("not a guid")
	assert.False(t, ok)
}

func TestGroupPaths(t *testing.T) {
	g := Groups()[3]
	assert.Equal(t, `Software\Microsoft\Windows\CurrentVersion\Explorer\UserAssist\{CEBFF5CD-ACE2-4F4F-9178-9926F41749EA}\Count`, g.CountPath())
	assert.Equal(t, `Microsoft\Windows\CurrentVersion\Explorer\UserAssist\{CEBFF5CD-ACE2-4F4F-9178-9926F41749EA}\Count]`, g.ExportSuffix())
	assert.Equal(t, "modern", g.Format.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
}
