package explain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookup map[string]string

func (f fakeLookup) Lookup(guid string) (string, bool) {
	v, ok := f[guid]
	return v, ok
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name string
		want Analysis
		ok   bool
	}{
		{"UEME_CTLSESSION", Analysis{Type: TypeCtlSession, FullMatch: true}, true},
		{"ueme_ctlsession", Analysis{Type: TypeCtlSession, FullMatch: true}, true},
		{"UEME_CTLCUACOUNT:CTOR", Analysis{Type: TypeCtlCUACount, FullMatch: true}, true},
		{"UEME_RUNPATH:C:\\x.exe", Analysis{Type: TypeRunPath, Subject: "C:\\x.exe"}, true},
		{"UEME_RUNPATH::x", Analysis{Type: TypeRunPath, Subject: ":x"}, true},
		{"UEME_RUN", Analysis{Type: TypeRun, FullMatch: true}, true},
		{"UEME_RUNXYZ", Analysis{Type: TypeRun, Subject: "XYZ"}, true},
		{"UEME_RUNPIDL:%csidl2%\\Accessories", Analysis{Type: TypeRunPIDL, Subject: "%csidl2%\\Accessories", CSIDL: "2"}, true},
		{
			"UEME_RUNPIDL:::{20d04fe0-3aea-1069-a2d8-08002b30309d}",
			Analysis{Type: TypeRunPIDL, Subject: "::{20d04fe0-3aea-1069-a2d8-08002b30309d}", GUID: "{20D04FE0-3AEA-1069-A2D8-08002B30309D}"},
			true,
		},
		{"HRZR_PGYFRFFVBA", Analysis{Type: TypeUnknown}, false},
		{"", Analysis{Type: TypeUnknown}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Analyze(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenOrderRunIsLast(t *testing.T) {
	var run int
	for i, tok := range tokens {
		if tok.typ == TypeRun {
			run = i
		}
	}
	for i, tok := range tokens {
		if strings.HasPrefix(tok.prefix, "UEME_RUN") && tok.typ != TypeRun {
			assert.Less(t, i, run, tok.prefix)
		}
	}
	assert.Len(t, tokens, 22)
}

func TestExplainSession(t *testing.T) {
	assert.Equal(t, SessionExplanation, New(nil).Explain("UEME_CTLSESSION"))
	assert.Equal(t, "This entry is used for the session ID, it doesn't contain data about executed programs", SessionExplanation)
}

func TestExplainToolbar(t *testing.T) {
	c := New(nil)
	got := c.Explain("UEME_UITOOLBAR:0x1,120")
	assert.Contains(t, got, "Back")
	assert.Contains(t, got, "ID 0x1,120 is the Back button.")

	assert.Contains(t, c.Explain("UEME_UITOOLBAR:0X4,701F"), "Move To")
	assert.NotContains(t, c.Explain("UEME_UITOOLBAR:0x9,9999"), "button.")
	assert.Equal(t, "This entry keeps data about clicks on Windows Explorer toolbar buttons", c.Explain("UEME_UITOOLBAR"))
}

func TestExplainRunPath(t *testing.T) {
	c := New(nil)
	assert.Equal(t, "This entry keeps data about executed programs", c.Explain("UEME_RUNPATH"))
	assert.Equal(t, `This entry is used for executing program C:\WINDOWS\NOTEPAD.EXE`, c.Explain(`UEME_RUNPATH:C:\WINDOWS\NOTEPAD.EXE`))
	assert.Equal(t, "This entry is used for executing control panel applet desk.cpl", c.Explain("UEME_RUNCPL:desk.cpl"))
}

func TestExplainRunPIDL(t *testing.T) {
	c := New(nil)
	shortcut := c.Explain(`UEME_RUNPIDL:%csidl2%\ACCESSORIES\NOTEPAD.LNK`)
	assert.True(t, strings.HasPrefix(shortcut, `This entry is used for executing PIDL %csidl2%\ACCESSORIES\NOTEPAD.LNK.`))
	assert.Contains(t, shortcut, "looks like a shortcut")
	assert.Contains(t, shortcut, "corresponding UEME_RUNPATH")
	assert.Contains(t, shortcut, "%csidl2% is special folder CSIDL_PROGRAMS.")
	assert.Contains(t, shortcut, "CSIDL (constant special item ID list)")

	folder := c.Explain(`UEME_RUNPIDL:%csidl2%\ACCESSORIES`)
	assert.Contains(t, folder, "looks like a folder")

	neither := c.Explain(`UEME_RUNPIDL:C:\A.TXT`)
	assert.NotContains(t, neither, "looks like")
	assert.Contains(t, neither, "A PIDL is a pointer")

	assert.True(t, strings.HasPrefix(c.Explain("UEME_RUNPIDL"), "This entry keeps data about executed PIDLs."))
}

func TestExplainCSIDL(t *testing.T) {
	c := New(nil)
	assert.Contains(t, c.Explain("UEME_RUNPIDL:%CSIDL0038%\\X"), "%csidl38% is special folder CSIDL_PROGRAM_FILES.")
	assert.Contains(t, c.Explain("UEME_RUNPIDL:%csidl15%\\X"), "%csidl15% is special folder <UNKNOWN>.")
	assert.Contains(t, c.Explain("UEME_RUNPIDL:%csidl99999999999999999999%"), "%csidl99999999999999999999% is special folder <UNKNOWN>.")
}

func TestExplainGUID(t *testing.T) {
	name := "UEME_RUNPIDL:::{645ff040-5081-101b-9f08-00aa002f954e}"
	assert.Contains(t, New(nil).Explain(name), "{645FF040-5081-101B-9F08-00AA002F954E} is a known Shell GUID, called CLSID_RecycleBin.")

	lower := "UEME_RUNPIDL:::{46e06680-4bf0-11d1-83ee-00a0c90dc849}"
	assert.Contains(t, New(nil).Explain(lower), "called CLSID_NetworkDomain")

	custom := "UEME_RUNPIDL:::{11111111-2222-3333-4444-555555555555}"
	lookup := fakeLookup{"{11111111-2222-3333-4444-555555555555}": "Contoso Folder"}
	assert.Contains(t, New(lookup).Explain(custom), "on this machine it is associated with CLSID Contoso Folder.")
	assert.Contains(t, New(nil).Explain(custom), "search for it in the registry")
	assert.Contains(t, New(fakeLookup{}).Explain(custom), "search for it in the registry")
	var zero Classifier
	assert.Contains(t, zero.Explain(custom), "search for it in the registry")
}

func TestExplainQuickLaunch(t *testing.T) {
	c := New(nil)
	assert.Equal(t, "This entry counts programs launched via Quick Launch menu shortcuts", c.Explain("UEME_UIQCUT"))
	got := c.Explain("UEME_UIQCUT:extra")
	assert.Contains(t, got, "The format of this entry is unexpected.")
	assert.Contains(t, c.Explain("UEME_UISCUT"), "Desktop shortcuts")
}

func TestExplainUnknown(t *testing.T) {
	c := New(nil)
	for _, name := range []string{"", "SOMETHING", "UEME_NEWTOKEN", "UEME_DBSLEEP", "UEME_USER:x"} {
		got := c.Explain(name)
		require.True(t, strings.HasPrefix(got, msgUnknown), name)
		assert.Contains(t, got, msgPleaseReport, name)
	}
	assert.Equal(t, msgUnknown, c.Explain("UEME_CTLCUACount:ctor"))
}

func TestTypeStrings(t *testing.T) {
	assert.Equal(t, "UEME_CTLCUACOUNT", TypeCtlCUACount.String())
	assert.Equal(t, "UEME_RUNPATH", TypeRunPath.String())
	assert.Equal(t, "UNKNOWN", TypeUnknown.String())
	assert.Equal(t, "", TypeUnknown.Token())
}

func TestTables(t *testing.T) {
	assert.Len(t, csidlNames, 58)
	name, ok := CSIDLName(0x3e)
	require.True(t, ok)
	assert.Equal(t, "CSIDL_PROFILES", name)
	assert.Len(t, shellGUIDs, 11)
	assert.Len(t, toolbarButtons, 14)
}
