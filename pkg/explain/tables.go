package explain

import "strings"

// Type is a UserAssist entry type token.
type Type int

const (
	TypeCtlCUACount Type = iota
	TypeCtlSession
	TypeDBSleep
	TypeDBTrace
	TypeDoneCancel
	TypeDoneFail
	TypeDoneOK
	TypeError
	TypeInstrBrowser
	TypeRunCPL
	TypeRunInvoke
	TypeRunOLECmd
	TypeRunPath
	TypeRunPIDL
	TypeRunWMCmd
	TypeRun
	TypeUIHotkey
	TypeUIMenu
	TypeUIQCut
	TypeUISCut
	TypeUIToolbar
	TypeUser
	TypeUnknown Type = 0xFF
)

// tokens is matched in order by case-insensitive prefix, so UEME_RUN must
// follow every longer UEME_RUN* token.
var tokens = []struct {
	prefix string
	typ    Type
}{
	{"UEME_CTLCUACount:ctor", TypeCtlCUACount},
	{"UEME_CTLSESSION", TypeCtlSession},
	{"UEME_DBSLEEP", TypeDBSleep},
	{"UEME_DBTRACE", TypeDBTrace},
	{"UEME_DONECANCEL", TypeDoneCancel},
	{"UEME_DONEFAIL", TypeDoneFail},
	{"UEME_DONEOK", TypeDoneOK},
	{"UEME_ERROR", TypeError},
	{"UEME_INSTRBROWSER", TypeInstrBrowser},
	{"UEME_RUNCPL", TypeRunCPL},
	{"UEME_RUNINVOKE", TypeRunInvoke},
	{"UEME_RUNOLECMD", TypeRunOLECmd},
	{"UEME_RUNPATH", TypeRunPath},
	{"UEME_RUNPIDL", TypeRunPIDL},
	{"UEME_RUNWMCMD", TypeRunWMCmd},
	{"UEME_RUN", TypeRun},
	{"UEME_UIHOTKEY", TypeUIHotkey},
	{"UEME_UIMENU", TypeUIMenu},
	{"UEME_UIQCUT", TypeUIQCut},
	{"UEME_UISCUT", TypeUISCut},
	{"UEME_UITOOLBAR", TypeUIToolbar},
	{"UEME_USER", TypeUser},
}

// Token returns the token text of t, or "" for TypeUnknown.
func (t Type) Token() string {
	for _, tok := range tokens {
		if tok.typ == t {
			return tok.prefix
		}
	}
	return ""
}

func (t Type) String() string {
	if tok := t.Token(); tok != "" {
		return strings.ToUpper(strings.TrimSuffix(tok, ":ctor"))
	}
	return "UNKNOWN"
}

// csidlNames maps CSIDL codes to their shlobj.h names.
var csidlNames = map[int]string{
	0x00: "CSIDL_DESKTOP",
	0x01: "CSIDL_INTERNET",
	0x02: "CSIDL_PROGRAMS",
	0x03: "CSIDL_CONTROLS",
	0x04: "CSIDL_PRINTERS",
	0x05: "CSIDL_PERSONAL",
	0x06: "CSIDL_FAVORITES",
	0x07: "CSIDL_STARTUP",
	0x08: "CSIDL_RECENT",
	0x09: "CSIDL_SENDTO",
	0x0a: "CSIDL_BITBUCKET",
	0x0b: "CSIDL_STARTMENU",
	0x0c: "CSIDL_MYDOCUMENTS",
	0x0d: "CSIDL_MYMUSIC",
	0x0e: "CSIDL_MYVIDEO",
	0x10: "CSIDL_DESKTOPDIRECTORY",
	0x11: "CSIDL_DRIVES",
	0x12: "CSIDL_NETWORK",
	0x13: "CSIDL_NETHOOD",
	0x14: "CSIDL_FONTS",
	0x15: "CSIDL_TEMPLATES",
	0x16: "CSIDL_COMMON_STARTMENU",
	0x17: "CSIDL_COMMON_PROGRAMS",
	0x18: "CSIDL_COMMON_STARTUP",
	0x19: "CSIDL_COMMON_DESKTOPDIRECTORY",
	0x1a: "CSIDL_APPDATA",
	0x1b: "CSIDL_PRINTHOOD",
	0x1c: "CSIDL_LOCAL_APPDATA",
	0x1d: "CSIDL_ALTSTARTUP",
	0x1e: "CSIDL_COMMON_ALTSTARTUP",
	0x1f: "CSIDL_COMMON_FAVORITES",
	0x20: "CSIDL_INTERNET_CACHE",
	0x21: "CSIDL_COOKIES",
	0x22: "CSIDL_HISTORY",
	0x23: "CSIDL_COMMON_APPDATA",
	0x24: "CSIDL_WINDOWS",
	0x25: "CSIDL_SYSTEM",
	0x26: "CSIDL_PROGRAM_FILES",
	0x27: "CSIDL_MYPICTURES",
	0x28: "CSIDL_PROFILE",
	0x29: "CSIDL_SYSTEMX86",
	0x2a: "CSIDL_PROGRAM_FILESX86",
	0x2b: "CSIDL_PROGRAM_FILES_COMMON",
	0x2c: "CSIDL_PROGRAM_FILES_COMMONX86",
	0x2d: "CSIDL_COMMON_TEMPLATES",
	0x2e: "CSIDL_COMMON_DOCUMENTS",
	0x2f: "CSIDL_COMMON_ADMINTOOLS",
	0x30: "CSIDL_ADMINTOOLS",
	0x31: "CSIDL_CONNECTIONS",
	0x35: "CSIDL_COMMON_MUSIC",
	0x36: "CSIDL_COMMON_PICTURES",
	0x37: "CSIDL_COMMON_VIDEO",
	0x38: "CSIDL_RESOURCES",
	0x39: "CSIDL_RESOURCES_LOCALIZED",
	0x3a: "CSIDL_COMMON_OEM_LINKS",
	0x3b: "CSIDL_CDBURN_AREA",
	0x3d: "CSIDL_COMPUTERSNEARME",
	0x3e: "CSIDL_PROFILES",
}

// CSIDLName returns the name of a special folder code.
func CSIDLName(code int) (string, bool) {
	name, ok := csidlNames[code]
	return name, ok
}

// shellGUIDs lists well-known shell namespace CLSIDs, keyed upper-case.
var shellGUIDs = upperKeys(map[string]string{
	"{208D2C60-3AEA-1069-A2D7-08002B30309D}": "CLSID_NetworkPlaces",
	"{46e06680-4bf0-11d1-83ee-00a0c90dc849}": "CLSID_NetworkDomain",
	"{c0542a90-4bf0-11d1-83ee-00a0c90dc849}": "CLSID_NetworkServer",
	"{54a754c0-4bf1-11d1-83ee-00a0c90dc849}": "CLSID_NetworkShare",
	"{20D04FE0-3AEA-1069-A2D8-08002B30309D}": "CLSID_MyComputer",
	"{871C5380-42A0-1069-A2EA-08002B30309D}": "CLSID_Internet",
	"{F3364BA0-65B9-11CE-A9BA-00AA004AE837}": "CLSID_ShellFSFolder",
	"{645FF040-5081-101B-9F08-00AA002F954E}": "CLSID_RecycleBin",
	"{21EC2020-3AEA-1069-A2DD-08002B30309D}": "CLSID_ControlPanel",
	"{2227A280-3AEA-1069-A2DE-08002B30309D}": "CLSID_Printers",
	"{450D8FBA-AD25-11D0-98A8-0800361B1103}": "CLSID_MyDocuments",
})

// ShellGUIDName returns the friendly name of a well-known shell CLSID.
func ShellGUIDName(guid string) (string, bool) {
	name, ok := shellGUIDs[strings.ToUpper(guid)]
	return name, ok
}

// toolbarButtons maps "<group>,<command id>" toolbar codes to button captions.
var toolbarButtons = map[string]string{
	"0x1,120":  "Back",
	"0x1,121":  "Forward",
	"0x1,130":  "Up",
	"0x1,123":  "Search",
	"0x1,133":  "Folders",
	"0x4,7031": "Views",
	"0x1,701f": "Move To",
	"0x4,701f": "Move To",
	"0x1,701e": "Copy To",
	"0x4,701e": "Copy To",
	"0x1,7011": "Delete",
	"0x4,7011": "Delete",
	"0x1,701b": "Undo",
	"0x4,701b": "Undo",
}

// ToolbarButton returns the caption of an Explorer toolbar button code. Codes
// compare case-insensitively since decoded names are upper-cased.
func ToolbarButton(code string) (string, bool) {
	name, ok := toolbarButtons[strings.ToLower(code)]
	return name, ok
}

func upperKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[strings.ToUpper(k)] = v
	}
	return out
}
