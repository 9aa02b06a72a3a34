package explain

const (
	msgUnknown      = "The purpose of this entry is unknown."
	msgUnexpected   = "The format of this entry is unexpected."
	msgPleaseReport = "Please report this entry so it can be documented."

	msgUnknownPleaseReport    = msgUnknown + "\n" + msgPleaseReport
	msgUnexpectedPleaseReport = msgUnexpected + "\n" + msgPleaseReport

	msgPIDL = "A PIDL is a pointer to an ITEMIDLIST structure, used to identify objects in the Shell namespace.\n" +
		"Examples of PIDLs are folders or shortcuts in the programs start menu.\n" +
		"Reference http://msdn2.microsoft.com/en-us/library/ms538107.aspx."
	msgCSIDL = "CSIDL (constant special item ID list) values provide a unique system-independent way to identify special folders.\n" +
		"Reference http://msdn2.microsoft.com/en-us/library/ms649274.aspx."

	// SessionExplanation is the full text for a UEME_CTLSESSION entry.
	SessionExplanation = "This entry is used for the session ID, it doesn't contain data about executed programs"

	msgPIDLShortcut    = "\nThis PIDL looks like a shortcut."
	msgPIDLFolder      = "\nThis PIDL looks like a folder."
	msgPIDLHasRunPath  = "\nUsually, a UEME_RUNPIDL has a corresponding UEME_RUNPATH.\n\n" + msgPIDL
	msgToolbarButtonID = "\n\nID %s is the %s button."

	msgShellGUID   = "\n\n%s is a known Shell GUID, called %s."
	msgLocalCLSID  = "\n\n%s is a GUID, on this machine it is associated with CLSID %s."
	msgSearchGUID  = "\n\n%s is a GUID, search for it in the registry of the machine you're analyzing."
	msgCSIDLFolder = "\n\n%%csidl%s%% is special folder %s.\n\n" + msgCSIDL

	unknownFolder = "<UNKNOWN>"
)

// template is the prose for one type token. full is used when the name is
// the bare token; partial is a format taking the subject and defaults to
// full when empty.
type template struct {
	full    string
	partial string
	// unexpectedSubject appends msgUnexpectedPleaseReport when the name
	// carries a subject.
	unexpectedSubject bool
}

var templates = map[Type]template{
	TypeCtlCUACount:  {full: msgUnknown},
	TypeCtlSession:   {full: SessionExplanation},
	TypeDBSleep:      {full: msgUnknownPleaseReport},
	TypeDBTrace:      {full: msgUnknownPleaseReport},
	TypeDoneCancel:   {full: msgUnknownPleaseReport},
	TypeDoneFail:     {full: msgUnknownPleaseReport},
	TypeDoneOK:       {full: msgUnknownPleaseReport},
	TypeError:        {full: msgUnknownPleaseReport},
	TypeInstrBrowser: {full: msgUnknownPleaseReport},
	TypeRun:          {full: msgUnknownPleaseReport},
	TypeRunInvoke:    {full: msgUnknownPleaseReport},
	TypeRunOLECmd:    {full: msgUnknownPleaseReport},
	TypeRunWMCmd:     {full: msgUnknownPleaseReport},
	TypeUIHotkey:     {full: msgUnknownPleaseReport},
	TypeUIMenu:       {full: msgUnknownPleaseReport},
	TypeUser:         {full: msgUnknownPleaseReport},
	TypeUIQCut: {
		full:              "This entry counts programs launched via Quick Launch menu shortcuts",
		unexpectedSubject: true,
	},
	TypeUISCut: {
		full:              "This entry counts programs launched via Desktop shortcuts",
		unexpectedSubject: true,
	},
	TypeRunCPL: {
		full:    "This entry keeps data about executed control panel applets (.cpl)",
		partial: "This entry is used for executing control panel applet %s",
	},
	TypeRunPath: {
		full:    "This entry keeps data about executed programs",
		partial: "This entry is used for executing program %s",
	},
	TypeRunPIDL: {
		full:    "This entry keeps data about executed PIDLs.\n\n" + msgPIDL,
		partial: "This entry is used for executing PIDL %s.",
	},
	TypeUIToolbar: {
		full:    "This entry keeps data about clicks on Windows Explorer toolbar buttons",
		partial: "This entry is used for clicking a Windows Explorer toolbar button with ID %s",
	},
}
