// Package explain classifies decoded UserAssist entry names and describes
// them in prose.
package explain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	csidlPattern = regexp.MustCompile(`(?i)%csidl([0-9]+)%`)
	guidPattern  = regexp.MustCompile(`\{[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}\}`)
)

// IdentifierLookup resolves a braced GUID to the name it is registered
// under. Implementations are best effort and report false when unsure.
type IdentifierLookup interface {
	Lookup(guid string) (string, bool)
}

// Analysis is the structural breakdown of a decoded name.
type Analysis struct {
	Type      Type
	FullMatch bool   // the name is the bare token
	Subject   string // text after the token, one leading colon removed
	GUID      string // first braced GUID in Subject, upper-cased
	// CSIDL is the digits of the first %csidlN% placeholder in Subject.
	CSIDL string
}

// Analyze matches name against the type tokens. It returns false when no
// token prefixes the name.
func Analyze(name string) (Analysis, bool) {
	for _, tok := range tokens {
		n := len(tok.prefix)
		if len(name) < n || !strings.EqualFold(name[:n], tok.prefix) {
			continue
		}
		a := Analysis{Type: tok.typ, FullMatch: len(name) == n}
		if a.FullMatch {
			return a, true
		}
		a.Subject = strings.TrimPrefix(name[n:], ":")
		if m := csidlPattern.FindStringSubmatch(a.Subject); m != nil {
			a.CSIDL = m[1]
		}
		if m := guidPattern.FindString(a.Subject); m != "" {
			a.GUID = strings.ToUpper(m)
		}
		return a, true
	}
	return Analysis{Type: TypeUnknown}, false
}

// Classifier explains decoded names. The zero value works without an
// external identifier lookup.
type Classifier struct {
	lookup IdentifierLookup
}

// New returns a Classifier that consults lookup for GUIDs outside the
// built-in shell table. lookup may be nil.
func New(lookup IdentifierLookup) *Classifier {
	return &Classifier{lookup: lookup}
}

// Explain describes what the decoded name records.
func (c *Classifier) Explain(name string) string {
	a, ok := Analyze(name)
	if !ok {
		return msgUnknownPleaseReport
	}

	var b strings.Builder
	b.WriteString(describeType(a))
	if a.GUID != "" {
		b.WriteString(c.describeGUID(a.GUID))
	}
	if a.CSIDL != "" {
		b.WriteString(describeCSIDL(a.CSIDL))
	}
	return b.String()
}

func describeType(a Analysis) string {
	tpl, ok := templates[a.Type]
	if !ok {
		return msgUnknownPleaseReport
	}
	if a.FullMatch || tpl.partial == "" {
		if tpl.unexpectedSubject && !a.FullMatch {
			return tpl.full + "\n" + msgUnexpectedPleaseReport
		}
		return tpl.full
	}

	text := fmt.Sprintf(tpl.partial, a.Subject)
	switch a.Type {
	case TypeRunPIDL:
		lower := strings.ToLower(a.Subject)
		switch {
		case strings.HasSuffix(lower, ".lnk"):
			text += msgPIDLShortcut
		case !strings.Contains(lower, "."):
			text += msgPIDLFolder
		}
		text += msgPIDLHasRunPath
	case TypeUIToolbar:
		if button, ok := ToolbarButton(a.Subject); ok {
			text += fmt.Sprintf(msgToolbarButtonID, a.Subject, button)
		}
	}
	return text
}

func (c *Classifier) describeGUID(guid string) string {
	if name, ok := ShellGUIDName(guid); ok {
		return fmt.Sprintf(msgShellGUID, guid, name)
	}
	if c != nil && c.lookup != nil {
		if name, ok := c.lookup.Lookup(guid); ok && name != "" {
			return fmt.Sprintf(msgLocalCLSID, guid, name)
		}
	}
	return fmt.Sprintf(msgSearchGUID, guid)
}

func describeCSIDL(digits string) string {
	folder := unknownFolder
	shown := digits
	if code, err := strconv.Atoi(digits); err == nil {
		shown = strconv.Itoa(code)
		if name, ok := CSIDLName(code); ok {
			folder = name
		}
	}
	return fmt.Sprintf(msgCSIDLFolder, shown, folder)
}
