package userassist

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Format identifies the payload layout family of a loaded set.
type Format int

const (
	FormatUnknown Format = iota // nothing loaded
	FormatLegacy                // Windows 2000 through Vista: 8 and 16 byte payloads
	FormatModern                // Windows 7 and later: 72 byte payloads
)

func (f Format) String() string {
	switch f {
	case FormatLegacy:
		return "legacy"
	case FormatModern:
		return "modern"
	default:
		return "unknown"
	}
}

// Group is one of the UserAssist subkeys entries are stored under.
type Group struct {
	ID     uuid.UUID
	Format Format
}

// String returns the canonical braced, upper-case form used in key paths.
func (g Group) String() string {
	return "{" + strings.ToUpper(g.ID.String()) + "}"
}

// CountPath is the key holding the group's entries, relative to the user
// hive root.
func (g Group) CountPath() string {
	return fmt.Sprintf(`Software\Microsoft\Windows\CurrentVersion\Explorer\UserAssist\%s\Count`, g)
}

// ExportSuffix is the tail of the key line a regedit export writes for the
// group. Matching on the tail tolerates exports taken from a mounted hive.
func (g Group) ExportSuffix() string {
	return fmt.Sprintf(`Microsoft\Windows\CurrentVersion\Explorer\UserAssist\%s\Count]`, g)
}

var groups = []Group{
	{ID: uuid.MustParse("0D6D4F41-2994-4BA0-8FEF-620E43CD2812"), Format: FormatLegacy},
	{ID: uuid.MustParse("5E6AB780-7743-11CF-A12B-00AA004AE837"), Format: FormatLegacy},
	{ID: uuid.MustParse("75048700-EF1F-11D0-9888-006097DEACF9"), Format: FormatLegacy},
	{ID: uuid.MustParse("CEBFF5CD-ACE2-4F4F-9178-9926F41749EA"), Format: FormatModern},
	{ID: uuid.MustParse("F4E57C4B-2036-45F0-A9AB-443BCFE33D9F"), Format: FormatModern},
}

// Groups returns the known groups in enumeration order.
func Groups() []Group {
	return append([]Group(nil), groups...)
}

// LookupGroup resolves an identifier in any case, with or without braces.
func LookupGroup(id string) (Group, bool) {
	u, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return Group{}, false
	}
	for _, g := range groups {
		if g.ID == u {
			return g, true
		}
	}
	return Group{}, false
}

func groupRank(g Group) int {
	for i, known := range groups {
		if known == g {
			return i
		}
	}
	return len(groups)
}
