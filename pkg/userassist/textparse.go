package userassist

import (
	"regexp"
	"strings"

	"github.com/joshuapare/uakit/internal/regtext"
)

type parseState int

const (
	stateStart parseState = iota
	stateKeyFound
	stateAccumulating
	stateFullEntry
	stateEmpty
)

var valueLine = regexp.MustCompile(`^"(.+)"=hex:(.*)$`)

// TextParser rebuilds raw entries from the lines of a regedit export.
//
// A key line ending in a group's ExportSuffix opens a block and resets the
// index. Inside a block, lines ending in a backslash are joined with the
// next; each completed line matching "<name>"=hex:<bytes> becomes one entry
// (an empty byte list gives an entry with no data),
// and an empty line closes the block. Malformed hex yields an entry with no
// data. A continuation still open at the end of input is dropped.
type TextParser struct {
	state parseState
	group Group
	index int
	acc   strings.Builder
	out   []RawEntry
}

// ParseLines runs a parser over lines and returns the entries found.
func ParseLines(lines []string) []RawEntry {
	var p TextParser
	for _, line := range lines {
		p.Feed(line)
	}
	return p.Entries()
}

// Feed processes one line. A trailing carriage return is ignored, so raw
// CRLF-split lines work as well as lines from regtext.Lines.
func (p *TextParser) Feed(line string) {
	line = strings.TrimSuffix(line, "\r")
	if g, ok := matchKeyLine(line); ok {
		p.state = stateKeyFound
		p.group = g
		p.index = 0
		return
	}

	switch p.state {
	case stateKeyFound:
		p.acc.Reset()
		p.accumulate(line)
	case stateAccumulating:
		p.accumulate(line)
	default:
		// before the first key line, or after a block ended
		return
	}

	if p.state == stateFullEntry {
		p.complete()
	}
}

// Entries returns the entries parsed so far.
func (p *TextParser) Entries() []RawEntry {
	return p.out
}

func (p *TextParser) accumulate(line string) {
	if strings.HasSuffix(line, regtext.Backslash) {
		p.acc.WriteString(strings.TrimSuffix(line, regtext.Backslash))
		p.state = stateAccumulating
		return
	}
	p.acc.WriteString(line)
	p.state = stateFullEntry
}

func (p *TextParser) complete() {
	full := p.acc.String()
	p.acc.Reset()
	if full == "" {
		p.state = stateEmpty
		return
	}
	p.state = stateKeyFound

	m := valueLine.FindStringSubmatch(full)
	if m == nil {
		return
	}
	data, err := regtext.ParseHexList(m[2])
	if err != nil {
		data = []byte{}
	}
	p.out = append(p.out, RawEntry{
		Group: p.group,
		Index: p.index,
		Name:  regtext.UnescapeName(m[1]),
		Data:  data,
	})
	p.index++
}

func matchKeyLine(line string) (Group, bool) {
	upper := strings.ToUpper(line)
	for _, g := range groups {
		if strings.HasSuffix(upper, strings.ToUpper(g.ExportSuffix())) {
			return g, true
		}
	}
	return Group{}, false
}
