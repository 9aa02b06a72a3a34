// Package report lays UserAssist entries out as a table and writes it as
// text, CSV, HTML or JSON.
package report

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joshuapare/uakit/pkg/userassist"
)

// TimeLayout is used for the Last and Last UTC columns.
const TimeLayout = "2006-01-02 15:04:05"

// RemovedFromList replaces the count of entries removed from the start menu.
const RemovedFromList = "removed from list"

// Column names.
const (
	ColKey        = "Key"
	ColIndex      = "Index"
	ColName       = "Name"
	ColUnknown    = "Unknown"
	ColSession    = "Session"
	ColCount      = "Count"
	ColLast       = "Last"
	ColLastUTC    = "Last UTC"
	ColFocusCount = "Focus count"
	ColFocusTime  = "Focus time"
	ColFlags      = "Flags"
)

type column struct {
	name string
	cell func(e *userassist.Entry) string
	// less orders rows on this column. Absent values sort first.
	less func(a, b *userassist.Entry) int
}

var allColumns = map[string]column{
	ColKey: {ColKey, func(e *userassist.Entry) string { return e.Key.Group.String() }, func(a, b *userassist.Entry) int {
		return strings.Compare(a.Key.Group.String(), b.Key.Group.String())
	}},
	ColIndex: {ColIndex, func(e *userassist.Entry) string { return strconv.Itoa(e.Key.Index) }, func(a, b *userassist.Entry) int {
		return cmp.Compare(a.Key.Index, b.Key.Index)
	}},
	ColName: {ColName, func(e *userassist.Entry) string { return e.ReadableName() }, func(a, b *userassist.Entry) int {
		return strings.Compare(a.ReadableName(), b.ReadableName())
	}},
	ColUnknown:    int32Column(ColUnknown, func(e *userassist.Entry) *int32 { return e.Unknown }),
	ColSession:    int32Column(ColSession, func(e *userassist.Entry) *int32 { return e.Session }),
	ColCount:      countColumn(),
	ColLast:       timeColumn(ColLast, func(e *userassist.Entry) *time.Time { return e.Last }),
	ColLastUTC:    timeColumn(ColLastUTC, func(e *userassist.Entry) *time.Time { return e.LastUTC }),
	ColFocusCount: int32Column(ColFocusCount, func(e *userassist.Entry) *int32 { return e.CountAll }),
	ColFocusTime:  int32Column(ColFocusTime, func(e *userassist.Entry) *int32 { return e.TotalRunningTime }),
	ColFlags:      int32Column(ColFlags, func(e *userassist.Entry) *int32 { return e.Flags }),
}

var (
	legacyColumns = []string{ColKey, ColIndex, ColName, ColUnknown, ColSession, ColCount, ColLast, ColLastUTC}
	modernColumns = []string{ColKey, ColIndex, ColName, ColCount, ColLast, ColLastUTC, ColFocusCount, ColFocusTime, ColFlags}
)

// Columns returns the column set shown for a layout family. Sets that have
// not been classified are shown with the legacy columns.
func Columns(kind userassist.Format) []string {
	if kind == userassist.FormatModern {
		return slices.Clone(modernColumns)
	}
	return slices.Clone(legacyColumns)
}

// Row is one rendered entry.
type Row struct {
	Entry       *userassist.Entry
	Cells       []string
	Highlighted bool
}

// Table is a rendered entry list.
type Table struct {
	Format  userassist.Format
	Columns []string
	Rows    []Row
}

// Build renders entries with the columns for kind.
func Build(entries []*userassist.Entry, kind userassist.Format) *Table {
	t := &Table{Format: kind, Columns: Columns(kind)}
	for _, e := range entries {
		row := Row{Entry: e, Cells: make([]string, len(t.Columns))}
		for i, name := range t.Columns {
			row.Cells[i] = allColumns[name].cell(e)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Highlight marks rows whose readable name matches any of exprs,
// case-insensitively. It returns the number of rows marked.
func (t *Table) Highlight(exprs []string) (int, error) {
	var res []*regexp.Regexp
	for _, expr := range exprs {
		if expr == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			return 0, fmt.Errorf("highlight %q: %w", expr, err)
		}
		res = append(res, re)
	}
	n := 0
	for i := range t.Rows {
		name := t.Rows[i].Entry.ReadableName()
		t.Rows[i].Highlighted = slices.ContainsFunc(res, func(re *regexp.Regexp) bool {
			return re.MatchString(name)
		})
		if t.Rows[i].Highlighted {
			n++
		}
	}
	return n, nil
}

// Hide removes the named columns from the table. Unknown names are ignored.
func (t *Table) Hide(names ...string) {
	keep := make([]int, 0, len(t.Columns))
	for i, c := range t.Columns {
		if !slices.Contains(names, c) {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(t.Columns) {
		return
	}
	cols := make([]string, len(keep))
	for j, i := range keep {
		cols[j] = t.Columns[i]
	}
	t.Columns = cols
	for r := range t.Rows {
		cells := make([]string, len(keep))
		for j, i := range keep {
			cells[j] = t.Rows[r].Cells[i]
		}
		t.Rows[r].Cells = cells
	}
}

// SortBy orders rows on the named column. The sort is stable.
func (t *Table) SortBy(name string, descending bool) error {
	col, ok := lookupColumn(name)
	if !ok || !slices.Contains(t.Columns, col.name) {
		return fmt.Errorf("unknown column %q (have %s)", name, strings.Join(t.Columns, ", "))
	}
	slices.SortStableFunc(t.Rows, func(a, b Row) int {
		r := col.less(a.Entry, b.Entry)
		if descending {
			return -r
		}
		return r
	})
	return nil
}

func lookupColumn(name string) (column, bool) {
	for k, c := range allColumns {
		if strings.EqualFold(k, name) || strings.EqualFold(strings.ReplaceAll(k, " ", "-"), name) {
			return c, true
		}
	}
	return column{}, false
}

func int32Column(name string, get func(*userassist.Entry) *int32) column {
	return column{
		name: name,
		cell: func(e *userassist.Entry) string {
			if v := get(e); v != nil {
				return strconv.Itoa(int(*v))
			}
			return ""
		},
		less: func(a, b *userassist.Entry) int { return compareOptional(get(a), get(b), cmp.Compare[int32]) },
	}
}

func countColumn() column {
	c := int32Column(ColCount, func(e *userassist.Entry) *int32 { return e.Count })
	cell := c.cell
	c.cell = func(e *userassist.Entry) string {
		if e.CountRemoved() {
			return RemovedFromList
		}
		return cell(e)
	}
	return c
}

func timeColumn(name string, get func(*userassist.Entry) *time.Time) column {
	return column{
		name: name,
		cell: func(e *userassist.Entry) string {
			if v := get(e); v != nil {
				return v.Format(TimeLayout)
			}
			return ""
		},
		less: func(a, b *userassist.Entry) int {
			return compareOptional(get(a), get(b), func(x, y time.Time) int { return x.Compare(y) })
		},
	}
}

func compareOptional[T any](a, b *T, f func(T, T) int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return f(*a, *b)
	}
}
