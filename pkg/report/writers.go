package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// HighlightStyle is applied to highlighted rows by WriteText.
var HighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F87"))

// TextOptions controls WriteText.
type TextOptions struct {
	NoColor bool
	// Marker prefixes highlighted rows when color is off.
	Marker string
}

// WriteText writes an aligned table. Highlighted rows are styled after
// alignment so escape sequences do not skew column widths.
func (t *Table) WriteText(w io.Writer, opts TextOptions) error {
	var b bytes.Buffer
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Columns, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row.Cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	marker := opts.Marker
	if marker == "" {
		marker = "* "
	}
	pad := ""
	if slices.ContainsFunc(t.Rows, func(r Row) bool { return r.Highlighted }) {
		pad = strings.Repeat(" ", len(marker))
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " ")
		highlighted := i > 0 && i <= len(t.Rows) && t.Rows[i-1].Highlighted
		switch {
		case opts.NoColor && highlighted:
			line = marker + line
		case opts.NoColor:
			line = pad + line
		case highlighted:
			line = HighlightStyle.Render(line)
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes the table with every field quoted, header first.
func (t *Table) WriteCSV(w io.Writer) error {
	if err := writeCSVRecord(w, t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := writeCSVRecord(w, row.Cells); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVRecord(w io.Writer, fields []string) error {
	var sb strings.Builder
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(f, `"`, `""`))
		sb.WriteByte('"')
	}
	sb.WriteString("\r\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

var htmlTemplate = template.Must(template.New("report").Parse(`<html><body><table border="1">
<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table></body></html>
`))

// WriteHTML writes the table as a bordered HTML table.
func (t *Table) WriteHTML(w io.Writer) error {
	return htmlTemplate.Execute(w, t)
}

type jsonEntry struct {
	Key             string     `json:"key"`
	Index           int        `json:"index"`
	Name            string     `json:"name"`
	RawName         string     `json:"raw_name"`
	Unknown         *int32     `json:"unknown,omitempty"`
	Session         *int32     `json:"session,omitempty"`
	Count           *int32     `json:"count,omitempty"`
	RemovedFromList bool       `json:"removed_from_list,omitempty"`
	FocusCount      *int32     `json:"focus_count,omitempty"`
	FocusTimeMillis *int32     `json:"focus_time_ms,omitempty"`
	Flags           *int32     `json:"flags,omitempty"`
	Last            *time.Time `json:"last,omitempty"`
	LastUTC         *time.Time `json:"last_utc,omitempty"`
	Highlighted     bool       `json:"highlighted,omitempty"`
	PayloadLength   int        `json:"payload_length"`
}

type jsonTable struct {
	Format  string      `json:"format"`
	Entries []jsonEntry `json:"entries"`
}

// WriteJSON writes the rows with typed fields in table order.
func (t *Table) WriteJSON(w io.Writer) error {
	out := jsonTable{Format: t.Format.String(), Entries: make([]jsonEntry, 0, len(t.Rows))}
	for _, row := range t.Rows {
		e := row.Entry
		out.Entries = append(out.Entries, jsonEntry{
			Key:             e.Key.Group.String(),
			Index:           e.Key.Index,
			Name:            e.ReadableName(),
			RawName:         e.Name,
			Unknown:         e.Unknown,
			Session:         e.Session,
			Count:           e.Count,
			RemovedFromList: e.CountRemoved(),
			FocusCount:      e.CountAll,
			FocusTimeMillis: e.TotalRunningTime,
			Flags:           e.Flags,
			Last:            e.Last,
			LastUTC:         e.LastUTC,
			Highlighted:     row.Highlighted,
			PayloadLength:   len(e.Data),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
