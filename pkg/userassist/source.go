package userassist

import (
	"bytes"
	"context"
	"errors"
	"os"

	"github.com/joshuapare/uakit/internal/format"
	"github.com/joshuapare/uakit/internal/logger"
	"github.com/joshuapare/uakit/internal/reader"
	"github.com/joshuapare/uakit/internal/regtext"
)

// StaticSource serves a fixed list of entries.
type StaticSource []RawEntry

// FetchRawEntries implements Source.
func (s StaticSource) FetchRawEntries(context.Context) ([]RawEntry, error) {
	return append([]RawEntry(nil), s...), nil
}

// RegFileSource reads a regedit export (.reg) from disk.
type RegFileSource struct {
	Path string
}

// FetchRawEntries implements Source.
func (s RegFileSource) FetchRawEntries(ctx context.Context) ([]RawEntry, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, sourceError("read export", err)
	}
	return parseExport(ctx, data)
}

func parseExport(ctx context.Context, data []byte) ([]RawEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lines, err := regtext.LinesFromBytes(data)
	if err != nil {
		return nil, formatError("decode export", err)
	}
	return ParseLines(lines), nil
}

// HiveSource reads an offline user hive (NTUSER.DAT) without loading it into
// the live registry.
type HiveSource struct {
	Path string
}

// FetchRawEntries implements Source. Groups missing from the hive are
// skipped, and values that are not REG_BINARY yield empty data.
func (s HiveSource) FetchRawEntries(ctx context.Context) ([]RawEntry, error) {
	r, err := s.open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return hiveEntries(ctx, r)
}

func (s HiveSource) open() (*reader.Reader, error) {
	r, err := reader.Open(s.Path)
	if err != nil {
		if errors.Is(err, format.ErrSignatureMismatch) || errors.Is(err, format.ErrTruncated) {
			return nil, formatError("open hive", err)
		}
		return nil, sourceError("open hive", err)
	}
	return r, nil
}

func hiveEntries(ctx context.Context, r *reader.Reader) ([]RawEntry, error) {
	var out []RawEntry
	for _, g := range groups {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		node, err := r.Find(g.CountPath())
		if err != nil {
			logger.Debug("userassist group not present", "group", g.String(), "error", err)
			continue
		}
		ids, err := r.Values(node)
		if err != nil {
			logger.Debug("userassist value list unreadable", "group", g.String(), "error", err)
			continue
		}
		index := 0
		for _, id := range ids {
			v, err := r.Value(id)
			if err != nil {
				logger.Debug("userassist value unreadable", "group", g.String(), "error", err)
				continue
			}
			data := []byte{}
			if v.Type == format.RegBinary {
				data = append(data, v.Data...)
			}
			out = append(out, RawEntry{Group: g, Index: index, Name: v.Name, Data: data})
			index++
		}
	}
	return out, nil
}

// FileSource detects whether path is a hive or a regedit export and reads it
// accordingly.
type FileSource struct {
	Path string
}

// FetchRawEntries implements Source.
func (s FileSource) FetchRawEntries(ctx context.Context) ([]RawEntry, error) {
	kind, err := DetectFile(s.Path)
	if err != nil {
		return nil, err
	}
	if kind == KindHive {
		return HiveSource(s).FetchRawEntries(ctx)
	}
	return RegFileSource(s).FetchRawEntries(ctx)
}

// FileKind is the detected type of an input file.
type FileKind int

const (
	KindHive FileKind = iota + 1
	KindExport
)

// DetectFile inspects the start of path. Anything that is not a hive but
// reads as text is treated as an export; binary input fails with ErrFormat.
func DetectFile(path string) (FileKind, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, sourceError("open input", err)
	}
	defer f.Close()

	head := make([]byte, 256)
	n, _ := f.Read(head)
	head = head[:n]
	switch {
	case format.IsHive(head):
		return KindHive, nil
	case regtext.LooksLikeExport(head):
		return KindExport, nil
	case bytes.HasPrefix(head, regtext.UTF16LEBOM), regtext.LooksLikeText(head):
		// header-less text dumps share the value line grammar
		return KindExport, nil
	default:
		return 0, ErrFormat
	}
}
