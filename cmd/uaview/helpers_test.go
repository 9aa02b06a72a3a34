package main

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/uakit/internal/config"
	"github.com/joshuapare/uakit/internal/format"
	"github.com/joshuapare/uakit/internal/testutil"
	"github.com/joshuapare/uakit/pkg/userassist"
)

// resetFlags restores global and command flags to their defaults.
func resetFlags(t *testing.T) {
	t.Helper()
	verbose, quiet, jsonOut, noColor = false, false, false, true
	logDir = ""
	configPath = filepath.Join(t.TempDir(), "config.yaml")
	cfg = config.DefaultConfig()

	entriesFormat, entriesSort, entriesDesc = "", "", false
	entriesHighlight, entriesUTC, entriesWatch = nil, false, false
	explainCopy, explainClasses = false, ""
	exportFormat, exportEncoding, exportForce = "", "UTF-16LE", false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	// Drain concurrently so large outputs cannot fill the pipe.
	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	out := <-done
	r.Close()

	return string(out), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}

var testTime = time.Date(2011, 5, 4, 10, 20, 30, 0, time.UTC)

// Names stored in the test hive, obfuscated as Windows stores them.
var (
	notepadName = userassist.ROT13(`UEME_RUNPATH:C:\WINDOWS\NOTEPAD.EXE`)
	sessionName = userassist.ROT13("UEME_CTLSESSION")
	calcName    = userassist.ROT13(`{1AC14E77-02E7-4E5D-B744-2EB1AE5198B7}\CALC.EXE`)
)

func legacyPayload(session, count uint32, last uint64) []byte {
	b := make([]byte, userassist.PayloadLegacyLen)
	binary.LittleEndian.PutUint32(b[0:], session)
	binary.LittleEndian.PutUint32(b[4:], count)
	binary.LittleEndian.PutUint64(b[8:], last)
	return b
}

func modernPayload(count, focusCount, focusTime uint32, last uint64) []byte {
	b := make([]byte, userassist.PayloadModernLen)
	binary.LittleEndian.PutUint32(b[4:], count)
	binary.LittleEndian.PutUint32(b[8:], focusCount)
	binary.LittleEndian.PutUint32(b[12:], focusTime)
	binary.LittleEndian.PutUint64(b[60:], last)
	return b
}

func dword(name string, v uint32) testutil.Value {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, v)
	return testutil.Value{Name: name, Type: format.RegDword, Data: data}
}

// hiveBuilder assembles a user hive key by key.
type hiveBuilder struct {
	root *testutil.Key
}

func newHiveBuilder() *hiveBuilder {
	return &hiveBuilder{root: &testutil.Key{Name: "ROOT"}}
}

func (b *hiveBuilder) add(path string, values ...testutil.Value) *hiveBuilder {
	parent := b.root
	for _, seg := range strings.Split(path, `\`) {
		var next *testutil.Key
		for _, k := range parent.Subkeys {
			if k.Name == seg {
				next = k
			}
		}
		if next == nil {
			next = &testutil.Key{Name: seg}
			parent.Subkeys = append(parent.Subkeys, next)
		}
		parent = next
	}
	parent.Values = append(parent.Values, values...)
	return b
}

// writeUserHive writes a hive holding one legacy and one modern group.
func writeUserHive(t *testing.T) string {
	t.Helper()
	last := format.TimeToFiletime(testTime)
	groups := userassist.Groups()
	b := newHiveBuilder().
		add(groups[0].CountPath(),
			testutil.Binary(sessionName, []byte{1, 0, 0, 0, 2, 0, 0, 0}),
			testutil.Binary(notepadName, legacyPayload(2, 9, last)),
		).
		add(groups[3].CountPath(),
			testutil.Binary(calcName, modernPayload(3, 4, 5000, last)),
		)
	return testutil.WriteHive(t, b.root)
}

// writeExport writes text as a UTF-16LE .reg file.
func writeExport(t *testing.T, text string) string {
	t.Helper()
	data, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(text))
	if err != nil {
		t.Fatalf("encode export: %v", err)
	}
	path := filepath.Join(t.TempDir(), "ua.reg")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write export: %v", err)
	}
	return path
}

// writeFileAtomic replaces path by renaming a sibling temp file over it.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
