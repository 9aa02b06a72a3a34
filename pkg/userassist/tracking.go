package userassist

import (
	"encoding/binary"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/uakit/internal/format"
	"github.com/joshuapare/uakit/internal/reader"
)

const (
	userAssistPath       = `Software\Microsoft\Windows\CurrentVersion\Explorer\UserAssist`
	explorerAdvancedPath = `Software\Microsoft\Windows\CurrentVersion\Explorer\Advanced`
)

// Tracking reports whether the user hive disables UserAssist recording.
type Tracking struct {
	// NoLog is set when UserAssist\Settings\NoLog equals 1 (Windows XP and 2003).
	NoLog bool
	// TrackProgsOff is set when Explorer\Advanced\Start_TrackProgs is present
	// with any value other than 1 (Windows Vista and later).
	TrackProgsOff bool
}

// Disabled reports whether either setting turns recording off.
func (t Tracking) Disabled() bool { return t.NoLog || t.TrackProgsOff }

// Tracking reads the recording switches from the hive. Absent values mean
// recording is on.
func (s HiveSource) Tracking() (Tracking, error) {
	r, err := s.open()
	if err != nil {
		return Tracking{}, err
	}
	defer r.Close()

	var t Tracking
	if v, ok := lookupSetting(r, userAssistPath+`\Settings`, "NoLog"); ok {
		t.NoLog = v == "1"
	}
	if v, ok := lookupSetting(r, explorerAdvancedPath, "Start_TrackProgs"); ok {
		t.TrackProgsOff = v != "1"
	}
	return t, nil
}

// lookupSetting renders a DWORD or string value as text.
func lookupSetting(r *reader.Reader, path, name string) (string, bool) {
	node, err := r.Find(path)
	if err != nil {
		return "", false
	}
	v, err := r.GetValue(node, name)
	if err != nil {
		return "", false
	}
	switch v.Type {
	case format.RegDword:
		if len(v.Data) < 4 {
			return "", false
		}
		return strconv.FormatUint(uint64(binary.LittleEndian.Uint32(v.Data)), 10), true
	case format.RegSz:
		out, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(v.Data)
		if err != nil {
			return "", false
		}
		return strings.TrimRight(string(out), "\x00"), true
	default:
		return "", false
	}
}
