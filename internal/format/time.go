package format

import "time"

const (
	// filetimeEpochDelta is the number of seconds between 1601-01-01 and 1970-01-01.
	filetimeEpochDelta  = 11644473600
	filetimeTicksPerSec = 10_000_000
	filetimeTickNanos   = 100
)

// FiletimeToTime converts a Windows FILETIME (100ns ticks since
// 1601-01-01T00:00:00Z) to a UTC time.Time. The conversion is exact for the
// full uint64 range, including instants before the Unix epoch.
func FiletimeToTime(v uint64) time.Time {
	sec := int64(v/filetimeTicksPerSec) - filetimeEpochDelta
	nsec := int64(v%filetimeTicksPerSec) * filetimeTickNanos
	return time.Unix(sec, nsec).UTC()
}

// TimeToFiletime converts t to a Windows FILETIME. Instants before 1601 map to 0.
func TimeToFiletime(t time.Time) uint64 {
	sec := t.Unix() + filetimeEpochDelta
	if sec < 0 {
		return 0
	}
	return uint64(sec)*filetimeTicksPerSec + uint64(t.Nanosecond())/filetimeTickNanos
}
