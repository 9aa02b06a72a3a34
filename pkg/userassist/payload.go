package userassist

import (
	"time"

	"github.com/joshuapare/uakit/internal/buf"
	"github.com/joshuapare/uakit/internal/format"
)

// Payload lengths with a known layout.
const (
	PayloadSessionLen = 8
	PayloadLegacyLen  = 16
	PayloadModernLen  = 72
)

// countBias is added to the stored count the first time an entry records a
// timestamp.
const countBias = 5

// Fields holds the values decoded from a payload. A nil field was not present
// in the layout or could not be read.
type Fields struct {
	Unknown          *int32
	Session          *int32
	Count            *int32
	CountAll         *int32 // focus count
	TotalRunningTime *int32 // focus time, milliseconds
	Flags            *int32
	Last             *time.Time // local time
	LastUTC          *time.Time
}

// DecodePayload decodes raw value data. It never fails: unknown lengths yield
// empty Fields, and a short read keeps whatever was decoded before it.
func DecodePayload(b []byte) Fields {
	var f Fields
	c := buf.NewCursor(b)
	switch len(b) {
	case PayloadSessionLen:
		f.Unknown = readI32(c)
		f.Session = readI32(c)
	case PayloadLegacyLen:
		f.Session = readI32(c)
		f.Count = readI32(c)
		if last, ok := c.U64(); ok && last != 0 {
			f.setLast(last)
			if f.Count != nil {
				*f.Count -= countBias
			}
		}
	case PayloadModernLen:
		if !c.Skip(4) {
			return f
		}
		f.Count = readI32(c)
		f.CountAll = readI32(c)
		f.TotalRunningTime = readI32(c)
		if !c.Skip(11 * 4) {
			return f
		}
		if last, ok := c.U64(); ok && last != 0 {
			f.setLast(last)
		}
		f.Flags = readI32(c)
	}
	return f
}

func (f *Fields) setLast(filetime uint64) {
	utc := format.FiletimeToTime(filetime)
	local := utc.Local()
	f.LastUTC = &utc
	f.Last = &local
}

func readI32(c *buf.Cursor) *int32 {
	v, ok := c.I32()
	if !ok {
		return nil
	}
	return &v
}
