package clsid

import (
	"strings"
	"sync"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/uakit/internal/format"
	"github.com/joshuapare/uakit/internal/logger"
	"github.com/joshuapare/uakit/internal/reader"
)

// classRoots are tried in order: a SOFTWARE hive keeps classes under
// Classes, a UsrClass.dat hive has CLSID at its root.
var classRoots = []string{`Classes\CLSID`, `CLSID`}

// HiveLookup reads CLSID registrations from an offline SOFTWARE or
// UsrClass.dat hive. It is safe for concurrent use.
type HiveLookup struct {
	mu    sync.Mutex
	r     *reader.Reader
	cache map[string]string
}

// OpenHive opens the hive at path.
func OpenHive(path string) (*HiveLookup, error) {
	r, err := reader.Open(path)
	if err != nil {
		return nil, err
	}
	return &HiveLookup{r: r, cache: make(map[string]string)}, nil
}

// Close releases the hive.
func (h *HiveLookup) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.r.Close()
}

// Lookup implements Lookup using the default value of the CLSID key.
func (h *HiveLookup) Lookup(guid string) (string, bool) {
	key, ok := Canonical(guid)
	if !ok {
		return "", false
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if name, ok := h.cache[key]; ok {
		return name, name != ""
	}
	name := h.find(key)
	h.cache[key] = name
	return name, name != ""
}

func (h *HiveLookup) find(key string) string {
	for _, root := range classRoots {
		node, err := h.r.Find(root + `\` + key)
		if err != nil {
			continue
		}
		v, err := h.r.GetValue(node, "")
		if err != nil {
			logger.Debug("clsid default value unreadable", "clsid", key, "error", err)
			continue
		}
		if name := decodeString(v); name != "" {
			return name
		}
	}
	return ""
}

func decodeString(v reader.Value) string {
	switch v.Type {
	case format.RegSz, format.RegExpandSz:
	default:
		return ""
	}
	out, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(v.Data)
	if err != nil {
		return ""
	}
	s := string(out)
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return s
}
