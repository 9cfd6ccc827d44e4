package device

import (
	"net/http"
	"strconv"
	"strings"
)

// FromRequest builds Signals from request headers.
// The viewport width comes from the Sec-CH-Viewport-Width client hint, then
// the legacy Viewport-Width hint, then X-Viewport-Width. Touch data is only
// available when the client reports it via X-Device-Touch and
// X-Device-Max-Touch-Points. Malformed values are ignored.
func FromRequest(r *http.Request) Signals {
	if r == nil {
		return Signals{}
	}
	h := r.Header
	return Signals{
		UA:          r.UserAgent(),
		VendorID:    strings.TrimSpace(h.Get(HeaderVendor)),
		OperaID:     strings.TrimSpace(h.Get(HeaderOpera)),
		Width:       firstInt(h, HeaderViewportWidth, HeaderLegacyViewportWidth, HeaderXViewportWidth),
		Touch:       parseBool(h.Get(HeaderTouch)),
		TouchPoints: firstInt(h, HeaderMaxTouchPoints),
	}
}

// firstInt returns the first non-negative integer found in the given headers.
// Client hints may carry fractional values, which are truncated.
func firstInt(h http.Header, names ...string) int {
	for _, name := range names {
		v := strings.TrimSpace(h.Get(name))
		if v == "" {
			continue
		}
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f < float64(1<<31) {
			return int(f)
		}
	}
	return 0
}

// parseBool accepts structured-header booleans (?1, ?0) as well as the usual
// textual forms.
func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "?1", "1", "true", "yes", "on":
		return true
	}
	return false
}
