package device

import "fmt"

// Source exposes the ambient signals of a client environment.
// Implementations must tolerate missing data by returning zero values.
type Source interface {
	// UserAgent returns the client identification string (navigator.userAgent).
	UserAgent() string
	// Vendor returns the vendor string (navigator.vendor).
	Vendor() string
	// Opera returns the legacy Opera identifier (window.opera).
	Opera() string
	// InnerWidth returns the viewport inner width in CSS pixels.
	InnerWidth() int
	// TouchEvents reports whether touch events are supported.
	TouchEvents() bool
	// MaxTouchPoints returns the maximum number of simultaneous touch points.
	MaxTouchPoints() int
}

// Signals is a snapshot of a client environment. It implements Source.
type Signals struct {
	UA          string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	VendorID    string `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	OperaID     string `json:"opera,omitempty" yaml:"opera,omitempty"`
	Width       int    `json:"inner_width" yaml:"inner_width"`
	Touch       bool   `json:"touch_events" yaml:"touch_events"`
	TouchPoints int    `json:"max_touch_points" yaml:"max_touch_points"`
}

func (s Signals) UserAgent() string   { return s.UA }
func (s Signals) Vendor() string      { return s.VendorID }
func (s Signals) Opera() string       { return s.OperaID }
func (s Signals) InnerWidth() int     { return s.Width }
func (s Signals) TouchEvents() bool   { return s.Touch }
func (s Signals) MaxTouchPoints() int { return s.TouchPoints }

// IsZero reports whether no signal is set.
func (s Signals) IsZero() bool { return s == Signals{} }

// Problems lists invalid fields keyed by their JSON name.
// Negative widths and touch point counts cannot come from a real environment.
func (s Signals) Problems() map[string][]string {
	var p map[string][]string
	add := func(field, msg string) {
		if p == nil {
			p = make(map[string][]string)
		}
		p[field] = append(p[field], msg)
	}
	if s.Width < 0 {
		add("inner_width", "must not be negative")
	}
	if s.TouchPoints < 0 {
		add("max_touch_points", "must not be negative")
	}
	return p
}

// Validate returns ErrInvalidSignals when Problems reports anything.
func (s Signals) Validate() error {
	if p := s.Problems(); len(p) > 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSignals, p)
	}
	return nil
}

// Snapshot copies the current values of src into Signals.
// A nil src yields zero Signals.
func Snapshot(src Source) Signals {
	if src == nil {
		return Signals{}
	}
	if s, ok := src.(Signals); ok {
		return s
	}
	return Signals{
		UA:          src.UserAgent(),
		VendorID:    src.Vendor(),
		OperaID:     src.Opera(),
		Width:       src.InnerWidth(),
		Touch:       src.TouchEvents(),
		TouchPoints: src.MaxTouchPoints(),
	}
}

// Merge fills the empty fields of primary from fallback.
// Touch support is the union of both since headers can only add it.
func Merge(primary, fallback Signals) Signals {
	out := primary
	if out.UA == "" {
		out.UA = fallback.UA
	}
	if out.VendorID == "" {
		out.VendorID = fallback.VendorID
	}
	if out.OperaID == "" {
		out.OperaID = fallback.OperaID
	}
	if out.Width == 0 {
		out.Width = fallback.Width
	}
	if !out.Touch {
		out.Touch = fallback.Touch
	}
	if out.TouchPoints == 0 {
		out.TouchPoints = fallback.TouchPoints
	}
	return out
}

// identifier resolves the string matched against mobile tokens:
// user agent, then vendor, then the Opera identifier.
func identifier(src Source) string {
	if ua := src.UserAgent(); ua != "" {
		return ua
	}
	if v := src.Vendor(); v != "" {
		return v
	}
	return src.Opera()
}
