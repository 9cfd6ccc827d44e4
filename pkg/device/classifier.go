package device

import "strings"

// Profile is the outcome of all classifier queries for one Source.
type Profile struct {
	Mobile         bool    `json:"mobile"`
	Touch          bool    `json:"touch"`
	SwipeThreshold int     `json:"swipe_threshold"`
	SwipeVelocity  float64 `json:"swipe_velocity"`
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithThresholds sets the swipe thresholds.
// Panics when t is invalid so misconfiguration fails at startup.
func WithThresholds(t Thresholds) Option {
	if err := t.Validate(); err != nil {
		panic(err)
	}
	return func(c *Classifier) { c.thresholds = t }
}

// WithMobileMaxWidth sets the inclusive viewport width bound of the
// width-and-touch rule.
func WithMobileMaxWidth(px int) Option {
	if px <= 0 {
		panic("WithMobileMaxWidth: width must be > 0")
	}
	return func(c *Classifier) { c.maxWidth = px }
}

// WithMobileTokens replaces the mobile platform tokens.
// Empty tokens are dropped; at least one token must remain.
func WithMobileTokens(tokens ...string) Option {
	clean := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok = strings.TrimSpace(tok); tok != "" {
			clean = append(clean, tok)
		}
	}
	if len(clean) == 0 {
		panic("WithMobileTokens: at least one token is required")
	}
	return func(c *Classifier) { c.tokens = foldAll(clean) }
}

// Classifier answers device queries against a Source.
// It is immutable after New and safe for concurrent use.
type Classifier struct {
	thresholds Thresholds
	maxWidth   int
	tokens     []string
}

// New returns a Classifier with the canonical tokens, width bound and
// thresholds, adjusted by opts.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		thresholds: DefaultThresholds,
		maxWidth:   MobileMaxWidth,
		tokens:     foldAll(DefaultMobileTokens),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Thresholds returns the configured swipe thresholds.
func (c *Classifier) Thresholds() Thresholds { return c.thresholds }

// IsMobileDevice reports whether src looks like a mobile device: its identifier
// carries a mobile platform token, or its viewport is narrow and touch capable.
// A width of 0 means the viewport is unknown and never counts as narrow.
func (c *Classifier) IsMobileDevice(src Source) bool {
	if src == nil {
		src = Signals{}
	}
	if c.matchesToken(identifier(src)) {
		return true
	}
	w := src.InnerWidth()
	return w > 0 && w <= c.maxWidth && c.IsTouchDevice(src)
}

// IsTouchDevice reports whether src supports touch input.
func (c *Classifier) IsTouchDevice(src Source) bool {
	if src == nil {
		return false
	}
	return src.TouchEvents() || src.MaxTouchPoints() > 0
}

// SwipeThreshold returns the minimum swipe distance in pixels for src.
func (c *Classifier) SwipeThreshold(src Source) int {
	if c.IsMobileDevice(src) {
		return c.thresholds.MobileDistance
	}
	return c.thresholds.DesktopDistance
}

// SwipeVelocity returns the minimum swipe velocity in pixels per millisecond for src.
func (c *Classifier) SwipeVelocity(src Source) float64 {
	if c.IsMobileDevice(src) {
		return c.thresholds.MobileVelocity
	}
	return c.thresholds.DesktopVelocity
}

// Profile evaluates every query once against a snapshot of src.
func (c *Classifier) Profile(src Source) Profile {
	s := Snapshot(src)
	mobile := c.IsMobileDevice(s)
	p := Profile{
		Mobile:         mobile,
		Touch:          c.IsTouchDevice(s),
		SwipeThreshold: c.thresholds.DesktopDistance,
		SwipeVelocity:  c.thresholds.DesktopVelocity,
	}
	if mobile {
		p.SwipeThreshold = c.thresholds.MobileDistance
		p.SwipeVelocity = c.thresholds.MobileVelocity
	}
	return p
}

func (c *Classifier) matchesToken(id string) bool {
	if id == "" {
		return false
	}
	folded := asciiLower(id)
	for _, tok := range c.tokens {
		if strings.Contains(folded, tok) {
			return true
		}
	}
	return false
}

// asciiLower lowercases A-Z only. strings.ToLower would also map letters such
// as U+212A KELVIN SIGN onto ASCII and let them match a token.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}

func foldAll(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = asciiLower(tok)
	}
	return out
}

var defaultClassifier = New()

// Default returns the package-level Classifier used by the top-level functions.
func Default() *Classifier { return defaultClassifier }

// IsMobileDevice reports whether src is mobile using the default Classifier.
func IsMobileDevice(src Source) bool { return defaultClassifier.IsMobileDevice(src) }

// IsTouchDevice reports whether src supports touch input.
func IsTouchDevice(src Source) bool { return defaultClassifier.IsTouchDevice(src) }

// SwipeThreshold returns the default swipe distance threshold for src.
func SwipeThreshold(src Source) int { return defaultClassifier.SwipeThreshold(src) }

// SwipeVelocity returns the default swipe velocity threshold for src.
func SwipeVelocity(src Source) float64 { return defaultClassifier.SwipeVelocity(src) }
