package device

// MobileMaxWidth is the widest viewport, in CSS pixels, still treated as mobile
// when the client also reports touch capability. The bound is inclusive.
const MobileMaxWidth = 768

// Mobile platform tokens matched case-insensitively against the identifier.
const (
	TokenAndroid    = "android"
	TokenIPhone     = "iphone"
	TokenIPad       = "ipad"
	TokenIPod       = "ipod"
	TokenBlackBerry = "blackberry"
	TokenIEMobile   = "iemobile"
	TokenOperaMini  = "opera mini"
)

// Threshold profile names accepted by ParseThresholds.
const (
	ProfileDefault = "default"
	ProfileRelaxed = "relaxed"
)

// Request headers read by FromRequest.
const (
	HeaderViewportWidth       = "Sec-CH-Viewport-Width"
	HeaderLegacyViewportWidth = "Viewport-Width"
	HeaderXViewportWidth      = "X-Viewport-Width"
	HeaderVendor              = "X-Device-Vendor"
	HeaderOpera               = "X-Device-Opera"
	HeaderTouch               = "X-Device-Touch"
	HeaderMaxTouchPoints      = "X-Device-Max-Touch-Points"
)

// DefaultMobileTokens is the token set used by New unless overridden.
var DefaultMobileTokens = []string{
	TokenAndroid,
	TokenIPhone,
	TokenIPad,
	TokenIPod,
	TokenBlackBerry,
	TokenIEMobile,
	TokenOperaMini,
}
