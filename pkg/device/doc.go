// Package device classifies the client behind a request (or a browser tab) as
// a mobile and/or touch device and supplies the swipe thresholds a gesture
// recognizer should use for it.
//
// Classification reads three ambient signals through the Source interface:
//
//   - Identifier - the user-agent string, falling back to the vendor string and
//     then to the legacy Opera identifier when the former are empty
//   - Viewport width - the inner width of the window in CSS pixels
//   - Touch capability - touch event support or a positive touch point count
//
// A client is mobile when its identifier contains one of the mobile platform
// tokens (android, iphone, ipad, ipod, blackberry, iemobile, opera mini), or
// when its viewport is at most 768px wide and it reports touch capability.
// A width of 0 means the viewport is unknown, so a touch-capable client that
// sent no width is classified by its identifier alone.
// Token matching folds ASCII letters only.
// Every query is recomputed from the Source on each call; nothing is cached.
//
// # Sources
//
// Signals is a plain snapshot usable anywhere. FromRequest builds one from
// HTTP headers and client hints:
//
//	sig := device.FromRequest(r)
//	if device.IsMobileDevice(sig) {
//		// serve compact layout
//	}
//
// When compiled for js/wasm the Browser source reads navigator and window
// directly.
//
// # Thresholds
//
//	c := device.New(device.WithThresholds(device.RelaxedThresholds))
//	distance := c.SwipeThreshold(sig) // px
//	velocity := c.SwipeVelocity(sig)  // px/ms
//
// DefaultThresholds uses 30px and 0.2px/ms on mobile. RelaxedThresholds keeps
// the larger mobile values (50px, 0.3px/ms) that some clients were tuned with;
// pick it explicitly when migrating those clients.
//
// # Request scope
//
// Middleware computes a Profile once per request and stores it in the context:
//
//	r.Use(device.Middleware(c, nil))
//	p, ok := device.ProfileFromContext(r.Context())
//
// # Error Handling
//
// The classification queries never fail; missing signals degrade towards the
// non-mobile, non-touch answer. Threshold and signal validation return
// ErrInvalidThresholds, ErrUnknownProfile and ErrInvalidSignals.
package device
