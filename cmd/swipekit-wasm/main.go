//go:build js && wasm

// Command swipekit-wasm publishes the device queries to the page:
//
//	isMobileDevice()    boolean
//	isTouchDevice()     boolean
//	getSwipeThreshold() number, pixels
//	getSwipeVelocity()  number, pixels per millisecond
//
// Each call reads navigator and window afresh.
package main

import (
	"syscall/js"

	"github.com/dmitrymomot/swipekit/pkg/device"
)

func main() {
	c := device.New()
	src := device.Browser{}
	global := js.Global()

	global.Set("isMobileDevice", js.FuncOf(func(js.Value, []js.Value) any {
		return c.IsMobileDevice(src)
	}))
	global.Set("isTouchDevice", js.FuncOf(func(js.Value, []js.Value) any {
		return c.IsTouchDevice(src)
	}))
	global.Set("getSwipeThreshold", js.FuncOf(func(js.Value, []js.Value) any {
		return c.SwipeThreshold(src)
	}))
	global.Set("getSwipeVelocity", js.FuncOf(func(js.Value, []js.Value) any {
		return c.SwipeVelocity(src)
	}))

	// Keep the exported functions alive.
	select {}
}
