//go:build js && wasm

package device

import "syscall/js"

// Browser reads signals from the navigator and window globals of the page it
// runs in. Every read happens at call time; missing properties yield zero values.
type Browser struct{}

var _ Source = Browser{}

func (Browser) UserAgent() string { return stringProp(navigator(), "userAgent") }
func (Browser) Vendor() string    { return stringProp(navigator(), "vendor") }
func (Browser) Opera() string     { return stringProp(js.Global(), "opera") }

func (Browser) InnerWidth() int { return intProp(js.Global(), "innerWidth") }

func (Browser) TouchEvents() bool {
	w := js.Global()
	if !w.Truthy() {
		return false
	}
	// Equivalent of `'ontouchstart' in window`.
	return js.Global().Get("Reflect").Call("has", w, "ontouchstart").Bool()
}

func (Browser) MaxTouchPoints() int { return intProp(navigator(), "maxTouchPoints") }

func navigator() js.Value { return js.Global().Get("navigator") }

func stringProp(obj js.Value, name string) string {
	if obj.IsUndefined() || obj.IsNull() {
		return ""
	}
	v := obj.Get(name)
	switch v.Type() {
	case js.TypeString:
		return v.String()
	case js.TypeObject, js.TypeFunction:
		// window.opera is an object; its string form is the identifier.
		return v.Call("toString").String()
	}
	return ""
}

func intProp(obj js.Value, name string) int {
	if obj.IsUndefined() || obj.IsNull() {
		return 0
	}
	v := obj.Get(name)
	if v.Type() != js.TypeNumber {
		return 0
	}
	return v.Int()
}
