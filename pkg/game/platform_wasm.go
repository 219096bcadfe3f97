//go:build js && wasm

package game

import "syscall/js"

// IsWASM returns true when running in WebAssembly environment
func IsWASM() bool {
	return true
}

// QueryString returns the page's location.search, "?" included.
func QueryString() string {
	loc := js.Global().Get("location")
	if loc.IsUndefined() || loc.IsNull() {
		return ""
	}
	return loc.Get("search").String()
}
