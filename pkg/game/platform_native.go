//go:build !js || !wasm

package game

// IsWASM returns true when running in WebAssembly environment
func IsWASM() bool {
	return false
}

// QueryString is empty outside the browser.
func QueryString() string {
	return ""
}
