// Package palette holds the colours shared by the window and the snapshot
// exporters.
package palette

import (
	"image/color"

	"github.com/gogpu/gg"
)

const (
	Background = "#eff1f5"
	Line       = "#181825"
	Dot        = "#585b70"
	Player1    = "#f38ba8"
	Player2    = "#89b4fa"
	NewDot     = "#cba6f7"
)

// Player returns the accent colour for player 1 or 2.
func Player(n int) string {
	if n == 2 {
		return Player2
	}
	return Player1
}

// DotFill returns the fill for a dot with the given line count. Full dots
// take the line colour.
func DotFill(count int) string {
	if count >= 3 {
		return Line
	}
	return Dot
}

// RGBA parses a "#rrggbb" string. Malformed input yields opaque black.
func RGBA(hex string) color.Color {
	return gg.Hex(hex)
}

// RGB8 returns the 8 bit channels of hex.
func RGB8(hex string) (r, g, b uint8) {
	r16, g16, b16, _ := RGBA(hex).RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8)
}
