package sprouts

import (
	"strconv"
	"strings"

	"github.com/mpihlak/gosprouts/pkg/game/board"
)

// Config is everything a match needs from the host environment.
type Config struct {
	// StartingDots is clamped to [2, 10]. Zero means the default of 3.
	StartingDots int
	// Seed drives the starting dot jitter. Zero picks a time based seed.
	Seed int64
}

// Normalize fills defaults and applies the starting dot clamp.
func (c Config) Normalize() Config {
	if c.StartingDots == 0 {
		c.StartingDots = board.DefaultStartingDots
	}
	c.StartingDots = board.ClampStartingDots(c.StartingDots)
	return c
}

// ParseStartingDots reads a page query string such as "?5". An empty query
// gives the default; anything that is not a number gives the minimum.
func ParseStartingDots(query string) int {
	query = strings.TrimPrefix(query, "?")
	if query == "" {
		return board.DefaultStartingDots
	}
	n, err := strconv.Atoi(leadingDigits(query))
	if err != nil {
		return board.MinStartingDots
	}
	return board.ClampStartingDots(n)
}

// leadingDigits keeps an optional sign and the digits that follow it, so
// "7&debug" reads as 7.
func leadingDigits(s string) string {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
