package board

import (
	"math"
	"math/rand"

	"github.com/mpihlak/gosprouts/pkg/geometry"
)

const (
	// DotRadius is the drawn radius of a dot in world units.
	DotRadius = 8.0
	// ClickMultiplier widens the pick radius around a dot.
	ClickMultiplier = 1.5
	// MaxCount is the number of line ends a dot can take.
	MaxCount = 3
	// MinDistanceFromExistingPoints keeps new dots away from old ones.
	MinDistanceFromExistingPoints = DotRadius * 4

	// MinStartingDots and MaxStartingDots bound the starting layout.
	MinStartingDots = 2
	MaxStartingDots = 10
	// DefaultStartingDots is used when no count is configured.
	DefaultStartingDots = 3

	dotXSpread       = 200.0
	dotYSpreadPerDot = 100
)

// Dot is a board vertex. Count is the number of line ends attached to it.
type Dot struct {
	Pos   geometry.Point
	Count int
}

// Selectable reports whether a line may still start or end at the dot.
func (d *Dot) Selectable() bool {
	return d.Count < MaxCount
}

// Board holds every committed dot and line. It only grows.
type Board struct {
	Dots  []*Dot
	Lines []geometry.Polyline
}

// ClampStartingDots forces n into [MinStartingDots, MaxStartingDots].
func ClampStartingDots(n int) int {
	if n < MinStartingDots {
		return MinStartingDots
	}
	if n > MaxStartingDots {
		return MaxStartingDots
	}
	return n
}

// New lays out n starting dots along the horizontal axis with random
// vertical jitter. n is clamped first.
func New(n int, rng *rand.Rand) *Board {
	n = ClampStartingDots(n)
	ySpread := dotYSpreadPerDot * n

	b := &Board{}
	for i := 0; i < n; i++ {
		x := (float64(i) - float64(n-1)/2) * dotXSpread
		// Integer jitter in [-ySpread, ySpread]
		y := math.Floor(float64(2*ySpread+1)*rng.Float64()) - float64(ySpread)
		b.AddDot(geometry.Point{X: x, Y: y}, 0)
	}
	return b
}

// AddDot appends a dot. Placement rules are the caller's job.
func (b *Board) AddDot(p geometry.Point, count int) *Dot {
	d := &Dot{Pos: p, Count: count}
	b.Dots = append(b.Dots, d)
	return d
}

// AddLine commits a copy of line.
func (b *Board) AddLine(line geometry.Polyline) {
	b.Lines = append(b.Lines, line.Clone())
}

// IncrementEndpointUsage records one more line end on d. The caller keeps the
// count within MaxCount.
func (b *Board) IncrementEndpointUsage(d *Dot) {
	d.Count++
}

// DotAt returns the first dot within pick distance of p, full or not.
func (b *Board) DotAt(p geometry.Point) *Dot {
	for _, d := range b.Dots {
		if geometry.Distance(d.Pos, p) < DotRadius*ClickMultiplier {
			return d
		}
	}
	return nil
}

// TooClose reports whether p is closer than MinDistanceFromExistingPoints
// to any dot.
func (b *Board) TooClose(p geometry.Point) bool {
	for _, d := range b.Dots {
		if geometry.Distance(d.Pos, p) < MinDistanceFromExistingPoints {
			return true
		}
	}
	return false
}

// CrossesAny reports whether s intersects any committed line anywhere other
// than the shared points.
func (b *Board) CrossesAny(s geometry.Segment, shared ...geometry.Point) bool {
	for _, line := range b.Lines {
		if geometry.PolylineCrossesSegment(line, s, shared...) {
			return true
		}
	}
	return false
}

// Lives is the number of line ends the board can still absorb.
func (b *Board) Lives() int {
	lives := 0
	for _, d := range b.Dots {
		lives += MaxCount - d.Count
	}
	return lives
}

// Full returns how many dots cannot take another line.
func (b *Board) Full() int {
	n := 0
	for _, d := range b.Dots {
		if !d.Selectable() {
			n++
		}
	}
	return n
}

// Index returns the position of d in Dots, or -1.
func (b *Board) Index(d *Dot) int {
	for i, dot := range b.Dots {
		if dot == d {
			return i
		}
	}
	return -1
}
