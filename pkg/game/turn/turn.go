// Package turn sequences the six phases of a round and validates every step a
// player takes while drawing. Invalid actions never surface as errors: they
// are ignored, or they roll the player back to picking a dot.
package turn

import (
	"log/slog"

	"github.com/mpihlak/gosprouts/pkg/game/board"
	"github.com/mpihlak/gosprouts/pkg/geometry"
)

// LineSegmentDistance is the minimum pointer travel, in world units, before
// a new point is recorded on the line being drawn.
const LineSegmentDistance = 5.0

// State is the phase-specific payload. It is one of Idle, *Drawing or
// *Placing, matching the Kind of the current phase.
type State interface {
	kind() Kind
}

// Idle waits for a dot to be picked.
type Idle struct{}

// Drawing holds the line being dragged out of From.
type Drawing struct {
	From *board.Dot
	Line geometry.Polyline
}

// Placing holds a finished line waiting for its new dot. Preview is the
// snapped position under the pointer, nil until the pointer moves.
type Placing struct {
	From, To *board.Dot
	Line     geometry.Polyline
	Preview  *geometry.Point
}

func (Idle) kind() Kind     { return KindStart }
func (*Drawing) kind() Kind { return KindDraw }
func (*Placing) kind() Kind { return KindNew }

// Outcome says what an event did to the machine.
type Outcome int

const (
	Ignored    Outcome = iota
	Advanced           // moved to the next phase
	Extended           // added a point to the line being drawn
	Previewed          // updated the new-dot preview
	RolledBack         // discarded the line, back to picking a dot
	Placed             // committed the line and its new dot
)

var outcomeNames = [...]string{"ignored", "advanced", "extended", "previewed", "rolled back", "placed"}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Machine is the turn state for one match. It is not safe for concurrent
// use; the game loop owns it.
type Machine struct {
	board  *board.Board
	phase  int
	state  State
	logger *slog.Logger
}

// New starts at player 1 picking a dot. A nil logger discards output.
func New(b *board.Board, logger *slog.Logger) *Machine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Machine{
		board:  b,
		state:  Idle{},
		logger: logger,
	}
}

// PhaseIndex returns the position in Phases.
func (m *Machine) PhaseIndex() int { return m.phase }

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return Phases[m.phase] }

// State returns the phase payload. Callers must not modify it.
func (m *Machine) State() State { return m.state }

// CurrentLine returns the line being drawn or placed on, or nil.
func (m *Machine) CurrentLine() geometry.Polyline {
	switch s := m.state.(type) {
	case *Drawing:
		return s.Line
	case *Placing:
		return s.Line
	}
	return nil
}

// Selected returns the dots the current line starts and ends at. Either may
// be nil.
func (m *Machine) Selected() (from, to *board.Dot) {
	switch s := m.state.(type) {
	case *Drawing:
		return s.From, nil
	case *Placing:
		return s.From, s.To
	}
	return nil, nil
}

// Preview returns the snapped new-dot position while placing.
func (m *Machine) Preview() (geometry.Point, bool) {
	if s, ok := m.state.(*Placing); ok && s.Preview != nil {
		return *s.Preview, true
	}
	return geometry.Point{}, false
}

// Click handles a primary pointer click at world position p.
func (m *Machine) Click(p geometry.Point) Outcome {
	switch s := m.state.(type) {
	case Idle:
		return m.pickDot(p)
	case *Placing:
		return m.placeDot(s, p)
	}
	return Ignored
}

// Move handles pointer movement to world position p.
func (m *Machine) Move(p geometry.Point) Outcome {
	switch s := m.state.(type) {
	case *Drawing:
		return m.extend(s, p)
	case *Placing:
		snapped := geometry.ClosestPointOnPolyline(p, s.Line)
		s.Preview = &snapped
		return Previewed
	}
	return Ignored
}

// Cancel abandons the line being drawn. Outside the draw phase it does
// nothing.
func (m *Machine) Cancel() Outcome {
	if _, ok := m.state.(*Drawing); !ok {
		return Ignored
	}
	return m.rollback("cancelled")
}

func (m *Machine) pickDot(p geometry.Point) Outcome {
	dot := m.board.DotAt(p)
	if dot == nil || !dot.Selectable() {
		return Ignored
	}

	m.state = &Drawing{
		From: dot,
		Line: geometry.Polyline{dot.Pos},
	}
	m.advance()
	return Advanced
}

func (m *Machine) extend(s *Drawing, p geometry.Point) Outcome {
	if dot := m.board.DotAt(p); dot != nil {
		return m.reachDot(s, dot)
	}

	last := s.Line.Last()
	if geometry.Distance(p, last) < LineSegmentDistance {
		return Ignored
	}

	candidate := geometry.Segment{A: last, B: p}

	// The segment ending at last shares that point with the candidate, so it
	// is left out of the self check.
	if geometry.PolylineIntersectsSegment(s.Line[:len(s.Line)-1], candidate) {
		return m.rollback("line crosses itself")
	}
	if m.board.CrossesAny(candidate, sharedEnds(s, nil)...) {
		return m.rollback("line crosses another line")
	}

	s.Line = append(s.Line, p)
	return Extended
}

func (m *Machine) reachDot(s *Drawing, dot *board.Dot) Outcome {
	if !dot.Selectable() {
		return m.rollback("dot is full")
	}
	if dot == s.From {
		if float64(len(s.Line)-1)*LineSegmentDistance < board.DotRadius*2 {
			// Still leaving the starting dot
			return Ignored
		}
		if dot.Count >= board.MaxCount-1 {
			return m.rollback("dot cannot take both ends of a loop")
		}
	}

	snap := geometry.Segment{A: s.Line.Last(), B: dot.Pos}
	if geometry.PolylineCrossesSegment(s.Line[:len(s.Line)-1], snap, dot.Pos) {
		return m.rollback("line crosses itself")
	}
	if m.board.CrossesAny(snap, sharedEnds(s, dot)...) {
		return m.rollback("line crosses another line")
	}

	m.board.IncrementEndpointUsage(dot)
	m.board.IncrementEndpointUsage(s.From)

	line := append(s.Line, dot.Pos)
	m.state = &Placing{From: s.From, To: dot, Line: line}
	m.advance()
	return Advanced
}

// sharedEnds lists the dot positions a segment leaving the end of s may
// touch without crossing: the start dot while the line has no segment yet,
// and the target dot if there is one.
func sharedEnds(s *Drawing, target *board.Dot) []geometry.Point {
	var shared []geometry.Point
	if len(s.Line) == 1 {
		shared = append(shared, s.From.Pos)
	}
	if target != nil {
		shared = append(shared, target.Pos)
	}
	return shared
}

func (m *Machine) placeDot(s *Placing, p geometry.Point) Outcome {
	snapped := geometry.ClosestPointOnPolyline(p, s.Line)
	if m.board.TooClose(snapped) {
		return Ignored
	}

	m.board.AddDot(snapped, 2)
	m.board.AddLine(s.Line)
	m.logger.Info("dot placed",
		"player", m.Phase().Player,
		"x", snapped.X,
		"y", snapped.Y,
		"line_points", len(s.Line),
	)

	m.state = Idle{}
	m.advance()
	return Placed
}

func (m *Machine) rollback(reason string) Outcome {
	m.logger.Debug("draw rolled back",
		"player", m.Phase().Player,
		"reason", reason,
	)
	m.state = Idle{}
	m.phase--
	return RolledBack
}

func (m *Machine) advance() {
	m.phase = (m.phase + 1) % len(Phases)
	next := m.Phase()
	m.logger.Debug("phase advanced",
		"phase", m.phase,
		"player", next.Player,
		"kind", next.Kind.String(),
	)
}
