package sprouts

import (
	"github.com/google/uuid"

	"github.com/mpihlak/gosprouts/pkg/camera"
	"github.com/mpihlak/gosprouts/pkg/game/board"
	"github.com/mpihlak/gosprouts/pkg/game/turn"
	"github.com/mpihlak/gosprouts/pkg/geometry"
)

// DotView is a copy of a dot for drawing.
type DotView struct {
	Pos   geometry.Point
	Count int
}

// Full reports whether no more lines can use the dot.
func (d DotView) Full() bool { return d.Count >= board.MaxCount }

// Snapshot is a copy of everything a renderer needs. Changing it does not
// affect the match.
type Snapshot struct {
	ID         uuid.UUID
	Phase      turn.Phase
	PhaseIndex int
	Dots       []DotView
	Lines      []geometry.Polyline

	CurrentLine geometry.Polyline
	From, To    *DotView
	Preview     *geometry.Point

	Camera   camera.Camera
	Viewport camera.Viewport

	Lives int
	Full  int
}

// Snapshot copies the current state.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		ID:          m.ID,
		Phase:       m.Turn.Phase(),
		PhaseIndex:  m.Turn.PhaseIndex(),
		Dots:        make([]DotView, len(m.Board.Dots)),
		Lines:       make([]geometry.Polyline, len(m.Board.Lines)),
		CurrentLine: m.Turn.CurrentLine().Clone(),
		Camera:      m.Camera,
		Viewport:    m.Viewport,
		Lives:       m.Board.Lives(),
		Full:        m.Board.Full(),
	}

	for i, d := range m.Board.Dots {
		s.Dots[i] = DotView{Pos: d.Pos, Count: d.Count}
	}
	for i, l := range m.Board.Lines {
		s.Lines[i] = l.Clone()
	}

	from, to := m.Turn.Selected()
	s.From = viewOf(from)
	s.To = viewOf(to)
	if p, ok := m.Turn.Preview(); ok {
		s.Preview = &p
	}
	return s
}

func viewOf(d *board.Dot) *DotView {
	if d == nil {
		return nil
	}
	return &DotView{Pos: d.Pos, Count: d.Count}
}
