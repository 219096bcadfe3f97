package turn

import "fmt"

// Kind is the step a player is on within their turn.
type Kind int

const (
	KindStart Kind = iota // pick a dot
	KindDraw              // drag a line to a dot
	KindNew               // place a dot on the new line
)

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindDraw:
		return "draw"
	case KindNew:
		return "new"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Phase is one entry of the turn cycle.
type Phase struct {
	Player int
	Kind   Kind
	Title  string
}

// Phases is the full round: three steps for each player.
var Phases = [...]Phase{
	{Player: 1, Kind: KindStart, Title: "Player 1, choose a dot"},
	{Player: 1, Kind: KindDraw, Title: "Player 1, draw a line to a dot"},
	{Player: 1, Kind: KindNew, Title: "Player 1, create a new dot"},
	{Player: 2, Kind: KindStart, Title: "Player 2, choose a dot"},
	{Player: 2, Kind: KindDraw, Title: "Player 2, draw a line to a dot"},
	{Player: 2, Kind: KindNew, Title: "Player 2, create a new dot"},
}
