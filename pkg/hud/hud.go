package hud

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/mpihlak/gosprouts/pkg/sprouts"
)

const (
	panelWidth = 170
	margin     = 10
)

// Lines returns the text rows shown in the corner panel.
func Lines(s sprouts.Snapshot) []string {
	return []string{
		fmt.Sprintf("Player: %d (%s)", s.Phase.Player, s.Phase.Kind),
		fmt.Sprintf("Dots: %d (%d full)", len(s.Dots), s.Full),
		fmt.Sprintf("Lines: %d", len(s.Lines)),
		fmt.Sprintf("Lives: %d", s.Lives),
		fmt.Sprintf("Zoom: %.0f%%", s.Camera.Zoom*100),
		fmt.Sprintf("Camera: %.0f, %.0f", s.Camera.X, s.Camera.Y),
		fmt.Sprintf("Match: %s", shortID(s)),
	}
}

// Draw prints the panel in the top right corner.
func Draw(screen *ebiten.Image, s sprouts.Snapshot) {
	msg := strings.Join(Lines(s), "\n")
	ebitenutil.DebugPrintAt(screen, msg, screen.Bounds().Dx()-panelWidth, margin)
}

func shortID(s sprouts.Snapshot) string {
	id := s.ID.String()
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
