package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mpihlak/gosprouts/pkg/camera"
	"github.com/mpihlak/gosprouts/pkg/export"
	"github.com/mpihlak/gosprouts/pkg/geometry"
	"github.com/mpihlak/gosprouts/pkg/hud"
	"github.com/mpihlak/gosprouts/pkg/sprouts"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	bannerDuration = 2 * time.Second
)

// Options configures a game window.
type Options struct {
	Config    sprouts.Config
	ExportDir string
}

type GameState struct {
	Match *sprouts.Match

	opts           Options
	showHelp       bool
	lastCursor     geometry.Point
	lastUpdateTime time.Time // Last time Update was called (for calculating delta)
	touchControls  *TouchControls

	// Short message after restart or export
	banner     string
	bannerTime time.Time
}

func NewGame(opts Options) *GameState {
	vp := camera.Viewport{Width: ScreenWidth, Height: ScreenHeight}
	return &GameState{
		Match:          sprouts.NewMatch(opts.Config, vp),
		opts:           opts,
		lastUpdateTime: time.Now(),
		touchControls:  NewTouchControls(ScreenWidth, ScreenHeight),
	}
}

func (g *GameState) Update() error {
	now := time.Now()
	mod := FrameMod(now.Sub(g.lastUpdateTime))
	g.lastUpdateTime = now

	return g.HandleInput(g.readInput(), mod)
}

// HandleInput applies one frame of input. mod is the frame length relative
// to 1/60s.
func (g *GameState) HandleInput(in Input, mod float64) error {
	// Handle quit key - different behavior for WASM vs standalone
	if in.Quit {
		if IsWASM() {
			// In WASM, show help screen instead of quitting
			g.showHelp = true
			return nil
		}
		return ebiten.Termination
	}

	if in.Restart {
		g.restart()
		return nil
	}

	if in.ToggleHelp || in.Touch.Help {
		g.showHelp = !g.showHelp
		return nil
	}
	if g.showHelp {
		// On touch devices a tap anywhere closes the help screen
		if in.Touch.Tap != nil {
			g.showHelp = false
		}
		return nil
	}

	g.handleCamera(in, mod)
	g.handlePointer(in)

	if in.ExportPNG {
		g.export(export.PNG)
	}
	if in.ExportPDF {
		g.export(export.PDF)
	}
	return nil
}

func (g *GameState) handleCamera(in Input, mod float64) {
	m := g.Match
	m.KeyHeld(in.Pan, mod)

	if in.ZoomIn || in.Touch.ZoomIn {
		m.ZoomStep(true)
	}
	if in.ZoomOut || in.Touch.ZoomOut {
		m.ZoomStep(false)
	}
	if in.Wheel != 0 {
		m.ZoomAt(in.Cursor, WheelFactor(in.Wheel))
	}
	if in.Drag != (geometry.Point{}) {
		m.Drag(in.Drag.X, in.Drag.Y)
	}
}

func (g *GameState) handlePointer(in Input) {
	m := g.Match

	if in.Secondary || in.Touch.Cancel {
		m.SecondaryPointerPressed()
	}

	if in.CursorMoved {
		m.PointerMoved(m.ScreenToWorld(in.Cursor))
	}
	if in.Click {
		m.PointerClicked(m.ScreenToWorld(in.Cursor))
	}

	if tap := in.Touch.Tap; tap != nil {
		world := m.ScreenToWorld(*tap)
		m.PointerMoved(world)
		m.PointerClicked(world)
	}
	if move := in.Touch.Move; move != nil {
		m.PointerMoved(m.ScreenToWorld(*move))
	}
}

// restart starts a new match with the same settings and viewport.
func (g *GameState) restart() {
	vp := g.Match.Viewport
	g.Match = sprouts.NewMatch(g.opts.Config, vp)
	g.showHelp = false
	g.showBanner("*** RESTARTED ***")
}

func (g *GameState) export(f export.Format) {
	if IsWASM() {
		return
	}

	path, err := export.SaveFile(g.opts.ExportDir, g.Match.Snapshot(), f)
	if err != nil {
		sprouts.Logger().Error("export failed", "match", g.Match.ID.String(), "err", err)
		g.showBanner("Export failed")
		return
	}
	sprouts.Logger().Info("board exported", "match", g.Match.ID.String(), "path", path)
	g.showBanner("Saved " + path)
}

func (g *GameState) showBanner(msg string) {
	g.banner = msg
	g.bannerTime = time.Now()
}

// Banner returns the message currently shown, if any.
func (g *GameState) Banner() string {
	if g.banner == "" || time.Since(g.bannerTime) > bannerDuration {
		return ""
	}
	return g.banner
}

// ShowingHelp reports whether the help overlay is up.
func (g *GameState) ShowingHelp() bool {
	return g.showHelp
}

func (g *GameState) Draw(screen *ebiten.Image) {
	s := g.Match.Snapshot()

	drawBoard(screen, s)
	hud.Draw(screen, s)
	g.touchControls.Draw(screen)

	if msg := g.Banner(); msg != "" {
		g.drawBanner(screen, msg)
	}

	if g.showHelp {
		g.drawHelpScreen(screen)
	}
}

// HelpText returns the overlay text for touch or keyboard play.
func HelpText(touch bool) string {
	rules := `SPROUTS - HELP

How to Play:
  Players take turns joining two dots with a line.
  Click a dot, then draw to another dot (or back to the same one).
  Then place a new dot somewhere on the line you drew.
  Lines may not cross, and a dot takes at most three lines.
  The player who cannot move loses.
`
	if touch {
		return rules + `
Touch Controls:
  Tap          - Choose a dot / place a new dot
  Drag         - Draw the line
  Cancel       - Drop the line being drawn
  + / -        - Zoom
  ?            - Show this help

Tap anywhere to continue...`
	}

	quitText := "Quit Game"
	if IsWASM() {
		quitText = "Show Help"
	}
	return rules + fmt.Sprintf(`
Controls:
  Left Click        - Choose a dot / place a new dot
  Move Mouse        - Draw the line
  Right Click       - Cancel the line
  Right Drag        - Pan
  Arrows / WASD     - Pan
  Wheel, PgUp/PgDn  - Zoom
  P / F             - Save board as PNG / PDF
  R                 - Restart Game
  H / Space         - Show/hide this help
  Q                 - %s

Press SPACE to continue...`, quitText)
}

// drawHelpScreen displays the help overlay
func (g *GameState) drawHelpScreen(screen *ebiten.Image) {
	bounds := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), color.RGBA{0, 0, 0, 180}, false)

	x := bounds.Dx()/2 - 200
	y := bounds.Dy()/2 - 150
	ebitenutil.DebugPrintAt(screen, HelpText(g.touchControls.HasTouch()), x, y)
}

// drawBanner displays a short message in the middle of the screen
func (g *GameState) drawBanner(screen *ebiten.Image, msg string) {
	bounds := screen.Bounds()
	vector.DrawFilledRect(screen, 0, float32(bounds.Dy()/2-30), float32(bounds.Dx()), 60, color.RGBA{0, 0, 0, 100}, false)

	x := bounds.Dx()/2 - len(msg)*3 // Approximate centering
	y := bounds.Dy()/2 - 8
	ebitenutil.DebugPrintAt(screen, msg, x, y)
}

func (g *GameState) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Match.Resize(float64(outsideWidth), float64(outsideHeight))
	g.touchControls.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
