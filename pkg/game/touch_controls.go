package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mpihlak/gosprouts/pkg/geometry"
)

// TouchControls turns touches into pointer events and on-screen buttons.
// A tap outside the buttons is a click, a moving touch is a pointer move.
type TouchControls struct {
	cancelButton  TouchZone
	zoomInButton  TouchZone
	zoomOutButton TouchZone
	helpButton    TouchZone

	// Touch that started outside the buttons, followed for pointer moves
	pointerID ebiten.TouchID
	tracking  bool
	lastPos   geometry.Point

	hasTouchInput bool // Track if we've ever seen touch input
}

// TouchZone defines a rectangular touch area
type TouchZone struct {
	X, Y, Width, Height int
	Label               string
}

// TouchInput is what the touch layer produced in one frame.
type TouchInput struct {
	Tap     *geometry.Point
	Move    *geometry.Point
	Cancel  bool
	ZoomIn  bool
	ZoomOut bool
	Help    bool
}

const (
	buttonSize   = 64
	buttonMargin = 16
)

// NewTouchControls lays the buttons out along the bottom edge.
func NewTouchControls(screenWidth, screenHeight int) *TouchControls {
	tc := &TouchControls{}
	tc.Layout(screenWidth, screenHeight)
	return tc
}

// Layout repositions the buttons for a new screen size.
func (tc *TouchControls) Layout(screenWidth, screenHeight int) {
	y := screenHeight - buttonSize - buttonMargin
	tc.cancelButton = TouchZone{X: buttonMargin, Y: y, Width: buttonSize * 2, Height: buttonSize, Label: "Cancel"}
	tc.helpButton = TouchZone{X: buttonMargin*2 + buttonSize*2, Y: y, Width: buttonSize, Height: buttonSize, Label: "?"}
	tc.zoomOutButton = TouchZone{X: screenWidth - 2*(buttonSize+buttonMargin), Y: y, Width: buttonSize, Height: buttonSize, Label: "-"}
	tc.zoomInButton = TouchZone{X: screenWidth - buttonSize - buttonMargin, Y: y, Width: buttonSize, Height: buttonSize, Label: "+"}
}

// Contains checks if a point is within the touch zone
func (tz TouchZone) Contains(x, y int) bool {
	return x >= tz.X && x < tz.X+tz.Width &&
		y >= tz.Y && y < tz.Y+tz.Height
}

func (tc *TouchControls) buttons() []TouchZone {
	return []TouchZone{tc.cancelButton, tc.helpButton, tc.zoomOutButton, tc.zoomInButton}
}

// OnButton reports whether a screen position falls on any button.
func (tc *TouchControls) OnButton(x, y int) bool {
	for _, b := range tc.buttons() {
		if b.Contains(x, y) {
			return true
		}
	}
	return false
}

// Press handles a touch that just started at x, y.
func (tc *TouchControls) Press(id ebiten.TouchID, x, y int, in *TouchInput) {
	switch {
	case tc.cancelButton.Contains(x, y):
		in.Cancel = true
	case tc.helpButton.Contains(x, y):
		in.Help = true
	case tc.zoomInButton.Contains(x, y):
		in.ZoomIn = true
	case tc.zoomOutButton.Contains(x, y):
		in.ZoomOut = true
	default:
		p := geometry.Point{X: float64(x), Y: float64(y)}
		in.Tap = &p
		tc.pointerID = id
		tc.tracking = true
		tc.lastPos = p
	}
}

// Hold handles the tracked touch still being down at x, y.
func (tc *TouchControls) Hold(x, y int, in *TouchInput) {
	p := geometry.Point{X: float64(x), Y: float64(y)}
	if p == tc.lastPos {
		return
	}
	tc.lastPos = p
	in.Move = &p
}

// Update processes touch input for this frame.
func (tc *TouchControls) Update() TouchInput {
	var in TouchInput

	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		tc.hasTouchInput = true
	}
	if !tc.hasTouchInput {
		return in
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		tc.Press(id, x, y, &in)
	}

	if tc.tracking {
		if inpututil.IsTouchJustReleased(tc.pointerID) {
			tc.tracking = false
		} else if in.Tap == nil {
			x, y := ebiten.TouchPosition(tc.pointerID)
			tc.Hold(x, y, &in)
		}
	}
	return in
}

// HasTouch reports whether a touch was ever seen.
func (tc *TouchControls) HasTouch() bool {
	return tc.hasTouchInput
}

// Draw renders the buttons once touch input has been seen.
func (tc *TouchControls) Draw(screen *ebiten.Image) {
	if !tc.hasTouchInput {
		return
	}
	for _, b := range tc.buttons() {
		drawButton(screen, b, color.RGBA{88, 91, 112, 200})
	}
}

func drawButton(screen *ebiten.Image, zone TouchZone, bg color.RGBA) {
	vector.DrawFilledRect(screen,
		float32(zone.X), float32(zone.Y),
		float32(zone.Width), float32(zone.Height),
		bg, false)

	vector.StrokeRect(screen,
		float32(zone.X), float32(zone.Y),
		float32(zone.Width), float32(zone.Height),
		2, color.RGBA{255, 255, 255, 150}, false)

	// DebugPrint glyphs are 6px wide
	ebitenutil.DebugPrintAt(screen, zone.Label, zone.X+zone.Width/2-len(zone.Label)*3, zone.Y+zone.Height/2-8)
}
