package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mpihlak/gosprouts/pkg/camera"
	"github.com/mpihlak/gosprouts/pkg/geometry"
)

// Input is everything the player did during one frame, in screen space.
type Input struct {
	Cursor      geometry.Point
	CursorMoved bool
	Click       bool

	Secondary bool           // right button just pressed
	Drag      geometry.Point // right button movement while held
	Wheel     float64
	Pan       camera.Direction
	ZoomIn    bool
	ZoomOut   bool
	Touch     TouchInput

	Restart    bool
	ToggleHelp bool
	Quit       bool
	ExportPNG  bool
	ExportPDF  bool
}

// wheelUnit converts one ebiten wheel notch into browser deltaY pixels.
const wheelUnit = 100.0

// minWheelFactor keeps fast wheel spins from flipping the zoom sign.
const minWheelFactor = 0.1

// WheelFactor maps an ebiten wheel movement (positive is up) to a zoom
// factor of 1 - deltaY/1000, with deltaY in browser pixels.
func WheelFactor(dy float64) float64 {
	f := 1 + dy*wheelUnit/1000
	if f < minWheelFactor {
		return minWheelFactor
	}
	return f
}

// maxFrameMod stops a long stall from jumping the camera across the board.
const maxFrameMod = 3.0

// FrameMod is the frame length relative to a 60Hz frame.
func FrameMod(dt time.Duration) float64 {
	if dt <= 0 {
		return 1
	}
	mod := dt.Seconds() * 60
	if mod > maxFrameMod {
		return maxFrameMod
	}
	return mod
}

func cursorPosition() geometry.Point {
	x, y := ebiten.CursorPosition()
	return geometry.Point{X: float64(x), Y: float64(y)}
}

func anyKeyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// readInput polls ebiten for the current frame.
func (g *GameState) readInput() Input {
	in := Input{Touch: g.touchControls.Update()}

	cursor := cursorPosition()
	in.Cursor = cursor
	in.CursorMoved = cursor != g.lastCursor
	in.Click = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.Secondary = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) && !in.Secondary {
		in.Drag = cursor.Sub(g.lastCursor)
	}
	g.lastCursor = cursor

	_, in.Wheel = ebiten.Wheel()

	in.Pan = camera.Direction{
		Up:    anyKeyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:  anyKeyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Left:  anyKeyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: anyKeyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
	}
	// Zoom keys repeat every frame while held
	in.ZoomIn = ebiten.IsKeyPressed(ebiten.KeyPageUp)
	in.ZoomOut = ebiten.IsKeyPressed(ebiten.KeyPageDown)

	in.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	in.ToggleHelp = anyKeyJustPressed(ebiten.KeyH, ebiten.KeySpace)
	in.Quit = inpututil.IsKeyJustPressed(ebiten.KeyQ)
	in.ExportPNG = inpututil.IsKeyJustPressed(ebiten.KeyP)
	in.ExportPDF = inpututil.IsKeyJustPressed(ebiten.KeyF)
	return in
}
