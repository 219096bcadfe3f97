package game

import (
	"bytes"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/mpihlak/gosprouts/pkg/camera"
	"github.com/mpihlak/gosprouts/pkg/game/board"
	"github.com/mpihlak/gosprouts/pkg/geometry"
	"github.com/mpihlak/gosprouts/pkg/palette"
	"github.com/mpihlak/gosprouts/pkg/sprouts"
)

const (
	lineWidth     = 5.0
	titleSize     = 26.0
	titleTop      = 4.0
	curveSteps    = 8
	smoothMinimum = 4 // in-progress lines shorter than this are drawn straight
)

var (
	titleFace     *text.GoTextFace
	titleFaceOnce sync.Once
)

// loadTitleFace parses the bundled Go font once. A nil face falls back to
// the debug font.
func loadTitleFace() *text.GoTextFace {
	titleFaceOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			sprouts.Logger().Warn("title font unavailable", "err", err)
			return
		}
		titleFace = &text.GoTextFace{Source: src, Size: titleSize}
	})
	return titleFace
}

// renderer draws one snapshot. It holds the camera and viewport the snapshot
// was taken with.
type renderer struct {
	screen *ebiten.Image
	cam    camera.Camera
	vp     camera.Viewport
}

func (r renderer) toScreen(p geometry.Point) geometry.Point {
	return r.cam.WorldToScreen(r.vp, p)
}

func drawBoard(screen *ebiten.Image, s sprouts.Snapshot) {
	r := renderer{screen: screen, cam: s.Camera, vp: s.Viewport}
	screen.Fill(palette.RGBA(palette.Background))

	lineColor := palette.RGBA(palette.Line)
	for _, line := range s.Lines {
		r.strokePolyline(geometry.Flatten(line, curveSteps), lineColor)
	}

	for _, d := range s.Dots {
		r.fillDot(d.Pos, palette.RGBA(palette.DotFill(d.Count)))
	}

	accent := palette.RGBA(palette.Player(s.Phase.Player))
	if s.From != nil {
		r.fillDot(s.From.Pos, accent)
	}
	if s.To != nil {
		r.fillDot(s.To.Pos, accent)
	}

	if len(s.CurrentLine) > 1 {
		line := s.CurrentLine
		if len(line) >= smoothMinimum {
			line = geometry.Flatten(line, curveSteps)
		}
		r.strokePolyline(line, accent)
	}

	if s.Preview != nil {
		r.fillDot(*s.Preview, palette.RGBA(palette.NewDot))
	}

	drawTitle(screen, s.Phase.Title)
}

// strokePolyline draws straight pieces with round joins.
func (r renderer) strokePolyline(line geometry.Polyline, clr color.Color) {
	if len(line) < 2 {
		return
	}
	w := float32(r.cam.Scale(lineWidth))
	prev := r.toScreen(line[0])
	vector.DrawFilledCircle(r.screen, float32(prev.X), float32(prev.Y), w/2, clr, true)
	for _, p := range line[1:] {
		next := r.toScreen(p)
		vector.StrokeLine(r.screen, float32(prev.X), float32(prev.Y), float32(next.X), float32(next.Y), w, clr, true)
		vector.DrawFilledCircle(r.screen, float32(next.X), float32(next.Y), w/2, clr, true)
		prev = next
	}
}

func (r renderer) fillDot(pos geometry.Point, clr color.Color) {
	c := r.toScreen(pos)
	vector.DrawFilledCircle(r.screen, float32(c.X), float32(c.Y), float32(r.cam.Scale(board.DotRadius)), clr, true)
}

func drawTitle(screen *ebiten.Image, title string) {
	width := screen.Bounds().Dx()
	face := loadTitleFace()
	if face == nil {
		ebitenutil.DebugPrintAt(screen, title, width/2-len(title)*3, int(titleTop))
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(width)/2, titleTop)
	op.ColorScale.ScaleWithColor(palette.RGBA(palette.Line))
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, title, face, op)
}
