// Package export writes still images of a board: PNG through gogpu/gg and PDF
// through gofpdf. Both draw the committed lines smoothed the same way the
// window does, then the dots on top.
package export

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/mpihlak/gosprouts/pkg/game/board"
	"github.com/mpihlak/gosprouts/pkg/geometry"
	"github.com/mpihlak/gosprouts/pkg/sprouts"
)

// ErrEmptyBoard is returned for a snapshot with no dots.
var ErrEmptyBoard = errors.New("export: board has no dots")

// Format selects the output encoding.
type Format int

const (
	PNG Format = iota
	PDF
)

// Ext returns the file extension, dot included.
func (f Format) Ext() string {
	if f == PDF {
		return ".pdf"
	}
	return ".png"
}

// padding is the world-space border kept around the outermost dot or line.
const padding = 40.0

// Bounds is an axis aligned box in world space.
type Bounds struct {
	Min, Max geometry.Point
}

// Width of the box.
func (b Bounds) Width() float64 { return b.Max.X - b.Min.X }

// Height of the box.
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

// BoundsOf returns the box around every dot and committed line, padded.
func BoundsOf(s sprouts.Snapshot) (Bounds, error) {
	if len(s.Dots) == 0 {
		return Bounds{}, ErrEmptyBoard
	}

	b := Bounds{
		Min: geometry.Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: geometry.Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	grow := func(p geometry.Point) {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	for _, d := range s.Dots {
		grow(d.Pos)
	}
	for _, l := range s.Lines {
		for _, p := range l {
			grow(p)
		}
	}

	pad := geometry.Point{X: padding, Y: padding}
	b.Min = b.Min.Sub(pad)
	b.Max = b.Max.Add(pad)
	return b, nil
}

// frame maps world coordinates onto an output surface.
type frame struct {
	origin geometry.Point
	scale  float64
	offset geometry.Point
}

// fit scales bounds to fit inside width x height, centred.
func fit(b Bounds, width, height float64) frame {
	scale := math.Min(width/b.Width(), height/b.Height())
	return frame{
		origin: b.Min,
		scale:  scale,
		offset: geometry.Point{
			X: (width - b.Width()*scale) / 2,
			Y: (height - b.Height()*scale) / 2,
		},
	}
}

func (f frame) apply(p geometry.Point) geometry.Point {
	return p.Sub(f.origin).Mul(f.scale).Add(f.offset)
}

func (f frame) length(l float64) float64 {
	return l * f.scale
}

// dotRadius and lineWidth match the window at 1:1 zoom.
const (
	dotRadius = board.DotRadius
	lineWidth = 5.0
)

// FileName returns the name a snapshot of the match is saved under.
func FileName(s sprouts.Snapshot, f Format) string {
	return "sprouts-" + s.ID.String() + f.Ext()
}

// SaveFile writes the snapshot into dir and returns the full path.
func SaveFile(dir string, s sprouts.Snapshot, f Format) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(dir, FileName(s, f))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	switch f {
	case PDF:
		err = WritePDF(file, s)
	default:
		err = WritePNG(file, s)
	}
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close %s: %w", path, closeErr)
	}
	if err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}
