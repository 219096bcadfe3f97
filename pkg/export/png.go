package export

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/mpihlak/gosprouts/pkg/geometry"
	"github.com/mpihlak/gosprouts/pkg/palette"
	"github.com/mpihlak/gosprouts/pkg/sprouts"
)

// maxPNGSide caps the image size for very spread out boards.
const maxPNGSide = 4096

// PNGSize returns the pixel size used for a snapshot: one pixel per world
// unit, shrunk to fit maxPNGSide.
func PNGSize(b Bounds) (width, height int) {
	scale := math.Min(1, maxPNGSide/math.Max(b.Width(), b.Height()))
	return int(math.Ceil(b.Width() * scale)), int(math.Ceil(b.Height() * scale))
}

// WritePNG renders the committed board as a PNG image.
func WritePNG(w io.Writer, s sprouts.Snapshot) error {
	bounds, err := BoundsOf(s)
	if err != nil {
		return err
	}

	width, height := PNGSize(bounds)
	f := fit(bounds, float64(width), float64(height))

	dc := gg.NewContext(width, height)
	defer dc.Close()

	dc.ClearWithColor(gg.Hex(palette.Background))

	dc.SetHexColor(palette.Line)
	dc.SetLineWidth(f.length(lineWidth))
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetLineCap(gg.LineCapRound)
	for i, line := range s.Lines {
		if len(line) < 2 {
			continue
		}
		strokeSmooth(dc, f, line)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke line %d: %w", i, err)
		}
	}

	for i, d := range s.Dots {
		c := f.apply(d.Pos)
		dc.SetHexColor(palette.DotFill(d.Count))
		dc.DrawCircle(c.X, c.Y, f.length(dotRadius))
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill dot %d: %w", i, err)
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func strokeSmooth(dc *gg.Context, f frame, line geometry.Polyline) {
	start := f.apply(line[0])
	dc.MoveTo(start.X, start.Y)
	for _, span := range geometry.SmoothCurve(line) {
		c1, c2, to := f.apply(span.C1), f.apply(span.C2), f.apply(span.To)
		dc.CubicTo(c1.X, c1.Y, c2.X, c2.Y, to.X, to.Y)
	}
}
