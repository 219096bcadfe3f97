package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/mpihlak/gosprouts/pkg/geometry"
	"github.com/mpihlak/gosprouts/pkg/palette"
	"github.com/mpihlak/gosprouts/pkg/sprouts"
)

// A4 landscape in millimetres, with a margin and a caption row.
const (
	pageWidth   = 297.0
	pageHeight  = 210.0
	pageMargin  = 10.0
	captionSize = 8.0
)

// WritePDF renders the committed board onto a single A4 page.
func WritePDF(w io.Writer, s sprouts.Snapshot) error {
	bounds, err := BoundsOf(s)
	if err != nil {
		return err
	}

	p := gofpdf.New("L", "mm", "A4", "")
	p.SetTitle("Sprouts "+s.ID.String(), true)
	p.AddPage()

	f := fit(bounds, pageWidth-2*pageMargin, pageHeight-2*pageMargin-captionSize)
	f.offset.X += pageMargin
	f.offset.Y += pageMargin + captionSize

	p.SetFont("Helvetica", "", 9)
	p.SetTextColor(setRGB(palette.Line))
	p.Text(pageMargin, pageMargin+captionSize/2,
		fmt.Sprintf("Match %s - %d dots, %d lines", s.ID, len(s.Dots), len(s.Lines)))

	p.SetDrawColor(setRGB(palette.Line))
	p.SetLineWidth(f.length(lineWidth))
	p.SetLineJoinStyle("round")
	p.SetLineCapStyle("round")
	for _, line := range s.Lines {
		if len(line) < 2 {
			continue
		}
		from := f.apply(line[0])
		for _, span := range geometry.SmoothCurve(line) {
			c1, c2, to := f.apply(span.C1), f.apply(span.C2), f.apply(span.To)
			p.CurveBezierCubic(from.X, from.Y, c1.X, c1.Y, c2.X, c2.Y, to.X, to.Y, "D")
			from = to
		}
	}

	for _, d := range s.Dots {
		c := f.apply(d.Pos)
		p.SetFillColor(setRGB(palette.DotFill(d.Count)))
		p.Circle(c.X, c.Y, f.length(dotRadius), "F")
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func setRGB(hex string) (int, int, int) {
	r, g, b := palette.RGB8(hex)
	return int(r), int(g), int(b)
}
