package geometry

// Polyline is an ordered list of points joined by straight segments.
type Polyline []Point

// Segments returns the straight pieces of the polyline in order.
func (l Polyline) Segments() []Segment {
	if len(l) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(l)-1)
	for i := 0; i < len(l)-1; i++ {
		segs = append(segs, Segment{A: l[i], B: l[i+1]})
	}
	return segs
}

// Last returns the final point. The polyline must not be empty.
func (l Polyline) Last() Point {
	return l[len(l)-1]
}

// Clone returns a copy that shares no storage with l.
func (l Polyline) Clone() Polyline {
	if l == nil {
		return nil
	}
	out := make(Polyline, len(l))
	copy(out, l)
	return out
}

// smoothingDivisor controls how far the control points reach along the
// neighbouring chord. Larger values give tighter corners.
const smoothingDivisor = 8

// Cubic is one Bézier span. The span starts at the end of the previous one
// (or at the first polyline point).
type Cubic struct {
	C1, C2, To Point
}

// SmoothCurve turns the polyline into Bézier spans passing through every
// point. Tangents at point i follow the chord from i-1 to i+1; the ends reuse
// the endpoint itself as the missing neighbour.
func SmoothCurve(l Polyline) []Cubic {
	if len(l) < 2 {
		return nil
	}

	spans := make([]Cubic, 0, len(l)-1)
	for i := 0; i < len(l)-1; i++ {
		p0 := l[0]
		if i > 0 {
			p0 = l[i-1]
		}
		p1 := l[i]
		p2 := l[i+1]
		p3 := p2
		if i != len(l)-2 {
			p3 = l[i+2]
		}

		spans = append(spans, Cubic{
			C1: p1.Add(p2.Sub(p0).Mul(1.0 / smoothingDivisor)),
			C2: p2.Sub(p3.Sub(p1).Mul(1.0 / smoothingDivisor)),
			To: p2,
		})
	}
	return spans
}

// At evaluates the span at t in [0,1], given the point it starts from.
func (c Cubic) At(from Point, t float64) Point {
	u := 1 - t
	return from.Mul(u * u * u).
		Add(c.C1.Mul(3 * u * u * t)).
		Add(c.C2.Mul(3 * u * t * t)).
		Add(c.To.Mul(t * t * t))
}

// Flatten samples the smoothed curve of l into a polyline with steps points
// per span. The result passes through every point of l.
func Flatten(l Polyline, steps int) Polyline {
	if len(l) < 2 || steps < 1 {
		return l.Clone()
	}

	out := make(Polyline, 0, (len(l)-1)*steps+1)
	out = append(out, l[0])
	from := l[0]
	for _, span := range SmoothCurve(l) {
		for k := 1; k < steps; k++ {
			out = append(out, span.At(from, float64(k)/float64(steps)))
		}
		out = append(out, span.To)
		from = span.To
	}
	return out
}
