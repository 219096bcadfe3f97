package geometry

import (
	"math"
	"testing"
)

func almostEqual(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestDistance(t *testing.T) {
	// Classic 3-4-5 triangle
	if d := Distance(Point{X: 1, Y: 1}, Point{X: 4, Y: 5}); math.Abs(d-5) > 1e-9 {
		t.Errorf("Expected distance 5, got %f", d)
	}
	if d := Distance(Point{X: 2, Y: 2}, Point{X: 2, Y: 2}); d != 0 {
		t.Errorf("Distance of a point to itself should be 0, got %f", d)
	}
}

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name string
		s1   Segment
		s2   Segment
		want bool
	}{
		{
			name: "Crossing diagonals",
			s1:   Segment{A: Point{X: 0, Y: 0}, B: Point{X: 10, Y: 10}},
			s2:   Segment{A: Point{X: 0, Y: 10}, B: Point{X: 10, Y: 0}},
			want: true,
		},
		{
			name: "Crossing diagonals reversed",
			s1:   Segment{A: Point{X: 10, Y: 0}, B: Point{X: 0, Y: 10}},
			s2:   Segment{A: Point{X: 10, Y: 10}, B: Point{X: 0, Y: 0}},
			want: true,
		},
		{
			name: "T junction touching at endpoint",
			s1:   Segment{A: Point{X: 0, Y: 0}, B: Point{X: 10, Y: 0}},
			s2:   Segment{A: Point{X: 5, Y: 0}, B: Point{X: 5, Y: 10}},
			want: true,
		},
		{
			name: "Shared endpoint",
			s1:   Segment{A: Point{X: 0, Y: 0}, B: Point{X: 10, Y: 0}},
			s2:   Segment{A: Point{X: 10, Y: 0}, B: Point{X: 20, Y: 10}},
			want: true,
		},
		{
			name: "Lines cross outside the segments",
			s1:   Segment{A: Point{X: 0, Y: 0}, B: Point{X: 1, Y: 0}},
			s2:   Segment{A: Point{X: 5, Y: -1}, B: Point{X: 5, Y: 1}},
			want: false,
		},
		{
			name: "Parallel offset",
			s1:   Segment{A: Point{X: 0, Y: 0}, B: Point{X: 10, Y: 0}},
			s2:   Segment{A: Point{X: 0, Y: 5}, B: Point{X: 10, Y: 5}},
			want: false,
		},
		{
			name: "Collinear overlap is not reported",
			s1:   Segment{A: Point{X: 0, Y: 0}, B: Point{X: 10, Y: 0}},
			s2:   Segment{A: Point{X: 5, Y: 0}, B: Point{X: 15, Y: 0}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentsIntersect(tt.s1, tt.s2); got != tt.want {
				t.Errorf("SegmentsIntersect() = %v, want %v", got, tt.want)
			}
			if got := SegmentsIntersect(tt.s2, tt.s1); got != tt.want {
				t.Errorf("SegmentsIntersect() with swapped args = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolylineIntersectsSegment(t *testing.T) {
	zigzag := Polyline{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}, {X: 30, Y: 10}}

	if !PolylineIntersectsSegment(zigzag, Segment{A: Point{X: 25, Y: -5}, B: Point{X: 25, Y: 20}}) {
		t.Error("Vertical segment through the last leg should intersect")
	}
	if PolylineIntersectsSegment(zigzag, Segment{A: Point{X: 0, Y: 50}, B: Point{X: 30, Y: 50}}) {
		t.Error("Segment far above the zigzag should not intersect")
	}
	if PolylineIntersectsSegment(Polyline{{X: 0, Y: 0}}, Segment{A: Point{X: -1, Y: -1}, B: Point{X: 1, Y: 1}}) {
		t.Error("Single point polyline has no segments and should never intersect")
	}
}

func TestSegmentIntersection(t *testing.T) {
	p, ok := SegmentIntersection(
		Segment{A: Point{X: 0, Y: 0}, B: Point{X: 10, Y: 10}},
		Segment{A: Point{X: 0, Y: 10}, B: Point{X: 10, Y: 0}},
	)
	if !ok || !almostEqual(p, Point{X: 5, Y: 5}) {
		t.Errorf("Expected crossing at (5,5), got %v %v", p, ok)
	}

	if _, ok := SegmentIntersection(
		Segment{A: Point{X: 0, Y: 0}, B: Point{X: 10, Y: 0}},
		Segment{A: Point{X: 20, Y: -5}, B: Point{X: 20, Y: 5}},
	); ok {
		t.Error("Segments that would only meet when extended should not intersect")
	}
}

func TestPolylineCrossesSegment(t *testing.T) {
	// A vertical line through a dot at the origin
	line := Polyline{{X: 0, Y: -100}, {X: 0, Y: 100}}
	dot := Point{X: 0, Y: 0}

	leaving := Segment{A: dot, B: Point{X: 50, Y: 0}}
	if !PolylineCrossesSegment(line, leaving) {
		t.Error("Without shared points the touch at the dot should count")
	}
	if PolylineCrossesSegment(line, leaving, dot) {
		t.Error("Touch at a shared dot should not count as a crossing")
	}

	through := Segment{A: Point{X: -50, Y: 10}, B: Point{X: 50, Y: 10}}
	if !PolylineCrossesSegment(line, through, dot) {
		t.Error("Crossing away from the shared dot should still count")
	}
}

func TestClosestPointOnSegment(t *testing.T) {
	seg := Segment{A: Point{X: 0, Y: 0}, B: Point{X: 10, Y: 0}}

	tests := []struct {
		name string
		p    Point
		want Point
	}{
		{"Projection inside", Point{X: 5, Y: 5}, Point{X: 5, Y: 0}},
		{"Clamped to start", Point{X: -3, Y: 4}, Point{X: 0, Y: 0}},
		{"Clamped to end", Point{X: 13, Y: 1}, Point{X: 10, Y: 0}},
		{"On the segment", Point{X: 7, Y: 0}, Point{X: 7, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClosestPointOnSegment(tt.p, seg); !almostEqual(got, tt.want) {
				t.Errorf("ClosestPointOnSegment(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	degenerate := Segment{A: Point{X: 3, Y: 3}, B: Point{X: 3, Y: 3}}
	if got := ClosestPointOnSegment(Point{X: 10, Y: 10}, degenerate); got != degenerate.A {
		t.Errorf("Zero length segment should return its start, got %v", got)
	}
}

func TestClosestPointOnPolyline(t *testing.T) {
	ell := Polyline{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}

	if got := ClosestPointOnPolyline(Point{X: 12, Y: 5}, ell); !almostEqual(got, Point{X: 10, Y: 5}) {
		t.Errorf("Expected (10,5), got %v", got)
	}
	if got := ClosestPointOnPolyline(Point{X: 4, Y: -2}, ell); !almostEqual(got, Point{X: 4, Y: 0}) {
		t.Errorf("Expected (4,0), got %v", got)
	}

	// Equidistant from three sides of the square, first segment wins
	square := Polyline{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	if got := ClosestPointOnPolyline(Point{X: 5, Y: 5}, square); !almostEqual(got, Point{X: 5, Y: 0}) {
		t.Errorf("Tie should resolve to the first segment, got %v", got)
	}

	single := Polyline{{X: 2, Y: 3}}
	if got := ClosestPointOnPolyline(Point{X: 100, Y: 100}, single); got != single[0] {
		t.Errorf("Single point polyline should return that point, got %v", got)
	}
}

func TestPolylineHelpers(t *testing.T) {
	line := Polyline{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}

	if segs := line.Segments(); len(segs) != 2 {
		t.Fatalf("Expected 2 segments, got %d", len(segs))
	}
	if line.Last() != (Point{X: 1, Y: 1}) {
		t.Errorf("Unexpected last point %v", line.Last())
	}

	clone := line.Clone()
	clone[0] = Point{X: 99, Y: 99}
	if line[0] == clone[0] {
		t.Error("Clone should not share storage with the original")
	}
}

func TestSmoothCurve(t *testing.T) {
	if spans := SmoothCurve(Polyline{{X: 1, Y: 1}}); spans != nil {
		t.Errorf("Single point should produce no spans, got %d", len(spans))
	}

	spans := SmoothCurve(Polyline{{X: 0, Y: 0}, {X: 8, Y: 0}})
	if len(spans) != 1 {
		t.Fatalf("Expected 1 span, got %d", len(spans))
	}
	if !almostEqual(spans[0].C1, Point{X: 1, Y: 0}) || !almostEqual(spans[0].C2, Point{X: 7, Y: 0}) {
		t.Errorf("Unexpected control points %v %v", spans[0].C1, spans[0].C2)
	}

	line := Polyline{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: 20, Y: 0}, {X: 30, Y: 5}}
	spans = SmoothCurve(line)
	if len(spans) != len(line)-1 {
		t.Fatalf("Expected %d spans, got %d", len(line)-1, len(spans))
	}
	for i, span := range spans {
		if span.To != line[i+1] {
			t.Errorf("Span %d should end on polyline point %v, got %v", i, line[i+1], span.To)
		}
	}
}

func TestFlatten(t *testing.T) {
	line := Polyline{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: 20, Y: 0}}

	flat := Flatten(line, 4)
	if len(flat) != 2*4+1 {
		t.Fatalf("Expected %d points, got %d", 2*4+1, len(flat))
	}
	for i, p := range line {
		if flat[i*4] != p {
			t.Errorf("Point %d: expected %v on the curve, got %v", i, p, flat[i*4])
		}
	}

	span := SmoothCurve(line)[0]
	if !almostEqual(span.At(line[0], 0), line[0]) || !almostEqual(span.At(line[0], 1), line[1]) {
		t.Error("Span should start and end on its endpoints")
	}

	if got := Flatten(Polyline{{X: 3, Y: 3}}, 4); len(got) != 1 {
		t.Errorf("Single point should pass through unchanged, got %v", got)
	}
}
