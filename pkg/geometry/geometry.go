// Package geometry holds the plane math shared by the board, the turn rules
// and the renderers. Everything here is pure.
package geometry

import "math"

// Point is a position in world space.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Mul scales p by k.
func (p Point) Mul(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }

// Segment is a straight piece between two points.
type Segment struct {
	A, B Point
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// SegmentsIntersect reports whether s1 and s2 touch or cross, endpoints
// included. Parallel segments never intersect here, even when they overlap
// on the same line.
func SegmentsIntersect(s1, s2 Segment) bool {
	_, ok := SegmentIntersection(s1, s2)
	return ok
}

// SegmentIntersection returns the point where s1 and s2 meet, endpoints
// included. Parallel segments report no intersection.
func SegmentIntersection(s1, s2 Segment) (Point, bool) {
	a, b := s1.A, s1.B
	c, d := s2.A, s2.B

	det := (a.X-b.X)*(c.Y-d.Y) - (a.Y-b.Y)*(c.X-d.X)
	if det == 0 {
		return Point{}, false
	}

	t := ((a.X-c.X)*(c.Y-d.Y) - (a.Y-c.Y)*(c.X-d.X)) / det
	u := -((a.X-b.X)*(a.Y-c.Y) - (a.Y-b.Y)*(a.X-c.X)) / det

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return a.Add(b.Sub(a).Mul(t)), true
}

// touchTolerance is how far an intersection may sit from a shared point and
// still count as touching it.
const touchTolerance = 1e-6

// PolylineIntersectsSegment reports whether any consecutive pair of points in
// line forms a segment intersecting s.
func PolylineIntersectsSegment(line Polyline, s Segment) bool {
	for i := 0; i < len(line)-1; i++ {
		if SegmentsIntersect(s, Segment{A: line[i], B: line[i+1]}) {
			return true
		}
	}
	return false
}

// PolylineCrossesSegment is PolylineIntersectsSegment with contacts at any
// of the shared points ignored, such as a dot both paths end on.
func PolylineCrossesSegment(line Polyline, s Segment, shared ...Point) bool {
	for i := 0; i < len(line)-1; i++ {
		p, ok := SegmentIntersection(s, Segment{A: line[i], B: line[i+1]})
		if ok && !nearAny(p, shared) {
			return true
		}
	}
	return false
}

func nearAny(p Point, points []Point) bool {
	for _, q := range points {
		if Distance(p, q) <= touchTolerance {
			return true
		}
	}
	return false
}

// ClosestPointOnSegment projects p onto s, clamped to the segment ends.
func ClosestPointOnSegment(p Point, s Segment) Point {
	ab := s.B.Sub(s.A)
	ap := p.Sub(s.A)

	ab2 := ab.X*ab.X + ab.Y*ab.Y
	if ab2 == 0 {
		return s.A
	}

	t := (ap.X*ab.X + ap.Y*ab.Y) / ab2
	switch {
	case t < 0:
		return s.A
	case t > 1:
		return s.B
	}
	return s.A.Add(ab.Mul(t))
}

// ClosestPointOnPolyline returns the point of line nearest to p. When two
// segments are equally close the earlier one wins.
func ClosestPointOnPolyline(p Point, line Polyline) Point {
	if len(line) == 1 {
		return line[0]
	}

	var best Point
	bestDist := math.Inf(1)
	for _, seg := range line.Segments() {
		candidate := ClosestPointOnSegment(p, seg)
		if d := Distance(p, candidate); d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}
