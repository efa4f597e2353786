// seehuhn.de/go/epiline - line geometry for image annotation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package epiline

import "math"

// DefaultTolerance is the parallelism threshold used by [IntersectLines],
// [IntersectSegmentLine] and [IntersectsBeam].
const DefaultTolerance = 1e-12

// Intersector computes intersections between lines and segments.
// The zero value treats lines as parallel only when their normals are
// exactly parallel.
//
// An Intersector holds no state besides its configuration and is safe for
// concurrent use.
type Intersector struct {
	// Tolerance is the threshold on the sine of the angle between the two
	// line normals below which two lines are considered parallel.
	// Because the sine is normalized, the test does not depend on how the
	// lines are scaled.  Must be non-negative.
	Tolerance float64

	// Slack widens the bounding box used by SegmentLine by this many
	// pixels on every side.  Zero gives the exact containment test.
	// Must be non-negative.
	Slack float64
}

// NewIntersector returns an Intersector using [DefaultTolerance].
func NewIntersector() *Intersector {
	return &Intersector{Tolerance: DefaultTolerance}
}

var defaultIntersector = Intersector{Tolerance: DefaultTolerance}

// IntersectLines returns the intersection point of two lines.
// The second return value is false if the lines are parallel or coincide.
func IntersectLines(l1, l2 Line) (Point, bool) {
	return defaultIntersector.Lines(l1, l2)
}

// IntersectSegmentLine returns the point where the segment s meets the line
// l.  Both endpoints of s count as part of the segment.
// See [Intersector.SegmentLine] for the behaviour at non-integer endpoints.
func IntersectSegmentLine(s Segment, l Line) (Point, bool) {
	return defaultIntersector.SegmentLine(s, l)
}

// IntersectsBeam reports whether s meets at least one of the two lines
// bounding a beam.
func IntersectsBeam(s Segment, l1, l2 Line) bool {
	return defaultIntersector.Beam(s, l1, l2)
}

// Lines returns the intersection point of l1 and l2, computed as the cross
// product of the homogeneous coefficient vectors.  The second return value
// is false if the lines are parallel (within Tolerance) or coincide.
func (in Intersector) Lines(l1, l2 Line) (Point, bool) {
	// (X, Y, W) = l1 × l2
	x := l1.B*l2.C - l1.C*l2.B
	y := l1.C*l2.A - l1.A*l2.C
	w := l1.A*l2.B - l1.B*l2.A

	norm := math.Hypot(l1.A, l1.B) * math.Hypot(l2.A, l2.B)
	if !(norm > 0) || math.Abs(w) <= in.Tolerance*norm {
		return Point{}, false
	}

	p := Point{X: x / w, Y: y / w}
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return Point{}, false
	}
	return p, true
}

// SegmentLine returns the point where s meets l.  The point must lie inside
// the bounding box of s, boundary included, for the second return value to
// be true.  A zero-length segment never intersects anything.
//
// With the default Slack of zero the containment test is exact.  If l
// passes through an endpoint of s which has non-integer coordinates,
// rounding in the computed intersection point can place it just outside
// the box, and the endpoint is missed.  Set Slack to a small positive
// value, e.g. 1e-9, if such touching lines must count as intersections.
func (in Intersector) SegmentLine(s Segment, l Line) (Point, bool) {
	sl, err := s.Line()
	if err != nil {
		return Point{}, false
	}
	p, ok := in.Lines(sl, l)
	if !ok {
		return Point{}, false
	}

	box := s.BBox()
	box.LLx -= in.Slack
	box.LLy -= in.Slack
	box.URx += in.Slack
	box.URy += in.Slack
	if p.X < box.LLx || p.X > box.URx || p.Y < box.LLy || p.Y > box.URy {
		return Point{}, false
	}
	return p, true
}

// Beam reports whether s meets l1 or l2.
func (in Intersector) Beam(s Segment, l1, l2 Line) bool {
	if _, ok := in.SegmentLine(s, l1); ok {
		return true
	}
	_, ok := in.SegmentLine(s, l2)
	return ok
}
