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

import (
	"math"
	"testing"
)

var (
	inf = math.Inf(1)
	nan = math.NaN()
)

func near(p, q Point) bool {
	const eps = 1e-9
	return math.Abs(p.X-q.X) <= eps*max(1, math.Abs(q.X)) &&
		math.Abs(p.Y-q.Y) <= eps*max(1, math.Abs(q.Y))
}

var linePairs = []struct {
	l1, l2 Line
	want   Point
}{
	{Line{1, 0, -5}, Line{0, 1, -3}, Point{X: 5, Y: 3}},
	{Line{1, -1, 0}, Line{1, 1, -4}, Point{X: 2, Y: 2}},
	{Line{-3, 2, -1}, Line{1, 0, 0}, Point{X: 0, Y: 0.5}},
	{Line{0.001, 1, -7}, Line{1, 0.002, 100}, Point{X: -100.0142000284, Y: 7.1000142000284}},
}

func TestIntersectLines(t *testing.T) {
	for _, c := range linePairs {
		p, ok := IntersectLines(c.l1, c.l2)
		if !ok {
			t.Errorf("%v, %v: no intersection", c.l1, c.l2)
			continue
		}
		if !near(p, c.want) {
			t.Errorf("%v, %v: got %v, want %v", c.l1, c.l2, p, c.want)
		}
		if math.Abs(c.l1.Eval(p)) > 1e-9 || math.Abs(c.l2.Eval(p)) > 1e-9 {
			t.Errorf("%v, %v: %v is not on both lines", c.l1, c.l2, p)
		}
	}
}

func TestIntersectLinesCommutative(t *testing.T) {
	for _, c := range linePairs {
		p, ok1 := IntersectLines(c.l1, c.l2)
		q, ok2 := IntersectLines(c.l2, c.l1)
		if !ok1 || !ok2 || !near(p, q) {
			t.Errorf("%v, %v: %v/%t != %v/%t", c.l1, c.l2, p, ok1, q, ok2)
		}
	}
}

func TestIntersectLinesScaleInvariant(t *testing.T) {
	for _, c := range linePairs {
		want, _ := IntersectLines(c.l1, c.l2)
		for _, k := range []float64{-1, 2, 1e-6, 1e6, -0.3} {
			p, ok := IntersectLines(c.l1.Scale(k), c.l2)
			if !ok || !near(p, want) {
				t.Errorf("k=%g: %v, %v: got %v/%t, want %v", k, c.l1, c.l2, p, ok, want)
			}
			p, ok = IntersectLines(c.l1, c.l2.Scale(k))
			if !ok || !near(p, want) {
				t.Errorf("k=%g: %v, %v: got %v/%t, want %v", k, c.l1, c.l2, p, ok, want)
			}
		}
	}
}

func TestIntersectLinesParallel(t *testing.T) {
	cases := [][2]Line{
		{{0, 1, 0}, {0, 1, -5}},      // parallel
		{{1, 1, -3}, {-2, -2, 6}},    // coincident
		{{1e-14, 1, 0}, {0, 3, -1}},  // parallel within tolerance
		{{1e20, 1e20, 0}, {1, 1, 1}}, // parallel, badly scaled
		{{0, 0, 1}, {1, 0, 0}},       // invalid
	}
	for _, c := range cases {
		if p, ok := IntersectLines(c[0], c[1]); ok {
			t.Errorf("%v, %v: unexpected intersection %v", c[0], c[1], p)
		} else if p != (Point{}) {
			t.Errorf("%v, %v: non-zero point %v", c[0], c[1], p)
		}
	}
}

func TestIntersectorTolerance(t *testing.T) {
	l1 := Line{A: 0, B: 1, C: 0}
	l2 := Line{A: 1e-14, B: 1, C: -1}

	if _, ok := NewIntersector().Lines(l1, l2); ok {
		t.Error("default tolerance: nearly parallel lines intersect")
	}

	exact := Intersector{}
	p, ok := exact.Lines(l1, l2)
	if !ok {
		t.Fatal("zero tolerance: no intersection")
	}
	if !near(p, Point{X: 1e14, Y: 0}) {
		t.Errorf("zero tolerance: got %v", p)
	}
}

func TestIntersectSegmentLine(t *testing.T) {
	cases := []struct {
		s    Segment
		l    Line
		ok   bool
		want Point
	}{
		{Seg(0, 0, 10, 0), Line{1, 0, -5}, true, Point{X: 5, Y: 0}},
		{Seg(0, 0, 10, 0), Line{1, 0, -15}, false, Point{}},
		{Seg(10, 0, 0, 0), Line{1, 0, -5}, true, Point{X: 5, Y: 0}},
		{Seg(0, 0, 10, 0), Line{1, 0, 0}, true, Point{X: 0, Y: 0}},
		{Seg(0, 0, 10, 0), Line{1, 0, -10}, true, Point{X: 10, Y: 0}},
		{Seg(0, 0, 10, 10), Line{1, 1, -10}, true, Point{X: 5, Y: 5}},
		{Seg(10, 10, 0, 0), Line{-2, -2, 20}, true, Point{X: 5, Y: 5}},
		{Seg(0, 0, 4, 4), Line{1, 1, -10}, false, Point{}},
		{Seg(0, 0, 10, 0), Line{0, 1, -1}, false, Point{}}, // parallel
		{Seg(0, 0, 10, 0), Line{0, 1, 0}, false, Point{}},  // coincident
		{Seg(3, 4, 3, 4), Line{1, 0, -3}, false, Point{}},  // zero length
	}
	for _, c := range cases {
		p, ok := IntersectSegmentLine(c.s, c.l)
		if ok != c.ok || p != c.want {
			t.Errorf("%v, %v: got %v/%t, want %v/%t", c.s, c.l, p, ok, c.want, c.ok)
		}
	}
}

func TestIntersectsBeam(t *testing.T) {
	s := Seg(0, 0, 10, 0)
	hit := Line{A: 1, B: 0, C: -5}
	miss := Line{A: 1, B: 0, C: -15}
	parallel := Line{A: 0, B: 1, C: -2}

	cases := []struct {
		l1, l2 Line
		want   bool
	}{
		{hit, miss, true},
		{miss, hit, true},
		{hit, hit, true},
		{miss, miss, false},
		{parallel, miss, false},
		{parallel, hit, true},
	}
	for _, c := range cases {
		if got := IntersectsBeam(s, c.l1, c.l2); got != c.want {
			t.Errorf("%v, %v: got %t, want %t", c.l1, c.l2, got, c.want)
		}
	}
}

func TestIntersectorSlack(t *testing.T) {
	in := Intersector{Tolerance: DefaultTolerance, Slack: 1e-9}
	segs := []Segment{
		Seg(0.1, 0.2, 0.7, 0.3),
		Seg(1.3, 2.9, 7.7, -4.1),
		Seg(-3.3, 0.1, 12.34, 5.67),
		Seg(0.3, 0.6, 0.9, 0.2),
		Seg(100.1, 200.7, 17.3, 33.3),
	}
	for _, s := range segs {
		for _, end := range []Point{s.A, s.B} {
			// a line through the endpoint, crossing the segment
			l, err := Segment{A: end, B: end.Add(Point{X: 0.3, Y: 1.7})}.Line()
			if err != nil {
				t.Fatal(err)
			}
			p, ok := in.SegmentLine(s, l)
			if !ok {
				t.Errorf("%v: endpoint %v missed", s, end)
				continue
			}
			if !near(p, end) {
				t.Errorf("%v: got %v, want %v", s, p, end)
			}
		}
	}

	// slack does not turn real misses into hits
	if _, ok := in.SegmentLine(Seg(0, 0, 10, 0), Line{A: 1, C: -10.001}); ok {
		t.Error("line past the endpoint intersects")
	}
}
