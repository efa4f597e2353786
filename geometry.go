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
	"errors"
	"math"
	"strconv"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrDegenerateSegment is returned when a zero-length segment is converted
// to a line.
var ErrDegenerateSegment = errors.New("epiline: degenerate segment")

// Point is a position in image coordinates.
type Point = vec.Vec2

// Segment is a finite line segment from A to B.
//
// The order of the endpoints only affects the direction in which
// [Rasterize] emits pixels.
type Segment struct {
	A, B Point
}

// Seg is a helper to create a Segment from the coordinates of its endpoints.
func Seg(x0, y0, x1, y1 float64) Segment {
	return Segment{A: Point{X: x0, Y: y0}, B: Point{X: x1, Y: y1}}
}

// Length returns the Euclidean distance between the endpoints of s.
func (s Segment) Length() float64 {
	return s.B.Sub(s.A).Length()
}

// Length returns the Euclidean distance between the endpoints of s.
func Length(s Segment) float64 {
	return s.Length()
}

// Reverse returns the segment with its endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{A: s.B, B: s.A}
}

// BBox returns the axis-aligned bounding box of the segment.
func (s Segment) BBox() rect.Rect {
	return rect.Rect{
		LLx: min(s.A.X, s.B.X),
		LLy: min(s.A.Y, s.B.Y),
		URx: max(s.A.X, s.B.X),
		URy: max(s.A.Y, s.B.Y),
	}
}

// Path returns the segment as a two-point open path.
func (s Segment) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{s.A}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{s.B})
	}
}

// Clip returns the part of s which lies inside r, boundary included.
// Endpoints already inside r are kept unchanged.  The second return value
// is false if s misses r.
func (s Segment) Clip(r rect.Rect) (Segment, bool) {
	d := s.B.Sub(s.A)
	t0, t1 := 0.0, 1.0
	for _, c := range [4][2]float64{
		{-d.X, s.A.X - r.LLx},
		{d.X, r.URx - s.A.X},
		{-d.Y, s.A.Y - r.LLy},
		{d.Y, r.URy - s.A.Y},
	} {
		p, q := c[0], c[1]
		if p == 0 {
			if q < 0 {
				return Segment{}, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
		if !(t0 <= t1) {
			return Segment{}, false
		}
	}

	res := s
	if t0 > 0 {
		res.A = s.A.Add(d.Mul(t0))
	}
	if t1 < 1 {
		res.B = s.A.Add(d.Mul(t1))
	}
	return res, true
}

// Line returns the homogeneous line through both endpoints of s.
// The result is (y0-y1, x1-x0, y1*x0-x1*y0); the direction of s fixes
// the sign.
func (s Segment) Line() (Line, error) {
	if s.A == s.B {
		Logger().Debug("degenerate segment", "x", s.A.X, "y", s.A.Y)
		return Line{}, ErrDegenerateSegment
	}
	return Line{
		A: s.A.Y - s.B.Y,
		B: s.B.X - s.A.X,
		C: s.B.Y*s.A.X - s.B.X*s.A.Y,
	}, nil
}

// Line is the infinite line {(x,y) : A*x + B*y + C = 0}.
//
// (A, B) must not both be zero. Lines which differ by a non-zero factor
// describe the same set of points, and all functions in this package treat
// them as equal.
type Line struct {
	A, B, C float64
}

// Valid reports whether l describes a line, i.e. whether (A, B) != (0, 0)
// and all coefficients are finite.
func (l Line) Valid() bool {
	for _, v := range [3]float64{l.A, l.B, l.C} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return l.A != 0 || l.B != 0
}

// Scale multiplies all coefficients by k.
func (l Line) Scale(k float64) Line {
	return Line{A: k * l.A, B: k * l.B, C: k * l.C}
}

// Eval returns A*x + B*y + C for the point p.
// The result is zero on the line, and its sign tells on which side of the
// line p lies.
func (l Line) Eval(p Point) float64 {
	return l.A*p.X + l.B*p.Y + l.C
}

// YAt returns the y coordinate of the line at the given x.
// The second return value is false for vertical lines.
func (l Line) YAt(x float64) (float64, bool) {
	if l.B == 0 {
		return 0, false
	}
	return -(l.A*x + l.C) / l.B, true
}

// Kind identifies which geometry type a draw call interprets.
type Kind int

const (
	// Finite selects a [Segment].
	Finite Kind = iota
	// Infinite selects a [Line].
	Infinite
)

func (k Kind) String() string {
	switch k {
	case Finite:
		return "finite"
	case Infinite:
		return "infinite"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Geometry is either a [Segment] or a [Line].
type Geometry interface {
	Kind() Kind
	isGeometry()
}

// Kind returns [Finite].
func (Segment) Kind() Kind { return Finite }

// Kind returns [Infinite].
func (Line) Kind() Kind { return Infinite }

func (Segment) isGeometry() {}
func (Line) isGeometry()    {}
