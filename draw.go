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
	"fmt"
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/rect"
)

// ErrUnrenderableLine is returned by [Draw] for infinite lines which cannot
// be written as y = f(x), i.e. vertical lines with B == 0.
var ErrUnrenderableLine = errors.New("epiline: non-renderable line orientation")

// Canvas is a drawing target.
//
// Implementations for images and PDF files are provided by the package
// seehuhn.de/go/epiline/canvas.  Draw does not serialize calls; sharing a
// Canvas between goroutines requires external locking.
type Canvas interface {
	// Bounds returns the drawable area in pixel coordinates.
	Bounds() image.Rectangle

	// DrawLine draws a straight line from p0 to p1 (both included).
	DrawLine(p0, p1 image.Point, col color.Color, thickness int, antialias bool) error
}

// Style holds the parameters passed through to [Canvas.DrawLine].
type Style struct {
	Color     color.Color
	Thickness int
	Antialias bool
}

// DefaultStyle returns a one pixel wide, anti-aliased, opaque white style.
func DefaultStyle() Style {
	return Style{
		Color:     color.White,
		Thickness: 1,
		Antialias: true,
	}
}

// Draw renders g onto c using exactly one call to c.DrawLine.
//
// A [Segment] is drawn between its endpoints, rounded to the nearest
// pixel.  A [Line] is drawn across the full width of c, from its point at
// the left edge of c.Bounds() to its point at the right edge.  Vertical
// lines cannot be drawn this way and cause [ErrUnrenderableLine], in which
// case nothing is drawn.
//
// Endpoints further than 2^24 pixels from the origin are moved along the
// segment or line into that range, so the drawn line keeps its direction.
func Draw(c Canvas, g Geometry, style Style) error {
	var p0, p1 image.Point
	switch g := g.(type) {
	case Segment:
		if !inRange(g.A) || !inRange(g.B) {
			if clipped, ok := g.Clip(coordBox()); ok {
				g = clipped
			}
		}
		p0, p1 = pixel(g.A), pixel(g.B)
	case Line:
		if !g.Valid() {
			Logger().Debug("invalid line", "a", g.A, "b", g.B, "c", g.C)
			return ErrUnrenderableLine
		}
		b := c.Bounds()
		if g.B == 0 {
			Logger().Debug("vertical line", "a", g.A, "c", g.C)
			return ErrUnrenderableLine
		}
		p0 = pixel(g.pointAt(float64(b.Min.X), b))
		p1 = pixel(g.pointAt(float64(b.Max.X), b))
	default:
		return fmt.Errorf("epiline: unsupported geometry %T", g)
	}

	Logger().Debug("draw", "kind", g.Kind(), "p0", p0, "p1", p1)
	return c.DrawLine(p0, p1, style.Color, style.Thickness, style.Antialias)
}

// coordBox is the range of coordinates passed to Canvas.DrawLine.
func coordBox() rect.Rect {
	return rect.Rect{LLx: -maxCoord, LLy: -maxCoord, URx: maxCoord, URy: maxCoord}
}

func inRange(p Point) bool {
	return math.Abs(p.X) <= maxCoord && math.Abs(p.Y) <= maxCoord
}

// pointAt returns the point of l at x.  If that point is further than
// maxCoord from the x axis, the point where l leaves the strip
// |y| <= maxCoord is returned instead, as long as it lies within the
// horizontal range of b.  l must not be vertical.
func (l Line) pointAt(x float64, b image.Rectangle) Point {
	y, _ := l.YAt(x)
	if math.Abs(y) <= maxCoord {
		return Point{X: x, Y: y}
	}
	y = math.Copysign(maxCoord, y)
	if l.A != 0 {
		xs := -(l.B*y + l.C) / l.A
		if xs >= float64(b.Min.X) && xs <= float64(b.Max.X) {
			return Point{X: xs, Y: y}
		}
	}
	return Point{X: x, Y: y}
}
