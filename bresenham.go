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
	"image"
	"math"
	"slices"
)

// Rasterize returns the pixels approximating s, computed with Bresenham's
// algorithm.  The endpoints are first rounded to the nearest integer.
//
// The result contains max(|dx|, |dy|) + 1 points, starts at the (rounded)
// point s.A and ends at s.B.  Consecutive points are 8-connected.
// Rasterizing s.Reverse() gives the same points in reverse order.
func Rasterize(s Segment) []image.Point {
	return rasterize(s, nil)
}

// RasterizeClipped returns the pixels of [Rasterize] which lie inside clip,
// in the same order.  Only the part of the segment near clip is stepped
// through, so the cost does not depend on how far the segment extends
// beyond clip.
func RasterizeClipped(s Segment, clip image.Rectangle) []image.Point {
	if clip.Empty() {
		return nil
	}
	return rasterize(s, &clip)
}

func rasterize(s Segment, clip *image.Rectangle) []image.Point {
	x0, y0 := roundInt(s.A.X), roundInt(s.A.Y)
	x1, y1 := roundInt(s.B.X), roundInt(s.B.Y)

	// Step along the axis with the larger extent, so that steep
	// segments have no gaps.
	steep := absInt(y1-y0) > absInt(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}

	// Always step left to right.
	swapped := x0 > x1
	if swapped {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := absInt(y1 - y0)
	ystep := 1
	if y0 > y1 {
		ystep = -1
	}

	// Steps jFirst..jLast along the major axis are visited.
	jFirst, jLast := 0, dx
	var majLo, majHi, minLo, minHi int // inclusive clip range, transposed
	if clip != nil {
		majLo, majHi = clip.Min.X, clip.Max.X-1
		minLo, minHi = clip.Min.Y, clip.Max.Y-1
		if steep {
			majLo, majHi, minLo, minHi = minLo, minHi, majLo, majHi
		}
		jFirst = max(jFirst, majLo-x0)
		jLast = min(jLast, majHi-x0)
		if dy > 0 {
			// The pixel row stays within one unit of the ideal line.
			lo, hi := minLo-y0-1, minHi-y0+1
			if ystep < 0 {
				lo, hi = y0-minHi-1, y0-minLo+1
			}
			r := float64(dx) / float64(dy)
			jFirst = max(jFirst, int(math.Floor(float64(lo)*r))-1)
			jLast = min(jLast, int(math.Ceil(float64(hi)*r))+1)
		}
		if jFirst > jLast {
			return nil
		}
	}

	// error term and row offset after jFirst steps
	h := int64(dx / 2)
	m := int64(0)
	if dx > 0 {
		m = max(ceilDiv(int64(jFirst)*int64(dy)-h, int64(dx)), 0)
	}
	e := int(h - int64(jFirst)*int64(dy) + m*int64(dx))
	y := y0 + ystep*int(m)

	pts := make([]image.Point, 0, jLast-jFirst+1)
	for x := x0 + jFirst; x <= x0+jLast; x++ {
		if clip == nil || y >= minLo && y <= minHi {
			if steep {
				pts = append(pts, image.Point{X: y, Y: x})
			} else {
				pts = append(pts, image.Point{X: x, Y: y})
			}
		}
		e -= dy
		if e < 0 {
			y += ystep
			e += dx
		}
	}

	if swapped {
		slices.Reverse(pts)
	}
	return pts
}

// ceilDiv returns a/b rounded up, for b > 0.
func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}

// maxCoord bounds pixel coordinates, so that far away points on infinite
// lines do not overflow when converted to int.
const maxCoord = 1 << 24

func roundInt(v float64) int {
	v = math.Round(v)
	if !(v > -maxCoord) {
		return -maxCoord
	}
	if v > maxCoord {
		return maxCoord
	}
	return int(v)
}

func pixel(p Point) image.Point {
	return image.Point{X: roundInt(p.X), Y: roundInt(p.Y)}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
