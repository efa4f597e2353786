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

package canvas

import (
	"image"
	"image/color"
)

// Call is one recorded DrawLine call.
type Call struct {
	P0, P1    image.Point
	Color     color.Color
	Thickness int
	Antialias bool
}

// Recorder is a canvas which only remembers the calls made to it.
type Recorder struct {
	Rect  image.Rectangle
	Calls []Call

	// Err, if non-nil, is returned by every DrawLine call.
	Err error
}

// Bounds implements [epiline.Canvas].
func (r *Recorder) Bounds() image.Rectangle {
	return r.Rect
}

// DrawLine implements [epiline.Canvas].
func (r *Recorder) DrawLine(p0, p1 image.Point, col color.Color, thickness int, antialias bool) error {
	r.Calls = append(r.Calls, Call{
		P0:        p0,
		P1:        p1,
		Color:     col,
		Thickness: thickness,
		Antialias: antialias,
	})
	return r.Err
}
