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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// center returns the center of the pixel p.
func center(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5}
}

// Outline returns the closed outline of a straight line of the given width
// from a to b.  The ends are extended by half the width, so that both
// endpoints are fully covered.  If a == b, the outline is a square
// centered at a.
func Outline(a, b vec.Vec2, width float64) path.Path {
	h := width / 2
	t := vec.Vec2{X: 1, Y: 0}
	if d := b.Sub(a); d.Length() > 0 {
		t = d.Mul(1 / d.Length())
	}
	n := vec.Vec2{X: -t.Y, Y: t.X}

	th, nh := t.Mul(h), n.Mul(h)
	corners := [4]vec.Vec2{
		a.Sub(th).Add(nh),
		b.Add(th).Add(nh),
		b.Add(th).Sub(nh),
		a.Sub(th).Sub(nh),
	}
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, corners[:1]) {
			return
		}
		for i := 1; i < len(corners); i++ {
			if !yield(path.CmdLineTo, corners[i:i+1]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}
