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

// Package testcases holds annotation scenes shared by the tests and the
// tools in the subdirectories.
package testcases

import (
	"image/color"

	"seehuhn.de/go/epiline"
)

// Scene is a canvas with annotation segments and an epipolar beam.
type Scene struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels

	Segments []epiline.Segment
	Beam     [2]epiline.Line

	// InBeam has one entry per segment, telling whether the segment
	// crosses at least one of the beam lines.
	InBeam []bool
}

// Segment and beam colors used when rendering scenes.
var (
	SegmentColor = color.RGBA{R: 0, G: 160, B: 255, A: 255}
	HitColor     = color.RGBA{R: 255, G: 64, B: 0, A: 255}
	BeamColor    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// seg is a helper to create a segment.
func seg(x0, y0, x1, y1 float64) epiline.Segment {
	return epiline.Seg(x0, y0, x1, y1)
}

// through returns the line through two points.
func through(x0, y0, x1, y1 float64) epiline.Line {
	l, err := seg(x0, y0, x1, y1).Line()
	if err != nil {
		panic(err)
	}
	return l
}
