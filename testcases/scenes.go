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

package testcases

import "seehuhn.de/go/epiline"

var beamScenes = []Scene{
	{
		Name:   "fan",
		Width:  64,
		Height: 64,
		Segments: []epiline.Segment{
			seg(10, 10, 54, 10), // crosses both lines
			seg(2, 28, 12, 28),  // crosses the upper line only
			seg(2, 60, 12, 60),  // misses both
		},
		Beam: [2]epiline.Line{
			through(0, 32, 64, 0),
			through(0, 32, 64, 64),
		},
		InBeam: []bool{true, true, false},
	},
	{
		Name:   "parallel",
		Width:  64,
		Height: 64,
		Segments: []epiline.Segment{
			seg(0, 20, 64, 20), // parallel to both lines
			seg(30, 0, 30, 64), // crosses both
			seg(0, 0, 8, 8),    // between the lines
		},
		Beam: [2]epiline.Line{
			{A: 0, B: 1, C: -16},
			{A: 0, B: 2, C: -96},
		},
		InBeam: []bool{false, true, false},
	},
}

var boundaryScenes = []Scene{
	{
		Name:   "endpoint_touch",
		Width:  32,
		Height: 32,
		Segments: []epiline.Segment{
			seg(0, 0, 10, 0),   // touches x=10 with its endpoint
			seg(10, 5, 20, 5),  // starts on x=10
			seg(11, 9, 20, 9),  // right of x=10, left of x=25
			seg(25, 10, 25, 0), // lies on x=25
		},
		Beam: [2]epiline.Line{
			{A: 1, B: 0, C: -10},
			{A: 1, B: 0, C: -25},
		},
		InBeam: []bool{true, true, false, false},
	},
}

var steepScenes = []Scene{
	{
		Name:   "near_vertical",
		Width:  48,
		Height: 48,
		Segments: []epiline.Segment{
			seg(20, 2, 21, 46),
			seg(30, 46, 29, 2),
		},
		Beam: [2]epiline.Line{
			{A: 0, B: 1, C: -24},
			through(0, 47, 47, 40),
		},
		InBeam: []bool{true, true},
	},
}
