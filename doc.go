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

// Package epiline implements 2D line geometry for image annotation and
// stereo vision: finite segments, infinite lines in homogeneous form,
// their intersections, Bresenham rasterization of segments, and drawing
// of both onto a [Canvas].
//
// All functions are pure and safe for concurrent use.  Coordinates are
// image coordinates, with the origin at the top-left corner and y
// increasing downwards.
package epiline
