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

import (
	"errors"
	"fmt"

	"seehuhn.de/go/epiline"
)

// Render draws the scene onto c: first the two beam lines, then every
// segment, colored by whether it crosses the beam.  Vertical beam lines
// are drawn as segments spanning the height of the scene.
func Render(sc Scene, c epiline.Canvas) error {
	style := epiline.DefaultStyle()

	style.Color = BeamColor
	for i, l := range sc.Beam {
		err := epiline.Draw(c, l, style)
		if errors.Is(err, epiline.ErrUnrenderableLine) && l.A != 0 {
			// vertical line: draw it as a segment from top to bottom
			x := -l.C / l.A
			err = epiline.Draw(c, epiline.Seg(x, 0, x, float64(sc.Height)), style)
		}
		if err != nil {
			return fmt.Errorf("%s: beam line %d: %w", sc.Name, i, err)
		}
	}

	style.Thickness = 2
	for i, s := range sc.Segments {
		style.Color = SegmentColor
		if epiline.IntersectsBeam(s, sc.Beam[0], sc.Beam[1]) {
			style.Color = HitColor
		}
		if err := epiline.Draw(c, s, style); err != nil {
			return fmt.Errorf("%s: segment %d: %w", sc.Name, i, err)
		}
	}
	return nil
}
