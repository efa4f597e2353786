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

package epiline_test

import (
	"image"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/epiline"
	"seehuhn.de/go/epiline/canvas"
	"seehuhn.de/go/epiline/testcases"
)

func TestScenes(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			t.Run(category+"_"+sc.Name, func(t *testing.T) {
				if len(sc.InBeam) != len(sc.Segments) {
					t.Fatalf("%d segments but %d results", len(sc.Segments), len(sc.InBeam))
				}
				for i, s := range sc.Segments {
					got := epiline.IntersectsBeam(s, sc.Beam[0], sc.Beam[1])
					if got != sc.InBeam[i] {
						t.Errorf("segment %d %v: got %t, want %t", i, s, got, sc.InBeam[i])
					}
				}
			})
		}
	}
}

func TestRenderScenes(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			t.Run(category+"_"+sc.Name, func(t *testing.T) {
				rec := &canvas.Recorder{Rect: image.Rect(0, 0, sc.Width, sc.Height)}
				if err := testcases.Render(sc, rec); err != nil {
					t.Fatal(err)
				}
				if want := len(sc.Beam) + len(sc.Segments); len(rec.Calls) != want {
					t.Fatalf("%d draw calls, want %d", len(rec.Calls), want)
				}
				for i, s := range sc.Segments {
					call := rec.Calls[len(sc.Beam)+i]
					want := testcases.SegmentColor
					if sc.InBeam[i] {
						want = testcases.HitColor
					}
					if call.Color != want {
						t.Errorf("segment %d %v: color %v, want %v", i, s, call.Color, want)
					}
				}
			})
		}
	}
}
