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
	"errors"
	"image"
	"testing"

	"seehuhn.de/go/epiline"
)

func TestRecorder(t *testing.T) {
	rec := &Recorder{Rect: image.Rect(0, 0, 20, 10)}
	style := epiline.DefaultStyle()

	if err := epiline.Draw(rec, epiline.Line{A: 0, B: 1, C: -5}, style); err != nil {
		t.Fatal(err)
	}
	if err := epiline.Draw(rec, epiline.Line{A: 1, B: 0, C: -5}, style); !errors.Is(err, epiline.ErrUnrenderableLine) {
		t.Errorf("got error %v, want %v", err, epiline.ErrUnrenderableLine)
	}

	if len(rec.Calls) != 1 {
		t.Fatalf("%d calls, want 1", len(rec.Calls))
	}
	want := Call{P0: image.Pt(0, 5), P1: image.Pt(20, 5), Color: style.Color, Thickness: 1, Antialias: true}
	if rec.Calls[0] != want {
		t.Errorf("got %v, want %v", rec.Calls[0], want)
	}
}
