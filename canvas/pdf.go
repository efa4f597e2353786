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
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/epiline"
)

// ErrCanvasClosed is returned when drawing onto a PDF canvas after Close.
var ErrCanvasClosed = errors.New("canvas: PDF already closed")

// PDF draws lines into a single-page PDF file.  One PDF unit corresponds to
// one pixel, with the origin at the top-left corner of the page.
//
// The antialias flag of DrawLine is ignored, since anti-aliasing is under
// the control of the PDF viewer.  Alpha values are ignored as well.
type PDF struct {
	page          *document.Page
	width, height int
	closed        bool
}

// CreatePDF creates the file fname and returns a width×height canvas
// writing into it.  The caller must call Close to finish the file.
func CreatePDF(fname string, width, height int) (*PDF, error) {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, fmt.Errorf("creating %q: %w", fname, err)
	}

	// PDF origin is bottom-left; image coordinates are top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})
	page.SetLineCap(graphics.LineCapSquare)
	page.SetLineJoin(graphics.LineJoinMiter)

	epiline.Logger().Debug("pdf canvas created", "file", fname, "width", width, "height", height)
	return &PDF{page: page, width: width, height: height}, nil
}

// Bounds implements [epiline.Canvas].
func (c *PDF) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// DrawLine implements [epiline.Canvas].  The line is stroked through the
// pixel centers with square caps, so that both endpoint pixels are
// covered.
func (c *PDF) DrawLine(p0, p1 image.Point, col color.Color, thickness int, _ bool) error {
	if c.closed {
		return ErrCanvasClosed
	}

	c.page.SetStrokeColor(deviceRGB(col))
	c.page.SetLineWidth(float64(max(thickness, 1)))

	seg := epiline.Segment{A: center(p0), B: center(p1)}
	for cmd, pts := range seg.Path() {
		switch cmd {
		case path.CmdMoveTo:
			c.page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			c.page.LineTo(pts[0].X, pts[0].Y)
		}
	}
	c.page.Stroke()
	return nil
}

// Close writes the page and closes the file.
func (c *PDF) Close() error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.closed = true
	epiline.Logger().Debug("pdf canvas closed")
	return c.page.Close()
}

// deviceRGB converts col to a non-premultiplied PDF color.
func deviceRGB(col color.Color) pdfcolor.Color {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return pdfcolor.DeviceRGB{
		float64(n.R) / 255,
		float64(n.G) / 255,
		float64(n.B) / 255,
	}
}
