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

// Package canvas provides drawing targets for [epiline.Draw].
package canvas

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/epiline"
)

// Image draws lines onto an RGBA image.
//
// Aliased lines are drawn by stamping a square brush along the pixels
// found by [epiline.RasterizeClipped].  Anti-aliased lines fill the [Outline] of
// the line using golang.org/x/image/vector.
//
// An Image is not safe for concurrent use.
type Image struct {
	img  *image.RGBA
	rast *vector.Rasterizer
}

// NewImage returns a canvas backed by a new, fully transparent
// width×height image.
func NewImage(width, height int) *Image {
	return NewImageFrom(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewImageFrom returns a canvas which draws onto img.
func NewImageFrom(img *image.RGBA) *Image {
	b := img.Bounds()
	return &Image{
		img:  img,
		rast: vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// Bounds implements [epiline.Canvas].
func (c *Image) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// RGBA returns the underlying image.
func (c *Image) RGBA() *image.RGBA {
	return c.img
}

// DrawLine implements [epiline.Canvas].  Thickness values below 1 are
// treated as 1.
func (c *Image) DrawLine(p0, p1 image.Point, col color.Color, thickness int, antialias bool) error {
	thickness = max(thickness, 1)
	src := image.NewUniform(col)
	if antialias {
		c.fillOutline(p0, p1, thickness, src)
	} else {
		c.stamp(p0, p1, thickness, src)
	}
	return nil
}

// stamp draws a thickness×thickness square at every pixel of the
// rasterized line.  The squares are collected in a mask first, so that
// overlapping squares are blended only once.
func (c *Image) stamp(p0, p1 image.Point, thickness int, src image.Image) {
	bounds := c.img.Bounds()
	lo := (thickness - 1) / 2
	hi := thickness - lo

	// pixels whose square touches the image
	centers := image.Rect(bounds.Min.X-hi+1, bounds.Min.Y-hi+1, bounds.Max.X+lo, bounds.Max.Y+lo)
	seg := epiline.Seg(float64(p0.X), float64(p0.Y), float64(p1.X), float64(p1.Y))
	pts := epiline.RasterizeClipped(seg, centers)

	var area image.Rectangle
	for _, p := range pts {
		area = area.Union(image.Rect(p.X-lo, p.Y-lo, p.X+hi, p.Y+hi))
	}
	area = area.Intersect(bounds)
	if area.Empty() {
		return
	}

	mask := image.NewAlpha(area)
	for _, p := range pts {
		r := image.Rect(p.X-lo, p.Y-lo, p.X+hi, p.Y+hi).Intersect(area)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			row := mask.Pix[mask.PixOffset(r.Min.X, y):][:r.Dx()]
			for i := range row {
				row[i] = 0xff
			}
		}
	}
	draw.DrawMask(c.img, area, src, image.Point{}, mask, area.Min, draw.Over)
}

// fillOutline draws the anti-aliased outline of the line.
func (c *Image) fillOutline(p0, p1 image.Point, thickness int, src image.Image) {
	bounds := c.img.Bounds()
	off := bounds.Min

	// Only the part of the line near the image is passed to the rasterizer.
	margin := float64(thickness + 1)
	near := rect.Rect{
		LLx: -margin,
		LLy: -margin,
		URx: float64(bounds.Dx()) + margin,
		URy: float64(bounds.Dy()) + margin,
	}
	seg, ok := epiline.Segment{A: center(p0.Sub(off)), B: center(p1.Sub(off))}.Clip(near)
	if !ok {
		return
	}

	c.rast.Reset(bounds.Dx(), bounds.Dy())
	for cmd, pts := range Outline(seg.A, seg.B, float64(thickness)) {
		switch cmd {
		case path.CmdMoveTo:
			c.rast.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdLineTo:
			c.rast.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdClose:
			c.rast.ClosePath()
		}
	}

	// The rasterizer expects the destination to start at the origin.
	dst := &image.RGBA{
		Pix:    c.img.Pix,
		Stride: c.img.Stride,
		Rect:   image.Rect(0, 0, bounds.Dx(), bounds.Dy()),
	}
	c.rast.Draw(dst, dst.Rect, src, image.Point{})
}
