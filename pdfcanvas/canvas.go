// seehuhn.de/go/plottools - helpers for consistently formatted plots
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

// Package pdfcanvas lets gonum.org/v1/plot draw into a PDF content stream.
//
// A [Canvas] translates the drawing operations of the vg.Canvas
// interface into PDF graphics operators, using a content stream
// builder from seehuhn.de/go/pdf.  Text is set in the standard 14 PDF
// fonts, so no font data needs to be embedded.  gonum measures text
// using its default Liberation fonts, which are metric compatible with
// Helvetica, Times and Courier.
package pdfcanvas

import (
	"errors"
	"image"
	"image/color"
	"math"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"seehuhn.de/go/geom/matrix"

	pdfcolor "seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/content/builder"
)

// ErrImage is recorded when a plot tries to draw a raster image.
var ErrImage = errors.New("pdfcanvas: raster images are not supported")

// Canvas implements vg.CanvasSizer on top of a PDF content stream builder.
type Canvas struct {
	b     *builder.Builder
	w, h  vg.Length
	fonts fontCache

	// Err records the first drawing error which cannot be reported
	// through the vg.Canvas interface.
	Err error

	// invisible is set while the current color is fully transparent.
	invisible bool
	stack     []bool
}

var _ vg.CanvasSizer = (*Canvas)(nil)

// New returns a canvas of the given size, drawing into b.
// The origin is the lower left corner of the page, and units are PDF
// points.
func New(b *builder.Builder, w, h vg.Length) *Canvas {
	c := &Canvas{
		b:     b,
		w:     w,
		h:     h,
		fonts: make(fontCache),
	}
	c.SetColor(color.Black)
	return c
}

// Size returns the canvas size.
func (c *Canvas) Size() (w, h vg.Length) {
	return c.w, c.h
}

// SetLineWidth implements the vg.Canvas interface.
func (c *Canvas) SetLineWidth(w vg.Length) {
	c.b.SetLineWidth(math.Max(0, float64(w)))
}

// SetLineDash implements the vg.Canvas interface.
func (c *Canvas) SetLineDash(pattern []vg.Length, offset vg.Length) {
	dashes := make([]float64, len(pattern))
	for i, d := range pattern {
		dashes[i] = float64(d)
	}
	c.b.SetLineDash(dashes, float64(offset))
}

// SetColor implements the vg.Canvas interface.
// The alpha channel is not represented in the output, except that fully
// transparent colors suppress drawing altogether.
func (c *Canvas) SetColor(col color.Color) {
	if col == nil {
		col = color.Black
	}
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	c.invisible = n.A == 0
	if c.invisible {
		return
	}

	pc := toDeviceColor(n)
	c.b.SetStrokeColor(pc)
	c.b.SetFillColor(pc)
}

func toDeviceColor(n color.NRGBA) pdfcolor.Color {
	if n.R == n.G && n.G == n.B {
		return pdfcolor.DeviceGray(float64(n.R) / 255)
	}
	return pdfcolor.DeviceRGB{float64(n.R) / 255, float64(n.G) / 255, float64(n.B) / 255}
}

// Rotate implements the vg.Canvas interface.
func (c *Canvas) Rotate(rad float64) {
	c.b.Transform(matrix.Rotate(rad))
}

// Translate implements the vg.Canvas interface.
func (c *Canvas) Translate(pt vg.Point) {
	c.b.Transform(matrix.Translate(float64(pt.X), float64(pt.Y)))
}

// Scale implements the vg.Canvas interface.
func (c *Canvas) Scale(x, y float64) {
	c.b.Transform(matrix.Scale(x, y))
}

// Push implements the vg.Canvas interface.
func (c *Canvas) Push() {
	c.stack = append(c.stack, c.invisible)
	c.b.PushGraphicsState()
}

// Pop implements the vg.Canvas interface.
func (c *Canvas) Pop() {
	if len(c.stack) == 0 {
		c.setErr(errors.New("pdfcanvas: Pop without Push"))
		return
	}
	c.invisible = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.b.PopGraphicsState()
}

// Stroke implements the vg.Canvas interface.
func (c *Canvas) Stroke(p vg.Path) {
	if c.invisible || !c.appendPath(p) {
		return
	}
	c.b.Stroke()
}

// Fill implements the vg.Canvas interface.
func (c *Canvas) Fill(p vg.Path) {
	if c.invisible || !c.appendPath(p) {
		return
	}
	c.b.Fill()
}

// FillString implements the vg.Canvas interface.
func (c *Canvas) FillString(f font.Face, pt vg.Point, text string) {
	if c.invisible || text == "" {
		return
	}
	inst := c.fonts.get(f.Font)

	c.b.TextBegin()
	c.b.TextSetFont(inst, float64(f.Font.Size))
	c.b.TextFirstLine(float64(pt.X), float64(pt.Y))
	c.b.TextShow(text)
	c.b.TextEnd()
}

// DrawImage implements the vg.Canvas interface.
// Raster images are not supported; the first call records [ErrImage].
func (c *Canvas) DrawImage(vg.Rectangle, image.Image) {
	c.setErr(ErrImage)
}

func (c *Canvas) setErr(err error) {
	if c.Err == nil {
		c.Err = err
	}
}
