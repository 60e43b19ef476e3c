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

package figure

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrGridSize is returned when a figure is created with fewer than one
// row or column of subplots.
var ErrGridSize = errors.New("invalid subplot grid size")

// Size is the size of a figure, in inches.
type Size struct {
	Width, Height float64
}

// DefaultSize is the figure size used when no size is given.
var DefaultSize = Size{Width: 14, Height: 7}

// Points returns the figure size in PDF points.
func (s Size) Points() (w, h vg.Length) {
	return vg.Length(s.Width) * vg.Inch, vg.Length(s.Height) * vg.Inch
}

// Share selects which axes are shared between the subplots of a figure.
// Shared axes use a common data range, and only the outermost subplots
// show tick labels for them.  The common range is only in effect while
// the figure is drawn; afterwards every axis has its own range again.
type Share struct {
	X, Y bool
}

// Figure is a grid of subplots drawn onto a common canvas.
type Figure struct {
	Rows, Cols int
	Size       Size
	Share      Share

	// Title, if non-empty, is drawn centered above the subplot grid.
	Title      string
	TitleStyle text.Style

	axes []*Axes
}

// New creates a figure with a rows×cols grid of empty subplots.
func New(rows, cols int, size Size, share Share) (*Figure, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %d×%d", ErrGridSize, rows, cols)
	}
	if !(size.Width > 0 && size.Height > 0) {
		return nil, fmt.Errorf("invalid figure size %g×%g", size.Width, size.Height)
	}

	f := &Figure{
		Rows:  rows,
		Cols:  cols,
		Size:  size,
		Share: share,
		axes:  make([]*Axes, rows*cols),
	}
	for i := range f.axes {
		f.axes[i] = NewAxes()
	}
	f.TitleStyle = f.axes[0].Plot.Title.TextStyle
	f.TitleStyle.XAlign = text.XCenter
	f.TitleStyle.YAlign = text.YCenter
	return f, nil
}

// Axes returns the axes of all subplots in row-major order.
// The slice always has Rows*Cols elements, also for a single subplot.
func (f *Figure) Axes() []*Axes {
	return f.axes
}

// At returns the axes in the given row and column.
func (f *Figure) At(row, col int) *Axes {
	if row < 0 || row >= f.Rows || col < 0 || col >= f.Cols {
		panic(fmt.Sprintf("subplot (%d, %d) outside %d×%d grid", row, col, f.Rows, f.Cols))
	}
	return f.axes[row*f.Cols+col]
}

// Draw draws the figure onto c, using the given layout.
func (f *Figure) Draw(c draw.Canvas, l Layout) error {
	if err := l.Validate(); err != nil {
		return err
	}

	pad := l.pad()
	top := vg.Length(1-l.Top) * (c.Max.Y - c.Min.Y)
	if top < pad {
		top = pad
	}

	restore := f.applySharing()
	defer restore()

	plots := make([][]*plot.Plot, f.Rows)
	for row := range plots {
		plots[row] = make([]*plot.Plot, f.Cols)
		for col := range plots[row] {
			plots[row][col] = f.At(row, col).Plot
		}
	}
	tiles := draw.Tiles{
		Rows:      f.Rows,
		Cols:      f.Cols,
		PadTop:    top,
		PadBottom: pad,
		PadLeft:   pad,
		PadRight:  pad,
		PadX:      pad,
		PadY:      pad,
	}
	canvases := plot.Align(plots, tiles, c)
	for row := range canvases {
		for col := range canvases[row] {
			f.At(row, col).draw(canvases[row][col])
		}
	}

	if f.Title != "" {
		pos := vg.Point{
			X: (c.Min.X + c.Max.X) / 2,
			Y: c.Max.Y - top/2,
		}
		c.FillText(f.TitleStyle, pos, f.Title)
	}
	return nil
}

// DrawTo draws the figure onto a canvas which has the size of the figure.
func (f *Figure) DrawTo(c vg.CanvasSizer, l Layout) error {
	return f.Draw(draw.New(c), l)
}
