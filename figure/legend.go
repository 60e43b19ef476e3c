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
	"image/color"
	"math"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// LegendLocation selects the corner of the data area which holds the
// legend.
type LegendLocation int

// These are the supported legend locations.  LegendBest chooses the
// corner which covers the fewest data points.
const (
	LegendBest LegendLocation = iota
	LegendUpperRight
	LegendUpperLeft
	LegendLowerLeft
	LegendLowerRight
)

// LegendStyle describes the appearance of a legend.
//
// Lengths given as plain numbers are in units of the legend font size.
type LegendStyle struct {
	Text     text.Style
	Columns  int
	Location LegendLocation

	// Frame enables a background box behind the legend, which is
	// filled with white at the given opacity.
	Frame      bool
	FrameAlpha float64

	HandleLength  float64
	HandleTextPad float64
	ColumnSpacing float64
	LabelSpacing  float64
	BorderPad     float64
	BorderAxesPad float64
}

// NewLegendStyle returns a frameless legend style, using the given
// text style for the labels.
func NewLegendStyle(sty text.Style, columns int) *LegendStyle {
	sty.XAlign = text.XLeft
	sty.YAlign = text.YCenter
	return &LegendStyle{
		Text:          sty,
		Columns:       columns,
		Location:      LegendBest,
		FrameAlpha:    0.5,
		HandleLength:  1.0,
		HandleTextPad: 0.5,
		ColumnSpacing: 0.6,
		LabelSpacing:  0.5,
		BorderPad:     0.4,
		BorderAxesPad: 0.5,
	}
}

// legendGrid describes the arrangement of n entries into columns.
// Entries fill the columns top to bottom, one column after another.
type legendGrid struct {
	rows, cols int
}

func newLegendGrid(n, columns int) legendGrid {
	if n == 0 {
		return legendGrid{}
	}
	cols := max(columns, 1)
	cols = min(cols, n)
	rows := (n + cols - 1) / cols
	return legendGrid{rows: rows, cols: cols}
}

// cell returns the position of entry i.
func (g legendGrid) cell(i int) (row, col int) {
	return i % g.rows, i / g.rows
}

// legendBox holds the computed geometry of a legend.
type legendBox struct {
	grid      legendGrid
	colWidth  []vg.Length
	rowHeight vg.Length
	width     vg.Length
	height    vg.Length
}

func (l *LegendStyle) measure(entries []legendEntry) legendBox {
	fs := l.Text.Font.Size
	g := newLegendGrid(len(entries), l.Columns)

	colWidth := make([]vg.Length, g.cols)
	var rowHeight vg.Length
	for i, e := range entries {
		_, col := g.cell(i)
		w := vg.Length(l.HandleLength+l.HandleTextPad)*fs + l.Text.Width(e.label)
		colWidth[col] = max(colWidth[col], w)
		rowHeight = max(rowHeight, l.Text.Height(e.label))
	}

	pad := vg.Length(l.BorderPad) * fs
	width := 2 * pad
	for _, w := range colWidth {
		width += w
	}
	if g.cols > 1 {
		width += vg.Length(g.cols-1) * vg.Length(l.ColumnSpacing) * fs
	}
	height := 2*pad + vg.Length(g.rows)*rowHeight
	if g.rows > 1 {
		height += vg.Length(g.rows-1) * vg.Length(l.LabelSpacing) * fs
	}

	return legendBox{
		grid:      g,
		colWidth:  colWidth,
		rowHeight: rowHeight,
		width:     width,
		height:    height,
	}
}

// place returns the lower left corner of the legend box inside c.
func (l *LegendStyle) place(c draw.Canvas, box legendBox, data []vg.Point) vg.Point {
	inset := vg.Length(l.BorderAxesPad) * l.Text.Font.Size
	corner := func(loc LegendLocation) vg.Point {
		switch loc {
		case LegendUpperLeft:
			return vg.Point{X: c.Min.X + inset, Y: c.Max.Y - inset - box.height}
		case LegendLowerLeft:
			return vg.Point{X: c.Min.X + inset, Y: c.Min.Y + inset}
		case LegendLowerRight:
			return vg.Point{X: c.Max.X - inset - box.width, Y: c.Min.Y + inset}
		default:
			return vg.Point{X: c.Max.X - inset - box.width, Y: c.Max.Y - inset - box.height}
		}
	}

	if l.Location != LegendBest {
		return corner(l.Location)
	}

	best := corner(LegendUpperRight)
	bestCount := math.MaxInt
	for _, loc := range []LegendLocation{LegendUpperRight, LegendUpperLeft, LegendLowerLeft, LegendLowerRight} {
		p := corner(loc)
		r := vg.Rectangle{Min: p, Max: vg.Point{X: p.X + box.width, Y: p.Y + box.height}}
		count := 0
		for _, pt := range data {
			if pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y {
				count++
			}
		}
		if count < bestCount {
			best, bestCount = p, count
		}
	}
	return best
}

func (l *LegendStyle) draw(c draw.Canvas, entries []legendEntry, data []vg.Point) {
	box := l.measure(entries)
	if box.grid.rows == 0 {
		return
	}
	fs := l.Text.Font.Size
	origin := l.place(c, box, data)

	if l.Frame {
		alpha := uint8(math.Round(255 * math.Max(0, math.Min(1, l.FrameAlpha))))
		c.FillPolygon(color.NRGBA{R: 255, G: 255, B: 255, A: alpha}, []vg.Point{
			origin,
			{X: origin.X + box.width, Y: origin.Y},
			{X: origin.X + box.width, Y: origin.Y + box.height},
			{X: origin.X, Y: origin.Y + box.height},
		})
	}

	pad := vg.Length(l.BorderPad) * fs
	colX := make([]vg.Length, box.grid.cols)
	x := origin.X + pad
	for col, w := range box.colWidth {
		colX[col] = x
		x += w + vg.Length(l.ColumnSpacing)*fs
	}

	top := origin.Y + box.height - pad
	rowStep := box.rowHeight + vg.Length(l.LabelSpacing)*fs
	handle := vg.Length(l.HandleLength) * fs
	for i, e := range entries {
		row, col := box.grid.cell(i)
		yTop := top - vg.Length(row)*rowStep
		yMid := yTop - box.rowHeight/2

		tc := draw.Canvas{
			Canvas: c.Canvas,
			Rectangle: vg.Rectangle{
				Min: vg.Point{X: colX[col], Y: yTop - box.rowHeight},
				Max: vg.Point{X: colX[col] + handle, Y: yTop},
			},
		}
		for _, t := range e.thumbs {
			t.Thumbnail(&tc)
		}

		pos := vg.Point{X: colX[col] + handle + vg.Length(l.HandleTextPad)*fs, Y: yMid}
		c.FillText(l.Text, pos, e.label)
	}
}
