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
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Axes is a single subplot of a figure.
//
// The underlying gonum plot is available as the Plot field and can be
// modified directly.  Data which should appear in the legend must be
// added using the methods of Axes, since gonum does not expose the
// legend entries of a plot.
type Axes struct {
	Plot *plot.Plot

	// Legend, if non-nil, is drawn on top of the data area.
	Legend *LegendStyle

	// Grid, if non-nil, is drawn on top of the data area.
	Grid *GridStyle

	entries []legendEntry
	data    []plotter.XYer
	nSeries int
}

type legendEntry struct {
	label  string
	thumbs []plot.Thumbnailer
}

// NewAxes returns empty axes, without legend or grid.
func NewAxes() *Axes {
	return &Axes{Plot: plot.New()}
}

// Add adds plotters to the axes.  If label is non-empty, the plotters
// which can draw a thumbnail are listed in the legend under this label.
func (ax *Axes) Add(label string, ps ...plot.Plotter) {
	ax.Plot.Add(ps...)

	var thumbs []plot.Thumbnailer
	for _, p := range ps {
		if t, ok := p.(plot.Thumbnailer); ok {
			thumbs = append(thumbs, t)
		}
		if xy, ok := p.(plotter.XYer); ok {
			ax.data = append(ax.data, xy)
		}
	}
	if label != "" && len(thumbs) > 0 {
		ax.entries = append(ax.entries, legendEntry{label: label, thumbs: thumbs})
	}
}

// Line adds a line through the given points.
// Successive data series get different colors.
func (ax *Axes) Line(label string, xys plotter.XYer) (*plotter.Line, error) {
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	l.Color = plotutil.Color(ax.nSeries)
	l.Width = vg.Points(1.5)
	ax.nSeries++
	ax.Add(label, l)
	return l, nil
}

// Scatter adds a marker at each of the given points.
// Successive data series get different colors.
func (ax *Axes) Scatter(label string, xys plotter.XYer) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.Color = plotutil.Color(ax.nSeries)
	s.Shape = plotutil.Shape(ax.nSeries)
	ax.nSeries++
	ax.Add(label, s)
	return s, nil
}

// SetTitle sets the title of the subplot.
func (ax *Axes) SetTitle(title string) {
	ax.Plot.Title.Text = title
}

// SetXLabel sets the label of the horizontal axis.
func (ax *Axes) SetXLabel(label string) {
	ax.Plot.X.Label.Text = label
}

// SetYLabel sets the label of the vertical axis.
func (ax *Axes) SetYLabel(label string) {
	ax.Plot.Y.Label.Text = label
}

// SetTickLabelSize sets the font size of the tick labels on both axes.
func (ax *Axes) SetTickLabelSize(size vg.Length) {
	ax.Plot.X.Tick.Label.Font.Size = size
	ax.Plot.Y.Tick.Label.Font.Size = size
}

// LegendLabels returns the legend labels in the order they were added.
func (ax *Axes) LegendLabels() []string {
	labels := make([]string, len(ax.entries))
	for i, e := range ax.entries {
		labels[i] = e.label
	}
	return labels
}

func (ax *Axes) draw(c draw.Canvas) {
	ax.Plot.Draw(c)

	dc := ax.Plot.DataCanvas(c)
	if ax.Grid != nil {
		ax.Grid.draw(dc, ax.Plot)
	}
	if ax.Legend != nil && len(ax.entries) > 0 {
		ax.Legend.draw(dc, ax.entries, ax.dataPoints(dc))
	}
}

// dataPoints returns the positions of all data points on the canvas.
func (ax *Axes) dataPoints(c draw.Canvas) []vg.Point {
	trX, trY := ax.Plot.Transforms(&c)
	var pts []vg.Point
	for _, xys := range ax.data {
		for i := 0; i < xys.Len(); i++ {
			x, y := xys.XY(i)
			if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
				continue
			}
			pts = append(pts, vg.Point{X: trX(x), Y: trY(y)})
		}
	}
	return pts
}
