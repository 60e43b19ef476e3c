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

package plottools

import (
	"gonum.org/v1/plot/vg"

	"seehuhn.de/go/plottools/figure"
)

// FormatOptions control [PrepareAx].  The zero value selects the house
// style: a single column legend, a grid at the major ticks, and the font
// sizes from [Defaults].
type FormatOptions struct {
	// NoLegend disables the legend.
	NoLegend bool

	// FontSizes overrides the small, medium and large font sizes.
	// Entries which are zero are taken from the configured sizes.
	FontSizes [3]float64

	// NoGrid disables the grid.
	NoGrid bool

	// Which selects the ticks the grid lines are drawn at.
	Which figure.GridWhich

	// Columns is the number of legend columns.  Zero means one column.
	Columns int
}

// PrepareAx formats the axes ax.  If opt is nil, the default options are
// used.
//
// Tick labels on both axes use the medium font size.  Unless disabled,
// a frameless legend using the small font size is placed in the corner
// of the data area which hides the fewest data points, and grid lines
// are drawn at the selected ticks.
func PrepareAx(ax *figure.Axes, opt *FormatOptions) {
	if opt == nil {
		opt = &FormatOptions{}
	}
	sizes := opt.FontSizes
	def := Defaults().FontSizes
	for i, size := range sizes {
		if !(size > 0) {
			sizes[i] = def[i]
		}
	}

	ax.SetTickLabelSize(vg.Points(sizes[1]))

	if opt.NoLegend {
		ax.Legend = nil
	} else {
		sty := ax.Plot.Legend.TextStyle
		sty.Font.Size = vg.Points(sizes[0])
		ax.Legend = figure.NewLegendStyle(sty, max(opt.Columns, 1))
	}

	if opt.NoGrid {
		ax.Grid = nil
	} else {
		ax.Grid = figure.NewGridStyle(opt.Which)
	}
}
