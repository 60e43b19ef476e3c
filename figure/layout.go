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
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// DefaultTop is the default position of the top of the subplot grid,
// as a fraction of the figure height.
const DefaultTop = 0.89

const defaultPad = 8 * vg.Length(1)

// Layout describes how the subplot grid is placed on the canvas.
//
// Subplots are packed tightly: axis labels and tick labels of
// neighbouring subplots are aligned, and the padding between them is
// kept minimal.
type Layout struct {
	// Top is the position of the top edge of the subplot grid, as a
	// fraction of the canvas height.  The space above is used for the
	// figure title.
	Top float64

	// Pad is the padding around and between the subplots.
	// If this is zero, 8pt is used.
	Pad vg.Length
}

// DefaultLayout returns the layout used when the caller does not
// specify one.
func DefaultLayout() Layout {
	return Layout{Top: DefaultTop}
}

// Validate checks that the layout can be applied.
func (l Layout) Validate() error {
	if !(l.Top > 0 && l.Top <= 1) {
		return fmt.Errorf("layout top %g outside (0, 1]", l.Top)
	}
	if l.Pad < 0 {
		return fmt.Errorf("negative layout padding %g", l.Pad)
	}
	return nil
}

func (l Layout) pad() vg.Length {
	if l.Pad == 0 {
		return defaultPad
	}
	return l.Pad
}

// applySharing sets common ranges for the shared axes and hides the
// tick labels of inner subplots.  The returned function restores the
// original ranges and tick markers.
func (f *Figure) applySharing() func() {
	type axisState struct {
		min, max float64
		marker   plot.Ticker
	}
	save := func(a *plot.Axis) axisState {
		return axisState{min: a.Min, max: a.Max, marker: a.Tick.Marker}
	}
	load := func(a *plot.Axis, s axisState) {
		a.Min, a.Max, a.Tick.Marker = s.min, s.max, s.marker
	}

	saved := make([][2]axisState, len(f.axes))
	for i, ax := range f.axes {
		saved[i] = [2]axisState{save(&ax.Plot.X), save(&ax.Plot.Y)}
	}

	if f.Share.X {
		shareRange(f.axes, func(ax *Axes) *plot.Axis { return &ax.Plot.X })
		for row := 0; row < f.Rows-1; row++ {
			for col := 0; col < f.Cols; col++ {
				x := &f.At(row, col).Plot.X
				x.Tick.Marker = unlabeled{x.Tick.Marker}
			}
		}
	}
	if f.Share.Y {
		shareRange(f.axes, func(ax *Axes) *plot.Axis { return &ax.Plot.Y })
		for row := 0; row < f.Rows; row++ {
			for col := 1; col < f.Cols; col++ {
				y := &f.At(row, col).Plot.Y
				y.Tick.Marker = unlabeled{y.Tick.Marker}
			}
		}
	}

	return func() {
		for i, ax := range f.axes {
			load(&ax.Plot.X, saved[i][0])
			load(&ax.Plot.Y, saved[i][1])
		}
	}
}

func shareRange(axes []*Axes, get func(*Axes) *plot.Axis) {
	lo, hi := math.Inf(+1), math.Inf(-1)
	for _, ax := range axes {
		a := get(ax)
		lo = math.Min(lo, a.Min)
		hi = math.Max(hi, a.Max)
	}
	for _, ax := range axes {
		a := get(ax)
		a.Min = lo
		a.Max = hi
	}
}

// unlabeled is a ticker which keeps the tick positions of the
// underlying ticker, but removes all labels.
type unlabeled struct {
	plot.Ticker
}

func (t unlabeled) Ticks(min, max float64) []plot.Tick {
	orig := t.Ticker.Ticks(min, max)
	ticks := make([]plot.Tick, len(orig))
	for i, tick := range orig {
		ticks[i] = plot.Tick{Value: tick.Value}
	}
	return ticks
}

// baseTicker strips the label suppression of shared axes, so that
// major and minor ticks can still be told apart.
func baseTicker(t plot.Ticker) plot.Ticker {
	for {
		u, ok := t.(unlabeled)
		if !ok {
			return t
		}
		t = u.Ticker
	}
}
