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
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// GridWhich selects the ticks at which grid lines are drawn.
type GridWhich int

// These are the supported grid granularities.
const (
	GridMajor GridWhich = iota
	GridMinor
	GridBoth
)

func (w GridWhich) String() string {
	switch w {
	case GridMajor:
		return "major"
	case GridMinor:
		return "minor"
	case GridBoth:
		return "both"
	default:
		return fmt.Sprintf("GridWhich(%d)", int(w))
	}
}

// ParseGridWhich converts "major", "minor" or "both" to a GridWhich value.
func ParseGridWhich(s string) (GridWhich, error) {
	switch s {
	case "major":
		return GridMajor, nil
	case "minor":
		return GridMinor, nil
	case "both":
		return GridBoth, nil
	}
	return 0, fmt.Errorf("unknown grid granularity %q", s)
}

// GridStyle describes the grid lines drawn over the data area.
type GridStyle struct {
	Which GridWhich
	Line  draw.LineStyle
}

// NewGridStyle returns a light gray grid for the given ticks.
func NewGridStyle(which GridWhich) *GridStyle {
	return &GridStyle{
		Which: which,
		Line: draw.LineStyle{
			Color: color.Gray{Y: 176},
			Width: vg.Points(0.8),
		},
	}
}

func (g *GridStyle) selects(t plot.Tick) bool {
	switch g.Which {
	case GridMinor:
		return t.IsMinor()
	case GridBoth:
		return true
	default:
		return !t.IsMinor()
	}
}

// draw strokes the grid lines.  c must be the data canvas of p.
func (g *GridStyle) draw(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)

	for _, t := range g.ticks(p.X) {
		x := trX(t.Value)
		c.StrokeLine2(g.Line, x, c.Min.Y, x, c.Max.Y)
	}
	for _, t := range g.ticks(p.Y) {
		y := trY(t.Value)
		c.StrokeLine2(g.Line, c.Min.X, y, c.Max.X, y)
	}
}

func (g *GridStyle) ticks(a plot.Axis) []plot.Tick {
	if a.Tick.Marker == nil {
		return nil
	}
	var res []plot.Tick
	for _, t := range baseTicker(a.Tick.Marker).Ticks(a.Min, a.Max) {
		if t.Value < a.Min || t.Value > a.Max || !g.selects(t) {
			continue
		}
		res = append(res, t)
	}
	return res
}
