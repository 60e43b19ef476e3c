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

package pdfcanvas

import (
	"math"

	"gonum.org/v1/plot/vg"
)

// appendPath adds the path p to the current PDF path.
// The return value indicates whether any path segments were added.
func (c *Canvas) appendPath(p vg.Path) bool {
	var cur vg.Point
	started := false

	moveOrLine := func(pt vg.Point) {
		if started {
			c.b.LineTo(float64(pt.X), float64(pt.Y))
		} else {
			c.b.MoveTo(float64(pt.X), float64(pt.Y))
			started = true
		}
		cur = pt
	}

	for _, comp := range p {
		switch comp.Type {
		case vg.MoveComp:
			c.b.MoveTo(float64(comp.Pos.X), float64(comp.Pos.Y))
			started = true
			cur = comp.Pos

		case vg.LineComp:
			moveOrLine(comp.Pos)

		case vg.ArcComp:
			start := arcPoint(comp.Pos, comp.Radius, comp.Start)
			if comp.Angle == 0 || comp.Radius == 0 {
				moveOrLine(start)
				continue
			}
			x, y, r := float64(comp.Pos.X), float64(comp.Pos.Y), float64(comp.Radius)
			end := comp.Start + comp.Angle
			if started {
				c.b.LineToArc(x, y, r, comp.Start, end)
			} else {
				c.b.MoveToArc(x, y, r, comp.Start, end)
				started = true
			}
			cur = arcPoint(comp.Pos, comp.Radius, end)

		case vg.CurveComp:
			if !started {
				c.b.MoveTo(float64(cur.X), float64(cur.Y))
				started = true
			}
			var c1, c2 vg.Point
			switch len(comp.Control) {
			case 1:
				c1, c2 = quadToCubic(cur, comp.Control[0], comp.Pos)
			case 2:
				c1, c2 = comp.Control[0], comp.Control[1]
			default:
				moveOrLine(comp.Pos)
				continue
			}
			c.b.CurveTo(
				float64(c1.X), float64(c1.Y),
				float64(c2.X), float64(c2.Y),
				float64(comp.Pos.X), float64(comp.Pos.Y))
			cur = comp.Pos

		case vg.CloseComp:
			if started {
				c.b.ClosePath()
			}
		}
	}
	return started
}

func arcPoint(center vg.Point, r vg.Length, angle float64) vg.Point {
	return vg.Point{
		X: center.X + r*vg.Length(math.Cos(angle)),
		Y: center.Y + r*vg.Length(math.Sin(angle)),
	}
}

// quadToCubic returns the control points of the cubic Bézier curve
// which traces the quadratic curve from p0 via q to p1.
func quadToCubic(p0, q, p1 vg.Point) (c1, c2 vg.Point) {
	c1 = vg.Point{X: p0.X + 2*(q.X-p0.X)/3, Y: p0.Y + 2*(q.Y-p0.Y)/3}
	c2 = vg.Point{X: p1.X + 2*(q.X-p1.X)/3, Y: p1.Y + 2*(q.Y-p1.Y)/3}
	return c1, c2
}
