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

// Package figure implements a figure made of a grid of subplots.
//
// A [Figure] is an explicitly owned drawing context: it holds the
// [Axes] of all subplots, knows how the axes are shared and how the
// subplot grid is placed on the canvas.  Drawing is delegated to
// gonum.org/v1/plot; the figure adds shared axis ranges, a figure title,
// and legend and grid overlays whose appearance can be configured per
// axes.
//
// Figures are not safe for concurrent use.
package figure
