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

// Package plottools contains helpers for producing consistently
// formatted plots.
//
// [PrepareAx] applies a fixed house style to a set of axes: tick label
// sizes, a legend and a grid.  A [Plotter] owns a figure with a grid of
// subplots and finalizes it with [Plotter.PreparePlot], which lays out
// the subplots, saves the figure as a PDF file under
//
//	<plots root>/<plot type>/<description>/<subfolder>/<file name>
//
// optionally embedding caller supplied metadata into the document
// information dictionary, and optionally shows the figure on screen.
//
// Figures are built with gonum.org/v1/plot and written using
// seehuhn.de/go/pdf.
package plottools
