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

// Package display shows figures on the screen.
//
// Figures are rasterized with gonum's vgimg backend and handed to a
// [Viewer].  [CommandViewer] opens the image in an external program; a
// desktop window viewer is provided by the display/window package.
package display

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"gonum.org/v1/plot/vg/vgimg"

	"seehuhn.de/go/plottools/figure"
)

// DefaultDPI is the resolution used when no resolution is given.
const DefaultDPI = 96

// Viewer shows images to the user.
type Viewer interface {
	// Show displays img.  If block is true, Show returns only after the
	// user has dismissed the image.
	Show(ctx context.Context, img image.Image, title string, block bool) error
}

// Rasterize draws the figure into an image with the given resolution
// in dots per inch.  If dpi is zero, DefaultDPI is used.
func Rasterize(fig *figure.Figure, l figure.Layout, dpi float64) (image.Image, error) {
	if dpi == 0 {
		dpi = DefaultDPI
	}
	if dpi < 0 {
		return nil, fmt.Errorf("invalid resolution %g dpi", dpi)
	}
	w, h := fig.Size.Points()
	c := vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(int(dpi+0.5)),
		vgimg.UseBackgroundColor(color.White),
	)
	if err := fig.DrawTo(c, l); err != nil {
		return nil, err
	}
	return c.Image(), nil
}

// ViewerFunc adapts an ordinary function to the Viewer interface.
type ViewerFunc func(ctx context.Context, img image.Image, title string, block bool) error

// Show calls f.
func (f ViewerFunc) Show(ctx context.Context, img image.Image, title string, block bool) error {
	return f(ctx, img, title, block)
}
