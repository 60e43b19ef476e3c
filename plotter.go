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
	"context"
	"errors"
	"fmt"
	"maps"
	"os"

	"github.com/rs/zerolog"
	"gonum.org/v1/plot/vg"

	"seehuhn.de/go/plottools/display"
	"seehuhn.de/go/plottools/figure"
	"seehuhn.de/go/plottools/internal/logging"
	"seehuhn.de/go/plottools/pdfpages"
)

// Options configure a new [Plotter].  The zero value selects the
// defaults.
type Options struct {
	// Size is the figure size in inches.  The zero value selects
	// figure.DefaultSize.
	Size figure.Size

	// NoShareX and NoShareY disable the shared axis ranges of the
	// initial subplot grid.
	NoShareX, NoShareY bool

	// Config, if non-nil, is used instead of the process-wide defaults.
	Config *Config

	// Logger receives diagnostic messages.  If this is nil, a console
	// logger on stderr is used.
	Logger *zerolog.Logger

	// Viewer shows figures on screen.  If this is nil, a
	// display.CommandViewer is used.  On Linux it prefers an installed
	// viewer which stays open until the figure is dismissed, and falls
	// back to xdg-open, which cannot block.  Use display/window for a
	// viewer which always blocks.
	Viewer display.Viewer

	// PDF controls how files are written.
	PDF pdfpages.Options
}

// Plotter manages one figure at a time, from creation to saving and
// showing it.
type Plotter struct {
	// Metadata is merged into the document information dictionary of
	// saved files.  The map is empty after construction.
	Metadata map[string]string

	// Size is the size of figures created by CreatePlot, in inches.
	Size figure.Size

	Config Config
	Viewer display.Viewer
	PDF    pdfpages.Options

	log    zerolog.Logger
	fig    *figure.Figure
	layout figure.Layout
}

// New creates a plotter with an nrows×ncols grid of subplots.
// Unless disabled in opt, all subplots share their x and y ranges.
func New(nrows, ncols int, opt *Options) (*Plotter, error) {
	if opt == nil {
		opt = &Options{}
	}

	p := &Plotter{
		Metadata: make(map[string]string),
		Size:     opt.Size,
		Viewer:   opt.Viewer,
		PDF:      opt.PDF,
	}
	if p.Size == (figure.Size{}) {
		p.Size = figure.DefaultSize
	}
	if opt.Config != nil {
		if err := opt.Config.Validate(); err != nil {
			return nil, err
		}
		p.Config = *opt.Config
	} else {
		p.Config = Defaults()
	}
	if opt.Logger != nil {
		p.log = *opt.Logger
	} else {
		p.log = logging.WithComponent("plottools")
	}
	if p.Viewer == nil {
		p.Viewer = &display.CommandViewer{Logger: p.log}
	}

	share := figure.Share{X: !opt.NoShareX, Y: !opt.NoShareY}
	if err := p.CreatePlot(nrows, ncols, share); err != nil {
		return nil, err
	}
	return p, nil
}

// CreatePlot replaces the current figure by a new figure with an
// nrows×ncols grid of subplots.
func (p *Plotter) CreatePlot(nrows, ncols int, share figure.Share) error {
	fig, err := figure.New(nrows, ncols, p.Size, share)
	if err != nil {
		return err
	}
	p.fig = fig
	p.layout = figure.DefaultLayout()
	return nil
}

// Figure returns the current figure.
func (p *Plotter) Figure() *figure.Figure {
	return p.fig
}

// Axes returns the subplots of the current figure in row-major order.
// The slice has one element per subplot, also for a 1×1 grid.
func (p *Plotter) Axes() []*figure.Axes {
	return p.fig.Axes()
}

// At returns the subplot in the given row and column.
func (p *Plotter) At(row, col int) *figure.Axes {
	return p.fig.At(row, col)
}

// SetTitle sets the figure title, using the large font size.
// The title is drawn above the subplot grid.
func (p *Plotter) SetTitle(title string) {
	p.fig.Title = title
	p.fig.TitleStyle.Font.Size = vg.Points(p.Config.FontSizes[2])
}

// PrepareOptions control [Plotter.PreparePlot].
type PrepareOptions struct {
	// SaveName is the file name of the saved plot.
	SaveName string

	// PlotType, Desc and Subfolder give the directory of the saved plot,
	// below Config.PlotsRoot.
	PlotType  string
	Desc      string
	Subfolder string

	// Top is the position of the top of the subplot grid, as a fraction
	// of the figure height.  Zero selects figure.DefaultTop.
	Top float64

	// Save enables writing the figure to a file.
	Save bool

	// SaveMetadata merges the Metadata of the plotter into the
	// information dictionary of the saved file.
	SaveMetadata bool

	// Show displays the figure using the plotter's viewer.
	Show bool

	// Block makes PreparePlot wait until the figure is dismissed.
	Block bool
}

// DefaultPrepareOptions returns the options used when
// [Plotter.PreparePlot] is called with nil options: the figure is not
// saved but shown, and PreparePlot waits until it is dismissed.
func DefaultPrepareOptions() *PrepareOptions {
	return &PrepareOptions{
		Top:          figure.DefaultTop,
		SaveMetadata: true,
		Show:         true,
		Block:        true,
	}
}

// PreparePlot finalizes the current figure.  The subplots are packed
// tightly below the line at height opt.Top.  Then, depending on opt,
// the figure is saved as a PDF file and shown on screen.
//
// The returned string is the path of the saved file, or the empty
// string if the figure was not saved.
func (p *Plotter) PreparePlot(ctx context.Context, opt *PrepareOptions) (string, error) {
	if opt == nil {
		opt = DefaultPrepareOptions()
	}
	l := figure.Layout{Top: opt.Top}
	if l.Top == 0 {
		l.Top = figure.DefaultTop
	}
	if err := l.Validate(); err != nil {
		return "", err
	}
	p.layout = l

	var path string
	if opt.Save {
		var err error
		path, err = p.save(opt)
		if err != nil {
			return "", err
		}
	}

	if opt.Show {
		img, err := display.Rasterize(p.fig, p.layout, p.Config.DPI)
		if err != nil {
			return path, fmt.Errorf("render figure: %w", err)
		}
		err = p.Viewer.Show(ctx, img, p.windowTitle(opt), opt.Block)
		if err != nil {
			return path, fmt.Errorf("show figure: %w", err)
		}
	}
	return path, nil
}

func (p *Plotter) save(opt *PrepareOptions) (string, error) {
	if opt.SaveName == "" {
		return "", errors.New("cannot save plot: empty file name")
	}
	if opt.SaveMetadata {
		if err := pdfpages.ValidateInfo(p.Metadata); err != nil {
			return "", fmt.Errorf("plot metadata: %w", err)
		}
	}

	dir := OutputDir(p.Config.PlotsRoot, opt.PlotType, opt.Desc, opt.Subfolder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create plot directory: %w", err)
	}
	path := OutputPath(p.Config.PlotsRoot, opt.PlotType, opt.Desc, opt.Subfolder, opt.SaveName)

	out, err := pdfpages.Create(path, &p.PDF)
	if err != nil {
		return "", err
	}
	err = out.AddFigure(p.fig, p.layout)
	if err == nil && opt.SaveMetadata {
		info := out.InfoDict()
		maps.Copy(info, p.Metadata)
		p.log.Info().Str("file", path).Interface("metadata", info).Msg("plot metadata")
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}

	p.log.Debug().Str("file", path).Msg("plot saved")
	return path, nil
}

// SaveTo appends the current figure as a new page to pages, using the
// layout of the most recent call to PreparePlot.  The metadata of the
// plotter is merged into the information dictionary of pages.
func (p *Plotter) SaveTo(pages *pdfpages.File) error {
	if err := pdfpages.ValidateInfo(p.Metadata); err != nil {
		return fmt.Errorf("plot metadata: %w", err)
	}
	if err := pages.AddFigure(p.fig, p.layout); err != nil {
		return err
	}
	maps.Copy(pages.InfoDict(), p.Metadata)
	return nil
}

func (p *Plotter) windowTitle(opt *PrepareOptions) string {
	switch {
	case p.fig.Title != "":
		return p.fig.Title
	case opt.SaveName != "":
		return opt.SaveName
	case opt.PlotType != "":
		return opt.PlotType
	default:
		return "plot"
	}
}
