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

// Plotdemo draws a grid of example curves and saves and shows the figure
// using the plottools conventions.
//
// With -inspect, plotdemo instead prints the document information
// dictionary of an existing PDF file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gonum.org/v1/plot/plotter"

	"seehuhn.de/go/plottools"
	"seehuhn.de/go/plottools/display"
	"seehuhn.de/go/plottools/display/window"
	"seehuhn.de/go/plottools/figure"
	"seehuhn.de/go/plottools/internal/buildinfo"
	"seehuhn.de/go/plottools/internal/logging"
	"seehuhn.de/go/plottools/pdfpages"
)

func main() {
	err := run(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, "plotdemo:", err)
		os.Exit(1)
	}
}

type settings struct {
	configFile string
	root       string
	plotType   string
	desc       string
	subfolder  string
	saveName   string
	title      string
	rows, cols int
	top        float64
	grid       string
	columns    int

	save, noMeta, xmp bool
	show, block       bool
	viewer            string
	meta              metaFlag

	inspect  string
	logLevel string
	version  bool
}

func parseFlags(args []string) (*settings, error) {
	interactive := term.IsTerminal(int(os.Stdout.Fd()))

	s := &settings{meta: metaFlag{}}
	fs := flag.NewFlagSet("plotdemo", flag.ContinueOnError)
	fs.StringVar(&s.configFile, "config", "", "read settings from this YAML file")
	fs.StringVar(&s.root, "root", "", "root directory for saved plots (overrides the configuration)")
	fs.StringVar(&s.plotType, "type", "demo", "plot type, used as the first directory level")
	fs.StringVar(&s.desc, "desc", "curves", "job description, used as the second directory level")
	fs.StringVar(&s.subfolder, "sub", "", "optional subfolder")
	fs.StringVar(&s.saveName, "name", "plotdemo.pdf", "output file name")
	fs.StringVar(&s.title, "title", "", "figure title")
	fs.IntVar(&s.rows, "rows", 2, "number of subplot rows")
	fs.IntVar(&s.cols, "cols", 2, "number of subplot columns")
	fs.Float64Var(&s.top, "top", figure.DefaultTop, "top of the subplot grid, as a fraction of the figure height")
	fs.StringVar(&s.grid, "grid", "major", "grid lines at `ticks` (major, minor, both or none)")
	fs.IntVar(&s.columns, "ncol", 1, "number of legend columns")
	fs.BoolVar(&s.save, "save", false, "save the figure")
	fs.BoolVar(&s.noMeta, "no-meta", false, "do not embed metadata into the saved file")
	fs.BoolVar(&s.xmp, "xmp", false, "add an XMP metadata stream to the saved file")
	fs.BoolVar(&s.show, "show", interactive, "show the figure on screen")
	fs.BoolVar(&s.block, "block", interactive, "wait until the figure is dismissed")
	fs.StringVar(&s.viewer, "viewer", "command", "viewer to use (command or window)")
	fs.Var(s.meta, "meta", "metadata entry `key=value` (repeatable)")
	fs.StringVar(&s.inspect, "inspect", "", "print the information dictionary of this PDF `file` and exit")
	fs.StringVar(&s.logLevel, "log-level", "info", "log level")
	fs.BoolVar(&s.version, "version", false, "print version information and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return s, nil
}

func run(args []string) error {
	s, err := parseFlags(args)
	if err != nil {
		return err
	}
	if s.version {
		fmt.Println(buildinfo.Short("plotdemo"))
		return nil
	}
	if s.inspect != "" {
		return inspect(s.inspect)
	}

	if err := logging.Configure(logging.Config{Level: s.logLevel}); err != nil {
		return err
	}
	log := logging.WithComponent("plotdemo")

	cfg := plottools.Defaults()
	if s.configFile != "" {
		cfg, err = plottools.LoadConfig(s.configFile)
		if err != nil {
			return err
		}
	}
	if s.root != "" {
		cfg.PlotsRoot = s.root
	}

	var viewer display.Viewer
	switch s.viewer {
	case "command":
		viewer = &display.CommandViewer{Logger: log}
	case "window":
		viewer = &window.Viewer{}
	default:
		return fmt.Errorf("unknown viewer %q", s.viewer)
	}

	fmtOpt := &plottools.FormatOptions{Columns: s.columns}
	if s.grid == "none" {
		fmtOpt.NoGrid = true
	} else {
		fmtOpt.Which, err = figure.ParseGridWhich(s.grid)
		if err != nil {
			return err
		}
	}

	p, err := plottools.New(s.rows, s.cols, &plottools.Options{
		Config: &cfg,
		Logger: &log,
		Viewer: viewer,
		PDF:    pdfpages.Options{XMP: s.xmp},
	})
	if err != nil {
		return err
	}
	if err := drawCurves(p, fmtOpt); err != nil {
		return err
	}
	if s.title != "" {
		p.SetTitle(s.title)
	}
	for key, val := range s.meta {
		p.Metadata[key] = val
	}
	log.Debug().Object("metadata", s.meta).Msg("metadata from command line")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	path, err := p.PreparePlot(ctx, &plottools.PrepareOptions{
		SaveName:     s.saveName,
		PlotType:     s.plotType,
		Desc:         s.desc,
		Subfolder:    s.subfolder,
		Top:          s.top,
		Save:         s.save,
		SaveMetadata: !s.noMeta,
		Show:         s.show,
		Block:        s.block,
	})
	if path != "" {
		log.Info().Str("file", path).Msg("figure saved")
	}
	return err
}

// drawCurves fills every subplot with a family of damped oscillations.
func drawCurves(p *plottools.Plotter, opt *plottools.FormatOptions) error {
	const n = 200
	for i, ax := range p.Axes() {
		for k := 1; k <= 3; k++ {
			xys := make(plotter.XYs, n)
			freq := float64(k) * float64(i+1) / 2
			for j := range xys {
				x := 4 * math.Pi * float64(j) / (n - 1)
				xys[j].X = x
				xys[j].Y = math.Exp(-x/8) * math.Sin(freq*x)
			}
			if _, err := ax.Line(fmt.Sprintf("f = %g", freq), xys); err != nil {
				return err
			}
		}
		ax.SetXLabel("t")
		if i%p.Figure().Cols == 0 {
			ax.SetYLabel("amplitude")
		}
		plottools.PrepareAx(ax, opt)
	}
	return nil
}

func inspect(name string) error {
	fd, err := os.Open(name)
	if err != nil {
		return err
	}
	defer fd.Close()

	info, err := pdfpages.ReadInfo(fd)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if len(info) == 0 {
		fmt.Println("no document information dictionary")
		return nil
	}
	keys := make([]string, 0, len(info))
	for key := range info {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		fmt.Printf("%s: %s\n", key, info[key])
	}
	return nil
}

// metaFlag collects repeated -meta key=value flags.
type metaFlag map[string]string

func (m metaFlag) String() string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = key + "=" + m[key]
	}
	return strings.Join(parts, ",")
}

func (m metaFlag) Set(s string) error {
	key, val, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return fmt.Errorf("invalid metadata entry %q, want key=value", s)
	}
	m[key] = val
	return nil
}

var _ flag.Value = metaFlag(nil)
var _ zerolog.LogObjectMarshaler = metaFlag(nil)

// MarshalZerologObject lets the collected entries be logged as an object.
func (m metaFlag) MarshalZerologObject(e *zerolog.Event) {
	for key, val := range m {
		e.Str(key, val)
	}
}
