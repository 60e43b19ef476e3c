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
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// recorder is a vg.CanvasSizer which remembers the strings drawn.
type recorder struct {
	w, h    vg.Length
	strings []string
	sizes   map[string]vg.Length
	strokes int
}

func newRecorder(size Size) *recorder {
	w, h := size.Points()
	return &recorder{w: w, h: h, sizes: make(map[string]vg.Length)}
}

func (r *recorder) Size() (vg.Length, vg.Length)        { return r.w, r.h }
func (r *recorder) SetLineWidth(vg.Length)              {}
func (r *recorder) SetLineDash([]vg.Length, vg.Length)  {}
func (r *recorder) SetColor(color.Color)                {}
func (r *recorder) Rotate(float64)                      {}
func (r *recorder) Translate(vg.Point)                  {}
func (r *recorder) Scale(float64, float64)              {}
func (r *recorder) Push()                               {}
func (r *recorder) Pop()                                {}
func (r *recorder) Stroke(vg.Path)                      { r.strokes++ }
func (r *recorder) Fill(vg.Path)                        {}
func (r *recorder) DrawImage(vg.Rectangle, image.Image) {}
func (r *recorder) FillString(f font.Face, _ vg.Point, s string) {
	r.strings = append(r.strings, s)
	r.sizes[s] = f.Font.Size
}

func (r *recorder) has(s string) bool {
	_, ok := r.sizes[s]
	return ok
}

func TestNewSingleSubplot(t *testing.T) {
	f, err := New(1, 1, DefaultSize, Share{})
	if err != nil {
		t.Fatal(err)
	}
	axes := f.Axes()
	if len(axes) != 1 {
		t.Fatalf("got %d axes, want 1", len(axes))
	}
	if axes[0] != f.At(0, 0) {
		t.Error("Axes()[0] and At(0, 0) differ")
	}
}

func TestNewGridShapes(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {1, 3}, {3, 1}, {2, 2}, {4, 5}} {
		f, err := New(shape[0], shape[1], DefaultSize, Share{X: true, Y: true})
		if err != nil {
			t.Fatal(err)
		}
		if got, want := len(f.Axes()), shape[0]*shape[1]; got != want {
			t.Errorf("%v: got %d axes, want %d", shape, got, want)
		}
		for row := 0; row < shape[0]; row++ {
			for col := 0; col < shape[1]; col++ {
				if f.At(row, col) != f.Axes()[row*shape[1]+col] {
					t.Errorf("%v: At(%d, %d) is not in row-major position", shape, row, col)
				}
			}
		}
	}
}

func TestNewInvalid(t *testing.T) {
	_, err := New(0, 2, DefaultSize, Share{})
	if !errors.Is(err, ErrGridSize) {
		t.Errorf("0×2 grid: got %v, want ErrGridSize", err)
	}
	_, err = New(1, 1, Size{Width: 0, Height: 7}, Share{})
	if err == nil {
		t.Error("zero width accepted")
	}
}

func TestLayoutValidate(t *testing.T) {
	for _, top := range []float64{0, -0.5, 1.01} {
		if err := (Layout{Top: top}).Validate(); err == nil {
			t.Errorf("top %g accepted", top)
		}
	}
	if err := DefaultLayout().Validate(); err != nil {
		t.Error(err)
	}
}

func TestSharedRanges(t *testing.T) {
	f, err := New(1, 2, Size{Width: 6, Height: 3}, Share{X: true, Y: true})
	if err != nil {
		t.Fatal(err)
	}
	_, err = f.At(0, 0).Line("a", plotter.XYs{{X: 0, Y: 1}, {X: 1, Y: 2}})
	if err != nil {
		t.Fatal(err)
	}
	_, err = f.At(0, 1).Line("b", plotter.XYs{{X: -3, Y: 5}, {X: 0.5, Y: 6}})
	if err != nil {
		t.Fatal(err)
	}

	restore := f.applySharing()
	for _, ax := range f.Axes() {
		if ax.Plot.X.Min != -3 || ax.Plot.X.Max != 1 {
			t.Errorf("x range [%g, %g], want [-3, 1]", ax.Plot.X.Min, ax.Plot.X.Max)
		}
		if ax.Plot.Y.Min != 1 || ax.Plot.Y.Max != 6 {
			t.Errorf("y range [%g, %g], want [1, 6]", ax.Plot.Y.Min, ax.Plot.Y.Max)
		}
	}
	restore()
	checkRanges(t, f, [][4]float64{{0, 1, 1, 2}, {-3, 0.5, 5, 6}})
}

// checkRanges compares the x and y ranges of all subplots to want.
func checkRanges(t *testing.T, f *Figure, want [][4]float64) {
	t.Helper()
	var got [][4]float64
	for _, ax := range f.Axes() {
		got = append(got, [4]float64{ax.Plot.X.Min, ax.Plot.X.Max, ax.Plot.Y.Min, ax.Plot.Y.Max})
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("axis ranges (-want +got):\n%s", d)
	}
}

func TestDrawKeepsRanges(t *testing.T) {
	f, err := New(2, 1, Size{Width: 4, Height: 4}, Share{X: true, Y: true})
	if err != nil {
		t.Fatal(err)
	}
	_, err = f.At(0, 0).Line("a", plotter.XYs{{X: 0, Y: 1}, {X: 2, Y: 3}})
	if err != nil {
		t.Fatal(err)
	}
	_, err = f.At(1, 0).Line("b", plotter.XYs{{X: 5, Y: -1}, {X: 7, Y: 0}})
	if err != nil {
		t.Fatal(err)
	}
	want := [][4]float64{{0, 2, 1, 3}, {5, 7, -1, 0}}

	if err := f.DrawTo(newRecorder(f.Size), DefaultLayout()); err != nil {
		t.Fatal(err)
	}
	checkRanges(t, f, want)

	// data added after a draw must still widen the shared range
	_, err = f.At(1, 0).Line("c", plotter.XYs{{X: 10, Y: 4}})
	if err != nil {
		t.Fatal(err)
	}
	restore := f.applySharing()
	if x := f.At(0, 0).Plot.X; x.Min != 0 || x.Max != 10 {
		t.Errorf("shared x range [%g, %g], want [0, 10]", x.Min, x.Max)
	}
	restore()
}

func TestSharingRestoresMarkers(t *testing.T) {
	f, err := New(2, 2, Size{Width: 6, Height: 6}, Share{X: true, Y: true})
	if err != nil {
		t.Fatal(err)
	}
	restore := f.applySharing()
	if _, ok := f.At(0, 0).Plot.X.Tick.Marker.(unlabeled); !ok {
		t.Error("top row x labels not suppressed")
	}
	if _, ok := f.At(1, 0).Plot.X.Tick.Marker.(unlabeled); ok {
		t.Error("bottom row x labels suppressed")
	}
	if _, ok := f.At(0, 1).Plot.Y.Tick.Marker.(unlabeled); !ok {
		t.Error("right column y labels not suppressed")
	}
	if _, ok := f.At(0, 0).Plot.Y.Tick.Marker.(unlabeled); ok {
		t.Error("left column y labels suppressed")
	}
	restore()
	for i, ax := range f.Axes() {
		if _, ok := ax.Plot.X.Tick.Marker.(unlabeled); ok {
			t.Errorf("axes %d: x marker not restored", i)
		}
		if _, ok := ax.Plot.Y.Tick.Marker.(unlabeled); ok {
			t.Errorf("axes %d: y marker not restored", i)
		}
	}
}

func TestUnlabeledKeepsPositions(t *testing.T) {
	base := plot.ConstantTicks{{Value: 1, Label: "1"}, {Value: 1.5}, {Value: 2, Label: "2"}}
	got := unlabeled{base}.Ticks(0, 3)
	want := []plot.Tick{{Value: 1}, {Value: 1.5}, {Value: 2}}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
	if base[0].Label != "1" {
		t.Error("underlying ticks modified")
	}
	if _, ok := baseTicker(unlabeled{unlabeled{base}}).(plot.ConstantTicks); !ok {
		t.Error("baseTicker did not unwrap")
	}
}

func TestGridSelects(t *testing.T) {
	major := plot.Tick{Value: 1, Label: "1"}
	minor := plot.Tick{Value: 1.5}
	cases := []struct {
		which        GridWhich
		major, minor bool
	}{
		{GridMajor, true, false},
		{GridMinor, false, true},
		{GridBoth, true, true},
	}
	for _, c := range cases {
		g := NewGridStyle(c.which)
		if g.selects(major) != c.major || g.selects(minor) != c.minor {
			t.Errorf("%s: wrong tick selection", c.which)
		}
	}
}

func TestParseGridWhich(t *testing.T) {
	for _, w := range []GridWhich{GridMajor, GridMinor, GridBoth} {
		got, err := ParseGridWhich(w.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != w {
			t.Errorf("got %s, want %s", got, w)
		}
	}
	if _, err := ParseGridWhich("sideways"); err == nil {
		t.Error("invalid granularity accepted")
	}
}

func TestLegendGrid(t *testing.T) {
	cases := []struct {
		n, columns int
		want       legendGrid
		cells      [][2]int
	}{
		{n: 0, columns: 3, want: legendGrid{}},
		{n: 3, columns: 0, want: legendGrid{rows: 3, cols: 1},
			cells: [][2]int{{0, 0}, {1, 0}, {2, 0}}},
		{n: 5, columns: 2, want: legendGrid{rows: 3, cols: 2},
			cells: [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}}},
		{n: 2, columns: 4, want: legendGrid{rows: 1, cols: 2},
			cells: [][2]int{{0, 0}, {0, 1}}},
	}
	for _, c := range cases {
		g := newLegendGrid(c.n, c.columns)
		if g != c.want {
			t.Errorf("n=%d, columns=%d: got %+v, want %+v", c.n, c.columns, g, c.want)
			continue
		}
		var cells [][2]int
		for i := 0; i < c.n; i++ {
			row, col := g.cell(i)
			cells = append(cells, [2]int{row, col})
		}
		if d := cmp.Diff(c.cells, cells); d != "" {
			t.Errorf("n=%d, columns=%d: %s", c.n, c.columns, d)
		}
	}
}

func TestLegendBestAvoidsData(t *testing.T) {
	ax := NewAxes()
	l := NewLegendStyle(ax.Plot.X.Tick.Label, 1)
	c := draw.Canvas{Rectangle: vg.Rectangle{Max: vg.Point{X: 400, Y: 300}}}
	box := legendBox{width: 80, height: 40}

	// all data in the upper right corner
	data := []vg.Point{{X: 390, Y: 290}, {X: 370, Y: 280}, {X: 350, Y: 270}}
	got := l.place(c, box, data)
	if got.X > 200 || got.Y < 150 {
		t.Errorf("legend placed at %v, want upper left", got)
	}

	l.Location = LegendLowerRight
	got = l.place(c, box, data)
	if got.X < 200 || got.Y > 150 {
		t.Errorf("legend placed at %v, want lower right", got)
	}
}

func TestDrawFormatting(t *testing.T) {
	f, err := New(1, 1, Size{Width: 6, Height: 4}, Share{})
	if err != nil {
		t.Fatal(err)
	}
	f.Title = "figure title"
	ax := f.At(0, 0)
	_, err = ax.Line("series one", plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 4}})
	if err != nil {
		t.Fatal(err)
	}
	ax.SetTickLabelSize(vg.Points(20))
	ax.Legend = NewLegendStyle(ax.Plot.X.Tick.Label, 2)
	ax.Legend.Text.Font.Size = vg.Points(17)
	ax.Grid = NewGridStyle(GridMajor)

	rec := newRecorder(f.Size)
	if err := f.DrawTo(rec, DefaultLayout()); err != nil {
		t.Fatal(err)
	}
	if !rec.has("figure title") {
		t.Error("figure title not drawn")
	}
	if got := rec.sizes["series one"]; got != vg.Points(17) {
		t.Errorf("legend font size %v, want 17pt", got)
	}
	ticks := 0
	for s, size := range rec.sizes {
		if s != "figure title" && s != "series one" && size == vg.Points(20) {
			ticks++
		}
	}
	if ticks == 0 {
		t.Error("no tick labels drawn at 20pt")
	}
	if d := cmp.Diff([]string{"series one"}, ax.LegendLabels()); d != "" {
		t.Error(d)
	}
}

func TestDrawIsRepeatable(t *testing.T) {
	f, err := New(2, 1, Size{Width: 4, Height: 4}, Share{X: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, ax := range f.Axes() {
		if _, err := ax.Scatter("pts", plotter.XYs{{X: 1, Y: 2}, {X: 3, Y: 4}}); err != nil {
			t.Fatal(err)
		}
	}
	first := newRecorder(f.Size)
	second := newRecorder(f.Size)
	if err := f.DrawTo(first, DefaultLayout()); err != nil {
		t.Fatal(err)
	}
	if err := f.DrawTo(second, DefaultLayout()); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(first.strings, second.strings); d != "" {
		t.Errorf("second drawing differs: %s", d)
	}
}

func TestDrawRaster(t *testing.T) {
	f, err := New(2, 2, Size{Width: 3, Height: 2}, Share{X: true, Y: true})
	if err != nil {
		t.Fatal(err)
	}
	w, h := f.Size.Points()
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(72))
	if err := f.DrawTo(c, Layout{Top: 0.9}); err != nil {
		t.Fatal(err)
	}
	b := c.Image().Bounds()
	if b.Dx() != 216 || b.Dy() != 144 {
		t.Errorf("image size %dx%d, want 216x144", b.Dx(), b.Dy())
	}
}
