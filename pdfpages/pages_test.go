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

package pdfpages

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot/plotter"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/graphics/content/builder"

	"seehuhn.de/go/plottools/figure"
)

func testFigure(t *testing.T) *figure.Figure {
	t.Helper()
	fig, err := figure.New(2, 2, figure.Size{Width: 4, Height: 3}, figure.Share{X: true, Y: true})
	if err != nil {
		t.Fatal(err)
	}
	for i, ax := range fig.Axes() {
		xys := plotter.XYs{{X: 0, Y: float64(i)}, {X: 1, Y: float64(i + 1)}}
		if _, err := ax.Line("data", xys); err != nil {
			t.Fatal(err)
		}
	}
	return fig
}

func TestInfoRoundTrip(t *testing.T) {
	in := map[string]string{
		"Title":        "Spectral form factor",
		"Author":       "A. Person",
		"Subject":      "test",
		"Keywords":     "a, b",
		"Creator":      "unit test",
		"Producer":     "producer",
		"CreationDate": "2024-01-15T12:00:00Z",
		"ModDate":      "2024-06-20T14:30:00+02:00",
		"Trapped":      "False",
		"L":            "16",
		"disorder":     "uniform",
	}
	info, err := infoFromMap(in)
	if err != nil {
		t.Fatal(err)
	}
	if info.Custom["L"] != "16" || info.Title != "Spectral form factor" {
		t.Errorf("unexpected info %+v", info)
	}
	out := infoToMap(info)
	if d := cmp.Diff(in, out); d != "" {
		t.Error(d)
	}
}

func TestInfoFromMapErrors(t *testing.T) {
	for _, m := range []map[string]string{
		{"CreationDate": "yesterday"},
		{"ModDate": "2024-13-01T00:00:00Z"},
		{"Trapped": "maybe"},
		{"Trapped": "Unknown"},
		{"Title": ""},
		{"Producer": ""},
		{"run": ""},
		{"": "x"},
		{"CreationDate": "2024-01-15T12:00:00.5Z"},
		{"CreationDate": "2024-01-15T12:00:00.000Z"},
		{"ModDate": "2024-01-15T12:00:00+00:00"},
	} {
		if _, err := infoFromMap(m); err == nil {
			t.Errorf("%v accepted", m)
		}
		if err := ValidateInfo(m); err == nil {
			t.Errorf("ValidateInfo(%v) succeeded", m)
		}
	}
}

func TestInfoWrittenExactly(t *testing.T) {
	buf := &bytes.Buffer{}
	f, err := NewFile(buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.AddFigure(testFigure(t), figure.DefaultLayout()); err != nil {
		t.Fatal(err)
	}
	metadata := map[string]string{
		"Title":        "test plot",
		"Author":       "someone",
		"Keywords":     "level statistics",
		"CreationDate": "2024-01-15T12:00:00Z",
		"ModDate":      "2024-06-20T14:30:05+02:00",
		"Trapped":      "True",
		"run":          "1",
		"disorder":     "0.5",
	}
	for k, v := range metadata {
		f.InfoDict()[k] = v
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := ReadInfo(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(metadata, got); d != "" {
		t.Error(d)
	}
}

func TestNoInfoWhenEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	f, err := NewFile(buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.AddFigure(testFigure(t), figure.DefaultLayout()); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := pdf.NewReader(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	if info := r.GetMeta().Info; info != nil {
		t.Errorf("unexpected info dictionary %+v", info)
	}
}

func TestMultiplePages(t *testing.T) {
	buf := &bytes.Buffer{}
	f, err := NewFile(buf, &Options{HumanReadable: true})
	if err != nil {
		t.Fatal(err)
	}
	for range 3 {
		if err := f.AddFigure(testFigure(t), figure.DefaultLayout()); err != nil {
			t.Fatal(err)
		}
	}
	err = f.AddPage(100, 100, func(b *builder.Builder) error {
		b.Rectangle(10, 10, 80, 80)
		b.Stroke()
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if f.NumPages() != 4 {
		t.Errorf("got %d pages, want 4", f.NumPages())
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-1.7")) {
		t.Error("output is not a PDF 1.7 file")
	}
}

func TestAddPageErrors(t *testing.T) {
	f, err := NewFile(&bytes.Buffer{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	drawErr := errors.New("draw failed")
	err = f.AddPage(100, 100, func(*builder.Builder) error { return drawErr })
	if !errors.Is(err, drawErr) {
		t.Errorf("got %v, want draw error", err)
	}
	if err := f.AddPage(0, 100, func(*builder.Builder) error { return nil }); err == nil {
		t.Error("zero width page accepted")
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close: got %v, want ErrClosed", err)
	}
	if err := f.AddFigure(testFigure(t), figure.DefaultLayout()); !errors.Is(err, ErrClosed) {
		t.Errorf("AddFigure after Close: got %v, want ErrClosed", err)
	}
}

func TestCreateIsAtomic(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.pdf")
	f, err := Create(name, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.AddFigure(testFigure(t), figure.DefaultLayout()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(name); !os.IsNotExist(err) {
		t.Errorf("file visible before Close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output is not a PDF file")
	}
}

func TestCreateFailedCloseLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "out.pdf")
	f, err := Create(name, nil)
	if err != nil {
		t.Fatal(err)
	}
	f.InfoDict()["CreationDate"] = "not a date"
	if err := f.Close(); err == nil {
		t.Fatal("invalid date accepted")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("%d files left behind", len(entries))
	}
}

func TestXMP(t *testing.T) {
	buf := &bytes.Buffer{}
	f, err := NewFile(buf, &Options{XMP: true})
	if err != nil {
		t.Fatal(err)
	}
	if err := f.AddFigure(testFigure(t), figure.DefaultLayout()); err != nil {
		t.Fatal(err)
	}
	f.InfoDict()["Title"] = "with XMP"
	f.InfoDict()["CreationDate"] = "2025-03-01T10:00:00Z"
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("with XMP")) {
		t.Error("title missing from output")
	}
	if !bytes.Contains(buf.Bytes(), []byte("http://ns.adobe.com/pdf/1.3/")) {
		t.Error("XMP packet missing from output")
	}
}
