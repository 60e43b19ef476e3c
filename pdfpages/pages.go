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

// Package pdfpages writes figures into multi-page PDF files.
//
// A [File] is an output context which receives one page per figure.
// The document information dictionary of the file is exposed as a
// plain string map, which callers can fill in before the file is
// closed.  Files created with [Create] appear atomically: until
// [File.Close] succeeds, no partially written file is visible under the
// target name.
package pdfpages

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/renameio/v2"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/graphics/content"
	"seehuhn.de/go/pdf/graphics/content/builder"
	"seehuhn.de/go/pdf/page"
	"seehuhn.de/go/pdf/pagetree"

	"seehuhn.de/go/plottools/figure"
	"seehuhn.de/go/plottools/pdfcanvas"
)

// ErrClosed is returned when a closed file is used.
var ErrClosed = errors.New("pdfpages: file already closed")

// Options control how a PDF file is written.
type Options struct {
	// Version is the PDF version of the output file.
	// The zero value selects PDF 1.7.
	Version pdf.Version

	// HumanReadable disables stream compression and adds whitespace,
	// to make the file easier to inspect.
	HumanReadable bool

	// XMP adds an XMP metadata stream which mirrors the document
	// information dictionary.
	XMP bool
}

// File is a multi-page PDF output context.
type File struct {
	// Out is the underlying PDF writer.
	// It can be used to embed additional objects.
	Out *pdf.Writer

	opt     Options
	rm      *pdf.ResourceManager
	tree    *pagetree.Writer
	info    map[string]string
	pending *renameio.PendingFile

	numPages int
	closed   bool
}

// Create creates a new PDF file with the given name.  The file only
// appears under this name once it has been closed successfully.
func Create(name string, opt *Options) (*File, error) {
	pf, err := renameio.NewPendingFile(name)
	if err != nil {
		return nil, fmt.Errorf("create %q: %w", name, err)
	}
	f, err := NewFile(nonClosing{pf}, opt)
	if err != nil {
		pf.Cleanup()
		return nil, err
	}
	f.pending = pf
	return f, nil
}

// NewFile starts a new PDF file which is written to w.
func NewFile(w io.Writer, opt *Options) (*File, error) {
	if opt == nil {
		opt = &Options{}
	}
	o := *opt
	if o.Version == 0 {
		o.Version = pdf.V1_7
	}

	wopt := &pdf.WriterOptions{HumanReadable: o.HumanReadable}
	out, err := pdf.NewWriter(w, o.Version, wopt)
	if err != nil {
		return nil, err
	}
	rm := pdf.NewResourceManager(out)

	return &File{
		Out:  out,
		opt:  o,
		rm:   rm,
		tree: pagetree.NewWriter(out, rm),
		info: make(map[string]string),
	}, nil
}

// InfoDict returns the document information dictionary of the file.
// The map is written to the file when the file is closed, and can be
// modified until then.  If the map is empty, no information dictionary
// is written.
//
// The keys Title, Author, Subject, Keywords, Creator, Producer,
// CreationDate, ModDate and Trapped have the meaning defined in ISO
// 32000.  Dates must be given in RFC 3339 format with whole seconds,
// Trapped must be "True" or "False", and values must be non-empty, so
// that reading the file gives back the same map.  [ValidateInfo] checks
// these rules.  All other keys are stored as custom entries.
func (f *File) InfoDict() map[string]string {
	return f.info
}

// NumPages returns the number of pages added so far.
func (f *File) NumPages() int {
	return f.numPages
}

// AddPage adds a page of the given size, in PDF points.  The function
// draw is called to fill the page content.
func (f *File) AddPage(width, height float64, draw func(b *builder.Builder) error) error {
	if f.closed {
		return ErrClosed
	}
	if !(width > 0 && height > 0) {
		return fmt.Errorf("invalid page size %g×%g", width, height)
	}

	res := &content.Resources{}
	b := builder.New(content.Page, res)
	if err := draw(b); err != nil {
		return err
	}
	if b.Err != nil {
		return b.Err
	}

	pg := &page.Page{
		MediaBox:  &pdf.Rectangle{URx: width, URy: height},
		Resources: res,
		Contents:  []*page.Content{{Operators: b.Stream}},
	}
	ref := f.Out.Alloc()
	if err := f.tree.AppendPageRef(ref, pg); err != nil {
		return err
	}
	f.numPages++
	return nil
}

// AddFigure adds a page showing the given figure.  The page has the
// size of the figure.
func (f *File) AddFigure(fig *figure.Figure, l figure.Layout) error {
	w, h := fig.Size.Points()
	return f.AddPage(float64(w), float64(h), func(b *builder.Builder) error {
		c := pdfcanvas.New(b, w, h)
		if err := fig.DrawTo(c, l); err != nil {
			return err
		}
		return c.Err
	})
}

// Close finishes the PDF file.  The underlying file is closed even if
// writing fails; in this case no file is left under the target name.
func (f *File) Close() error {
	if f.closed {
		return ErrClosed
	}
	f.closed = true

	err := f.finish()
	if f.pending != nil {
		if err == nil {
			err = f.pending.CloseAtomicallyReplace()
		}
		if cerr := f.pending.Cleanup(); err == nil {
			err = cerr
		}
	}
	return err
}

func (f *File) finish() error {
	ref, err := f.tree.Close()
	if err != nil {
		return err
	}
	meta := f.Out.GetMeta()
	meta.Catalog.Pages = ref

	if len(f.info) > 0 {
		info, err := infoFromMap(f.info)
		if err != nil {
			return err
		}
		meta.Info = info

		if f.opt.XMP {
			ref, err := writeXMP(f.Out, info, f.opt.HumanReadable)
			if err != nil {
				return err
			}
			meta.Catalog.Metadata = ref
		}
	}

	err = f.rm.Close()
	if err != nil {
		return err
	}
	return f.Out.Close()
}

// nonClosing hides the Close method of the pending file from the PDF
// writer, so that the file can still be renamed into place.
type nonClosing struct {
	io.Writer
}
