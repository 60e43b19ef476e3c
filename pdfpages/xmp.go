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
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/plottools/internal/buildinfo"
)

// pdfSchema is the XMP namespace for the PDF specific properties.
type pdfSchema struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}

// writeXMP writes an XMP metadata stream which mirrors info, and returns
// a reference to the stream.
func writeXMP(w *pdf.Writer, info *pdf.Info, pretty bool) (pdf.Reference, error) {
	xDefault := language.MustParse("x-default")

	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(xDefault, string(info.Title))
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(string(info.Author)))
	}
	if info.Subject != "" {
		dc.Description.Set(xDefault, string(info.Subject))
	}

	basic := &xmp.Basic{}
	if !info.CreationDate.IsZero() {
		basic.CreateDate = xmp.NewDate(time.Time(info.CreationDate))
	}
	if !info.ModDate.IsZero() {
		basic.ModifyDate = xmp.NewDate(time.Time(info.ModDate))
	}

	producer := string(info.Producer)
	if producer == "" {
		producer = buildinfo.Producer()
	}
	pdfInfo := &pdfSchema{
		Producer: xmp.NewAgentName(producer),
	}
	if info.Keywords != "" {
		pdfInfo.Keywords = xmp.NewText(string(info.Keywords))
	}

	packet := xmp.NewPacket()
	packet.Set(dc, basic, pdfInfo)

	ref := w.Alloc()
	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	stm, err := w.OpenStream(ref, dict)
	if err != nil {
		return 0, err
	}
	err = packet.Write(stm, &xmp.PacketOptions{Pretty: pretty})
	if err != nil {
		stm.Close()
		return 0, err
	}
	err = stm.Close()
	if err != nil {
		return 0, err
	}
	return ref, nil
}
