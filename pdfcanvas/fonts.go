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
	"strings"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/font"
	pdffont "seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/standard"
)

// fontCache holds one font instance per standard font, so that every
// font is included in the page resources only once.
type fontCache map[standard.Font]pdffont.Layouter

func (fc fontCache) get(f font.Font) pdffont.Layouter {
	name := standardFont(f)
	inst, ok := fc[name]
	if !ok {
		inst = name.New()
		fc[name] = inst
	}
	return inst
}

// standardFont chooses the standard 14 font which best matches f.
func standardFont(f font.Font) standard.Font {
	bold := f.Weight >= xfont.WeightSemiBold
	italic := f.Style == xfont.StyleItalic || f.Style == xfont.StyleOblique

	family := strings.ToLower(string(f.Typeface) + " " + string(f.Variant))
	switch {
	case strings.Contains(family, "mono") || strings.Contains(family, "courier"):
		switch {
		case bold && italic:
			return standard.CourierBoldOblique
		case bold:
			return standard.CourierBold
		case italic:
			return standard.CourierOblique
		}
		return standard.Courier

	case strings.Contains(family, "sans") || strings.Contains(family, "helvetica"):
		return helvetica(bold, italic)

	case strings.Contains(family, "serif") || strings.Contains(family, "times"):
		switch {
		case bold && italic:
			return standard.TimesBoldItalic
		case bold:
			return standard.TimesBold
		case italic:
			return standard.TimesItalic
		}
		return standard.TimesRoman
	}
	return helvetica(bold, italic)
}

func helvetica(bold, italic bool) standard.Font {
	switch {
	case bold && italic:
		return standard.HelveticaBoldOblique
	case bold:
		return standard.HelveticaBold
	case italic:
		return standard.HelveticaOblique
	}
	return standard.Helvetica
}
