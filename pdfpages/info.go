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
	"errors"
	"fmt"
	"io"
	"time"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/optional"
)

// ValidateInfo checks that every entry of m can be stored in a document
// information dictionary and is read back unchanged.
func ValidateInfo(m map[string]string) error {
	_, err := infoFromMap(m)
	return err
}

// infoFromMap converts an information dictionary given as a string map
// to the typed form used by the PDF writer.  Entries which would not
// survive writing and reading the file unchanged are rejected: empty
// values are omitted by the PDF writer, "Unknown" is the implied value
// of Trapped, and PDF dates have a resolution of one second.
func infoFromMap(m map[string]string) (*pdf.Info, error) {
	info := &pdf.Info{}
	for key, val := range m {
		if key == "" {
			return nil, errors.New("info dictionary: empty key")
		}
		if val == "" {
			return nil, fmt.Errorf("info dictionary entry %s: empty value", key)
		}

		switch key {
		case "Title":
			info.Title = pdf.TextString(val)
		case "Author":
			info.Author = pdf.TextString(val)
		case "Subject":
			info.Subject = pdf.TextString(val)
		case "Keywords":
			info.Keywords = pdf.TextString(val)
		case "Creator":
			info.Creator = pdf.TextString(val)
		case "Producer":
			info.Producer = pdf.TextString(val)
		case "CreationDate", "ModDate":
			t, err := parseDate(val)
			if err != nil {
				return nil, fmt.Errorf("info dictionary entry %s: %w", key, err)
			}
			if key == "CreationDate" {
				info.CreationDate = pdf.Date(t)
			} else {
				info.ModDate = pdf.Date(t)
			}
		case "Trapped":
			switch val {
			case "True":
				info.Trapped = optional.NewBool(true)
			case "False":
				info.Trapped = optional.NewBool(false)
			default:
				return nil, fmt.Errorf("info dictionary entry Trapped: invalid value %q (want True or False)", val)
			}
		default:
			if info.Custom == nil {
				info.Custom = make(map[string]string)
			}
			info.Custom[key] = val
		}
	}
	return info, nil
}

// parseDate parses a date in the form written by infoToMap: RFC 3339
// with whole seconds.
func parseDate(val string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}, err
	}
	if canonical := t.Format(time.RFC3339); canonical != val {
		return time.Time{}, fmt.Errorf("date %q cannot be stored exactly, use %q", val, canonical)
	}
	return t, nil
}

// infoToMap is the inverse of infoFromMap.  Empty entries are omitted.
func infoToMap(info *pdf.Info) map[string]string {
	m := make(map[string]string)
	if info == nil {
		return m
	}

	text := map[string]pdf.TextString{
		"Title":    info.Title,
		"Author":   info.Author,
		"Subject":  info.Subject,
		"Keywords": info.Keywords,
		"Creator":  info.Creator,
		"Producer": info.Producer,
	}
	for key, val := range text {
		if val != "" {
			m[key] = string(val)
		}
	}
	if !info.CreationDate.IsZero() {
		m["CreationDate"] = time.Time(info.CreationDate).Format(time.RFC3339)
	}
	if !info.ModDate.IsZero() {
		m["ModDate"] = time.Time(info.ModDate).Format(time.RFC3339)
	}
	if trapped, ok := info.Trapped.Get(); ok {
		if trapped {
			m["Trapped"] = "True"
		} else {
			m["Trapped"] = "False"
		}
	}
	for key, val := range info.Custom {
		m[key] = val
	}
	return m
}

// ReadInfo reads the document information dictionary of a PDF file.
// If the file has no information dictionary, an empty map is returned.
func ReadInfo(r io.ReadSeeker) (map[string]string, error) {
	pr, err := pdf.NewReader(r, nil)
	if err != nil {
		return nil, err
	}
	defer pr.Close()
	return infoToMap(pr.GetMeta().Info), nil
}
