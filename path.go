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

import "path/filepath"

// OutputDir returns the directory where plots of the given type are
// stored:
//
//	<root>/<plotType>/<desc>/<subfolder>
//
// Empty components are skipped and the result is cleaned, so that
// "../Graphs/", "SFF", "run1", "" gives "../Graphs/SFF/run1".
func OutputDir(root, plotType, desc, subfolder string) string {
	return filepath.Join(root, plotType, desc, subfolder)
}

// OutputPath returns the full path of a plot file.
func OutputPath(root, plotType, desc, subfolder, name string) string {
	return filepath.Join(OutputDir(root, plotType, desc, subfolder), name)
}
