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

package window

import "testing"

func TestFitSize(t *testing.T) {
	cases := []struct {
		w, h, maxW, maxH int
		wantW, wantH     int
	}{
		{1344, 672, 1920, 1080, 1344, 672},
		{2000, 1000, 1000, 1000, 1000, 500},
		{1000, 2000, 1000, 1000, 500, 1000},
		{4000, 1000, 0, 0, 4000, 1000},
		{3, 3000, 100, 100, 1, 100},
	}
	for _, c := range cases {
		w, h := fitSize(c.w, c.h, c.maxW, c.maxH)
		if w != c.wantW || h != c.wantH {
			t.Errorf("fitSize(%d, %d, %d, %d) = %d, %d, want %d, %d",
				c.w, c.h, c.maxW, c.maxH, w, h, c.wantW, c.wantH)
		}
	}
}
