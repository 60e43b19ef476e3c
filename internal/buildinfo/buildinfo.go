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

// Package buildinfo derives version strings from the build information
// embedded in the running binary.
package buildinfo

import (
	"runtime/debug"
)

// ModulePath is the import path of this module.
const ModulePath = "seehuhn.de/go/plottools"

// Short returns a short version string for a program, e.g.
// "plotdemo (seehuhn.de/go/plottools v0.1.0)".
func Short(name string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return name
	}
	version := moduleVersion(info)
	if version == "" {
		return name
	}
	return name + " (" + ModulePath + " " + version + ")"
}

// Producer returns the string recorded as the producing application in
// the metadata of generated files.
func Producer() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ModulePath
	}
	if version := moduleVersion(info); version != "" {
		return ModulePath + " " + version
	}
	return ModulePath
}

// moduleVersion finds the version of this module, either as a
// dependency of the main module or as the main module itself.  For
// development builds the abbreviated VCS revision is used.
func moduleVersion(info *debug.BuildInfo) string {
	for _, dep := range info.Deps {
		if dep.Path == ModulePath {
			return dep.Version
		}
	}
	if info.Main.Path != ModulePath {
		return ""
	}

	version := info.Main.Version
	if version != "" && version != "(devel)" {
		return version
	}

	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return ""
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if dirty {
		rev += "+dirty"
	}
	return rev
}
