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

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by all plots of a project.
type Config struct {
	// FontSizes are the small, medium and large font sizes, in points.
	// Legends use the small size, tick labels the medium size and figure
	// titles the large size.
	FontSizes [3]float64 `yaml:"font_sizes"`

	// PlotsRoot is the directory below which plots are saved.
	PlotsRoot string `yaml:"plots_root"`

	// DPI is the resolution used when showing figures on screen.
	DPI float64 `yaml:"dpi"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		FontSizes: [3]float64{17, 20, 24},
		PlotsRoot: "../Graphs/",
		DPI:       96,
	}
}

// Validate checks that the configuration can be used.
func (c Config) Validate() error {
	for i, size := range c.FontSizes {
		if !(size > 0) {
			return fmt.Errorf("font size %d is %g, must be positive", i, size)
		}
	}
	if c.PlotsRoot == "" {
		return errors.New("empty plots root")
	}
	if !(c.DPI > 0) {
		return fmt.Errorf("resolution %g dpi, must be positive", c.DPI)
	}
	return nil
}

var (
	defaultsMu sync.RWMutex
	defaults   = DefaultConfig()
)

// Defaults returns the process-wide default configuration, used by
// [PrepareAx] and [New] when no configuration is given.
func Defaults() Config {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults
}

// SetDefaults replaces the process-wide default configuration.
// Plotters which already exist are not affected.
func SetDefaults(c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	defaultsMu.Lock()
	defaults = c
	defaultsMu.Unlock()
	return nil
}

// LoadConfig reads a YAML configuration file.  Settings missing from the
// file keep their built-in values.  Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	fd, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer fd.Close()

	dec := yaml.NewDecoder(fd)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
