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

// Package logging configures the zerolog logger shared by the packages
// and commands of this module.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the base logger.
type Config struct {
	Level  string    // optional log level ("debug", "info", etc.)
	Output io.Writer // optional writer (defaults to a console writer on stderr)
	JSON   bool      // write JSON lines instead of human readable output
}

var (
	mu         sync.Mutex
	configured bool
	base       zerolog.Logger
)

// Configure sets up the base logger.  Only the first successful call
// has an effect; later calls are ignored, so that commands can configure
// logging before any library code asks for a logger.  An invalid log
// level is always reported as an error.
func Configure(cfg Config) error {
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if !configured {
		base = log
		configured = true
	}
	return nil
}

func newLogger(cfg Config) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q", cfg.Level)
		}
		level = parsed
	}

	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}
	if !cfg.JSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// Base returns the configured base logger.
func Base() zerolog.Logger {
	_ = Configure(Config{})
	mu.Lock()
	defer mu.Unlock()
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}
