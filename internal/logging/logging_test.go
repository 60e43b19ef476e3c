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

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLoggerJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := newLogger(Config{Level: "warn", Output: buf, JSON: true})
	require.NoError(t, err)

	log.Info().Msg("hidden")
	require.Zero(t, buf.Len(), "info message below warn level")

	log.Warn().Str("key", "value").Msg("shown")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "shown", entry["message"])
	require.Equal(t, "value", entry["key"])
	require.Contains(t, entry, "time")
}

func TestNewLoggerConsole(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := newLogger(Config{Level: "debug", Output: buf})
	require.NoError(t, err)

	log.Debug().Msg("hello")
	require.Contains(t, buf.String(), "hello")
	require.Contains(t, buf.String(), "DBG")
}

func TestInvalidLevel(t *testing.T) {
	_, err := newLogger(Config{Level: "loud", Output: &bytes.Buffer{}})
	require.ErrorContains(t, err, "loud")
}

func TestDefaultLevel(t *testing.T) {
	t.Setenv("PLOTTOOLS_LOG_LEVEL", "debug")
	buf := &bytes.Buffer{}
	log, err := newLogger(Config{Output: buf, JSON: true})
	require.NoError(t, err)

	log.Debug().Msg("x")
	require.Zero(t, buf.Len(), "level taken from the environment")
	log.Info().Msg("y")
	require.NotZero(t, buf.Len())
}

func TestConfigureInvalidLevel(t *testing.T) {
	require.Error(t, Configure(Config{Level: "bogus"}))
	require.NoError(t, Configure(Config{Level: "warn", Output: &bytes.Buffer{}}))
	require.Error(t, Configure(Config{Level: "bogus"}), "error after configuration")
}
