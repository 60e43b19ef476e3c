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

package display

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"runtime"

	"github.com/rs/zerolog"
)

// CommandViewer shows images by writing them to a temporary PNG file and
// opening this file with an external program.
//
// Launchers like xdg-open hand the file to another process and exit at
// once.  For such programs Show cannot wait until the image is
// dismissed, and the temporary file is left for the system's temp
// directory cleanup, since the viewer may open it at any later time.
type CommandViewer struct {
	// Command is the program and its leading arguments.  The name of
	// the image file is appended as the last argument.  If Command is
	// empty, a viewer installed on the system is chosen.
	Command []string

	// Blocking states that Command keeps running until the image has
	// been dismissed.  Only then does a blocking Show wait for the
	// viewer, and the temporary file is removed once it exits.
	// Blocking is ignored if Command is empty.
	Blocking bool

	// Logger receives errors from viewers running in the background.
	Logger zerolog.Logger
}

// blockingViewers are image viewers which stay in the foreground until
// their window is closed, in order of preference.
var blockingViewers = [][]string{
	{"feh", "--scale-down"},
	{"eog", "--new-instance"},
	{"nsxiv"},
	{"sxiv"},
	{"display"},
}

var lookPath = exec.LookPath

// defaultCommand returns the program for opening images on this
// platform, and whether the program stays running until the image is
// dismissed.
func defaultCommand(goos string) ([]string, bool, error) {
	switch goos {
	case "darwin":
		return []string{"open", "-W"}, true, nil
	case "windows":
		return []string{"cmd", "/c", "start", "/wait", ""}, true, nil
	case "linux", "freebsd", "netbsd", "openbsd":
		for _, cmd := range blockingViewers {
			if _, err := lookPath(cmd[0]); err == nil {
				return cmd, true, nil
			}
		}
		return []string{"xdg-open"}, false, nil
	}
	return nil, false, fmt.Errorf("no default image viewer on %s", goos)
}

// Show implements the Viewer interface.
//
// For a viewer which blocks, a blocking Show waits for the viewer
// program to exit and then removes the temporary file; a non-blocking
// Show leaves the program running and removes the file once it exits.
// For other programs Show returns as soon as the program has exited.
func (v *CommandViewer) Show(ctx context.Context, img image.Image, title string, block bool) error {
	args, blocks := v.Command, v.Blocking
	if len(args) == 0 {
		var err error
		args, blocks, err = defaultCommand(runtime.GOOS)
		if err != nil {
			return err
		}
	}

	name, err := writeTemp(img, title)
	if err != nil {
		return err
	}
	cleanup := func() {
		if blocks {
			os.Remove(name)
		}
	}
	if block && !blocks {
		v.Logger.Debug().Str("viewer", args[0]).Str("file", name).
			Msg("viewer runs detached, not waiting for it")
	}

	args = append(args[:len(args):len(args)], name)
	if !block {
		ctx = context.WithoutCancel(ctx)
	}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		os.Remove(name)
		return fmt.Errorf("start viewer: %w", err)
	}

	if !block {
		go func() {
			err := cmd.Wait()
			cleanup()
			if err != nil {
				v.Logger.Warn().Err(err).Str("file", name).Msg("viewer failed")
			}
		}()
		return nil
	}

	err = cmd.Wait()
	cleanup()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("viewer exited with status %d", exitErr.ExitCode())
		}
		return err
	}
	return nil
}

func writeTemp(img image.Image, title string) (string, error) {
	pattern := "figure-*.png"
	if title != "" {
		pattern = sanitize(title) + "-*.png"
	}
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// sanitize turns a title into a string which is safe to use in a file
// name.
func sanitize(title string) string {
	var buf []byte
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			buf = append(buf, byte(r))
		default:
			if len(buf) > 0 && buf[len(buf)-1] != '_' {
				buf = append(buf, '_')
			}
		}
		if len(buf) >= 40 {
			break
		}
	}
	if len(buf) == 0 {
		return "figure"
	}
	return string(buf)
}
