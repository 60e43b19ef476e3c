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

// Package window shows figures in a desktop window.
//
// The window is driven by ebiten.  Since ebiten supports only one game
// loop per process, a [Viewer] opens at most one window; later calls to
// [Viewer.Show] replace the image shown in this window.
package window

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"
)

// ErrClosed is returned by Show after the window has been closed.
var ErrClosed = errors.New("window: viewer window has been closed")

// Viewer shows images in a desktop window.
// The zero value is ready to use.
type Viewer struct {
	// MaxFraction limits the window to this fraction of the screen
	// size.  Larger images are scaled down.  If this is zero, 0.9 is
	// used.
	MaxFraction float64

	mu       sync.Mutex
	game     *game
	done     chan struct{}
	finished bool
	err      error
}

// Show implements the display.Viewer interface.
//
// With block set, Show runs the window loop in the calling goroutine
// until the window is closed or ctx is cancelled.  Some platforms
// require this to be the main goroutine.  Without block, the window
// loop is started in the background.
func (v *Viewer) Show(ctx context.Context, img image.Image, title string, block bool) error {
	v.mu.Lock()
	if v.finished {
		v.mu.Unlock()
		return ErrClosed
	}

	img = v.fit(img)
	if v.game != nil {
		v.game.setImage(img)
		ebiten.SetWindowTitle(title)
		done := v.done
		v.mu.Unlock()
		if !block {
			return nil
		}
		select {
		case <-done:
			return v.result()
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if !block {
		ctx = context.WithoutCancel(ctx)
	}
	g := &game{ctx: ctx}
	g.setImage(img)
	v.game = g
	v.done = make(chan struct{})
	v.mu.Unlock()

	b := img.Bounds()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(b.Dx(), b.Dy())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if !block {
		go v.run(g)
		return nil
	}
	v.run(g)
	if err := ctx.Err(); err != nil {
		return err
	}
	return v.result()
}

func (v *Viewer) run(g *game) {
	err := ebiten.RunGame(g)

	v.mu.Lock()
	v.finished = true
	v.err = err
	close(v.done)
	v.mu.Unlock()
}

func (v *Viewer) result() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// fit scales img down so that it fits onto the screen.
func (v *Viewer) fit(img image.Image) image.Image {
	frac := v.MaxFraction
	if frac <= 0 || frac > 1 {
		frac = 0.9
	}
	sw, sh := ebiten.ScreenSizeInFullscreen()
	b := img.Bounds()
	w, h := fitSize(b.Dx(), b.Dy(), int(frac*float64(sw)), int(frac*float64(sh)))
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// fitSize scales w×h down, keeping the aspect ratio, until it fits into
// maxW×maxH.  Non-positive limits are ignored.
func fitSize(w, h, maxW, maxH int) (int, int) {
	scale := 1.0
	if maxW > 0 && w > maxW {
		scale = min(scale, float64(maxW)/float64(w))
	}
	if maxH > 0 && h > maxH {
		scale = min(scale, float64(maxH)/float64(h))
	}
	if scale == 1 {
		return w, h
	}
	return max(1, int(float64(w)*scale)), max(1, int(float64(h)*scale))
}

// game implements ebiten.Game for a single static image.
type game struct {
	ctx context.Context

	mu      sync.Mutex
	pending image.Image
	w, h    int

	img *ebiten.Image
}

func (g *game) setImage(img image.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = img
	g.w, g.h = img.Bounds().Dx(), img.Bounds().Dy()
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	if g.pending != nil {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImageFromImage(g.pending)
		g.pending = nil
	}
	g.mu.Unlock()

	screen.Fill(color.White)
	if g.img != nil {
		screen.DrawImage(g.img, nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.w, g.h
}
