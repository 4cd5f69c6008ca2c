// Copyright © 2025 Glaze contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: backend/cellwin/backend.go
// Summary: Terminal-cell reference backend implementing the window
//          collaborator over a tcell screen.
// Usage: Cells are the physical unit and the platform scale factor is
//        fixed at 1.0; terminals report neither DPI changes nor
//        cursor-leave, so those events are never produced here.

package cellwin

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/glaze"
	"github.com/framegrace/glaze/core"
	"github.com/framegrace/glaze/window"
)

// ErrNotATerminal is returned by New when stdin is not a tty.
var ErrNotATerminal = errors.New("cellwin: stdin is not a terminal")

// Backend adapts a tcell.Screen to the window.Window collaborator and
// translates tcell events into the platform event union.
type Backend struct {
	screen   tcell.Screen
	title    string
	lastMods window.ModMask
	pending  []window.Event
}

// New creates a backend on the process terminal.
func New() (*Backend, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotATerminal
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("cellwin: create screen: %w", err)
	}
	return NewWithScreen(screen)
}

// NewWithScreen wraps an existing screen, typically a
// tcell.NewSimulationScreen in tests and simulation hosts.
func NewWithScreen(screen tcell.Screen) (*Backend, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("cellwin: init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	b := &Backend{screen: screen}
	w, h := screen.Size()
	glaze.Logger().Info("cellwin backend ready", "cols", w, "rows", h)
	return b, nil
}

// ScaleFactor reports the platform scale factor. Terminal cells have no
// DPI, so it is always 1.
func (b *Backend) ScaleFactor() float64 { return 1.0 }

// InnerSize reports the screen size in cells.
func (b *Backend) InnerSize() core.Size[uint32] {
	w, h := b.screen.Size()
	return core.NewSize(uint32(w), uint32(h))
}

// SetTitle pushes the title to the terminal emulator.
func (b *Backend) SetTitle(title string) {
	b.screen.SetTitle(title)
	b.title = title
}

// Title returns the last title pushed through SetTitle.
func (b *Backend) Title() string { return b.title }

// Screen exposes the wrapped tcell screen for host loops that draw.
func (b *Backend) Screen() tcell.Screen { return b.screen }

// PollEvent blocks for the next translated platform event. It returns
// nil once the backend is finalized.
func (b *Backend) PollEvent() window.Event {
	for {
		if len(b.pending) > 0 {
			ev := b.pending[0]
			b.pending = b.pending[1:]
			return ev
		}
		native := b.screen.PollEvent()
		if native == nil {
			return nil
		}
		b.pending = b.translate(native)
	}
}

// Fini releases the terminal.
func (b *Backend) Fini() {
	b.screen.Fini()
	glaze.Logger().Info("cellwin backend finalized")
}
