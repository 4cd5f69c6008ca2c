// Copyright © 2025 Glaze contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: backend/cellwin/cellwin_test.go
// Summary: Exercises event translation and the window collaborator
//          surface against a tcell simulation screen.

package cellwin

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/glaze/window"
)

func TestTranslateResize(t *testing.T) {
	b := &Backend{}

	out := b.translate(tcell.NewEventResize(120, 40))
	if len(out) != 1 {
		t.Fatalf("translated %d events, want 1", len(out))
	}
	resize, ok := out[0].(*window.EventResize)
	if !ok {
		t.Fatalf("translated to %T", out[0])
	}
	if resize.Width != 120 || resize.Height != 40 {
		t.Fatalf("resize = %d×%d", resize.Width, resize.Height)
	}
}

func TestTranslateMouseEmitsModifierDeltaFirst(t *testing.T) {
	b := &Backend{}

	out := b.translate(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModShift))
	if len(out) != 2 {
		t.Fatalf("translated %d events, want modifiers + move", len(out))
	}
	mods, ok := out[0].(*window.EventModifiersChanged)
	if !ok || mods.Modifiers != window.ModShift {
		t.Fatalf("first event = %#v, want shift modifiers", out[0])
	}
	move, ok := out[1].(*window.EventCursorMoved)
	if !ok || move.Position.X != 10 || move.Position.Y != 5 {
		t.Fatalf("second event = %#v, want cursor at 10,5", out[1])
	}

	// Unchanged modifiers produce no second delta.
	out = b.translate(tcell.NewEventMouse(11, 5, tcell.ButtonNone, tcell.ModShift))
	if len(out) != 1 {
		t.Fatalf("translated %d events after unchanged modifiers, want 1", len(out))
	}

	// Dropping the modifier reports the empty set.
	out = b.translate(tcell.NewEventMouse(11, 5, tcell.ButtonNone, tcell.ModNone))
	mods, ok = out[0].(*window.EventModifiersChanged)
	if !ok || mods.Modifiers != window.ModNone {
		t.Fatalf("release delta = %#v, want empty modifiers", out[0])
	}
}

func TestTranslateKeys(t *testing.T) {
	tests := []struct {
		name     string
		in       *tcell.EventKey
		wantKey  window.Key
		wantRune rune
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), window.KeyRune, 'q'},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), window.KeyEscape, 0},
		{"f12", tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone), window.KeyF12, 0},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), window.KeyUp, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Backend{}
			out := b.translate(tt.in)
			if len(out) != 1 {
				t.Fatalf("translated %d events, want 1", len(out))
			}
			key, ok := out[0].(*window.EventKey)
			if !ok {
				t.Fatalf("translated to %T", out[0])
			}
			if key.Key != tt.wantKey || key.Rune != tt.wantRune || !key.Pressed {
				t.Fatalf("key = %+v", key)
			}
		})
	}
}

func TestBackendWindowSurface(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	b, err := NewWithScreen(sim)
	if err != nil {
		t.Fatalf("NewWithScreen: %v", err)
	}
	defer b.Fini()

	if got := b.ScaleFactor(); got != 1.0 {
		t.Fatalf("scale factor = %v, want 1 (cells have no DPI)", got)
	}

	sim.SetSize(120, 40)
	size := b.InnerSize()
	if size.Width != 120 || size.Height != 40 {
		t.Fatalf("inner size = %v", size)
	}

	b.SetTitle("hello")
	if b.Title() != "hello" {
		t.Fatalf("title = %q", b.Title())
	}
}
