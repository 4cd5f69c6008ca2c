// Copyright © 2025 Glaze contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: window/state.go
// Summary: Per-window reconciliation engine for title, viewport, cursor,
//          modifiers, theme and appearance.
// Usage: Owned by the per-window runtime loop. Update consumes platform
//        events; Synchronize reconciles against the application each frame.

package window

import (
	"github.com/framegrace/glaze/core"
	"github.com/framegrace/glaze/graphics"
)

// State tracks a live window and keeps physical geometry, logical
// geometry, scale factors and the viewport version consistent across
// platform resizes, platform DPI changes and application-driven changes.
//
// A State is exclusively owned by the event loop of its window: it
// carries no locking, and Update, Synchronize and the accessors must all
// run on that loop.
type State struct {
	title      string
	scale      float64 // application-declared scale factor
	target     graphics.Target
	version    uint64
	cursorPos  core.Point // physical pixels, valid when cursorIn
	cursorIn   bool
	modifiers  ModMask
	theme      core.Theme
	appearance core.Appearance
	debug      Debug
}

// StateOption configures a State at construction.
type StateOption func(*State)

// WithDebug injects the diagnostic-overlay collaborator. The default
// discards toggles.
func WithDebug(d Debug) StateOption {
	return func(s *State) {
		if d != nil {
			s.debug = d
		}
	}
}

// NewState builds the engine for a window that just became ready,
// reading title, scale factor and theme from the application and the
// platform scale factor and physical inner size from the window.
func NewState(app Application, win Window, opts ...StateOption) *State {
	title := app.Title()
	scale := app.ScaleFactor()
	theme := app.Theme()
	appearance := app.Style(theme)

	windowScale := win.ScaleFactor()
	viewport := graphics.WithPhysicalSize(win.InnerSize(), windowScale*scale)

	s := &State{
		title: title,
		scale: scale,
		target: graphics.Target{
			ScaleFactor: windowScale,
			Viewport:    viewport,
		},
		theme:      theme,
		appearance: appearance,
		debug:      NopDebug{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Target returns what the renderer should draw into this frame.
func (s *State) Target() graphics.Target { return s.target }

// ViewportVersion returns the change counter of the viewport. It is
// bumped exactly once per accepted geometry or scale transition and
// wraps on overflow; consumers compare it against a remembered value to
// detect staleness cheaply.
func (s *State) ViewportVersion() uint64 { return s.version }

// PhysicalSize returns the viewport size in physical pixels.
func (s *State) PhysicalSize() core.Size[uint32] {
	return s.target.Viewport.PhysicalSize()
}

// LogicalSize returns the viewport size in logical units.
func (s *State) LogicalSize() core.Size[float32] {
	return s.target.Viewport.LogicalSize()
}

// ScaleFactor returns the combined scale factor of the viewport.
func (s *State) ScaleFactor() float64 {
	return s.target.Viewport.ScaleFactor()
}

// Cursor returns the pointer state, mapped into logical coordinates at
// the current scale factor.
func (s *State) Cursor() Cursor {
	if !s.cursorIn {
		return Unavailable()
	}
	return AvailableAt(s.cursorPos.Unscale(s.target.Viewport.ScaleFactor()))
}

// Modifiers returns the currently-held modifier keys.
func (s *State) Modifiers() ModMask { return s.modifiers }

// Theme returns the cached theme.
func (s *State) Theme() core.Theme { return s.theme }

// BackgroundColor returns the background of the current appearance.
func (s *State) BackgroundColor() core.Color { return s.appearance.Background }

// TextColor returns the text color of the current appearance.
func (s *State) TextColor() core.Color { return s.appearance.Text }

// Update applies a platform window event. Events the engine does not
// recognize are no-ops.
//
// Resize and scale-factor changes are independent triggers: when a
// platform fires both for the same physical change, each rebuilds the
// target from the freshest reported values and the cached application
// scale factor, so the two arrivals converge to the same final target
// in either order.
func (s *State) Update(win Window, event Event) {
	switch ev := event.(type) {
	case *EventResize:
		// The platform may report a changed scale factor on resize.
		size := core.NewSize(ev.Width, ev.Height)
		windowScale := win.ScaleFactor()

		s.target = graphics.Target{
			ScaleFactor: windowScale,
			Viewport:    graphics.WithPhysicalSize(size, windowScale*s.scale),
		}
		s.version++

	case *EventScaleFactorChanged:
		size := s.target.Viewport.PhysicalSize()

		s.target = graphics.Target{
			ScaleFactor: ev.ScaleFactor,
			Viewport:    graphics.WithPhysicalSize(size, ev.ScaleFactor*s.scale),
		}
		s.version++

	case *EventCursorMoved:
		s.cursorPos = ev.Position
		s.cursorIn = true

	case *EventTouch:
		s.cursorPos = ev.Position
		s.cursorIn = true

	case *EventCursorLeft:
		s.cursorIn = false

	case *EventModifiersChanged:
		s.modifiers = ev.Modifiers

	case *EventKey:
		if ev.Key == KeyDebugToggle && ev.Pressed {
			s.debug.Toggle()
		}
	}
}

// Synchronize reconciles the cached title, scale factor and theme
// against the application after its model may have changed. Hosts call
// it once per frame, after all Update calls for that frame.
func (s *State) Synchronize(app Application, win Window) {
	// Title: push changes to the platform window.
	newTitle := app.Title()
	if s.title != newTitle {
		win.SetTitle(newTitle)
		s.title = newTitle
	}

	// Application scale factor and window size. This is the path by
	// which application-level zoom reaches the viewport; platform DPI
	// changes arrive through Update instead.
	newScale := app.ScaleFactor()
	newSize := win.InnerSize()
	currentSize := s.target.Viewport.PhysicalSize()

	if s.scale != newScale || currentSize != newSize {
		s.target.Viewport = graphics.WithPhysicalSize(
			newSize,
			s.target.ScaleFactor*newScale,
		)
		s.version++

		s.scale = newScale
	}

	// Theme and appearance: always recomputed from the latest theme,
	// even when nothing looks changed. Recomputing is cheap and rules
	// out a stale appearance.
	s.theme = app.Theme()
	s.appearance = app.Style(s.theme)
}
