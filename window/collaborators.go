// Copyright © 2025 Glaze contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: window/collaborators.go
// Summary: Contracts the state engine reads from and writes to.
// Usage: Implemented by the host application and by platform backends.

package window

import "github.com/framegrace/glaze/core"

// Application is the authoritative source of the application-declared
// window state. The engine only reads from it; it never retains the
// value beyond the call it was passed in.
type Application interface {
	// Title is the window title the application wants displayed.
	Title() string

	// ScaleFactor is the application-declared zoom factor, multiplied
	// into the platform scale factor to obtain the combined one.
	ScaleFactor() float64

	// Theme is the application's current theme.
	Theme() core.Theme

	// Style derives the frame appearance from a theme.
	Style(theme core.Theme) core.Appearance
}

// Window is the live platform window the engine reconciles against.
type Window interface {
	// ScaleFactor is the platform-reported DPI scale factor.
	ScaleFactor() float64

	// InnerSize is the current physical inner size of the window.
	InnerSize() core.Size[uint32]

	// SetTitle pushes a new title to the windowing system.
	SetTitle(title string)
}

// Debug receives the diagnostic-overlay toggle. It is an injectable
// collaborator so hosts without an overlay pay nothing.
type Debug interface {
	Toggle()
}

// NopDebug is the default Debug: it discards toggles.
type NopDebug struct{}

func (NopDebug) Toggle() {}
