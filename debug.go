// Copyright © 2025 Glaze contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: debug.go
// Summary: Diagnostic-overlay collaborator backed by the package logger.

package glaze

// OverlayDebug implements window.Debug by keeping an on/off flag and
// logging each flip. Renderers read Enabled when deciding whether to
// draw the overlay.
//
// Like the engine that drives it, OverlayDebug expects single-threaded
// access from the window's event loop.
type OverlayDebug struct {
	enabled bool
}

// Toggle flips the overlay flag.
func (d *OverlayDebug) Toggle() {
	d.enabled = !d.enabled
	Logger().Debug("debug overlay toggled", "enabled", d.enabled)
}

// Enabled reports whether the overlay should be drawn.
func (d *OverlayDebug) Enabled() bool {
	return d.enabled
}
