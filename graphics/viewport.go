// Copyright © 2025 Glaze contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: graphics/viewport.go
// Summary: Viewport and Target value types for the per-window render state.
// Usage: Rebuilt by the window state engine whenever geometry or scale moves.

package graphics

import "github.com/framegrace/glaze/core"

// Viewport is the physical drawing rectangle of a window together with
// the combined scale factor relating it to logical units. It is immutable:
// every geometry or scale change produces a new Viewport.
//
// The scale factor is assumed positive per platform contract; it is not
// validated here, so a near-zero value propagates into an extreme logical
// size rather than failing.
type Viewport struct {
	physical core.Size[uint32]
	logical  core.Size[float32]
	scale    float64
}

// WithPhysicalSize builds a Viewport from a physical size and a combined
// scale factor (platform scale × application scale). A zero physical size
// is valid and yields a zero-area logical size.
func WithPhysicalSize(size core.Size[uint32], scaleFactor float64) Viewport {
	return Viewport{
		physical: size,
		logical: core.Size[float32]{
			Width:  float32(float64(size.Width) / scaleFactor),
			Height: float32(float64(size.Height) / scaleFactor),
		},
		scale: scaleFactor,
	}
}

// PhysicalSize returns the size in physical pixels.
func (v Viewport) PhysicalSize() core.Size[uint32] { return v.physical }

// LogicalSize returns the size in logical, DPI-independent units.
func (v Viewport) LogicalSize() core.Size[float32] { return v.logical }

// ScaleFactor returns the combined scale factor the viewport was built with.
func (v Viewport) ScaleFactor() float64 { return v.scale }

// Target pairs the raw platform-reported scale factor with the Viewport
// the renderer should draw into this frame. Outside an in-progress
// transition, Viewport.ScaleFactor() == ScaleFactor × the application's
// declared scale factor.
type Target struct {
	ScaleFactor float64
	Viewport    Viewport
}
