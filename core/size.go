// Copyright © 2025 Glaze contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/size.go
// Summary: Generic width/height value types shared by the windowing core.
// Usage: Physical sizes are Size[uint32], logical sizes Size[float32].

package core

// Numeric constrains the component type of a Size.
type Numeric interface {
	~int | ~int32 | ~int64 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Size holds a width and height of numeric type T.
// A zero Size is valid and represents a minimized or hidden window.
type Size[T Numeric] struct {
	Width  T
	Height T
}

// NewSize builds a Size from its components.
func NewSize[T Numeric](width, height T) Size[T] {
	return Size[T]{Width: width, Height: height}
}

// Area returns width times height.
func (s Size[T]) Area() T {
	return s.Width * s.Height
}

// IsZero reports whether either dimension is zero.
func (s Size[T]) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}
