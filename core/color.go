// Copyright © 2025 Glaze contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/color.go
// Summary: Color value type used for theme appearances and frame defaults.
// Usage: Components are floats in [0,1]; go-colorful backs the color math.

package core

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color with components in the range [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB builds an opaque Color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA builds a Color with an explicit alpha component.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex parses a color from a "#rrggbb" string. Invalid input yields
// opaque black and ok=false.
func Hex(s string) (Color, bool) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{A: 1}, false
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, true
}

// Colorful converts to a go-colorful color, dropping alpha.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// FromColorful converts a go-colorful color into an opaque Color.
func FromColorful(c colorful.Color) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// NRGBA converts to the standard library color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Lighten blends the color towards white in Lab space by t in [0,1].
func (c Color) Lighten(t float64) Color {
	blended := c.Colorful().BlendLab(colorful.Color{R: 1, G: 1, B: 1}, t).Clamped()
	return Color{R: blended.R, G: blended.G, B: blended.B, A: c.A}
}

// Darken blends the color towards black in Lab space by t in [0,1].
func (c Color) Darken(t float64) Color {
	blended := c.Colorful().BlendLab(colorful.Color{}, t).Clamped()
	return Color{R: blended.R, G: blended.G, B: blended.B, A: c.A}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA(0, 0, 0, 0)
)
