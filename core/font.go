// Copyright © 2025 Glaze contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/font.go
// Summary: Font selection value type consumed by the boot settings.

package core

// FontFamily names a font family, either generic or by name.
type FontFamily string

// Generic font families.
const (
	FamilySansSerif FontFamily = "sans-serif"
	FamilySerif     FontFamily = "serif"
	FamilyMonospace FontFamily = "monospace"
)

// FontWeight is a CSS-style numeric weight.
type FontWeight uint16

const (
	WeightLight  FontWeight = 300
	WeightNormal FontWeight = 400
	WeightMedium FontWeight = 500
	WeightBold   FontWeight = 700
)

// Font describes the face an application renders text with by default.
// Loading and shaping are renderer concerns and live elsewhere.
type Font struct {
	Family FontFamily
	Weight FontWeight
	Italic bool
}

// DefaultFont is the face used when settings do not override it.
func DefaultFont() Font {
	return Font{Family: FamilySansSerif, Weight: WeightNormal}
}
