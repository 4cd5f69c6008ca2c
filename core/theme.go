// Copyright © 2025 Glaze contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/theme.go
// Summary: Theme capability and the built-in light/dark palettes.
// Usage: Anything with a DefaultStyle can drive the window state engine.

package core

// Appearance is the theme-derived pair of colors used as frame defaults.
type Appearance struct {
	Background Color
	Text       Color
}

// Theme supplies the default Appearance for a frame. The window state
// engine is generic over any value satisfying this capability; equality
// between themes is whatever equality the concrete type defines.
type Theme interface {
	DefaultStyle() Appearance
}

// Palette is the set of base colors a built-in theme is derived from.
type Palette struct {
	Background Color
	Text       Color
	Primary    Color
	Success    Color
	Danger     Color
}

// PaletteTheme is a Theme backed by a fixed palette. It is comparable,
// so two PaletteTheme values with the same name and palette are equal.
type PaletteTheme struct {
	Name    string
	Palette Palette
}

// DefaultStyle returns the frame defaults for the palette.
func (t PaletteTheme) DefaultStyle() Appearance {
	return Appearance{
		Background: t.Palette.Background,
		Text:       t.Palette.Text,
	}
}

func (t PaletteTheme) String() string { return t.Name }

// ContrastText picks a readable text color for the given background,
// using Lab lightness as the cutoff.
func ContrastText(background Color) Color {
	l, _, _ := background.Colorful().Lab()
	if l > 0.5 {
		return Black
	}
	return White
}

func paletteFor(name, background, primary, success, danger string) PaletteTheme {
	bg, _ := Hex(background)
	return PaletteTheme{
		Name: name,
		Palette: Palette{
			Background: bg,
			Text:       ContrastText(bg),
			Primary:    mustHex(primary),
			Success:    mustHex(success),
			Danger:     mustHex(danger),
		},
	}
}

func mustHex(s string) Color {
	c, _ := Hex(s)
	return c
}

// Built-in themes.
var (
	Light = paletteFor("Light", "#ffffff", "#5865f2", "#12664f", "#c3423f")
	Dark  = paletteFor("Dark", "#2b2d31", "#5865f2", "#12664f", "#c3423f")
)
