// Copyright © 2025 Glaze contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: window/settings.go
// Summary: Creation-time window settings. Hints only; platforms may
//          ignore or adjust them.

package window

import "github.com/framegrace/glaze/core"

// Settings describes the window a backend should create. Sizes are in
// logical units.
type Settings struct {
	Size     core.Size[float32]
	MinSize  *core.Size[float32]
	MaxSize  *core.Size[float32]
	Position Position

	Visible     bool
	Resizable   bool
	Decorations bool
	Transparent bool

	ExitOnCloseRequest bool
}

// Position selects where a new window is placed.
type Position int

const (
	// PositionDefault lets the windowing system choose.
	PositionDefault Position = iota
	// PositionCentered centers the window on the active monitor.
	PositionCentered
)

// DefaultSettings returns the settings used when the host does not
// override anything.
func DefaultSettings() Settings {
	return Settings{
		Size:               core.NewSize[float32](1024, 768),
		Position:           PositionDefault,
		Visible:            true,
		Resizable:          true,
		Decorations:        true,
		ExitOnCloseRequest: true,
	}
}

// SettingsOption adjusts window Settings.
type SettingsOption func(*Settings)

// NewSettings builds Settings from the defaults plus options.
func NewSettings(opts ...SettingsOption) Settings {
	s := DefaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithSize sets the initial logical size.
func WithSize(width, height float32) SettingsOption {
	return func(s *Settings) {
		s.Size = core.NewSize(width, height)
	}
}

// WithMinSize constrains the smallest logical size.
func WithMinSize(width, height float32) SettingsOption {
	return func(s *Settings) {
		min := core.NewSize(width, height)
		s.MinSize = &min
	}
}

// WithMaxSize constrains the largest logical size.
func WithMaxSize(width, height float32) SettingsOption {
	return func(s *Settings) {
		max := core.NewSize(width, height)
		s.MaxSize = &max
	}
}

// WithPosition sets the initial placement.
func WithPosition(p Position) SettingsOption {
	return func(s *Settings) { s.Position = p }
}

// WithVisible controls whether the window starts visible.
func WithVisible(visible bool) SettingsOption {
	return func(s *Settings) { s.Visible = visible }
}

// WithResizable controls whether the user may resize the window.
func WithResizable(resizable bool) SettingsOption {
	return func(s *Settings) { s.Resizable = resizable }
}

// WithDecorations controls the platform frame around the window.
func WithDecorations(decorations bool) SettingsOption {
	return func(s *Settings) { s.Decorations = decorations }
}

// WithTransparent requests an alpha-capable surface.
func WithTransparent(transparent bool) SettingsOption {
	return func(s *Settings) { s.Transparent = transparent }
}
