// Copyright © 2025 Glaze contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: settings.go
// Summary: Boot settings for a glaze program.
// Usage: Built by the host before the runtime starts; deserialization is
//        the host's business, glaze only defines the struct.

package glaze

import (
	"github.com/framegrace/glaze/core"
	"github.com/framegrace/glaze/window"
)

// Settings configures a program at boot.
type Settings struct {
	// ID optionally identifies the application to the windowing system.
	ID string

	// Window holds the creation settings for the main window.
	Window window.Settings

	// Fonts are raw font blobs to register before the first frame.
	Fonts [][]byte

	// DefaultFont is the face used when a widget does not pick one.
	DefaultFont core.Font

	// DefaultTextSize is the text size, in logical pixels, used by default.
	DefaultTextSize float64

	// Antialiasing enables the smoother, costlier rasterization path.
	Antialiasing bool
}

// DefaultSettings returns the settings a program starts from.
func DefaultSettings() Settings {
	return Settings{
		Window:          window.DefaultSettings(),
		DefaultFont:     core.DefaultFont(),
		DefaultTextSize: 16,
	}
}
