// Copyright © 2025 Glaze contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package window

import (
	"testing"

	"github.com/framegrace/glaze/core"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.Size != core.NewSize[float32](1024, 768) {
		t.Fatalf("default size = %v", s.Size)
	}
	if !s.Visible || !s.Resizable || !s.Decorations || !s.ExitOnCloseRequest {
		t.Fatalf("default flags wrong: %+v", s)
	}
	if s.Transparent || s.MinSize != nil || s.MaxSize != nil {
		t.Fatalf("defaults should not constrain or request alpha: %+v", s)
	}
}

func TestSettingsOptions(t *testing.T) {
	s := NewSettings(
		WithSize(640, 480),
		WithMinSize(320, 240),
		WithMaxSize(1920, 1080),
		WithPosition(PositionCentered),
		WithVisible(false),
		WithResizable(false),
		WithDecorations(false),
		WithTransparent(true),
	)

	if s.Size != core.NewSize[float32](640, 480) {
		t.Fatalf("size = %v", s.Size)
	}
	if s.MinSize == nil || *s.MinSize != core.NewSize[float32](320, 240) {
		t.Fatalf("min size = %v", s.MinSize)
	}
	if s.MaxSize == nil || *s.MaxSize != core.NewSize[float32](1920, 1080) {
		t.Fatalf("max size = %v", s.MaxSize)
	}
	if s.Position != PositionCentered {
		t.Fatalf("position = %v", s.Position)
	}
	if s.Visible || s.Resizable || s.Decorations || !s.Transparent {
		t.Fatalf("flags = %+v", s)
	}
}
