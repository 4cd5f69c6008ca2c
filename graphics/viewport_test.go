// Copyright © 2025 Glaze contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: graphics/viewport_test.go
// Summary: Exercises viewport construction and logical derivation.

package graphics

import (
	"math"
	"testing"

	"github.com/framegrace/glaze/core"
)

func TestWithPhysicalSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height uint32
		scale         float64
		wantW, wantH  float32
	}{
		{"unit scale", 800, 600, 1.0, 800, 600},
		{"hidpi", 800, 600, 2.0, 400, 300},
		{"fractional", 1000, 500, 1.25, 800, 400},
		{"zero size", 0, 0, 2.0, 0, 0},
		{"combined zoom", 1600, 1200, 3.0, 533.3333, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := WithPhysicalSize(core.NewSize(tt.width, tt.height), tt.scale)

			if got := v.PhysicalSize(); got != core.NewSize(tt.width, tt.height) {
				t.Errorf("physical size = %v", got)
			}
			if got := v.ScaleFactor(); got != tt.scale {
				t.Errorf("scale factor = %v, want %v", got, tt.scale)
			}
			logical := v.LogicalSize()
			if math.Abs(float64(logical.Width-tt.wantW)) > 1e-2 ||
				math.Abs(float64(logical.Height-tt.wantH)) > 1e-2 {
				t.Errorf("logical size = %v, want %v×%v", logical, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestViewportValueSemantics(t *testing.T) {
	a := WithPhysicalSize(core.NewSize[uint32](100, 100), 1.0)

	// Viewports are immutable values: a change means rebuilding, and
	// the rebuild leaves existing copies untouched.
	b := WithPhysicalSize(core.NewSize[uint32](200, 200), 2.0)
	if a.PhysicalSize() != core.NewSize[uint32](100, 100) || a.ScaleFactor() != 1.0 {
		t.Fatalf("rebuild disturbed an existing viewport: %v", a)
	}
	if b.PhysicalSize() != core.NewSize[uint32](200, 200) || b.ScaleFactor() != 2.0 {
		t.Fatalf("rebuilt viewport = %v", b)
	}
}

func TestTargetCarriesPlatformScale(t *testing.T) {
	v := WithPhysicalSize(core.NewSize[uint32](800, 600), 2.0*1.5)
	target := Target{ScaleFactor: 2.0, Viewport: v}

	// Combined viewport scale = platform scale × application scale.
	if got := target.Viewport.ScaleFactor() / target.ScaleFactor; got != 1.5 {
		t.Fatalf("application scale = %v, want 1.5", got)
	}
}
