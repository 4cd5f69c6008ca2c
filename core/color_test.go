// Copyright © 2025 Glaze contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/color_test.go
// Summary: Exercises color parsing, conversion and blending.

package core

import (
	"math"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   Color
		wantOK bool
	}{
		{"white", "#ffffff", White, true},
		{"black", "#000000", Black, true},
		{"red", "#ff0000", RGB(1, 0, 0), true},
		{"short form", "#fff", White, true},
		{"garbage", "not-a-color", Color{A: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Hex(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !colorsClose(got, tt.want) {
				t.Fatalf("color = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNRGBA(t *testing.T) {
	c := RGBA(1, 0.5, 0, 0.5).NRGBA()
	if c.R != 255 || c.G != 127 || c.B != 0 || c.A != 127 {
		t.Fatalf("nrgba = %+v", c)
	}

	// Out-of-range components clamp instead of wrapping.
	hot := Color{R: 2, G: -1, B: 0, A: 1}.NRGBA()
	if hot.R != 255 || hot.G != 0 {
		t.Fatalf("clamped nrgba = %+v", hot)
	}
}

func TestLightenDarken(t *testing.T) {
	grey := RGB(0.5, 0.5, 0.5)

	lighter := grey.Lighten(0.5)
	darker := grey.Darken(0.5)

	lLight, _, _ := lighter.Colorful().Lab()
	lGrey, _, _ := grey.Colorful().Lab()
	lDark, _, _ := darker.Colorful().Lab()

	if !(lLight > lGrey && lGrey > lDark) {
		t.Fatalf("lightness ordering broken: %v %v %v", lLight, lGrey, lDark)
	}
	if lighter.A != 1 || darker.A != 1 {
		t.Fatalf("blending disturbed alpha")
	}
}

func colorsClose(a, b Color) bool {
	const eps = 1e-3
	return math.Abs(a.R-b.R) < eps &&
		math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps &&
		math.Abs(a.A-b.A) < eps
}
