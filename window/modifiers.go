// Copyright © 2025 Glaze contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: window/modifiers.go
// Summary: Bitset of currently-held keyboard modifiers.

package window

// ModMask is a bitset of held modifier keys. The platform reports the
// complete set on every change; a ModMask is replaced, never merged.
type ModMask uint16

const (
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta

	ModNone ModMask = 0
)

// Has reports whether every modifier in mask is held.
func (m ModMask) Has(mask ModMask) bool {
	return m&mask == mask
}
