// Copyright © 2025 Glaze contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: backend/cellwin/translate.go
// Summary: Translation from tcell events to the platform event union.

package cellwin

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/glaze/core"
	"github.com/framegrace/glaze/window"
)

// translate converts one native event into zero or more platform
// events. Mouse and key events carry the full modifier set, so a
// modifiers-changed event is emitted ahead of them whenever the set
// moved since the last report.
func (b *Backend) translate(native tcell.Event) []window.Event {
	switch ev := native.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return []window.Event{window.NewEventResize(uint32(w), uint32(h))}

	case *tcell.EventMouse:
		x, y := ev.Position()
		out := b.modifierDelta(translateMods(ev.Modifiers()))
		return append(out, window.NewEventCursorMoved(core.Pt(float64(x), float64(y))))

	case *tcell.EventKey:
		mods := translateMods(ev.Modifiers())
		out := b.modifierDelta(mods)

		key, r := translateKey(ev)
		// Terminals only report presses, never releases.
		return append(out, window.NewEventKey(key, r, true, mods))
	}
	return nil
}

// modifierDelta emits a wholesale modifiers-changed event when the held
// set differs from the last reported one.
func (b *Backend) modifierDelta(mods window.ModMask) []window.Event {
	if mods == b.lastMods {
		return nil
	}
	b.lastMods = mods
	return []window.Event{window.NewEventModifiersChanged(mods)}
}

func translateMods(mods tcell.ModMask) window.ModMask {
	var out window.ModMask
	if mods&tcell.ModShift != 0 {
		out |= window.ModShift
	}
	if mods&tcell.ModCtrl != 0 {
		out |= window.ModCtrl
	}
	if mods&tcell.ModAlt != 0 {
		out |= window.ModAlt
	}
	if mods&tcell.ModMeta != 0 {
		out |= window.ModMeta
	}
	return out
}

func translateKey(ev *tcell.EventKey) (window.Key, rune) {
	switch ev.Key() {
	case tcell.KeyRune:
		return window.KeyRune, ev.Rune()
	case tcell.KeyEscape:
		return window.KeyEscape, 0
	case tcell.KeyEnter:
		return window.KeyEnter, 0
	case tcell.KeyTab:
		return window.KeyTab, 0
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return window.KeyBackspace, 0
	case tcell.KeyDelete:
		return window.KeyDelete, 0
	case tcell.KeyUp:
		return window.KeyUp, 0
	case tcell.KeyDown:
		return window.KeyDown, 0
	case tcell.KeyLeft:
		return window.KeyLeft, 0
	case tcell.KeyRight:
		return window.KeyRight, 0
	case tcell.KeyF1:
		return window.KeyF1, 0
	case tcell.KeyF2:
		return window.KeyF2, 0
	case tcell.KeyF3:
		return window.KeyF3, 0
	case tcell.KeyF4:
		return window.KeyF4, 0
	case tcell.KeyF5:
		return window.KeyF5, 0
	case tcell.KeyF6:
		return window.KeyF6, 0
	case tcell.KeyF7:
		return window.KeyF7, 0
	case tcell.KeyF8:
		return window.KeyF8, 0
	case tcell.KeyF9:
		return window.KeyF9, 0
	case tcell.KeyF10:
		return window.KeyF10, 0
	case tcell.KeyF11:
		return window.KeyF11, 0
	case tcell.KeyF12:
		return window.KeyF12, 0
	}
	return window.KeyNone, 0
}
