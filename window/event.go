// Copyright © 2025 Glaze contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: window/event.go
// Summary: Discriminated union of platform window events fed to the engine.
// Usage: Backends translate native events into these; State.Update consumes them.

package window

import (
	"time"

	"github.com/framegrace/glaze/core"
)

// Event is a platform window event. The set is open: the engine ignores
// any kind it does not recognize.
type Event interface {
	// When reports the time at which the event was delivered.
	When() time.Time
}

// EventTime provides the When anchor for every concrete event.
type EventTime struct {
	t time.Time
}

// When returns the delivery time of the event.
func (e *EventTime) When() time.Time { return e.t }

// SetEventNow stamps the event with the current time.
func (e *EventTime) SetEventNow() { e.t = time.Now() }

// EventResize reports a new physical inner size for the window.
type EventResize struct {
	EventTime
	Width  uint32
	Height uint32
}

// NewEventResize builds a resize event for the given physical size.
func NewEventResize(width, height uint32) *EventResize {
	ev := &EventResize{Width: width, Height: height}
	ev.SetEventNow()
	return ev
}

// EventScaleFactorChanged reports a new platform DPI scale factor.
// It never carries geometry; the viewport must still be rebuilt because
// logical size depends on the scale factor.
type EventScaleFactorChanged struct {
	EventTime
	ScaleFactor float64
}

// NewEventScaleFactorChanged builds a scale-factor-change event.
func NewEventScaleFactorChanged(scaleFactor float64) *EventScaleFactorChanged {
	ev := &EventScaleFactorChanged{ScaleFactor: scaleFactor}
	ev.SetEventNow()
	return ev
}

// EventCursorMoved reports the pointer at a physical position.
type EventCursorMoved struct {
	EventTime
	Position core.Point
}

// NewEventCursorMoved builds a cursor-move event at a physical position.
func NewEventCursorMoved(position core.Point) *EventCursorMoved {
	ev := &EventCursorMoved{Position: position}
	ev.SetEventNow()
	return ev
}

// EventTouch reports a touch at a physical position.
type EventTouch struct {
	EventTime
	Position core.Point
}

// NewEventTouch builds a touch event at a physical position.
func NewEventTouch(position core.Point) *EventTouch {
	ev := &EventTouch{Position: position}
	ev.SetEventNow()
	return ev
}

// EventCursorLeft reports that the pointer left the window.
type EventCursorLeft struct {
	EventTime
}

// NewEventCursorLeft builds a cursor-left event.
func NewEventCursorLeft() *EventCursorLeft {
	ev := &EventCursorLeft{}
	ev.SetEventNow()
	return ev
}

// EventModifiersChanged reports the full current modifier set. The engine
// replaces its cached modifiers wholesale, it never merges.
type EventModifiersChanged struct {
	EventTime
	Modifiers ModMask
}

// NewEventModifiersChanged builds a modifiers-changed event.
func NewEventModifiersChanged(modifiers ModMask) *EventModifiersChanged {
	ev := &EventModifiersChanged{Modifiers: modifiers}
	ev.SetEventNow()
	return ev
}

// EventKey reports a key press or release.
type EventKey struct {
	EventTime
	Key       Key
	Rune      rune
	Pressed   bool
	Modifiers ModMask
}

// NewEventKey builds a key event.
func NewEventKey(key Key, r rune, pressed bool, modifiers ModMask) *EventKey {
	ev := &EventKey{Key: key, Rune: r, Pressed: pressed, Modifiers: modifiers}
	ev.SetEventNow()
	return ev
}

// Key identifies a named, non-rune key.
type Key int16

// Named keys. Only keys the windowing layer itself reacts to need to be
// listed here; backends pass KeyRune plus Rune for everything printable.
const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// KeyDebugToggle is the key that flips the diagnostic overlay.
const KeyDebugToggle = KeyF12
