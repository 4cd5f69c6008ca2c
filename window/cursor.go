package window

import "github.com/framegrace/glaze/core"

// Cursor is the two-variant pointer state the engine exposes: available
// at a logical position, or unavailable (outside the window or unknown).
type Cursor struct {
	position  core.Point
	available bool
}

// AvailableAt builds a Cursor at a logical position.
func AvailableAt(position core.Point) Cursor {
	return Cursor{position: position, available: true}
}

// Unavailable builds the absent-cursor variant.
func Unavailable() Cursor {
	return Cursor{}
}

// Position returns the logical position and whether the cursor is
// available. The position is meaningless when ok is false.
func (c Cursor) Position() (pos core.Point, ok bool) {
	return c.position, c.available
}
