package core

// Point is a 2D position. Whether it is in physical pixels or logical
// units depends on context: the platform reports physical coordinates,
// the engine exposes logical ones.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Scale returns the point multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Unscale returns the point divided by s. Converts a physical position
// to a logical one when s is the viewport scale factor.
func (p Point) Unscale(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}
