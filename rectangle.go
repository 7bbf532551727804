package tetrabounds

import "math"

// Rectangle represents an axis-aligned 2D rectangle, with its origin at the top-left (X, Y) and extending right by Width and down by
// Height. A Rectangle with no width or height is empty.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// NewRectangle returns a new Rectangle.
func NewRectangle(x, y, width, height float64) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// NewRectangleFromEdges returns a new Rectangle spanning the given left, top, right, and bottom edges.
func NewRectangleFromEdges(left, top, right, bottom float64) Rectangle {
	return Rectangle{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// IsEmpty returns true if the Rectangle has no area.
func (r Rectangle) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Set sets the Rectangle's position and size.
func (r *Rectangle) Set(x, y, width, height float64) {
	r.X, r.Y, r.Width, r.Height = x, y, width, height
}

// SetPosition moves the Rectangle's top-left corner to the given position.
func (r *Rectangle) SetPosition(x, y float64) {
	r.X, r.Y = x, y
}

// Left returns the X coordinate of the Rectangle's left edge.
func (r Rectangle) Left() float64 { return r.X }

// Top returns the Y coordinate of the Rectangle's top edge.
func (r Rectangle) Top() float64 { return r.Y }

// Right returns the X coordinate of the Rectangle's right edge.
func (r Rectangle) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the Rectangle's bottom edge.
func (r Rectangle) Bottom() float64 { return r.Y + r.Height }

// Center returns the point in the middle of the Rectangle.
func (r Rectangle) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the point lies inside or on the edges of the Rectangle.
func (r Rectangle) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// ContainsRect returns true if the other Rectangle lies entirely inside of this one.
func (r Rectangle) ContainsRect(other Rectangle) bool {
	return other.X >= r.X && other.Right() <= r.Right() && other.Y >= r.Y && other.Bottom() <= r.Bottom()
}

// Intersects returns true if the two Rectangles overlap.
func (r Rectangle) Intersects(other Rectangle) bool {
	return !(other.X > r.Right() || other.Right() < r.X || other.Y > r.Bottom() || other.Bottom() < r.Y)
}

// IntersectRectangles returns the overlapping area of the two Rectangles, and false if they don't overlap.
func IntersectRectangles(r1, r2 Rectangle) (Rectangle, bool) {

	left := math.Max(r1.X, r2.X)
	top := math.Max(r1.Y, r2.Y)
	right := math.Min(r1.Right(), r2.Right())
	bottom := math.Min(r1.Bottom(), r2.Bottom())

	if right < left || bottom < top {
		return Rectangle{}, false
	}

	return NewRectangleFromEdges(left, top, right, bottom), true

}

// CombineRectangles returns the smallest Rectangle containing both Rectangles.
func CombineRectangles(r1, r2 Rectangle) Rectangle {
	return NewRectangleFromEdges(
		math.Min(r1.X, r2.X),
		math.Min(r1.Y, r2.Y),
		math.Max(r1.Right(), r2.Right()),
		math.Max(r1.Bottom(), r2.Bottom()),
	)
}

// Inflate grows the Rectangle by the given amounts on each side, keeping its center in place.
func (r *Rectangle) Inflate(horizontal, vertical float64) {
	r.X -= horizontal
	r.Y -= vertical
	r.Width += horizontal * 2
	r.Height += vertical * 2
}
