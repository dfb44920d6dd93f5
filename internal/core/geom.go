// Package core provides fundamental types and utilities shared by the game
// core and its adapters. It has no external dependencies (especially no
// Bubble Tea or Ebiten) so game logic stays pure and testable.
package core

// Rect is an axis-aligned bounding box in integer pixels or cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap; empty rectangles never overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Scale maps a rectangle from a world of size (fromW, fromH) onto a grid of
// size (toW, toH). Non-empty rectangles keep at least one cell in each axis.
func (r Rect) Scale(fromW, fromH, toW, toH int) Rect {
	if fromW <= 0 || fromH <= 0 {
		return Rect{}
	}
	x0 := floorDiv(r.X*toW, fromW)
	y0 := floorDiv(r.Y*toH, fromH)
	x1 := floorDiv(r.Right()*toW, fromW)
	y1 := floorDiv(r.Bottom()*toH, fromH)
	if r.W > 0 && x1 == x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 == y0 {
		y1 = y0 + 1
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// floorDiv divides rounding toward negative infinity, so off-screen
// coordinates stay off-screen after scaling.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
