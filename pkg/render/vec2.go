package render

import "fmt"

// Vec2 is an integer position or displacement on a canvas.
type Vec2 struct {
	X, Y int
}

// V2 creates a new Vec2.
func V2(x, y int) Vec2 {
	return Vec2{x, y}
}

// Add returns a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Mul multiplies component-wise.
func (a Vec2) Mul(b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}

// Div divides both components by n, truncating toward zero.
func (a Vec2) Div(n int) Vec2 {
	return Vec2{a.X / n, a.Y / n}
}

// Min returns the component-wise minimum.
func (a Vec2) Min(b Vec2) Vec2 {
	return Vec2{min(a.X, b.X), min(a.Y, b.Y)}
}

// Max returns the component-wise maximum.
func (a Vec2) Max(b Vec2) Vec2 {
	return Vec2{max(a.X, b.X), max(a.Y, b.Y)}
}

// PerpDot returns the z component of the 3D cross product of a and b.
func (a Vec2) PerpDot(b Vec2) int {
	return a.X*b.Y - a.Y*b.X
}

// RemEuclid reduces a by size with a Euclidean remainder, so both
// components land in [0, size).
func (a Vec2) RemEuclid(size Vec2) Vec2 {
	return Vec2{remEuclid(a.X, size.X), remEuclid(a.Y, size.Y)}
}

// In reports whether a lies inside [0, size.X) x [0, size.Y).
func (a Vec2) In(size Vec2) bool {
	return a.X >= 0 && a.Y >= 0 && a.X < size.X && a.Y < size.Y
}

func (a Vec2) String() string {
	return fmt.Sprintf("(%d, %d)", a.X, a.Y)
}

func remEuclid(a, n int) int {
	r := a % n
	if r < 0 {
		if n < 0 {
			return r - n
		}
		return r + n
	}
	return r
}
