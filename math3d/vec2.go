package math3d

import (
	"fmt"
	"math"
)

// Vec2 represents a 2D point or direction, typically in a plane's local frame.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Zero2 returns the zero vector.
func Zero2() Vec2 {
	return Vec2{}
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Div returns the scalar division a / s.
func (a Vec2) Div(s float64) Vec2 {
	return Vec2{a.X / s, a.Y / s}
}

// Mul returns the component-wise product a * b.
func (a Vec2) Mul(b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}

// Dot returns the dot product a · b.
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Len returns the length of the vector.
func (a Vec2) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec2) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y
}

// Unit returns a divided by its length. A zero vector yields NaN components.
func (a Vec2) Unit() Vec2 {
	d := a.Len()
	return Vec2{a.X / d, a.Y / d}
}

// Negate returns the negated vector.
func (a Vec2) Negate() Vec2 {
	return Vec2{-a.X, -a.Y}
}

// Normal returns a rotated 90° clockwise.
func (a Vec2) Normal() Vec2 {
	return Vec2{a.Y, -a.X}
}

// Perpendicular returns a rotated 90° counter-clockwise.
func (a Vec2) Perpendicular() Vec2 {
	return Vec2{-a.Y, a.X}
}

// Distance returns the distance between two points.
func (a Vec2) Distance(b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Equal reports exact component equality.
func (a Vec2) Equal(b Vec2) bool {
	return a.X == b.X && a.Y == b.Y
}

// ApproxEqual reports whether both components of a are within eps of b.
func (a Vec2) ApproxEqual(b Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// IsZero reports whether both components are exactly zero.
func (a Vec2) IsZero() bool {
	return a.X == 0 && a.Y == 0
}

// IsFinite reports whether no component is NaN or infinite.
func (a Vec2) IsFinite() bool {
	return isFinite(a.X) && isFinite(a.Y)
}

func (a Vec2) String() string {
	return fmt.Sprintf("[%v, %v]", a.X, a.Y)
}
