// Package math3d provides the geometric primitives beneath the CSG layer:
// vectors, bounding volumes, 2D lines, homogeneous matrices and plane bases.
//
// Arithmetic never returns errors. Degenerate input such as a zero-length
// vector passed to Unit yields NaN or Inf components, which propagate to the
// caller. Opt-in predicates (IsZero, IsFinite, BoundingBox.IsSorted) are
// available when a check is wanted.
package math3d

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance suggested for ApproxEqual comparisons.
const Epsilon = 1e-9

// Vec3 represents a 3D point or direction.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise product a * b.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Div returns the scalar division a / s.
func (a Vec3) Div(s float64) Vec3 {
	return Vec3{a.X / s, a.Y / s, a.Z / s}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the length (magnitude) of the vector.
func (a Vec3) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec3) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// DistanceSq returns the squared distance between two points.
// Use it for comparisons where the square root is not needed.
func (a Vec3) DistanceSq(b Vec3) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return dx*dx + dy*dy + dz*dz
}

// Unit returns a divided by its length. A zero vector yields NaN components.
func (a Vec3) Unit() Vec3 {
	d := a.Len()
	return Vec3{a.X / d, a.Y / d, a.Z / d}
}

// Normalize returns the unit vector in the same direction, or the zero
// vector when a has no length.
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{a.X / l, a.Y / l, a.Z / l}
}

// Negate returns the negated vector.
func (a Vec3) Negate() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Abs returns the component-wise absolute value.
func (a Vec3) Abs() Vec3 {
	return Vec3{
		math.Abs(a.X),
		math.Abs(a.Y),
		math.Abs(a.Z),
	}
}

// Min returns the component-wise minimum.
func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{
		math.Min(a.X, b.X),
		math.Min(a.Y, b.Y),
		math.Min(a.Z, b.Z),
	}
}

// Max returns the component-wise maximum.
func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{
		math.Max(a.X, b.X),
		math.Max(a.Y, b.Y),
		math.Max(a.Z, b.Z),
	}
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	return Vec3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// Transform applies m to a as a homogeneous point.
func (a Vec3) Transform(m Mat4) Vec3 {
	return m.LeftMultiplyVec3(a)
}

// NonParallel returns the standard basis axis along which a has the smallest
// absolute component. The result is never parallel to a non-zero a, which
// makes it a seed for building an orthogonal frame. Ties prefer X, then Y.
func (a Vec3) NonParallel() Vec3 {
	abs := a.Abs()
	switch {
	case abs.X <= abs.Y && abs.X <= abs.Z:
		return Vec3{1, 0, 0}
	case abs.Y <= abs.X && abs.Y <= abs.Z:
		return Vec3{0, 1, 0}
	default:
		return Vec3{0, 0, 1}
	}
}

// Equal reports exact component equality.
func (a Vec3) Equal(b Vec3) bool {
	return a.X == b.X && a.Y == b.Y && a.Z == b.Z
}

// ApproxEqual reports whether every component of a is within eps of b.
func (a Vec3) ApproxEqual(b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps
}

// IsZero reports whether all components are exactly zero.
func (a Vec3) IsZero() bool {
	return a.X == 0 && a.Y == 0 && a.Z == 0
}

// IsFinite reports whether no component is NaN or infinite.
func (a Vec3) IsFinite() bool {
	return isFinite(a.X) && isFinite(a.Y) && isFinite(a.Z)
}

func (a Vec3) String() string {
	return fmt.Sprintf("[%v, %v, %v]", a.X, a.Y, a.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
