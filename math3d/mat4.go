package math3d

// Mat4 is a 4x4 homogeneous transform. Element 4*row+col is stored flat and
// vectors multiply from the left as row vectors, so elements 12..14 hold the
// translation and element 15 the homogeneous scale.
type Mat4 struct {
	m [16]float64

	// IsMirroring marks a transform that flips orientation. It is set by the
	// caller; only Mul keeps it up to date.
	IsMirroring bool
}

// NewMat4 creates a matrix from 16 elements in row-major order.
func NewMat4(elements [16]float64) Mat4 {
	return Mat4{m: elements}
}

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{m: [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// Scaling returns a matrix scaling each axis by the matching component of v.
func Scaling(v Vec3) Mat4 {
	return Mat4{m: [16]float64{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}}
}

// Translation returns a matrix translating by v.
func Translation(v Vec3) Mat4 {
	return Mat4{m: [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		v.X, v.Y, v.Z, 1,
	}}
}

// At returns the element at row, col.
func (a Mat4) At(row, col int) float64 {
	return a.m[4*row+col]
}

// Elements returns a copy of the 16 elements in row-major order.
func (a Mat4) Elements() [16]float64 {
	return a.m
}

// LeftMultiplyVec4 returns the row vector v multiplied by a.
func (a Mat4) LeftMultiplyVec4(v Vec4) Vec4 {
	return Vec4{
		v.X*a.m[0] + v.Y*a.m[4] + v.Z*a.m[8] + v.W*a.m[12],
		v.X*a.m[1] + v.Y*a.m[5] + v.Z*a.m[9] + v.W*a.m[13],
		v.X*a.m[2] + v.Y*a.m[6] + v.Z*a.m[10] + v.W*a.m[14],
		v.X*a.m[3] + v.Y*a.m[7] + v.Z*a.m[11] + v.W*a.m[15],
	}
}

// LeftMultiplyVec3 transforms v as the homogeneous point (x, y, z, 1) and
// divides through by the resulting w unless it is exactly 1.
func (a Mat4) LeftMultiplyVec3(v Vec3) Vec3 {
	return a.LeftMultiplyVec4(V4FromV3(v, 1)).Homogenize()
}

// Mul returns the transform that applies a first, then b.
// The result is mirroring when exactly one of a and b is.
func (a Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r.m[4*row+col] = a.m[4*row]*b.m[col] +
				a.m[4*row+1]*b.m[4+col] +
				a.m[4*row+2]*b.m[8+col] +
				a.m[4*row+3]*b.m[12+col]
		}
	}
	r.IsMirroring = a.IsMirroring != b.IsMirroring
	return r
}

// Determinant returns the determinant of a. A negative value means the
// transform flips orientation.
func (a Mat4) Determinant() float64 {
	m := &a.m
	s0 := m[0]*m[5] - m[4]*m[1]
	s1 := m[0]*m[6] - m[4]*m[2]
	s2 := m[0]*m[7] - m[4]*m[3]
	s3 := m[1]*m[6] - m[5]*m[2]
	s4 := m[1]*m[7] - m[5]*m[3]
	s5 := m[2]*m[7] - m[6]*m[3]

	c5 := m[10]*m[15] - m[14]*m[11]
	c4 := m[9]*m[15] - m[13]*m[11]
	c3 := m[9]*m[14] - m[13]*m[10]
	c2 := m[8]*m[15] - m[12]*m[11]
	c1 := m[8]*m[14] - m[12]*m[10]
	c0 := m[8]*m[13] - m[12]*m[9]

	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}
