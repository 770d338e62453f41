package math3d

// Vec4 represents a homogeneous 3D point.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 creates a new Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// V4FromV3 creates a Vec4 from Vec3 with specified W.
func V4FromV3(v Vec3, w float64) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// Vec3 returns the Vec3 portion (ignoring W).
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Dot returns the dot product.
func (v Vec4) Dot(b Vec4) float64 {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z + v.W*b.W
}

// Homogenize scales X, Y and Z so that W becomes 1 and drops W.
// The scale is skipped only when W is exactly 1; W == 0 yields Inf or NaN.
func (v Vec4) Homogenize() Vec3 {
	if v.W != 1 {
		invw := 1.0 / v.W
		return Vec3{v.X * invw, v.Y * invw, v.Z * invw}
	}
	return Vec3{v.X, v.Y, v.Z}
}
