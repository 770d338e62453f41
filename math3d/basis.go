package math3d

// Plane is the set of points p with p·Normal == W. Normal is expected to be
// a unit vector; see NewOrthoNormalBasis for what happens otherwise.
type Plane struct {
	Normal Vec3
	W      float64
}

// OrthoNormalBasis gives a plane its own 2D coordinate system. U, V and the
// plane normal are mutually orthogonal unit vectors and PlaneOrigin is the
// point of the plane closest to the coordinate origin.
type OrthoNormalBasis struct {
	U           Vec3
	V           Vec3
	Plane       Plane
	PlaneOrigin Vec3
}

// NewOrthoNormalBasis builds the basis for plane.
//
// plane.Normal must have unit length. The normal is not rescaled: with a
// normal of length k, U has length k, PlaneOrigin is k*W from the origin
// and so lies off the plane, and To3D(To2D(p)) no longer returns p.
func NewOrthoNormalBasis(plane Plane) OrthoNormalBasis {
	right := plane.Normal.NonParallel()
	v := plane.Normal.Cross(right).Unit()
	u := v.Cross(plane.Normal)
	return OrthoNormalBasis{
		U:           u,
		V:           v,
		Plane:       plane,
		PlaneOrigin: plane.Normal.Scale(plane.W),
	}
}

// To2D projects p onto the U and V axes. p is not first moved onto the plane.
func (b OrthoNormalBasis) To2D(p Vec3) Vec2 {
	return Vec2{p.Dot(b.U), p.Dot(b.V)}
}

// To3D maps a point in plane coordinates back to 3D.
func (b OrthoNormalBasis) To3D(p Vec2) Vec3 {
	return b.PlaneOrigin.Add(b.U.Scale(p.X)).Add(b.V.Scale(p.Y))
}
