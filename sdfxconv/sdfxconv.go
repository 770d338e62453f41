// Package sdfxconv converts math3d values to and from the types of the
// github.com/deadsy/sdfx CAD library, so a CSG layer built on sdfx can
// consume kernel vectors and bounds directly.
package sdfxconv

import (
	"github.com/ansipixels/csgmath/math3d"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ToV3 converts a Vec3 to an sdfx vector.
func ToV3(v math3d.Vec3) v3.Vec {
	return v3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// FromV3 converts an sdfx vector to a Vec3.
func FromV3(v v3.Vec) math3d.Vec3 {
	return math3d.V3(v.X, v.Y, v.Z)
}

// ToV2 converts a Vec2 to an sdfx vector.
func ToV2(v math3d.Vec2) v2.Vec {
	return v2.Vec{X: v.X, Y: v.Y}
}

// FromV2 converts an sdfx vector to a Vec2.
func FromV2(v v2.Vec) math3d.Vec2 {
	return math3d.V2(v.X, v.Y)
}

// ToBox3 converts a bounding box to an sdfx box. Corners are copied as is;
// sort the box first if it may be inverted.
func ToBox3(b math3d.BoundingBox) sdf.Box3 {
	return sdf.Box3{Min: ToV3(b.Min), Max: ToV3(b.Max)}
}

// FromBox3 converts an sdfx box, such as the one returned by
// sdf.SDF3.BoundingBox, to a bounding box.
func FromBox3(b sdf.Box3) math3d.BoundingBox {
	return math3d.NewBoundingBox(FromV3(b.Min), FromV3(b.Max))
}
