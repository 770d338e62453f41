package math3d

import "fmt"

// BoundingBox is an axis-aligned box. Corners are stored as given; a box is
// only meaningful for Intersects and Contains when it IsSorted.
type BoundingBox struct {
	Min Vec3
	Max Vec3
}

// NewBoundingBox creates a box from two corners without reordering them.
func NewBoundingBox(min, max Vec3) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

// BoxAt returns the box spanning position to position+size.
func BoxAt(position, size Vec3) BoundingBox {
	return BoundingBox{Min: position, Max: position.Add(size)}
}

// BoxOfSize returns a box centered on the origin with the given full extents.
func BoxOfSize(dx, dy, dz float64) BoundingBox {
	return BoundingBox{
		Min: Vec3{-dx / 2, -dy / 2, -dz / 2},
		Max: Vec3{dx / 2, dy / 2, dz / 2},
	}
}

// BoxFromPoints returns the tightest box holding every point.
// ok is false when no points are given.
func BoxFromPoints(points ...Vec3) (box BoundingBox, ok bool) {
	if len(points) == 0 {
		return BoundingBox{}, false
	}

	box.Min = points[0]
	box.Max = points[0]
	for _, p := range points[1:] {
		box.Min = box.Min.Min(p)
		box.Max = box.Max.Max(p)
	}
	return box, true
}

// Size returns the dimensions of the box.
func (b BoundingBox) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center of the box.
func (b BoundingBox) Center() Vec3 {
	return b.Min.Add(b.Max).Div(2)
}

// Translate returns the box moved by v.
func (b BoundingBox) Translate(v Vec3) BoundingBox {
	return BoundingBox{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}

// Intersects reports whether b and o overlap on every axis. Touching faces
// count as intersecting. Both boxes must be sorted.
func (b BoundingBox) Intersects(o BoundingBox) bool {
	if b.Max.X < o.Min.X {
		return false
	}
	if b.Max.Y < o.Min.Y {
		return false
	}
	if b.Max.Z < o.Min.Z {
		return false
	}
	if b.Min.X > o.Max.X {
		return false
	}
	if b.Min.Y > o.Max.Y {
		return false
	}
	if b.Min.Z > o.Max.Z {
		return false
	}
	return true
}

// Contains reports whether p lies inside b or on its boundary.
func (b BoundingBox) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// IsSorted reports whether Min <= Max on every axis.
func (b BoundingBox) IsSorted() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

// Sorted returns b with its corners reordered so that it IsSorted.
func (b BoundingBox) Sorted() BoundingBox {
	return BoundingBox{Min: b.Min.Min(b.Max), Max: b.Min.Max(b.Max)}
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("%v, s=%v", b.Center(), b.Size())
}

// BoundingSphere is a center and radius. It carries no behavior.
type BoundingSphere struct {
	Center Vec3
	Radius float64
}

// BoundingSphereOf returns the smallest sphere centered on b that encloses it.
func BoundingSphereOf(b BoundingBox) BoundingSphere {
	return BoundingSphere{
		Center: b.Center(),
		Radius: b.Size().Len() / 2,
	}
}
