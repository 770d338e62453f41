// Package gltfconv builds math3d transforms from glTF scene nodes, so
// geometry placed by a glTF scene graph can be moved into world space
// before it reaches the CSG layer.
package gltfconv

import (
	"github.com/ansipixels/csgmath/math3d"
	"github.com/qmuntal/gltf"
)

var identity = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// NodeTransform returns the local transform of n.
//
// An explicit n.Matrix wins when it is set and not the identity. glTF stores
// it column-major for column vectors, which is the same flat layout as
// math3d's row-major matrix for row vectors, so it is taken as is. Otherwise
// the transform is scale, then rotation, then translation. Zero-valued
// fields (a node built in Go rather than decoded) count as their defaults.
//
// IsMirroring is set when the transform flips orientation.
func NodeTransform(n *gltf.Node) math3d.Mat4 {
	var m math3d.Mat4
	if n.Matrix != identity && n.Matrix != [16]float64{} {
		m = math3d.NewMat4(n.Matrix)
	} else {
		m = math3d.Identity()
		if n.Scale != [3]float64{1, 1, 1} && n.Scale != [3]float64{0, 0, 0} {
			m = m.Mul(math3d.Scaling(math3d.V3(n.Scale[0], n.Scale[1], n.Scale[2])))
		}
		if n.Rotation != [4]float64{0, 0, 0, 1} && n.Rotation != [4]float64{} {
			m = m.Mul(Rotation(n.Rotation))
		}
		if n.Translation != [3]float64{0, 0, 0} {
			m = m.Mul(math3d.Translation(math3d.V3(n.Translation[0], n.Translation[1], n.Translation[2])))
		}
	}
	m.IsMirroring = m.Determinant() < 0
	return m
}

// WorldTransform returns the transform of node index idx within doc,
// composed with the transforms of all its ancestors. ok is false when idx
// is out of range.
func WorldTransform(doc *gltf.Document, idx int) (m math3d.Mat4, ok bool) {
	if idx < 0 || idx >= len(doc.Nodes) {
		return math3d.Mat4{}, false
	}

	parents := make(map[int]int, len(doc.Nodes))
	for i, n := range doc.Nodes {
		for _, child := range n.Children {
			parents[int(child)] = i
		}
	}

	m = NodeTransform(doc.Nodes[idx])
	seen := map[int]bool{idx: true}
	for cur := idx; ; {
		parent, has := parents[cur]
		if !has || seen[parent] {
			break
		}
		seen[parent] = true
		// Row vectors: the child's local transform applies before its parent's.
		m = m.Mul(NodeTransform(doc.Nodes[parent]))
		cur = parent
	}
	return m, true
}

// Rotation returns the rotation matrix of the unit quaternion q, given as
// glTF orders it: x, y, z, w.
func Rotation(q [4]float64) math3d.Mat4 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return math3d.NewMat4([16]float64{
		1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0,
		2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0,
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	})
}
