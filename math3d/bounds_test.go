package math3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundingBoxConstructors(t *testing.T) {
	b := NewBoundingBox(V3(3, 3, 3), V3(1, 1, 1))
	assert.Equal(t, V3(3, 3, 3), b.Min, "corners are not sorted")
	assert.Equal(t, V3(1, 1, 1), b.Max)
	assert.False(t, b.IsSorted())

	at := BoxAt(V3(1, 2, 3), V3(2, 2, 2))
	assert.Equal(t, V3(1, 2, 3), at.Min)
	assert.Equal(t, V3(3, 4, 5), at.Max)

	sized := BoxOfSize(2, 4, 6)
	assert.Equal(t, V3(-1, -2, -3), sized.Min)
	assert.Equal(t, V3(1, 2, 3), sized.Max)
	assert.Equal(t, Zero3(), sized.Center())
	assert.Equal(t, V3(2, 4, 6), sized.Size())
}

func TestBoundingBoxDerived(t *testing.T) {
	b := BoxAt(V3(0, 0, 0), V3(2, 4, 6))
	assert.Equal(t, V3(2, 4, 6), b.Size())
	assert.Equal(t, V3(1, 2, 3), b.Center())
	assert.Equal(t, "[1, 2, 3], s=[2, 4, 6]", b.String())

	moved := b.Translate(V3(1, -1, 0))
	assert.Equal(t, V3(1, -1, 0), moved.Min)
	assert.Equal(t, V3(3, 3, 6), moved.Max)
	assert.Equal(t, b.Size(), moved.Size())
}

func TestBoundingBoxIntersects(t *testing.T) {
	unit := NewBoundingBox(V3(0, 0, 0), V3(1, 1, 1))
	tests := []struct {
		name  string
		other BoundingBox
		want  bool
	}{
		{"touching corner", NewBoundingBox(V3(1, 1, 1), V3(2, 2, 2)), true},
		{"disjoint", NewBoundingBox(V3(2, 2, 2), V3(3, 3, 3)), false},
		{"overlapping", NewBoundingBox(V3(0.5, 0.5, 0.5), V3(2, 2, 2)), true},
		{"contained", NewBoundingBox(V3(0.25, 0.25, 0.25), V3(0.75, 0.75, 0.75)), true},
		{"same", unit, true},
		{"separated on x only", NewBoundingBox(V3(1.5, 0, 0), V3(2, 1, 1)), false},
		{"separated on y only", NewBoundingBox(V3(0, -2, 0), V3(1, -0.5, 1)), false},
		{"separated on z only", NewBoundingBox(V3(0, 0, 1.01), V3(1, 1, 2)), false},
		{"touching face", NewBoundingBox(V3(-1, 0, 0), V3(0, 1, 1)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unit.Intersects(tt.other); got != tt.want {
				t.Errorf("unit.Intersects(%v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(unit); got != tt.want {
				t.Errorf("%v.Intersects(unit) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestBoundingBoxUnsortedIntersects(t *testing.T) {
	unit := NewBoundingBox(V3(0, 0, 0), V3(1, 1, 1))
	inverted := NewBoundingBox(V3(3, 3, 3), V3(0.5, 0.5, 0.5))

	// The inverted box spans [0.5, 3] and overlaps unit, but Intersects
	// only holds for sorted boxes.
	assert.False(t, unit.Intersects(inverted))

	sorted := inverted.Sorted()
	assert.True(t, sorted.IsSorted())
	assert.Equal(t, V3(0.5, 0.5, 0.5), sorted.Min)
	assert.Equal(t, V3(3, 3, 3), sorted.Max)
	assert.True(t, unit.Intersects(sorted))
}

func TestBoundingBoxContains(t *testing.T) {
	b := BoxOfSize(2, 2, 2)
	assert.True(t, b.Contains(Zero3()))
	assert.True(t, b.Contains(V3(1, 1, 1)), "boundary is inside")
	assert.False(t, b.Contains(V3(1.01, 0, 0)))
	assert.False(t, b.Contains(V3(0, 0, -2)))
}

func TestBoxFromPoints(t *testing.T) {
	_, ok := BoxFromPoints()
	assert.False(t, ok)

	b, ok := BoxFromPoints(V3(1, 2, 3), V3(4, -5, 6), V3(-1, 0, 2))
	require.True(t, ok)
	assert.Equal(t, V3(-1, -5, 2), b.Min)
	assert.Equal(t, V3(4, 2, 6), b.Max)
	assert.True(t, b.IsSorted())

	single, ok := BoxFromPoints(V3(7, 7, 7))
	require.True(t, ok)
	assert.Equal(t, Zero3(), single.Size())
}

func TestBoundingSphereOf(t *testing.T) {
	s := BoundingSphereOf(BoxAt(V3(0, 0, 0), V3(2, 2, 2)))
	assert.Equal(t, V3(1, 1, 1), s.Center)
	assert.InDelta(t, 1.7320508075688772, s.Radius, 1e-12)

	// Fields stay writable.
	s.Radius = 10
	s.Center = Zero3()
	assert.Equal(t, BoundingSphere{Center: Zero3(), Radius: 10}, s)
}
