package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V2(1, 2)
	b := V2(3, -4)

	assert.Equal(t, V2(4, -2), a.Add(b))
	assert.Equal(t, V2(-2, 6), a.Sub(b))
	assert.Equal(t, V2(3, -8), a.Mul(b))
	assert.Equal(t, V2(3, 6), a.Scale(3))
	assert.Equal(t, V2(0.5, 1), a.Div(2))
	assert.Equal(t, -5.0, a.Dot(b))
	assert.Equal(t, V2(-1, -2), a.Negate())
	assert.Equal(t, 5.0, b.Len())
	assert.Equal(t, 25.0, b.LenSq())
	assert.Equal(t, 5.0, V2(0, 0).Distance(V2(3, 4)))
}

func TestVec2Rotations(t *testing.T) {
	tests := []struct {
		name   string
		in     Vec2
		normal Vec2
		perp   Vec2
	}{
		{"x axis", V2(1, 0), V2(0, -1), V2(0, 1)},
		{"y axis", V2(0, 1), V2(1, 0), V2(-1, 0)},
		{"diagonal", V2(2, 3), V2(3, -2), V2(-3, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normal(); !got.Equal(tt.normal) {
				t.Errorf("%v.Normal() = %v, want %v", tt.in, got, tt.normal)
			}
			if got := tt.in.Perpendicular(); !got.Equal(tt.perp) {
				t.Errorf("%v.Perpendicular() = %v, want %v", tt.in, got, tt.perp)
			}
			if d := tt.in.Dot(tt.in.Normal()); d != 0 {
				t.Errorf("%v · Normal() = %v, want 0", tt.in, d)
			}
		})
	}
}

func TestVec2Unit(t *testing.T) {
	for _, v := range []Vec2{V2(1, 0), V2(3, 4), V2(-1e-5, 2e-5), V2(1e8, 1)} {
		assert.InDelta(t, 1.0, v.Unit().Len(), 1e-9, "unit of %v", v)
	}

	u := Zero2().Unit()
	assert.True(t, math.IsNaN(u.X) && math.IsNaN(u.Y))
	assert.False(t, u.IsFinite())
}

func TestVec2Equality(t *testing.T) {
	assert.True(t, V2(1, 2).Equal(V2(1, 2)))
	assert.False(t, V2(1, 2).Equal(V2(1, 2+1e-12)))
	assert.True(t, V2(1, 2).ApproxEqual(V2(1, 2+1e-12), Epsilon))
	assert.True(t, Zero2().IsZero())
	assert.False(t, V2(1, 0).IsZero())
	assert.Equal(t, "[0.5, -2]", V2(0.5, -2).String())
}
