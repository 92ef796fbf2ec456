package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Intersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{name: "same box", other: base, want: true},
		{name: "partial overlap", other: Rect{X: 5, Y: 5, W: 10, H: 10}, want: true},
		{name: "contained", other: Rect{X: 2, Y: 2, W: 2, H: 2}, want: true},
		{name: "shares right edge", other: Rect{X: 10, Y: 0, W: 10, H: 10}, want: false},
		{name: "shares bottom edge", other: Rect{X: 0, Y: 10, W: 10, H: 10}, want: false},
		{name: "disjoint", other: Rect{X: 20, Y: 20, W: 1, H: 1}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base))
		})
	}
}

func TestRect_Helpers(t *testing.T) {
	r := Rect{X: 1, Y: 2, W: 3, H: 4}
	assert.Equal(t, 4.0, r.Right())
	assert.Equal(t, 6.0, r.Bottom())
	assert.Equal(t, Rect{X: 0, Y: 1, W: 5, H: 6}, r.Inflate(1))
	assert.True(t, r.OverlapsHorizontally(Rect{X: 3, Y: 100, W: 1, H: 1}))
	assert.False(t, r.OverlapsHorizontally(Rect{X: 4, Y: 2, W: 1, H: 1}))
}

func TestPlayer_Jump(t *testing.T) {
	tuning := PlayerTuning{Speed: 4, Gravity: 0.25, JumpPower: 12}

	grounded := NewPlayer(0, 0, 10, 10, tuning)
	grounded.Grounded = true
	assert.True(t, grounded.Jump())
	assert.Equal(t, -12.0, grounded.VY)
	assert.False(t, grounded.Grounded)

	airborne := NewPlayer(0, 0, 10, 10, tuning)
	airborne.VY = 3
	assert.False(t, airborne.Jump())
	assert.Equal(t, 3.0, airborne.VY)
}

func TestPlayer_Land(t *testing.T) {
	p := NewPlayer(0, 0, 10, 20, PlayerTuning{})
	p.VY = 5
	p.Land(100)
	assert.Equal(t, 80.0, p.Position.Y)
	assert.Equal(t, 0.0, p.VY)
	assert.True(t, p.Grounded)
}

func TestAlignBefore(t *testing.T) {
	edges := []float64{303.7, 0.1, 1e9 + 0.3, 247.38291, 75}
	for _, edge := range edges {
		start := AlignBefore(edge, 75)
		assert.LessOrEqual(t, start+75, edge)
		assert.InDelta(t, edge-75, start, 1e-6)
		assert.False(t, Rect{X: 0, Y: start, W: 10, H: 75}.Intersects(Rect{X: 0, Y: edge, W: 10, H: 10}))
	}
}
