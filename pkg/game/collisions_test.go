package game

import (
	"testing"

	"github.com/cbodonnell/kangaroo/pkg/game/types"
	"github.com/cbodonnell/kangaroo/pkg/kinematic"
	"github.com/stretchr/testify/assert"
)

func testPlayer(prev, current kinematic.Vector, vy float64) *types.Player {
	p := types.NewPlayer(current.X, current.Y, 10, 10, types.PlayerTuning{Speed: 4, Gravity: 0.25, JumpPower: 12})
	p.Prev = prev
	p.VY = vy
	return p
}

func TestResolveObstacle(t *testing.T) {
	obstacle := types.Obstacle{Rect: types.Rect{X: 0, Y: 100, W: 100, H: 50}}
	groundTop := 1000.0

	tests := []struct {
		name         string
		player       *types.Player
		want         types.Rect
		wantRes      Resolution
		wantVY       float64
		wantGrounded bool
	}{
		{
			name:    "no overlap",
			player:  testPlayer(kinematic.Vector{X: 200, Y: 0}, kinematic.Vector{X: 200, Y: 5}, 5),
			want:    types.Rect{X: 200, Y: 5, W: 10, H: 10},
			wantRes: ResolutionNone,
			wantVY:  5,
		},
		{
			name:         "falling onto the top",
			player:       testPlayer(kinematic.Vector{X: 50, Y: 88}, kinematic.Vector{X: 50, Y: 93}, 5),
			want:         types.Rect{X: 50, Y: 90, W: 10, H: 10},
			wantRes:      ResolutionTop,
			wantVY:       0,
			wantGrounded: true,
		},
		{
			name:    "rising into the bottom",
			player:  testPlayer(kinematic.Vector{X: 50, Y: 151}, kinematic.Vector{X: 50, Y: 148}, -3),
			want:    types.Rect{X: 50, Y: 150, W: 10, H: 10},
			wantRes: ResolutionBottom,
			wantVY:  0,
		},
		{
			name:    "walking into the left side",
			player:  testPlayer(kinematic.Vector{X: -11, Y: 120}, kinematic.Vector{X: -7, Y: 120}, 0),
			want:    types.Rect{X: -10, Y: 120, W: 10, H: 10},
			wantRes: ResolutionLeft,
			wantVY:  0,
		},
		{
			name:    "walking into the right side",
			player:  testPlayer(kinematic.Vector{X: 101, Y: 120}, kinematic.Vector{X: 97, Y: 120}, 0),
			want:    types.Rect{X: 100, Y: 120, W: 10, H: 10},
			wantRes: ResolutionRight,
			wantVY:  0,
		},
		{
			name:    "embedded near the right side",
			player:  testPlayer(kinematic.Vector{X: 88, Y: 120}, kinematic.Vector{X: 90, Y: 120}, 0),
			want:    types.Rect{X: 100, Y: 120, W: 10, H: 10},
			wantRes: ResolutionSeparate,
			wantVY:  0,
		},
		{
			name:         "embedded near the top",
			player:       testPlayer(kinematic.Vector{X: 40, Y: 92}, kinematic.Vector{X: 42, Y: 93}, 2),
			want:         types.Rect{X: 42, Y: 90, W: 10, H: 10},
			wantRes:      ResolutionSeparate,
			wantVY:       0,
			wantGrounded: true,
		},
		{
			name:         "embedded near the top while rising",
			player:       testPlayer(kinematic.Vector{X: 42, Y: 92}, kinematic.Vector{X: 42, Y: 93}, -5),
			want:         types.Rect{X: 42, Y: 90, W: 10, H: 10},
			wantRes:      ResolutionSeparate,
			wantVY:       -5,
			wantGrounded: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveObstacle(tt.player, obstacle, groundTop)
			assert.Equal(t, tt.wantRes, got)
			assert.InDelta(t, tt.want.X, tt.player.Position.X, 1e-9)
			assert.InDelta(t, tt.want.Y, tt.player.Position.Y, 1e-9)
			assert.Equal(t, tt.wantVY, tt.player.VY)
			assert.Equal(t, tt.wantGrounded, tt.player.Grounded)
			if tt.wantRes != ResolutionNone {
				assert.False(t, tt.player.Box().Intersects(obstacle.Rect), "player still overlaps the obstacle")
			}
		})
	}
}

func TestResolveObstacle_downwardPushRespectsGround(t *testing.T) {
	// the obstacle's bottom is close to the ground so pushing down is never an option
	obstacle := types.Obstacle{Rect: types.Rect{X: 0, Y: 100, W: 100, H: 50}}
	p := testPlayer(kinematic.Vector{X: 45, Y: 138}, kinematic.Vector{X: 45, Y: 139}, 0)

	got := ResolveObstacle(p, obstacle, 155)

	assert.Equal(t, ResolutionSeparate, got)
	assert.False(t, p.Box().Intersects(obstacle.Rect))
	assert.LessOrEqual(t, p.Box().Bottom(), 155.0)
}

func TestResolution_String(t *testing.T) {
	assert.Equal(t, "top", ResolutionTop.String())
	assert.Equal(t, "separate", ResolutionSeparate.String())
	assert.Equal(t, "unknown", Resolution(99).String())
}
