package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateObstacles(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		canvasWidth float64
	}{
		{name: "default count on a wide canvas", count: 5, canvasWidth: 1920},
		{name: "default count on a narrow canvas", count: 5, canvasWidth: 640},
		{name: "single obstacle", count: 1, canvasWidth: 1280},
		{name: "many obstacles", count: 12, canvasWidth: 2560},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := uint64(1); seed <= 50; seed++ {
				rng := rand.New(rand.NewPCG(seed, seed))
				opts := DefaultObstacleOptions()
				opts.Count = tt.count
				groundTop := 500.0

				obstacles := GenerateObstacles(rng, opts, tt.canvasWidth, groundTop)
				require.Len(t, obstacles, tt.count)

				for i, obstacle := range obstacles {
					assert.GreaterOrEqual(t, obstacle.H, opts.MinHeight)
					assert.LessOrEqual(t, obstacle.H, opts.MaxHeight)
					assert.InDelta(t, groundTop, obstacle.Bottom(), 1e-9)
					assert.Equal(t, opts.Width, obstacle.W)
					assert.Equal(t, opts.TrunkWidth, obstacle.TrunkWidth)
					assert.GreaterOrEqual(t, obstacle.X, opts.StartX)
					if i > 0 {
						assert.Greater(t, obstacle.X, obstacles[i-1].X)
						assert.GreaterOrEqual(t, obstacle.X-obstacles[i-1].X, opts.MinGap-1e-9)
					}
				}
			}
		})
	}
}

func TestGenerateObstacles_zeroCount(t *testing.T) {
	opts := DefaultObstacleOptions()
	opts.Count = 0
	assert.Empty(t, GenerateObstacles(rand.New(rand.NewPCG(1, 1)), opts, 1280, 500))
}

func TestGenerateObstacles_sameSeedSameLayout(t *testing.T) {
	opts := DefaultObstacleOptions()
	a := GenerateObstacles(rand.New(rand.NewPCG(7, 7)), opts, 1280, 500)
	b := GenerateObstacles(rand.New(rand.NewPCG(7, 7)), opts, 1280, 500)
	assert.Equal(t, a, b)
}

func TestPlaceCollectible(t *testing.T) {
	opts := DefaultCollectibleOptions()
	canvasWidth := 1280.0
	groundTop := 500.0
	for seed := uint64(1); seed <= 50; seed++ {
		collectible := PlaceCollectible(rand.New(rand.NewPCG(seed, seed)), opts, canvasWidth, groundTop)
		assert.False(t, collectible.Collected)
		assert.Equal(t, opts.Size, collectible.W)
		assert.Equal(t, opts.Size, collectible.H)
		assert.GreaterOrEqual(t, collectible.X, opts.Margin)
		assert.Less(t, collectible.X, canvasWidth-opts.Margin)
		assert.LessOrEqual(t, collectible.Y, groundTop-opts.MinLift)
		assert.Greater(t, collectible.Y, groundTop-opts.MinLift-opts.LiftRange)
	}
}

func TestRandomSuccessMessage(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	for i := 0; i < 20; i++ {
		assert.Contains(t, SuccessMessages, RandomSuccessMessage(rng, SuccessMessages))
	}
	assert.Equal(t, DefaultWinMessage, RandomSuccessMessage(rng, nil))
}
