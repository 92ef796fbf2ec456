package game

import (
	"math/rand/v2"
	"slices"

	"github.com/cbodonnell/kangaroo/pkg/game/constants"
	"github.com/cbodonnell/kangaroo/pkg/game/types"
)

// ObstacleOptions controls obstacle generation.
type ObstacleOptions struct {
	Count      int
	Width      float64
	TrunkWidth float64
	MinHeight  float64
	MaxHeight  float64
	// MinGap is the minimum distance between the left edges of consecutive obstacles.
	MinGap float64
	// StartX is the smallest x an obstacle can be placed at.
	StartX float64
	// ReservedWidth is the part of the canvas width excluded from the random spread.
	ReservedWidth float64
}

func DefaultObstacleOptions() ObstacleOptions {
	return ObstacleOptions{
		Count:         constants.ObstacleCount,
		Width:         constants.ObstacleWidth,
		TrunkWidth:    constants.ObstacleTrunkWidth,
		MinHeight:     constants.ObstacleMinHeight,
		MaxHeight:     constants.ObstacleMaxHeight,
		MinGap:        constants.ObstacleMinGap,
		StartX:        constants.ObstacleStartX,
		ReservedWidth: constants.ObstacleReservedWidth,
	}
}

// CollectibleOptions controls where the collectible is placed.
type CollectibleOptions struct {
	Size float64
	// Margin is kept free between the collectible and either side of the canvas.
	Margin float64
	// MinLift and LiftRange bound the distance between the ground and the collectible's top edge.
	MinLift   float64
	LiftRange float64
}

func DefaultCollectibleOptions() CollectibleOptions {
	return CollectibleOptions{
		Size:      constants.CollectibleSize,
		Margin:    constants.CollectibleMargin,
		MinLift:   constants.CollectibleMinLift,
		LiftRange: constants.CollectibleLiftRange,
	}
}

// GenerateObstacles places opts.Count obstacles standing on the ground.
// Every obstacle starts at least MinGap to the right of the previous one and the
// random spread shares the canvas width left over after the reserved width and gaps.
func GenerateObstacles(rng *rand.Rand, opts ObstacleOptions, canvasWidth, groundTop float64) []types.Obstacle {
	if opts.Count <= 0 {
		return nil
	}

	slack := canvasWidth - opts.ReservedWidth - float64(opts.Count-1)*opts.MinGap
	if slack < 0 {
		slack = 0
	}

	// sorted offsets keep x increasing with index whatever the slack
	offsets := make([]float64, opts.Count)
	for i := range offsets {
		offsets[i] = rng.Float64() * slack
	}
	slices.Sort(offsets)

	obstacles := make([]types.Obstacle, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		x := opts.StartX + float64(i)*opts.MinGap + offsets[i]
		height := opts.MinHeight + rng.Float64()*(opts.MaxHeight-opts.MinHeight)
		obstacles = append(obstacles, types.Obstacle{
			Rect: types.Rect{
				X: x,
				Y: groundTop - height,
				W: opts.Width,
				H: height,
			},
			TrunkWidth: opts.TrunkWidth,
		})
	}
	return obstacles
}

// PlaceCollectible picks a position for the collectible above the ground.
func PlaceCollectible(rng *rand.Rand, opts CollectibleOptions, canvasWidth, groundTop float64) types.Collectible {
	spread := canvasWidth - 2*opts.Margin
	if spread < 0 {
		spread = 0
	}
	return types.Collectible{
		Rect: types.Rect{
			X: opts.Margin + rng.Float64()*spread,
			Y: groundTop - opts.MinLift - rng.Float64()*opts.LiftRange,
			W: opts.Size,
			H: opts.Size,
		},
	}
}
