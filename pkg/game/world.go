package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/cbodonnell/kangaroo/pkg/game/constants"
	"github.com/cbodonnell/kangaroo/pkg/game/types"
	"github.com/cbodonnell/kangaroo/pkg/input"
	"github.com/cbodonnell/kangaroo/pkg/kinematic"
	"github.com/solarlune/resolv"
)

// WorldOptions describes the canvas, the player and how the level is generated.
type WorldOptions struct {
	Width  float64
	Height float64
	// GroundLevel is the fraction of Height at which the ground surface sits.
	GroundLevel  float64
	PlayerStart  kinematic.Vector
	PlayerWidth  float64
	PlayerHeight float64
	Tuning       types.PlayerTuning
	// SubSteps is the number of integration and collision passes per frame.
	SubSteps    int
	Obstacles   ObstacleOptions
	Collectible CollectibleOptions
}

func DefaultWorldOptions(width, height float64) WorldOptions {
	return WorldOptions{
		Width:        width,
		Height:       height,
		GroundLevel:  constants.GroundLevel,
		PlayerStart:  kinematic.Vector{X: constants.PlayerStartingX, Y: constants.PlayerStartingY},
		PlayerWidth:  constants.PlayerWidth,
		PlayerHeight: constants.PlayerHeight,
		Tuning: types.PlayerTuning{
			Speed:     constants.PlayerSpeed,
			Gravity:   constants.PlayerGravity,
			JumpPower: constants.PlayerJumpPower,
		},
		SubSteps:    constants.SubSteps,
		Obstacles:   DefaultObstacleOptions(),
		Collectible: DefaultCollectibleOptions(),
	}
}

// GroundFor returns the ground plane of a canvas.
func (o WorldOptions) GroundFor() types.Ground {
	top := o.Height * o.GroundLevel
	return types.Ground{
		Rect: types.Rect{X: 0, Y: top, W: o.Width, H: o.Height - top},
	}
}

// World holds everything the physics step reads and mutates.
type World struct {
	Width       float64
	Height      float64
	SubSteps    int
	Player      *types.Player
	Ground      types.Ground
	Obstacles   []types.Obstacle
	Collectible types.Collectible

	broadphase        *broadphase
	playerObject      *resolv.Object
	collectibleObject *resolv.Object
	// resolutions holds the outcome per obstacle of the last sub-step.
	resolutions []Resolution
}

// NewWorld builds a world from already generated obstacles and collectible.
func NewWorld(opts WorldOptions, obstacles []types.Obstacle, collectible types.Collectible) (*World, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %vx%v", opts.Width, opts.Height)
	}
	subSteps := opts.SubSteps
	if subSteps <= 0 {
		return nil, fmt.Errorf("sub-steps must be positive, got %d", subSteps)
	}

	w := &World{
		Width:       opts.Width,
		Height:      opts.Height,
		SubSteps:    subSteps,
		Player:      types.NewPlayer(opts.PlayerStart.X, opts.PlayerStart.Y, opts.PlayerWidth, opts.PlayerHeight, opts.Tuning),
		Ground:      opts.GroundFor(),
		Obstacles:   obstacles,
		Collectible: collectible,
		broadphase:  newBroadphase(opts.Width, opts.Height, spaceOriginY(opts, obstacles, collectible)),
		resolutions: make([]Resolution, len(obstacles)),
	}

	space := w.broadphase.space
	for i, obstacle := range obstacles {
		space.Add(w.broadphase.newObstacleObject(i, obstacle))
	}
	w.collectibleObject = w.broadphase.newRectObject(collectible.Rect, types.CollisionSpaceTagCollectible)
	space.Add(w.collectibleObject)
	w.playerObject = w.broadphase.newRectObject(w.Player.Box().Inflate(broadphaseMargin), types.CollisionSpaceTagPlayer)
	space.Add(w.playerObject)

	return w, nil
}

// GenerateWorld builds a world with randomly placed obstacles and collectible.
func GenerateWorld(rng *rand.Rand, opts WorldOptions) (*World, error) {
	ground := opts.GroundFor()
	obstacles := GenerateObstacles(rng, opts.Obstacles, opts.Width, ground.Top())
	collectible := PlaceCollectible(rng, opts.Collectible, opts.Width, ground.Top())
	return NewWorld(opts, obstacles, collectible)
}

// Resolutions returns the per obstacle outcome of the last sub-step.
func (w *World) Resolutions() []Resolution {
	return w.resolutions
}

// Step advances the world by one frame split into SubSteps equal parts.
func (w *World) Step(intent input.Intent) {
	dt := 1.0 / float64(w.SubSteps)
	for i := 0; i < w.SubSteps; i++ {
		w.subStep(intent, dt)
	}
}

func (w *World) subStep(intent input.Intent, dt float64) {
	p := w.Player
	p.Snapshot()

	w.moveHorizontally(intent, dt)

	if intent.Jump {
		p.Jump()
	}

	p.Grounded = false
	p.Position.Y, p.VY = kinematic.Step(p.Position.Y, p.VY, p.Tuning.Gravity, dt)

	w.clampToGround()
	w.resolveObstacles()
	w.clampToGround()

	if !p.Grounded && w.supported() {
		p.Grounded = true
		if p.VY > 0 {
			p.VY = 0
		}
	}
}

func (w *World) moveHorizontally(intent input.Intent, dt float64) {
	p := w.Player
	distance := kinematic.Displacement(p.Tuning.Speed, dt)
	if intent.Left && p.Position.X > 0 {
		p.Position.X -= distance
		p.Direction = types.DirectionLeft
	}
	if intent.Right && p.Position.X+p.Width < w.Width {
		p.Position.X += distance
		p.Direction = types.DirectionRight
	}

	maxX := w.Width - p.Width
	if p.Position.X > maxX {
		p.Position.X = maxX
	}
	if p.Position.X < 0 {
		p.Position.X = 0
	}
}

// clampToGround keeps the player's bottom edge at or above the ground surface.
func (w *World) clampToGround() {
	if w.Player.Position.Y+w.Player.Height >= w.Ground.Top() {
		w.Player.Land(w.Ground.Top())
	}
}

// CheckCollectible marks the collectible as collected on the first overlap
// and reports whether that happened during this call.
func (w *World) CheckCollectible() bool {
	if !w.touchesCollectible() {
		return false
	}
	w.Collectible.Collected = true
	w.broadphase.space.Remove(w.collectibleObject)
	return true
}
