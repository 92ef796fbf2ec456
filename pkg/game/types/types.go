package types

import "github.com/cbodonnell/kangaroo/pkg/kinematic"

const (
	CollisionSpaceTagPlayer      string = "player"
	CollisionSpaceTagObstacle    string = "obstacle"
	CollisionSpaceTagCollectible string = "collectible"
)

type Direction uint8

const (
	DirectionRight Direction = iota
	DirectionLeft
)

func (d Direction) String() string {
	switch d {
	case DirectionRight:
		return "right"
	case DirectionLeft:
		return "left"
	}
	return "unknown"
}

// PlayerTuning holds the movement constants of a player.
type PlayerTuning struct {
	// Speed is the horizontal distance covered per frame while a direction is held.
	Speed float64 `json:"speed"`
	// Gravity is added to the vertical velocity every frame.
	Gravity float64 `json:"gravity"`
	// JumpPower is the magnitude of the upward velocity given by a jump.
	JumpPower float64 `json:"jumpPower"`
}

type Player struct {
	Position kinematic.Vector `json:"position"`
	// Prev is the position at the start of the current sub-step.
	Prev      kinematic.Vector `json:"prev"`
	Width     float64          `json:"width"`
	Height    float64          `json:"height"`
	VY        float64          `json:"vy"`
	Direction Direction        `json:"direction"`
	Grounded  bool             `json:"grounded"`
	Tuning    PlayerTuning     `json:"tuning"`
}

func NewPlayer(x, y, width, height float64, tuning PlayerTuning) *Player {
	position := kinematic.Vector{X: x, Y: y}
	return &Player{
		Position:  position,
		Prev:      position,
		Width:     width,
		Height:    height,
		Direction: DirectionRight,
		Tuning:    tuning,
	}
}

func (p *Player) Box() Rect {
	return Rect{X: p.Position.X, Y: p.Position.Y, W: p.Width, H: p.Height}
}

// Snapshot records the current position as the previous one.
func (p *Player) Snapshot() {
	p.Prev = p.Position
}

// Jump gives the player an upward impulse when grounded and reports whether it did.
func (p *Player) Jump() bool {
	if !p.Grounded {
		return false
	}
	p.Grounded = false
	p.VY = -p.Tuning.JumpPower
	return true
}

// Land places the player's bottom edge at y and stops vertical motion.
func (p *Player) Land(y float64) {
	p.Position.Y = AlignBefore(y, p.Height)
	p.VY = 0
	p.Grounded = true
}

type Obstacle struct {
	Rect
	// TrunkWidth is the width of the drawn trunk; it does not take part in collisions.
	TrunkWidth float64 `json:"trunkWidth"`
}

type Ground struct {
	Rect
}

// Top is the y coordinate of the walkable surface.
func (g Ground) Top() float64 {
	return g.Y
}

type Collectible struct {
	Rect
	Collected bool `json:"collected"`
}
