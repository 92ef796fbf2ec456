package objects

import (
	"image/color"

	"github.com/cbodonnell/kangaroo/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	trunkColor  = color.RGBA{0x8b, 0x45, 0x13, 0xff}
	canopyColor = color.RGBA{0x22, 0x8b, 0x22, 0xff}
)

// ObstacleObject draws an obstacle as a tree: a trunk centered under a round canopy.
// Only the bounding box takes part in collisions.
type ObstacleObject struct {
	*BaseObject

	obstacle types.Obstacle
}

func NewObstacleObject(id string, obstacle types.Obstacle) *ObstacleObject {
	return &ObstacleObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: ZIndexObstacle,
		}),
		obstacle: obstacle,
	}
}

func (o *ObstacleObject) Draw(screen *ebiten.Image) {
	ob := o.obstacle
	radius := ob.W / 2

	trunkX := ob.X + (ob.W-ob.TrunkWidth)/2
	trunkY := ob.Y + radius
	vector.DrawFilledRect(screen, float32(trunkX), float32(trunkY), float32(ob.TrunkWidth), float32(ob.H-radius), trunkColor, false)

	vector.DrawFilledCircle(screen, float32(ob.X+radius), float32(ob.Y+radius), float32(radius), canopyColor, true)
}
