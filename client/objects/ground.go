package objects

import (
	"image/color"

	"github.com/cbodonnell/kangaroo/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var groundColor = color.RGBA{0x00, 0x80, 0x00, 0xff}

type GroundObject struct {
	*BaseObject

	ground types.Ground
}

func NewGroundObject(id string, ground types.Ground) *GroundObject {
	return &GroundObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: ZIndexGround,
		}),
		ground: ground,
	}
}

func (o *GroundObject) Draw(screen *ebiten.Image) {
	r := o.ground.Rect
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), groundColor, false)
}
