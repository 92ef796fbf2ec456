package objects

import (
	"image/color"

	"github.com/cbodonnell/kangaroo/client/sprites"
	"github.com/cbodonnell/kangaroo/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var collectibleColor = color.RGBA{0xff, 0xd7, 0x00, 0xff}

type CollectibleObject struct {
	*BaseObject

	collectible *types.Collectible
	image       *spriteImage
}

type NewCollectibleObjectOptions struct {
	// Collectible is read on every draw so pickups are reflected immediately.
	Collectible *types.Collectible
	// Sprite is optional. A gold disc is drawn while it is unavailable.
	Sprite *sprites.Sprite
}

func NewCollectibleObject(id string, opts NewCollectibleObjectOptions) *CollectibleObject {
	return &CollectibleObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: ZIndexCollectible,
		}),
		collectible: opts.Collectible,
		image:       newSpriteImage(opts.Sprite),
	}
}

func (o *CollectibleObject) Draw(screen *ebiten.Image) {
	if o.collectible.Collected {
		return
	}
	r := o.collectible.Rect
	if img := o.image.get(); img != nil {
		drawInRect(screen, img, r, false)
		return
	}
	vector.DrawFilledCircle(screen, float32(r.X+r.W/2), float32(r.Y+r.H/2), float32(r.W/2), collectibleColor, true)
}
