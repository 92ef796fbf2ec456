package objects

import (
	"image/color"

	"github.com/cbodonnell/kangaroo/client/sprites"
	"github.com/cbodonnell/kangaroo/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	playerColor        = color.RGBA{0x00, 0x00, 0xff, 0xff}
	playerOutlineColor = color.RGBA{0xff, 0x00, 0x00, 0xff}
)

type Player struct {
	*BaseObject

	player *types.Player
	image  *spriteImage
	debug  bool
}

type NewPlayerOptions struct {
	Player *types.Player
	// Sprite faces right. It is mirrored while the player moves left.
	Sprite *sprites.Sprite
	// Debug outlines the collision box.
	Debug bool
}

func NewPlayer(id string, opts NewPlayerOptions) *Player {
	return &Player{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: ZIndexPlayer,
		}),
		player: opts.Player,
		image:  newSpriteImage(opts.Sprite),
		debug:  opts.Debug,
	}
}

func (o *Player) SetDebug(debug bool) {
	o.debug = debug
}

func (o *Player) Draw(screen *ebiten.Image) {
	box := o.player.Box()
	if img := o.image.get(); img != nil {
		drawInRect(screen, img, box, o.player.Direction == types.DirectionLeft)
	} else {
		vector.DrawFilledRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), playerColor, false)
	}

	if o.debug {
		vector.StrokeRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), 1, playerOutlineColor, false)
	}
}
