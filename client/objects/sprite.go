package objects

import (
	"github.com/cbodonnell/kangaroo/client/sprites"
	"github.com/cbodonnell/kangaroo/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	ZIndexGround = iota * 10
	ZIndexObstacle
	ZIndexCollectible
	ZIndexPlayer
	ZIndexEffect
	ZIndexDebug
)

// spriteImage uploads a decoded sprite to the GPU the first time it is drawn.
type spriteImage struct {
	sprite *sprites.Sprite
	image  *ebiten.Image
}

func newSpriteImage(sprite *sprites.Sprite) *spriteImage {
	return &spriteImage{sprite: sprite}
}

// get returns nil while the sprite is missing or still decoding.
func (s *spriteImage) get() *ebiten.Image {
	if s == nil || s.sprite == nil {
		return nil
	}
	if s.image != nil {
		return s.image
	}
	img, ok := s.sprite.Image()
	if !ok {
		return nil
	}
	s.image = ebiten.NewImageFromImage(img)
	return s.image
}

// drawInRect stretches img over rect, mirrored horizontally when flip is set.
func drawInRect(screen, img *ebiten.Image, rect types.Rect, flip bool) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}
	sx, sy := rect.W/float64(w), rect.H/float64(h)

	op := &ebiten.DrawImageOptions{
		Filter: ebiten.FilterLinear,
	}
	if flip {
		op.GeoM.Scale(-sx, sy)
		op.GeoM.Translate(rect.X+rect.W, rect.Y)
	} else {
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(rect.X, rect.Y)
	}
	screen.DrawImage(img, op)
}
