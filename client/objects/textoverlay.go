package objects

import (
	"image/color"

	"github.com/cbodonnell/kangaroo/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const textOverlayMargin = 32

// TextOverlayObject draws a line of text centered at the top of the screen.
type TextOverlayObject struct {
	*BaseObject

	text  string
	color color.Color
}

func NewTextOverlayObject(id string, text string) *TextOverlayObject {
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: ZIndexEffect,
		}),
		text:  text,
		color: color.RGBA{0x30, 0x30, 0x30, 0xff},
	}
}

func (o *TextOverlayObject) SetText(text string) {
	o.text = text
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	f := fonts.TTFNormalFont
	bounds, _ := font.BoundString(f, o.text)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2-float64(bounds.Max.X>>6)/2, textOverlayMargin)
	op.ColorScale.ScaleWithColor(o.color)
	text.DrawWithOptions(screen, o.text, f, op)
}
