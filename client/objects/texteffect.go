package objects

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/cbodonnell/kangaroo/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextEffect is short lived text drawn over the world, such as the pickup marker.
type TextEffect struct {
	*BaseObject

	text  string
	x     float64
	y     float64
	color color.Color
	rise  bool
	ttl   int
}

type NewTextEffectOptions struct {
	// Text is the text to display.
	Text string
	// X is the horizontal center of the text.
	X float64
	// Y is the baseline of the text.
	Y float64
	// Color is the color of the text. Defaults to white.
	Color color.Color
	// Rise moves the text up the screen every update.
	Rise bool
	// TTL is the time to live in milliseconds. Zero keeps the effect until it is removed.
	TTL int
}

func NewTextEffect(id string, opts NewTextEffectOptions) *TextEffect {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}

	return &TextEffect{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: ZIndexEffect,
		}),
		text:  opts.Text,
		x:     opts.X,
		y:     opts.Y,
		color: clr,
		rise:  opts.Rise,
		ttl:   opts.TTL,
	}
}

func (o *TextEffect) Update() error {
	if o.rise {
		o.y -= 60 / float64(ebiten.TPS())
	}
	if o.ttl > 0 {
		o.ttl -= 1000 / ebiten.TPS()
		if o.ttl <= 0 {
			if err := o.RemoveFromParent(); err != nil {
				return fmt.Errorf("failed to remove text effect from parent: %v", err)
			}
		}
	}
	return nil
}

func (o *TextEffect) Draw(screen *ebiten.Image) {
	t := strings.ToUpper(o.text)
	f := fonts.TTFSmallFont
	bounds, _ := font.BoundString(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(o.x-float64(bounds.Max.X>>6)/2, o.y)
	op.ColorScale.ScaleWithColor(o.color)
	text.DrawWithOptions(screen, t, f, op)
}
