package objects

import (
	"fmt"
	"strings"

	"github.com/cbodonnell/kangaroo/client/sprites"
	"github.com/cbodonnell/kangaroo/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DebugObject prints the player state and the last collision outcome of every obstacle.
type DebugObject struct {
	*BaseObject

	session *game.Session
	sprites []*sprites.Sprite
	enabled bool
}

func NewDebugObject(id string, session *game.Session, enabled bool, loaded ...*sprites.Sprite) *DebugObject {
	return &DebugObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: ZIndexDebug,
		}),
		session: session,
		sprites: loaded,
		enabled: enabled,
	}
}

func (o *DebugObject) SetEnabled(enabled bool) {
	o.enabled = enabled
}

func (o *DebugObject) Draw(screen *ebiten.Image) {
	if !o.enabled {
		return
	}

	world := o.session.World()
	p := world.Player
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Seed: %d Frame: %d State: %s", o.session.Seed(), o.session.Frame(), o.session.State()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Player: (%0.1f, %0.1f) vy: %0.2f grounded: %t %s", p.Position.X, p.Position.Y, p.VY, p.Grounded, p.Direction))

	for i, s := range o.sprites {
		if s == nil {
			continue
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s   Sprite %s: %s", strings.Repeat("\n", 5+i), s.Path(), s.Status()))
	}

	resolutions := world.Resolutions()
	for i, obstacle := range world.Obstacles {
		if i >= len(resolutions) {
			break
		}
		ebitenutil.DebugPrintAt(screen, resolutions[i].String(), int(obstacle.X), int(obstacle.Y)-20)
	}
}
