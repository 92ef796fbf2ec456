package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/kangaroo/client/objects"
	"github.com/cbodonnell/kangaroo/client/sprites"
	"github.com/cbodonnell/kangaroo/pkg/game"
	"github.com/cbodonnell/kangaroo/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

var skyColor = color.RGBA{0x87, 0xce, 0xeb, 0xff}

const controlsHint = "Arrows or A/D to move, Space to jump"

// GameScene ticks the session once per update and draws its world.
type GameScene struct {
	*BaseScene

	root    *objects.SortedZIndexObject
	session *game.Session
	sprites GameSprites
	debug   bool

	// world is the world the object tree was built from. A session reset swaps it out.
	world       *game.World
	debugObject *objects.DebugObject
	pickups     int
}

type GameSprites struct {
	Player      *sprites.Sprite
	Collectible *sprites.Sprite
}

type GameSceneOptions struct {
	Session *game.Session
	Sprites GameSprites
	Debug   bool
}

var _ Scene = &GameScene{}

func NewGameScene(opts GameSceneOptions) (*GameScene, error) {
	if opts.Session == nil {
		return nil, fmt.Errorf("session is required")
	}
	root := objects.NewSortedZIndexObject("game-root")
	return &GameScene{
		BaseScene: NewBaseScene(root),
		root:      root,
		session:   opts.Session,
		sprites:   opts.Sprites,
		debug:     opts.Debug,
	}, nil
}

func (g *GameScene) Init() error {
	if err := g.BaseScene.Init(); err != nil {
		return err
	}
	return g.rebuild()
}

// rebuild replaces the object tree with one bound to the session's current world.
func (g *GameScene) rebuild() error {
	if err := g.root.Clear(); err != nil {
		return fmt.Errorf("failed to clear game objects: %v", err)
	}

	world := g.session.World()
	children := []objects.GameObject{
		objects.NewGroundObject("ground", world.Ground),
		objects.NewCollectibleObject("collectible", objects.NewCollectibleObjectOptions{
			Collectible: &world.Collectible,
			Sprite:      g.sprites.Collectible,
		}),
		objects.NewPlayer("player", objects.NewPlayerOptions{
			Player: world.Player,
			Sprite: g.sprites.Player,
			Debug:  g.debug,
		}),
		objects.NewTextOverlayObject("controls", controlsHint),
	}
	for i, obstacle := range world.Obstacles {
		children = append(children, objects.NewObstacleObject(fmt.Sprintf("obstacle-%d", i), obstacle))
	}
	g.debugObject = objects.NewDebugObject("debug", g.session, g.debug, g.sprites.Player, g.sprites.Collectible)
	children = append(children, g.debugObject)

	for _, child := range children {
		if err := g.root.AddChild(child.GetID(), child); err != nil {
			return fmt.Errorf("failed to add %s: %v", child.GetID(), err)
		}
	}

	g.world = world
	log.Debug("Built %d game objects for session %s", len(children), g.session.ID())
	return nil
}

func (g *GameScene) Update() error {
	if g.session.World() != g.world {
		if err := g.rebuild(); err != nil {
			return fmt.Errorf("failed to rebuild game scene: %v", err)
		}
	}

	g.session.Tick()

	return g.BaseScene.Update()
}

// ShowPickup floats a marker above the spot the collectible was picked up from.
func (g *GameScene) ShowPickup() error {
	c := g.world.Collectible
	g.pickups++
	effect := objects.NewTextEffect(fmt.Sprintf("pickup-%d", g.pickups), objects.NewTextEffectOptions{
		Text:  "+1",
		X:     c.X + c.W/2,
		Y:     c.Y,
		Color: color.RGBA{0xff, 0xd7, 0x00, 0xff},
		Rise:  true,
		TTL:   1000,
	})
	if err := g.root.AddChild(effect.GetID(), effect); err != nil {
		return fmt.Errorf("failed to add pickup effect: %v", err)
	}
	return nil
}

// SetSprites swaps the sprites used from the next rebuild on.
func (g *GameScene) SetSprites(set GameSprites) {
	g.sprites = set
	g.world = nil
}

func (g *GameScene) SetDebug(debug bool) {
	g.debug = debug
	g.debugObject.SetEnabled(debug)
	if player, ok := g.root.GetChildByID("player").(*objects.Player); ok {
		player.SetDebug(debug)
	}
}

func (g *GameScene) Debug() bool {
	return g.debug
}

func (g *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	g.BaseScene.Draw(screen)
}
