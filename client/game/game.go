package game

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/kangaroo/client/input"
	"github.com/cbodonnell/kangaroo/client/scenes"
	"github.com/cbodonnell/kangaroo/client/sprites"
	"github.com/cbodonnell/kangaroo/pkg/config"
	"github.com/cbodonnell/kangaroo/pkg/game"
	gameinput "github.com/cbodonnell/kangaroo/pkg/input"
	"github.com/cbodonnell/kangaroo/pkg/log"
	"github.com/cbodonnell/kangaroo/pkg/queue"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// width and height are the fixed size of the drawing area.
	width, height int
	// mode is the current game mode.
	mode GameMode
	// cfg is the configuration the running session was built from.
	cfg *config.Config
	// pendingConfig is a reloaded configuration waiting for the next restart.
	pendingConfig *config.Config
	// watcher reloads the configuration file. It is nil when hot reload is off.
	watcher *config.Watcher
	// events carries key presses from ebiten to the session.
	events *gameinput.EventQueue
	// session owns the world and its state machine.
	session *game.Session
	sprites scenes.GameSprites
	// scene is the game scene.
	scene *scenes.GameScene
	// overlay is drawn over the scene while the game is won.
	overlay scenes.Scene
	// wins holds win events raised during the current tick.
	wins []game.WinEvent
}

type GameMode int

const (
	GameModePlay GameMode = iota
	GameModeWon
)

func (m GameMode) String() string {
	switch m {
	case GameModePlay:
		return "Play"
	case GameModeWon:
		return "Won"
	}
	return "Unknown"
}

type NewGameOptions struct {
	// Width and Height of the drawing area. Must be positive.
	Width  int
	Height int
	Debug  bool
	Config *config.Config
	// Watcher is optional. Configs it publishes apply on the next restart.
	Watcher *config.Watcher
}

func NewGame(opts NewGameOptions) (*Game, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid screen size %dx%d", opts.Width, opts.Height)
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	g := &Game{
		width:   opts.Width,
		height:  opts.Height,
		cfg:     cfg,
		watcher: opts.Watcher,
		events:  gameinput.NewEventQueue(queue.NewInMemoryQueue[gameinput.Event](queue.QueueBufferSize)),
		sprites: loadSprites(cfg),
	}

	sessionOpts := g.sessionOptions(cfg)
	session, err := game.NewSession(sessionOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %v", err)
	}
	g.session = session

	scene, err := scenes.NewGameScene(scenes.GameSceneOptions{
		Session: session,
		Sprites: g.sprites,
		Debug:   opts.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game scene: %v", err)
	}
	if err := scene.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize game scene: %v", err)
	}
	g.scene = scene
	g.mode = GameModePlay

	return g, nil
}

func loadSprites(cfg *config.Config) scenes.GameSprites {
	return scenes.GameSprites{
		Player:      sprites.Load(cfg.Assets.PlayerSprite),
		Collectible: sprites.Load(cfg.Assets.CollectibleSprite),
	}
}

func (g *Game) sessionOptions(cfg *config.Config) game.SessionOptions {
	opts := cfg.SessionOptions(float64(g.width), float64(g.height))
	opts.Input = g.events
	opts.Notifier = game.NotifierFunc(func(event game.WinEvent) {
		g.wins = append(g.wins, event)
	})
	return opts
}

func (g *Game) Update() error {
	g.checkConfigUpdates()

	if err := input.Feed(g.events); err != nil {
		return fmt.Errorf("failed to feed input: %v", err)
	}

	// Handle input
	if err := g.handleInput(); err != nil {
		if errors.Is(err, ebiten.Termination) {
			return err
		}
		return fmt.Errorf("failed to handle input: %v", err)
	}

	// Update the current scene, which ticks the session
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	if err := g.processWins(); err != nil {
		return fmt.Errorf("failed to process win: %v", err)
	}

	if overlay := g.overlay; overlay != nil {
		if err := overlay.Update(); err != nil {
			return fmt.Errorf("failed to update overlay: %v", err)
		}
	}

	return nil
}

// checkConfigUpdates drains the watcher without blocking.
func (g *Game) checkConfigUpdates() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-g.watcher.Updates:
		if !ok {
			return
		}
		g.pendingConfig = cfg
		log.Info("Config reloaded, applying on next restart")
	case err, ok := <-g.watcher.Errors:
		if !ok {
			return
		}
		log.Warn("Config reload failed: %v", err)
	default:
	}
}

func (g *Game) handleInput() error {
	if input.IsQuitJustPressed() {
		return ebiten.Termination
	}
	if input.IsDebugJustPressed() {
		g.scene.SetDebug(!g.scene.Debug())
	}

	switch g.mode {
	case GameModePlay:
	case GameModeWon:
		if input.IsRestartJustPressed() {
			if err := g.restart(); err != nil {
				return fmt.Errorf("failed to restart: %v", err)
			}
		}
	}

	return nil
}

func (g *Game) processWins() error {
	wins := g.wins
	g.wins = nil
	for _, event := range wins {
		if err := g.scene.ShowPickup(); err != nil {
			return err
		}
		if err := g.loadWin(event); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) loadWin(event game.WinEvent) error {
	win, err := scenes.NewWinScene(scenes.WinSceneOptions{
		Message:     event.Message,
		OnPlayAgain: g.restart,
	})
	if err != nil {
		return fmt.Errorf("failed to create win scene: %v", err)
	}
	if err := g.setOverlay(win); err != nil {
		return fmt.Errorf("failed to set win scene: %v", err)
	}
	g.mode = GameModeWon
	return nil
}

func (g *Game) setOverlay(overlay scenes.Scene) error {
	if g.overlay != nil {
		if err := g.overlay.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous overlay: %v", err)
		}
	}

	g.overlay = overlay
	if g.overlay == nil {
		return nil
	}
	if err := g.overlay.Init(); err != nil {
		return fmt.Errorf("failed to initialize overlay: %v", err)
	}

	return nil
}

// restart starts a new session, picking up a reloaded configuration if there is one.
func (g *Game) restart() error {
	if cfg := g.pendingConfig; cfg != nil {
		g.pendingConfig = nil
		if cfg.Assets != g.cfg.Assets {
			g.sprites = loadSprites(cfg)
			g.scene.SetSprites(g.sprites)
		}
		g.cfg = cfg
		g.session.SetOptions(g.sessionOptions(cfg))
	}

	if err := g.session.Reset(); err != nil {
		return fmt.Errorf("failed to reset session: %v", err)
	}
	if err := g.setOverlay(nil); err != nil {
		return err
	}
	g.wins = nil
	g.mode = GameModePlay
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

// Close stops the config watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
