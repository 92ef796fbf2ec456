package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/kangaroo/client/game"
	"github.com/cbodonnell/kangaroo/pkg/config"
	"github.com/cbodonnell/kangaroo/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// monitorHeightFraction is the share of the monitor height used when no height is configured.
	monitorHeightFraction = 0.7

	fallbackScreenWidth  = 1280
	fallbackScreenHeight = 720
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	logLevel := flag.String("log-level", "info", "Log level")
	width := flag.Int("width", 0, "Screen width, 0 to use the monitor width")
	height := flag.Int("height", 0, "Screen height, 0 to use 70% of the monitor height")
	seed := flag.Uint64("seed", 0, "World seed, 0 for a random world every session")
	debug := flag.Bool("debug", false, "Show debug overlay")
	watch := flag.Bool("watch", false, "Reload the config file when it changes")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *width != 0 {
		cfg.Window.Width = *width
	}
	if *height != 0 {
		cfg.Window.Height = *height
	}

	screenWidth, screenHeight := screenSize(cfg.Window)
	log.Info("Screen size %dx%d", screenWidth, screenHeight)

	var watcher *config.Watcher
	if *watch && *configPath != "" {
		watcher, err = config.NewWatcher(*configPath)
		if err != nil {
			panic(fmt.Sprintf("Failed to watch config: %v", err))
		}
		log.Info("Watching %s for changes", *configPath)
	}

	g, err := game.NewGame(game.NewGameOptions{
		Width:   screenWidth,
		Height:  screenHeight,
		Debug:   *debug,
		Config:  cfg,
		Watcher: watcher,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}
	defer g.Close()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}

// screenSize fills in unset dimensions from the monitor the window opens on.
func screenSize(window config.WindowConfig) (int, int) {
	w, h := window.Width, window.Height
	if w > 0 && h > 0 {
		return w, h
	}
	monitorWidth, monitorHeight := ebiten.ScreenSizeInFullscreen()
	if w <= 0 {
		w = monitorWidth
	}
	if h <= 0 {
		h = int(float64(monitorHeight) * monitorHeightFraction)
	}
	// Headless or unknown monitors report zero.
	if w <= 0 {
		w = fallbackScreenWidth
	}
	if h <= 0 {
		h = fallbackScreenHeight
	}
	return w, h
}
