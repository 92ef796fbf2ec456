package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/cbodonnell/kangaroo/pkg/game"
	"github.com/cbodonnell/kangaroo/pkg/game/constants"
	"github.com/cbodonnell/kangaroo/pkg/game/types"
	"github.com/cbodonnell/kangaroo/pkg/input"
	"github.com/cbodonnell/kangaroo/pkg/kinematic"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Player      PlayerConfig      `yaml:"player"`
	World       WorldConfig       `yaml:"world"`
	Obstacles   ObstacleConfig    `yaml:"obstacles"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Keys        KeysConfig        `yaml:"keys"`
	Assets      AssetsConfig      `yaml:"assets"`
	// Seed fixes the generated world when non-zero.
	Seed     uint64   `yaml:"seed"`
	Messages []string `yaml:"messages"`
}

type WindowConfig struct {
	Title string `yaml:"title"`
	// Width and Height of zero are sized from the monitor at start up.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PlayerConfig struct {
	StartX    float64 `yaml:"start_x"`
	StartY    float64 `yaml:"start_y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Speed     float64 `yaml:"speed"`
	Gravity   float64 `yaml:"gravity"`
	JumpPower float64 `yaml:"jump_power"`
}

type WorldConfig struct {
	GroundLevel float64 `yaml:"ground_level"`
	SubSteps    int     `yaml:"sub_steps"`
}

type ObstacleConfig struct {
	Count         int     `yaml:"count"`
	Width         float64 `yaml:"width"`
	TrunkWidth    float64 `yaml:"trunk_width"`
	MinHeight     float64 `yaml:"min_height"`
	MaxHeight     float64 `yaml:"max_height"`
	MinGap        float64 `yaml:"min_gap"`
	StartX        float64 `yaml:"start_x"`
	ReservedWidth float64 `yaml:"reserved_width"`
}

type CollectibleConfig struct {
	Size      float64 `yaml:"size"`
	Margin    float64 `yaml:"margin"`
	MinLift   float64 `yaml:"min_lift"`
	LiftRange float64 `yaml:"lift_range"`
}

type KeysConfig struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Jump  []string `yaml:"jump"`
}

type AssetsConfig struct {
	PlayerSprite      string `yaml:"player_sprite"`
	CollectibleSprite string `yaml:"collectible_sprite"`
}

// Default returns the configuration the game ships with.
func Default() *Config {
	bindings := input.DefaultBindings()
	return &Config{
		Window: WindowConfig{
			Title: "Kangaroo",
		},
		Player: PlayerConfig{
			StartX:    constants.PlayerStartingX,
			StartY:    constants.PlayerStartingY,
			Width:     constants.PlayerWidth,
			Height:    constants.PlayerHeight,
			Speed:     constants.PlayerSpeed,
			Gravity:   constants.PlayerGravity,
			JumpPower: constants.PlayerJumpPower,
		},
		World: WorldConfig{
			GroundLevel: constants.GroundLevel,
			SubSteps:    constants.SubSteps,
		},
		Obstacles: ObstacleConfig{
			Count:         constants.ObstacleCount,
			Width:         constants.ObstacleWidth,
			TrunkWidth:    constants.ObstacleTrunkWidth,
			MinHeight:     constants.ObstacleMinHeight,
			MaxHeight:     constants.ObstacleMaxHeight,
			MinGap:        constants.ObstacleMinGap,
			StartX:        constants.ObstacleStartX,
			ReservedWidth: constants.ObstacleReservedWidth,
		},
		Collectible: CollectibleConfig{
			Size:      constants.CollectibleSize,
			Margin:    constants.CollectibleMargin,
			MinLift:   constants.CollectibleMinLift,
			LiftRange: constants.CollectibleLiftRange,
		},
		Keys: KeysConfig{
			Left:  keyNames(bindings.Left),
			Right: keyNames(bindings.Right),
			Jump:  keyNames(bindings.Jump),
		},
		Assets: AssetsConfig{
			PlayerSprite:      "assets/kangaroo.png",
			CollectibleSprite: "assets/collectible.png",
		},
		Messages: append([]string(nil), game.SuccessMessages...),
	}
}

// Load reads the YAML file at path on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %v", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %v", path, err)
	}
	return cfg, nil
}

// Validate checks the values the physics loop depends on.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width < 0 || c.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("window size must not be negative"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive"))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player speed must be positive"))
	}
	if c.Player.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("player gravity must be positive"))
	}
	if c.Player.JumpPower <= 0 {
		errs = append(errs, fmt.Errorf("player jump power must be positive"))
	}
	if c.World.GroundLevel <= 0 || c.World.GroundLevel >= 1 {
		errs = append(errs, fmt.Errorf("ground level must be between 0 and 1, got %v", c.World.GroundLevel))
	}
	if c.World.SubSteps <= 0 {
		errs = append(errs, fmt.Errorf("sub steps must be positive"))
	}
	if c.Obstacles.Count < 0 {
		errs = append(errs, fmt.Errorf("obstacle count must not be negative"))
	}
	if c.Obstacles.Width <= 0 {
		errs = append(errs, fmt.Errorf("obstacle width must be positive"))
	}
	if c.Obstacles.MinHeight <= 0 || c.Obstacles.MinHeight > c.Obstacles.MaxHeight {
		errs = append(errs, fmt.Errorf("obstacle heights must satisfy 0 < min_height <= max_height"))
	}
	if c.Obstacles.MinGap < c.Obstacles.Width {
		errs = append(errs, fmt.Errorf("obstacle min_gap must be at least the obstacle width"))
	}
	if c.Collectible.Size <= 0 {
		errs = append(errs, fmt.Errorf("collectible size must be positive"))
	}
	if len(c.Keys.Left) == 0 || len(c.Keys.Right) == 0 || len(c.Keys.Jump) == 0 {
		errs = append(errs, fmt.Errorf("every key binding needs at least one key"))
	}
	return errors.Join(errs...)
}

// WorldOptions converts the configuration for a canvas of the given size.
func (c *Config) WorldOptions(width, height float64) game.WorldOptions {
	return game.WorldOptions{
		Width:        width,
		Height:       height,
		GroundLevel:  c.World.GroundLevel,
		PlayerStart:  kinematic.Vector{X: c.Player.StartX, Y: c.Player.StartY},
		PlayerWidth:  c.Player.Width,
		PlayerHeight: c.Player.Height,
		Tuning: types.PlayerTuning{
			Speed:     c.Player.Speed,
			Gravity:   c.Player.Gravity,
			JumpPower: c.Player.JumpPower,
		},
		SubSteps: c.World.SubSteps,
		Obstacles: game.ObstacleOptions{
			Count:         c.Obstacles.Count,
			Width:         c.Obstacles.Width,
			TrunkWidth:    c.Obstacles.TrunkWidth,
			MinHeight:     c.Obstacles.MinHeight,
			MaxHeight:     c.Obstacles.MaxHeight,
			MinGap:        c.Obstacles.MinGap,
			StartX:        c.Obstacles.StartX,
			ReservedWidth: c.Obstacles.ReservedWidth,
		},
		Collectible: game.CollectibleOptions{
			Size:      c.Collectible.Size,
			Margin:    c.Collectible.Margin,
			MinLift:   c.Collectible.MinLift,
			LiftRange: c.Collectible.LiftRange,
		},
	}
}

func (c *Config) Bindings() input.Bindings {
	return input.Bindings{
		Left:  keys(c.Keys.Left),
		Right: keys(c.Keys.Right),
		Jump:  keys(c.Keys.Jump),
	}
}

// SessionOptions builds session options for a canvas of the given size.
// The input provider and notifier are left for the caller to fill in.
func (c *Config) SessionOptions(width, height float64) game.SessionOptions {
	return game.SessionOptions{
		World:    c.WorldOptions(width, height),
		Bindings: c.Bindings(),
		Seed:     c.Seed,
		Messages: c.Messages,
	}
}

func keys(names []string) []input.Key {
	out := make([]input.Key, 0, len(names))
	for _, name := range names {
		out = append(out, input.Key(name))
	}
	return out
}

func keyNames(keys []input.Key) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, string(k))
	}
	return out
}
