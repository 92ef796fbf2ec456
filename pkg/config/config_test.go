package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cbodonnell/kangaroo/pkg/game"
	"github.com/cbodonnell/kangaroo/pkg/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "kangaroo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, game.DefaultWorldOptions(1280, 720), cfg.WorldOptions(1280, 720))
	assert.Equal(t, input.DefaultBindings(), cfg.Bindings())
	assert.Equal(t, game.SuccessMessages, cfg.Messages)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
player:
  speed: 6
  jump_power: 14
world:
  sub_steps: 1
keys:
  jump: ["x"]
seed: 1234
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6.0, cfg.Player.Speed)
	assert.Equal(t, 14.0, cfg.Player.JumpPower)
	assert.Equal(t, 0.25, cfg.Player.Gravity, "values missing from the file keep their defaults")
	assert.Equal(t, 1, cfg.World.SubSteps)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.Equal(t, []input.Key{"x"}, cfg.Bindings().Jump)
	assert.Equal(t, []input.Key{input.KeyArrowLeft, "a"}, cfg.Bindings().Left)

	opts := cfg.SessionOptions(1280, 720)
	assert.Equal(t, uint64(1234), opts.Seed)
	assert.Equal(t, 1, opts.World.SubSteps)
}

func TestLoad_emptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name     string
		contents string
	}{
		{name: "malformed yaml", contents: "player: [1, 2"},
		{name: "zero sub steps", contents: "world:\n  sub_steps: 0\n"},
		{name: "inverted heights", contents: "obstacles:\n  min_height: 400\n  max_height: 100\n"},
		{name: "no jump keys", contents: "keys:\n  jump: []\n"},
		{name: "ground off canvas", contents: "world:\n  ground_level: 1.5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, dir, tt.contents))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "seed: 1\n")

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	writeConfig(t, dir, "seed: 2\n")

	select {
	case cfg := <-w.Updates:
		assert.Equal(t, uint64(2), cfg.Seed)
	case err := <-w.Errors:
		t.Fatalf("unexpected watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}
