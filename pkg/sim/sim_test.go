package sim

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/cbodonnell/kangaroo/pkg/game"
	"github.com/cbodonnell/kangaroo/pkg/input"
	"github.com/cbodonnell/kangaroo/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openField has no obstacles and a collectible floating at x=500 just above the ground.
func openField() game.SessionOptions {
	world := game.DefaultWorldOptions(1000, 600)
	world.Obstacles.Count = 0
	world.Collectible = game.CollectibleOptions{Size: 60, Margin: 500, MinLift: 100, LiftRange: 0}
	world.PlayerStart = kinematic.Vector{X: 100, Y: 345}
	return game.SessionOptions{
		World:    world,
		Bindings: input.DefaultBindings(),
		Seed:     7,
		Messages: game.SuccessMessages,
	}
}

func readTrace(t *testing.T, buf *bytes.Buffer) []Frame {
	t.Helper()
	var frames []Frame
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		frame := Frame{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &frame))
		frames = append(frames, frame)
	}
	require.NoError(t, scanner.Err())
	return frames
}

func TestRun_idle(t *testing.T) {
	buf := &bytes.Buffer{}
	result, err := Run(context.Background(), RunOptions{
		Session: openField(),
		Script:  &Script{Frames: 10},
		Trace:   buf,
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(10), result.Frames)
	assert.Equal(t, uint64(7), result.Seed)
	assert.Zero(t, result.WonAt)

	frames := readTrace(t, buf)
	require.Len(t, frames, 10)
	for i, frame := range frames {
		assert.Equal(t, uint64(i+1), frame.Frame)
		assert.InDelta(t, 100, frame.Position.X, 1e-9)
		assert.InDelta(t, 345, frame.Position.Y, 1e-6)
		assert.True(t, frame.Grounded)
		assert.Equal(t, "running", frame.State)
	}
}

func TestRun_walkToCollectible(t *testing.T) {
	script, err := ParseScript([]byte(`
frames: 120
events:
  - frame: 0
    down: [ArrowRight]
`))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	result, err := Run(context.Background(), RunOptions{
		Session: openField(),
		Script:  script,
		Trace:   buf,
		Every:   10,
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(82), result.WonAt)
	assert.Contains(t, game.SuccessMessages, result.Message)

	frames := readTrace(t, buf)
	require.Len(t, frames, 12)
	assert.Equal(t, uint64(10), frames[0].Frame)
	assert.InDelta(t, 140, frames[0].Position.X, 1e-6)
	assert.Equal(t, "right", frames[0].Direction)

	last := frames[len(frames)-1]
	assert.Equal(t, uint64(120), last.Frame)
	assert.Equal(t, "won", last.State)
	assert.True(t, last.Collected)
}

func TestRun_releaseStopsMovement(t *testing.T) {
	script, err := ParseScript([]byte(`
frames: 20
events:
  - frame: 5
    up: [d]
  - frame: 0
    down: [d]
`))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	_, err = Run(context.Background(), RunOptions{
		Session: openField(),
		Script:  script,
		Trace:   buf,
	})
	require.NoError(t, err)

	frames := readTrace(t, buf)
	require.Len(t, frames, 20)
	assert.InDelta(t, 120, frames[4].Position.X, 1e-6)
	assert.InDelta(t, 120, frames[19].Position.X, 1e-6)
}

func TestRun_deterministic(t *testing.T) {
	script, err := ParseScript([]byte(`
frames: 300
events:
  - frame: 0
    down: [ArrowRight]
  - frame: 30
    down: [" "]
  - frame: 31
    up: [" "]
  - frame: 150
    up: [ArrowRight]
    down: [ArrowLeft, w]
`))
	require.NoError(t, err)

	opts := game.SessionOptions{
		World:    game.DefaultWorldOptions(1000, 600),
		Bindings: input.DefaultBindings(),
		Seed:     99,
		Messages: game.SuccessMessages,
	}

	first, second := &bytes.Buffer{}, &bytes.Buffer{}
	_, err = Run(context.Background(), RunOptions{Session: opts, Script: script, Trace: first})
	require.NoError(t, err)
	_, err = Run(context.Background(), RunOptions{Session: opts, Script: script, Trace: second})
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
}

func TestRun_cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, RunOptions{
		Session: openField(),
		Script:  &Script{Frames: 10},
	})
	assert.Error(t, err)
}

func TestRun_requiresScript(t *testing.T) {
	_, err := Run(context.Background(), RunOptions{Session: openField()})
	assert.Error(t, err)
}

func TestParseScript(t *testing.T) {
	script, err := ParseScript([]byte(`
frames: 10
events:
  - frame: 8
    up: [a]
  - frame: 2
    down: [a]
`))
	require.NoError(t, err)
	require.Len(t, script.Events, 2)
	assert.Equal(t, uint64(2), script.Events[0].Frame)
	assert.Equal(t, []string{"a"}, script.Events[0].Down)
	assert.Equal(t, uint64(8), script.Events[1].Frame)

	_, err = ParseScript([]byte("events: []"))
	assert.Error(t, err, "zero frames")

	_, err = ParseScript([]byte("frames: [1"))
	assert.Error(t, err)
}
