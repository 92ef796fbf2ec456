package sim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cbodonnell/kangaroo/pkg/game"
	"github.com/cbodonnell/kangaroo/pkg/input"
	"github.com/cbodonnell/kangaroo/pkg/kinematic"
	"github.com/cbodonnell/kangaroo/pkg/log"
	"github.com/cbodonnell/kangaroo/pkg/queue"
	"github.com/google/uuid"
)

// Frame is one line of the trace written by Run.
type Frame struct {
	Frame     uint64           `json:"frame"`
	Position  kinematic.Vector `json:"position"`
	VY        float64          `json:"vy"`
	Grounded  bool             `json:"grounded"`
	Direction string           `json:"direction"`
	State     string           `json:"state"`
	Collected bool             `json:"collected"`
}

// Result summarises a run.
type Result struct {
	SessionID uuid.UUID `json:"session_id"`
	Seed      uint64    `json:"seed"`
	Frames    uint64    `json:"frames"`
	// WonAt is the frame the collectible was picked up on, zero if it never was.
	WonAt   uint64 `json:"won_at"`
	Message string `json:"message,omitempty"`
}

type RunOptions struct {
	// Session is used as is except for Input and Notifier, which Run provides.
	Session game.SessionOptions
	Script  *Script
	// Trace receives one JSON object per traced frame. Nil disables tracing.
	Trace io.Writer
	// Every traces one frame out of Every. Zero or one traces every frame.
	Every uint64
}

// Run replays a script against a fresh session without any window or renderer.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if opts.Script == nil {
		return nil, fmt.Errorf("script is required")
	}
	every := opts.Every
	if every == 0 {
		every = 1
	}

	events := input.NewEventQueue(queue.NewInMemoryQueue[input.Event](queue.QueueBufferSize))
	result := &Result{}

	sessionOpts := opts.Session
	sessionOpts.Input = events
	sessionOpts.Notifier = game.NotifierFunc(func(event game.WinEvent) {
		result.WonAt = event.Frame
		result.Message = event.Message
	})
	session, err := game.NewSession(sessionOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %v", err)
	}
	result.SessionID = session.ID()
	result.Seed = session.Seed()

	var encoder *json.Encoder
	if opts.Trace != nil {
		encoder = json.NewEncoder(opts.Trace)
	}

	next := 0
	scripted := opts.Script.Events
	for frame := uint64(0); frame < opts.Script.Frames; frame++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run cancelled at frame %d: %v", frame, err)
		}

		for next < len(scripted) && scripted[next].Frame <= frame {
			if err := scripted[next].apply(events); err != nil {
				return nil, fmt.Errorf("failed to apply script event for frame %d: %v", scripted[next].Frame, err)
			}
			next++
		}

		session.Tick()

		if encoder != nil && (session.Frame()%every == 0 || session.Frame() == opts.Script.Frames) {
			if err := encoder.Encode(snapshot(session)); err != nil {
				return nil, fmt.Errorf("failed to write trace: %v", err)
			}
		}
	}
	result.Frames = session.Frame()

	log.Info("Simulated %d frames of session %s with seed %d", result.Frames, result.SessionID, result.Seed)
	return result, nil
}

func snapshot(session *game.Session) Frame {
	world := session.World()
	p := world.Player
	return Frame{
		Frame:     session.Frame(),
		Position:  p.Position,
		VY:        p.VY,
		Grounded:  p.Grounded,
		Direction: p.Direction.String(),
		State:     session.State().String(),
		Collected: world.Collectible.Collected,
	}
}
