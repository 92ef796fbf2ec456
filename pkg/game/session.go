package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/cbodonnell/kangaroo/pkg/input"
	"github.com/cbodonnell/kangaroo/pkg/log"
	"github.com/google/uuid"
)

type SessionState uint8

const (
	SessionStateRunning SessionState = iota
	SessionStateWon
)

func (s SessionState) String() string {
	switch s {
	case SessionStateRunning:
		return "running"
	case SessionStateWon:
		return "won"
	}
	return "unknown"
}

// WinEvent is delivered to the Notifier when the collectible is picked up.
type WinEvent struct {
	SessionID uuid.UUID
	// Frame is the number of ticks run when the pickup happened.
	Frame   uint64
	Message string
}

// Notifier is the presentation side collaborator told about a win.
type Notifier interface {
	Won(event WinEvent)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(event WinEvent)

func (f NotifierFunc) Won(event WinEvent) {
	f(event)
}

// resettable is implemented by input providers that can drop held keys on restart.
type resettable interface {
	Reset()
}

// SessionOptions contains options for creating a new Session.
type SessionOptions struct {
	World    WorldOptions
	Bindings input.Bindings
	Input    input.Provider
	// Seed makes every reset generate the same world. Zero picks a new seed per reset.
	Seed     uint64
	Messages []string
	Notifier Notifier
}

// Session drives a World through the running and won states.
type Session struct {
	opts     SessionOptions
	id       uuid.UUID
	seed     uint64
	rng      *rand.Rand
	world    *World
	state    SessionState
	frame    uint64
	notified bool
	logger   *log.Logger
}

func NewSession(opts SessionOptions) (*Session, error) {
	if opts.Input == nil {
		return nil, fmt.Errorf("input provider is required")
	}
	s := &Session{opts: opts}
	if err := s.Reset(); err != nil {
		return nil, fmt.Errorf("failed to start session: %v", err)
	}
	return s, nil
}

// Reset throws the current world away and starts a new session from scratch.
func (s *Session) Reset() error {
	seed := s.opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	world, err := GenerateWorld(rng, s.opts.World)
	if err != nil {
		return fmt.Errorf("failed to generate world: %v", err)
	}

	if r, ok := s.opts.Input.(resettable); ok {
		r.Reset()
	}

	s.id = uuid.New()
	s.seed = seed
	s.rng = rng
	s.world = world
	s.state = SessionStateRunning
	s.frame = 0
	s.notified = false
	s.logger = log.Default().WithField("session", s.id.String())

	s.logger.Info("Session started with seed %d", seed)
	for i, obstacle := range world.Obstacles {
		s.logger.Debug("Obstacle %d at x=%.1f height=%.1f", i, obstacle.X, obstacle.H)
	}
	s.logger.Debug("Collectible at (%.1f, %.1f)", world.Collectible.X, world.Collectible.Y)

	return nil
}

// SetOptions replaces the options used by the next Reset. The running world is kept.
func (s *Session) SetOptions(opts SessionOptions) {
	if opts.Input == nil {
		opts.Input = s.opts.Input
	}
	if opts.Notifier == nil {
		opts.Notifier = s.opts.Notifier
	}
	s.opts = opts
}

// Tick runs one frame: sample input, integrate and resolve collisions, then check
// the collectible while the session is still running.
func (s *Session) Tick() {
	snapshot := s.opts.Input.Sample()
	intent := s.opts.Bindings.Resolve(snapshot)

	s.world.Step(intent)
	s.frame++

	if s.state == SessionStateWon {
		return
	}
	if !s.world.CheckCollectible() || s.notified {
		return
	}

	s.state = SessionStateWon
	s.notified = true
	event := WinEvent{
		SessionID: s.id,
		Frame:     s.frame,
		Message:   RandomSuccessMessage(s.rng, s.opts.Messages),
	}
	s.logger.Info("Collectible picked up on frame %d", s.frame)
	if s.opts.Notifier != nil {
		s.opts.Notifier.Won(event)
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Seed() uint64 {
	return s.seed
}

func (s *Session) State() SessionState {
	return s.state
}

func (s *Session) Frame() uint64 {
	return s.frame
}

// World returns the current world. Callers must treat it as read-only.
func (s *Session) World() *World {
	return s.world
}
