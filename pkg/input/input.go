package input

import (
	"fmt"
	"sync"

	"github.com/cbodonnell/kangaroo/pkg/log"
	"github.com/cbodonnell/kangaroo/pkg/queue"
)

// Key identifies a physical key using browser style names, e.g. "ArrowLeft" or " ".
type Key string

const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeySpace      Key = " "
)

// Snapshot is a read-only copy of the held keys at the start of a tick.
type Snapshot map[Key]bool

// Held reports whether any of keys is held.
func (s Snapshot) Held(keys ...Key) bool {
	for _, k := range keys {
		if s[k] {
			return true
		}
	}
	return false
}

// Provider supplies the key snapshot for a tick.
type Provider interface {
	Sample() Snapshot
}

// KeyState maps a key to its held state.
type KeyState struct {
	held map[Key]bool
}

func NewKeyState() *KeyState {
	return &KeyState{
		held: make(map[Key]bool),
	}
}

func (s *KeyState) Set(key Key, held bool) {
	s.held[key] = held
}

// Snapshot returns a copy that later Set calls do not affect.
func (s *KeyState) Snapshot() Snapshot {
	snapshot := make(Snapshot, len(s.held))
	for k, v := range s.held {
		if v {
			snapshot[k] = true
		}
	}
	return snapshot
}

func (s *KeyState) Reset() {
	s.held = make(map[Key]bool)
}

type EventType uint8

const (
	EventTypeKeyDown EventType = iota
	EventTypeKeyUp
)

func (t EventType) String() string {
	switch t {
	case EventTypeKeyDown:
		return "keydown"
	case EventTypeKeyUp:
		return "keyup"
	}
	return "unknown"
}

type Event struct {
	Type EventType
	Key  Key
}

// EventQueue collects key events from host callbacks and applies them
// to its key state only when sampled.
type EventQueue struct {
	events queue.Queue[Event]
	lock   sync.Mutex
	state  *KeyState
}

var _ Provider = &EventQueue{}

func NewEventQueue(events queue.Queue[Event]) *EventQueue {
	return &EventQueue{
		events: events,
		state:  NewKeyState(),
	}
}

func (q *EventQueue) KeyDown(key Key) error {
	return q.push(Event{Type: EventTypeKeyDown, Key: key})
}

func (q *EventQueue) KeyUp(key Key) error {
	return q.push(Event{Type: EventTypeKeyUp, Key: key})
}

func (q *EventQueue) push(event Event) error {
	if err := q.events.Enqueue(event); err != nil {
		return fmt.Errorf("failed to enqueue %s event for %q: %w", event.Type, event.Key, err)
	}
	return nil
}

// Sample drains pending events into the key state and returns the resulting snapshot.
func (q *EventQueue) Sample() Snapshot {
	q.lock.Lock()
	defer q.lock.Unlock()
	for _, event := range q.events.ReadAllMessages() {
		switch event.Type {
		case EventTypeKeyDown:
			q.state.Set(event.Key, true)
		case EventTypeKeyUp:
			q.state.Set(event.Key, false)
		default:
			log.Warn("Ignoring key event of unknown type %d", event.Type)
		}
	}
	return q.state.Snapshot()
}

// Reset drops pending events and releases every key.
func (q *EventQueue) Reset() {
	q.lock.Lock()
	defer q.lock.Unlock()
	q.events.ClearQueue()
	q.state.Reset()
}
