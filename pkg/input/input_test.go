package input

import (
	"testing"

	"github.com/cbodonnell/kangaroo/pkg/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQueue_Sample(t *testing.T) {
	q := NewEventQueue(queue.NewInMemoryQueue[Event](16))

	require.NoError(t, q.KeyDown(KeyArrowLeft))
	require.NoError(t, q.KeyDown(KeySpace))

	// events are only visible after sampling
	snapshot := q.Sample()
	assert.True(t, snapshot.Held(KeyArrowLeft))
	assert.True(t, snapshot.Held(KeySpace))

	require.NoError(t, q.KeyUp(KeySpace))
	assert.True(t, snapshot.Held(KeySpace), "snapshot must not change after it was taken")

	snapshot = q.Sample()
	assert.True(t, snapshot.Held(KeyArrowLeft))
	assert.False(t, snapshot.Held(KeySpace))
}

func TestEventQueue_Reset(t *testing.T) {
	q := NewEventQueue(queue.NewInMemoryQueue[Event](16))
	require.NoError(t, q.KeyDown(KeyArrowRight))
	q.Sample()
	require.NoError(t, q.KeyDown(KeySpace))

	q.Reset()

	assert.Empty(t, q.Sample())
}

func TestEventQueue_Full(t *testing.T) {
	q := NewEventQueue(queue.NewInMemoryQueue[Event](1))
	require.NoError(t, q.KeyDown(KeyArrowRight))
	assert.ErrorIs(t, q.KeyDown(KeySpace), queue.ErrQueueFull)
}

func TestBindings_Resolve(t *testing.T) {
	bindings := DefaultBindings()
	tests := []struct {
		name     string
		snapshot Snapshot
		want     Intent
	}{
		{
			name:     "nothing held",
			snapshot: Snapshot{},
			want:     Intent{},
		},
		{
			name:     "unbound keys are ignored",
			snapshot: Snapshot{"q": true, "Escape": true},
			want:     Intent{},
		},
		{
			name:     "left and jump",
			snapshot: Snapshot{KeyArrowLeft: true, KeySpace: true},
			want:     Intent{Left: true, Jump: true},
		},
		{
			name:     "alternate right key",
			snapshot: Snapshot{"d": true},
			want:     Intent{Right: true},
		},
		{
			name:     "both directions cancel",
			snapshot: Snapshot{KeyArrowLeft: true, KeyArrowRight: true},
			want:     Intent{Left: true, Right: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bindings.Resolve(tt.snapshot)
			assert.Equal(t, tt.want, got)
		})
	}
}
