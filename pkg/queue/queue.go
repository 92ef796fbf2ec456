package queue

import "errors"

// ErrQueueFull is returned by Enqueue when a bounded queue has no room left.
var ErrQueueFull = errors.New("queue is full")

// Queue represents a basic FIFO queue.
// Implementations must be safe for concurrent use.
type Queue[T any] interface {
	Enqueue(item T) error
	Size() int
	// ReadAllMessages removes and returns every pending item in arrival order.
	ReadAllMessages() []T
	ClearQueue()
}
