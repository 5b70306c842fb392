package queue

import (
	"context"
	"errors"
)

// ErrMalformedMessage is returned by ReceiveOne when a delivered body does not
// carry a task id. The accompanying Message still holds a usable Handle.
var ErrMalformedMessage = errors.New("malformed queue message")

// Message is one delivered task notification.
type Message struct {
	TaskID string
	Handle string
}

// Queue delivers task ids at least once. A message stays in the queue until
// it is acknowledged; unacknowledged messages are redelivered by the backend.
type Queue interface {
	Enqueue(ctx context.Context, taskID string) error
	// ReceiveOne waits up to waitSeconds and returns nil when nothing arrived.
	ReceiveOne(ctx context.Context, waitSeconds int64) (*Message, error)
	Acknowledge(ctx context.Context, handle string) error
}
