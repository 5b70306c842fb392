package trigger

import "context"

// Outcome is the gateway-style result of one invocation.
type Outcome struct {
	StatusCode int
	Body       string
}

// Trigger periodically asks the worker to process one queued task.
type Trigger interface {
	Invoke(ctx context.Context) Outcome
	// Run invokes immediately and then on every tick until ctx is done.
	Run(ctx context.Context) error
}
