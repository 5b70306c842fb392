package watcher

import "context"

// Watcher hands every matching file in a directory to an EventHandler, both
// files present at start and ones created later.
type Watcher interface {
	// Start blocks until ctx is done, then waits for running handlers.
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one inbox file. Returned errors are logged only.
type EventHandler func(ctx context.Context, path string) error
