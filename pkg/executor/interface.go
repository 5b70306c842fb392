package executor

import "context"

// Executor runs an external program and returns its stdout. A failed run
// yields a *CommandError carrying the program's stderr.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
