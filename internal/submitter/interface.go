package submitter

import (
	"context"
	"errors"
)

var ErrInvalidRequest = errors.New("invalid request")

// Submitter registers a new task and announces it on the work queue.
type Submitter interface {
	Submit(ctx context.Context, title, videoURL string) (string, error)
}
