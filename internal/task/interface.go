package task

import "context"

// Store persists task records. Implementations retry transient backend
// failures themselves and return ErrStoreUnavailable once retries run out.
type Store interface {
	Create(ctx context.Context, id, title, videoURL string) error
	Update(ctx context.Context, id string, patch Patch) error
	Get(ctx context.Context, id string) (*Task, error)
	List(ctx context.Context) ([]*Task, error)
	Close() error
}
