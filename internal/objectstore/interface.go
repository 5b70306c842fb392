package objectstore

import (
	"context"
	"time"
)

// Store is the object storage that holds produced documents.
type Store interface {
	Upload(ctx context.Context, key, localPath, contentType string) error
	// PresignGet returns a short-lived URL for downloading key.
	PresignGet(key string, ttl time.Duration) (string, error)
}
