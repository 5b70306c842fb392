package acquisition

import (
	"context"
	"errors"
)

var (
	ErrResolutionFailed = errors.New("resolution failed")
	ErrDownloadFailed   = errors.New("download failed")
)

// Acquirer turns a submitted video link into a local file.
type Acquirer interface {
	// Resolve returns a direct download URL for sourceURL. Direct links are
	// returned unchanged; share links are resolved by page scraping or
	// through the public resolution API.
	Resolve(ctx context.Context, sourceURL string) (string, error)
	// Download streams url into destination.
	Download(ctx context.Context, url, destination string) error
}
