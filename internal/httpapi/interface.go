package httpapi

import (
	"context"
	"net/http"
)

// Server is an HTTP surface of the system.
type Server interface {
	Handler() http.Handler
	// ListenAndServe serves on addr until ctx is cancelled, then shuts down
	// gracefully.
	ListenAndServe(ctx context.Context, addr string) error
}
