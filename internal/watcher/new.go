package watcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

const defaultSettleDelay = 500 * time.Millisecond

// Options configures which files are handed to the handler.
type Options struct {
	// Extensions are matched case-insensitively, with the leading dot.
	Extensions    []string
	MaxConcurrent int
	// SettleDelay is waited after a create event so the writer can finish.
	SettleDelay time.Duration
}

// New creates a new Watcher instance with concurrency control
func New(dir string, handler EventHandler, opts Options, log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 2
	}
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = defaultSettleDelay
	}

	exts := make(map[string]bool, len(opts.Extensions))
	for _, e := range opts.Extensions {
		exts[strings.ToLower(e)] = true
	}

	return &implWatcher{
		dir:        dir,
		handler:    handler,
		logger:     log,
		watcher:    fsw,
		extensions: exts,
		settle:     opts.SettleDelay,
		maxConc:    opts.MaxConcurrent,
		sem:        newSemaphore(opts.MaxConcurrent),
	}, nil
}
