package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

type implWatcher struct {
	dir        string
	handler    EventHandler
	logger     logger.Logger
	watcher    *fsnotify.Watcher
	extensions map[string]bool
	settle     time.Duration
	maxConc    int
	sem        *semaphore
	wg         sync.WaitGroup
}

// Start handles files already present in the directory, then monitors it for
// new ones until ctx is cancelled.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConc, w.dir)

	if err := w.scanExisting(ctx); err != nil {
		w.logger.Warn(ctx, "Failed to scan existing files: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing handlers to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !w.matches(event.Name) {
				w.logger.Debug(ctx, "Ignoring file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New file detected: %s", event.Name)
			time.Sleep(w.settle)
			if err := w.dispatch(ctx, event.Name); err != nil {
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) scanExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if path := filepath.Join(w.dir, e.Name()); w.matches(path) {
			files = append(files, path)
		}
	}
	sort.Strings(files)

	for _, path := range files {
		w.logger.Info(ctx, "Found pending file: %s", path)
		if err := w.dispatch(ctx, path); err != nil {
			return err
		}
	}
	return nil
}

// dispatch runs the handler in a goroutine once a semaphore slot is free.
func (w *implWatcher) dispatch(ctx context.Context, path string) error {
	if err := w.sem.acquire(ctx); err != nil {
		return err
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.sem.release()

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to handle %s: %v", path, err)
		}
	}()
	return nil
}

func (w *implWatcher) matches(path string) bool {
	return w.extensions[strings.ToLower(filepath.Ext(path))]
}
