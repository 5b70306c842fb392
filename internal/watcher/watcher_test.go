package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
	"github.com/nguyentantai21042004/lecture-notes/internal/submitter"
)

type fakeSubmitter struct {
	mu    sync.Mutex
	calls [][2]string
}

func (f *fakeSubmitter) Submit(_ context.Context, title, videoURL string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if title == "" || videoURL == "" {
		return "", fmt.Errorf("%w: missing field", submitter.ErrInvalidRequest)
	}
	f.calls = append(f.calls, [2]string{title, videoURL})
	return fmt.Sprintf("task-%d", len(f.calls)), nil
}

func (f *fakeSubmitter) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSubmissionHandler(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantSuffix string
		wantErr    bool
	}{
		{
			name:       "valid",
			content:    "title: Lecture 1\nvideo_url: https://disk.yandex.ru/i/abc\n",
			wantSuffix: SubmittedSuffix,
		},
		{
			name:       "missing url",
			content:    "title: Lecture 1\n",
			wantSuffix: RejectedSuffix,
			wantErr:    true,
		},
		{
			name:       "invalid yaml",
			content:    "title: [unterminated\n",
			wantSuffix: RejectedSuffix,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeFile(t, dir, "lecture.yaml", tt.content)
			handler := SubmissionHandler(&fakeSubmitter{}, logger.Nop())

			err := handler(context.Background(), path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("handler() error = %v, wantErr %v", err, tt.wantErr)
			}

			_, err = os.Stat(path)
			assert.True(t, os.IsNotExist(err), "original file should be renamed")
			_, err = os.Stat(path + tt.wantSuffix)
			assert.NoError(t, err)
		})
	}
}

func TestSubmissionHandler_RecordsTaskID(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "lecture.yml", "title: L\nvideo_url: https://example.com/v.mp4\n")

	require.NoError(t, SubmissionHandler(&fakeSubmitter{}, logger.Nop())(context.Background(), path))

	data, err := os.ReadFile(path + SubmittedSuffix)
	require.NoError(t, err)
	assert.Contains(t, string(data), "task_id: task-1")
}

func TestWatcher_HandlesExistingAndNewFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "existing.yaml", "title: Old\nvideo_url: https://example.com/old.mp4\n")
	writeFile(t, dir, "notes.txt", "ignored")

	sub := &fakeSubmitter{}
	w, err := New(dir, SubmissionHandler(sub, logger.Nop()), Options{
		Extensions:  SubmissionExtensions,
		SettleDelay: 10 * time.Millisecond,
	}, logger.Nop())
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	require.Eventually(t, func() bool { return sub.count() == 1 }, 5*time.Second, 20*time.Millisecond)

	writeFile(t, dir, "new.YAML", "title: New\nvideo_url: https://example.com/new.mp4\n")
	require.Eventually(t, func() bool { return sub.count() == 2 }, 5*time.Second, 20*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	_, err = os.Stat(filepath.Join(dir, "notes.txt"))
	assert.NoError(t, err, "non-submission files stay untouched")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var submitted int
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), SubmittedSuffix) {
			submitted++
		}
	}
	assert.Equal(t, 2, submitted)
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), nil, Options{}, logger.Nop())
	assert.Error(t, err)
}

func TestSemaphore(t *testing.T) {
	s := newSemaphore(1)
	require.NoError(t, s.acquire(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.True(t, errors.Is(s.acquire(ctx), context.DeadlineExceeded))

	s.release()
	assert.NoError(t, s.acquire(context.Background()))
}
