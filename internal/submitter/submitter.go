package submitter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
	"github.com/nguyentantai21042004/lecture-notes/internal/task"
)

func (s *implSubmitter) Submit(ctx context.Context, title, videoURL string) (string, error) {
	title = strings.TrimSpace(title)
	videoURL = strings.TrimSpace(videoURL)

	if title == "" {
		return "", fmt.Errorf("%w: title is required", ErrInvalidRequest)
	}
	if err := validateURL(videoURL); err != nil {
		return "", err
	}

	id := s.newID()
	ctx = logger.WithTaskID(ctx, id)

	if err := s.store.Create(ctx, id, title, videoURL); err != nil {
		return "", fmt.Errorf("create task: %w", err)
	}

	if err := s.queue.Enqueue(ctx, id); err != nil {
		s.logger.Error(ctx, "Failed to enqueue task: %v", err)
		if uerr := s.store.Update(ctx, id, task.MarkFailed(fmt.Sprintf("enqueue failed: %v", err))); uerr != nil {
			s.logger.Error(ctx, "Failed to mark task failed: %v", uerr)
		}
		return "", fmt.Errorf("enqueue task: %w", err)
	}

	s.logger.Info(ctx, "Task submitted: %s (%s)", title, videoURL)
	return id, nil
}

func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: video_url is required", ErrInvalidRequest)
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: video_url must be an http(s) URL", ErrInvalidRequest)
	}
	return nil
}
