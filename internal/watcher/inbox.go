package watcher

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
	"github.com/nguyentantai21042004/lecture-notes/internal/submitter"
)

const (
	SubmittedSuffix = ".submitted"
	RejectedSuffix  = ".rejected"
)

// SubmissionExtensions are the inbox file types holding submissions.
var SubmissionExtensions = []string{".yaml", ".yml"}

type submission struct {
	Title    string `yaml:"title"`
	VideoURL string `yaml:"video_url"`
}

// SubmissionHandler submits the task described by an inbox YAML file. The file
// is renamed with SubmittedSuffix, and the task id appended, on success, or
// with RejectedSuffix on any failure so it is never submitted twice.
func SubmissionHandler(sub submitter.Submitter, log logger.Logger) EventHandler {
	return func(ctx context.Context, path string) error {
		id, err := submitFile(ctx, sub, path)
		if err != nil {
			if rerr := os.Rename(path, path+RejectedSuffix); rerr != nil {
				log.Warn(ctx, "Failed to mark %s rejected: %v", path, rerr)
			}
			return err
		}

		ctx = logger.WithTaskID(ctx, id)
		done := path + SubmittedSuffix
		if err := os.Rename(path, done); err != nil {
			return fmt.Errorf("mark %s submitted: %w", path, err)
		}
		if err := appendTaskID(done, id); err != nil {
			log.Warn(ctx, "Failed to record task id in %s: %v", done, err)
		}

		log.Info(ctx, "Submitted %s as task %s", path, id)
		return nil
	}
}

func submitFile(ctx context.Context, sub submitter.Submitter, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read submission: %w", err)
	}

	var s submission
	if err := yaml.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("parse submission %s: %w", path, err)
	}

	return sub.Submit(ctx, s.Title, s.VideoURL)
}

func appendTaskID(path, id string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f, "\ntask_id: %s\n", id); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
