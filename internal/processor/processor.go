package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
	"github.com/nguyentantai21042004/lecture-notes/internal/queue"
	"github.com/nguyentantai21042004/lecture-notes/internal/summarizer"
	"github.com/nguyentantai21042004/lecture-notes/internal/task"
)

func errorResult(taskID string, err error) Result {
	return Result{Status: StatusError, TaskID: taskID, Error: err.Error()}
}

// ProcessOne orchestrates one task through the pipeline. The message is
// acknowledged only after the outcome is stored, so a crash or store outage
// leads to redelivery and a full rerun.
func (p *implProcessor) ProcessOne(ctx context.Context) Result {
	p.logger.Info(ctx, "Processing queue messages...")

	msg, err := p.Queue.ReceiveOne(ctx, p.opts.WaitSeconds)
	if err != nil {
		if errors.Is(err, queue.ErrMalformedMessage) && msg != nil {
			return p.drop(ctx, msg, err)
		}
		p.logger.Error(ctx, "Failed to receive message: %v", err)
		return errorResult("", fmt.Errorf("receive message: %w", err))
	}
	if msg == nil {
		p.logger.Info(ctx, "No messages in queue")
		return Result{Status: StatusNoMessages}
	}

	taskID := msg.TaskID
	ctx = logger.WithTaskID(ctx, taskID)
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting task: %s", taskID)
	p.logger.Info(ctx, "========================================")

	if err := p.Store.Update(ctx, taskID, task.MarkProcessing()); err != nil {
		if errors.Is(err, task.ErrNotFound) {
			return p.drop(ctx, msg, fmt.Errorf("task %s not found", taskID))
		}
		p.logger.Error(ctx, "Failed to mark task processing: %v", err)
		return errorResult(taskID, fmt.Errorf("mark processing: %w", err))
	}

	ws, err := p.newWorkspace(p.Renderer.Extension())
	var key string
	if err == nil {
		key, err = p.run(ctx, taskID, ws)
	}

	outcome := task.MarkSucceeded(key)
	if err != nil {
		p.logger.Error(ctx, "Task %s failed: %v", taskID, err)
		outcome = task.MarkFailed(err.Error())
	}
	updateErr := p.Store.Update(ctx, taskID, outcome)

	p.cleanup(ctx, ws)

	if updateErr != nil {
		p.logger.Error(ctx, "Failed to record outcome, leaving message for redelivery: %v", updateErr)
		return errorResult(taskID, fmt.Errorf("record outcome: %w", updateErr))
	}

	if err := p.Queue.Acknowledge(ctx, msg.Handle); err != nil {
		p.logger.Error(ctx, "Failed to acknowledge message: %v", err)
		return errorResult(taskID, fmt.Errorf("acknowledge message: %w", err))
	}

	p.logger.Info(ctx, "========================================")
	if err != nil {
		p.logger.Info(ctx, "Task finished with error: %v", err)
	} else {
		p.logger.Info(ctx, "Task completed successfully, document: %s", key)
	}
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return Result{Status: StatusProcessed, TaskID: taskID}
}

// drop acknowledges a message that can never be processed.
func (p *implProcessor) drop(ctx context.Context, msg *queue.Message, cause error) Result {
	p.logger.Error(ctx, "Dropping message: %v", cause)
	if err := p.Queue.Acknowledge(ctx, msg.Handle); err != nil {
		return errorResult(msg.TaskID, fmt.Errorf("%v; acknowledge message: %w", cause, err))
	}
	return errorResult(msg.TaskID, cause)
}

// run executes the pipeline stages in order and returns the uploaded object
// key. The first failing stage aborts the attempt.
func (p *implProcessor) run(ctx context.Context, taskID string, ws *workspace) (string, error) {
	t, err := p.Store.Get(ctx, taskID)
	if err != nil {
		return "", fmt.Errorf("load task: %w", err)
	}
	if t.VideoURL == "" {
		return "", fmt.Errorf("video url is empty")
	}
	title := t.Title
	if title == "" {
		title = defaultTitle
	}

	// Step 1: Resolve and download the video
	p.logger.Info(ctx, "Resolving download link: %s", t.VideoURL)
	directURL, err := p.Acquirer.Resolve(ctx, t.VideoURL)
	if err != nil {
		return "", err
	}
	if err := p.Acquirer.Download(ctx, directURL, ws.video); err != nil {
		return "", err
	}

	// Step 2: Extract audio
	audioPath, err := p.Extractor.Extract(ctx, ws.video)
	if err != nil {
		return "", err
	}
	if audioPath != ws.audio {
		defer p.cleanupTempFile(ctx, audioPath)
	}

	// Step 3: Transcribe
	transcript, err := p.Transcriber.Transcribe(ctx, audioPath, p.opts.LanguageHint)
	if err != nil {
		return "", err
	}
	if transcript.Truncated {
		p.logger.Warn(ctx, "Transcript covers only the beginning of the audio")
	}

	// Step 4: Summarize, degrading to the raw transcript
	notes := p.Summarizer.Summarize(ctx, transcript.Text)
	if notes.Outcome == summarizer.OutcomePassthrough {
		p.logger.Warn(ctx, "Using transcript as notes: %v", notes.Err)
	}

	// Step 5: Render
	if err := p.Renderer.Render(ctx, title, notes.Text, ws.document); err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}

	// Step 6: Upload
	key := taskID + "." + p.Renderer.Extension()
	if err := p.Objects.Upload(ctx, key, ws.document, p.Renderer.ContentType()); err != nil {
		return "", fmt.Errorf("upload document: %w", err)
	}
	p.logger.Info(ctx, "Document uploaded: %s", key)

	return key, nil
}
