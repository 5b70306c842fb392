package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"

	"github.com/nguyentantai21042004/lecture-notes/internal/acquisition"
	"github.com/nguyentantai21042004/lecture-notes/internal/audio"
	"github.com/nguyentantai21042004/lecture-notes/internal/config"
	"github.com/nguyentantai21042004/lecture-notes/internal/gemini"
	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
	"github.com/nguyentantai21042004/lecture-notes/internal/objectstore"
	"github.com/nguyentantai21042004/lecture-notes/internal/processor"
	"github.com/nguyentantai21042004/lecture-notes/internal/queue"
	"github.com/nguyentantai21042004/lecture-notes/internal/renderer"
	"github.com/nguyentantai21042004/lecture-notes/internal/submitter"
	"github.com/nguyentantai21042004/lecture-notes/internal/summarizer"
	"github.com/nguyentantai21042004/lecture-notes/internal/task"
	"github.com/nguyentantai21042004/lecture-notes/internal/transcriber"
	"github.com/nguyentantai21042004/lecture-notes/pkg/executor"
)

// app holds the long-lived clients shared by every subcommand.
type app struct {
	cfg     *config.Config
	log     logger.Logger
	store   task.Store
	queue   queue.Queue
	objects objectstore.Store
}

func newApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*app, error) {
	store, err := task.NewSQLiteStore(cfg.Database.Path, task.Options{
		RetryAttempts: cfg.Database.RetryAttempts,
		RetryDelay:    cfg.Database.RetryDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("open task store: %w", err)
	}

	q, err := queue.New(queue.Options{
		QueueURL:        cfg.Queue.URL,
		Endpoint:        cfg.Queue.Endpoint,
		Region:          cfg.Queue.Region,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
	}, log)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("create queue client: %w", err)
	}

	objects, err := objectstore.New(objectstore.Options{
		Bucket:          cfg.Storage.Bucket,
		Endpoint:        cfg.Storage.Endpoint,
		Region:          cfg.Storage.Region,
		ForcePathStyle:  cfg.Storage.ForcePathStyle,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
	}, log)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("create object storage client: %w", err)
	}

	log.Info(ctx, "Configuration loaded successfully")
	return &app{cfg: cfg, log: log, store: store, queue: q, objects: objects}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

func (a *app) submitter() submitter.Submitter {
	return submitter.New(a.store, a.queue, a.log)
}

// processor builds the media pipeline. Without Gemini keys the worker still
// runs, but transcription fails and tasks end up failed.
func (a *app) processor(ctx context.Context) (processor.Processor, error) {
	cfg := a.cfg

	if err := os.MkdirAll(cfg.Paths.Temp, 0755); err != nil {
		return nil, fmt.Errorf("create temp dir %s: %w", cfg.Paths.Temp, err)
	}

	var primary transcriber.Recognizer
	pool, err := gemini.New(ctx, cfg.Gemini.APIKeys, cfg.Gemini.Endpoint, a.log)
	switch {
	case err == nil:
		primary = transcriber.NewSDKRecognizer(pool, cfg.Transcriber.Model)
		a.log.Info(ctx, "Gemini client pool ready with %d key(s)", pool.Size())
	default:
		a.log.Warn(ctx, "Gemini unavailable: %v", err)
		pool = nil
	}

	extractor := audio.New(executor.New(), cfg.FFmpeg.BinaryPath, cfg.FFmpeg.Timeout, a.log)

	fallback := transcriber.NewRESTRecognizer(
		resty.New().SetTimeout(cfg.Transcriber.Timeout),
		cfg.Gemini.Endpoint,
		cfg.Gemini.APIKeys,
		cfg.Transcriber.Model,
	)

	rend, err := renderer.New(cfg.Renderer.Format, renderer.Options{
		FontPath:     cfg.Renderer.FontPath,
		BoldFontPath: cfg.Renderer.BoldFontPath,
	}, a.log)
	if err != nil {
		return nil, err
	}

	deps := processor.Dependencies{
		Store: a.store,
		Queue: a.queue,
		Acquirer: acquisition.New(acquisition.Options{
			ResolveTimeout:  cfg.Acquisition.ResolveTimeout,
			DownloadTimeout: cfg.Acquisition.DownloadTimeout,
			MinBytes:        cfg.Acquisition.MinBytes,
			PublicAPIURL:    cfg.Acquisition.PublicAPIURL,
			ScrapeHosts:     cfg.Acquisition.ScrapeHosts,
			APIHosts:        cfg.Acquisition.APIHosts,
		}, a.log),
		Extractor: extractor,
		Transcriber: transcriber.New(primary, fallback, extractor, transcriber.Options{
			MaxAudioBytes:   cfg.Transcriber.MaxAudioBytes,
			TruncateSeconds: cfg.Transcriber.TruncateSeconds,
			MinChars:        cfg.Transcriber.MinChars,
			Timeout:         cfg.Transcriber.Timeout,
		}, a.log),
		Summarizer: summarizer.New(pool, summarizer.Options{
			Model:       cfg.Summarizer.Model,
			Temperature: cfg.Summarizer.Temperature,
			Timeout:     cfg.Summarizer.Timeout,
		}, a.log),
		Renderer: rend,
		Objects:  a.objects,
	}

	return processor.New(deps, processor.Options{
		TempDir:      cfg.Paths.Temp,
		WaitSeconds:  cfg.Queue.WaitSeconds,
		LanguageHint: cfg.Transcriber.Language,
	}, a.log), nil
}
