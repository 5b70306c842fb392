package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/lecture-notes/internal/httpapi"
	"github.com/nguyentantai21042004/lecture-notes/internal/processor"
	"github.com/nguyentantai21042004/lecture-notes/internal/trigger"
	"github.com/nguyentantai21042004/lecture-notes/internal/watcher"
)

func workerCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Serve the worker endpoints that process one queued task per request",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			ctx, cancel := signalContext(log)
			defer cancel()

			banner(ctx, log, "Lecture Notes Worker", cfg)

			a, err := newApp(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			proc, err := a.processor(ctx)
			if err != nil {
				return err
			}

			return serve(ctx, httpapi.NewWorker(proc, log), cfg.Server.WorkerAddr)
		},
	}
}

func webCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "web",
		Short: "Serve the task submission, listing and download endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			ctx, cancel := signalContext(log)
			defer cancel()

			banner(ctx, log, "Lecture Notes Web", cfg)

			a, err := newApp(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			srv := httpapi.NewWeb(a.store, a.submitter(), a.objects, cfg.Storage.PresignTTL, log)
			return serve(ctx, srv, cfg.Server.WebAddr)
		},
	}
}

func processCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "process",
		Short: "Process at most one queued task and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			ctx, cancel := signalContext(log)
			defer cancel()

			a, err := newApp(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			proc, err := a.processor(ctx)
			if err != nil {
				return err
			}

			result := proc.ProcessOne(ctx)
			enc := json.NewEncoder(os.Stdout)
			if err := enc.Encode(result); err != nil {
				return err
			}
			if result.Status == processor.StatusError {
				return fmt.Errorf("process: %s", result.Error)
			}
			return nil
		},
	}
}

func triggerCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "trigger",
		Short: "Periodically invoke the worker's process endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			if cfg.Trigger.URL == "" {
				return fmt.Errorf("trigger.url is required")
			}
			ctx, cancel := signalContext(log)
			defer cancel()

			t := trigger.New(cfg.Trigger.URL, cfg.Trigger.Interval, cfg.Trigger.Timeout, log)
			if err := t.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

func watchCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Submit tasks from YAML files dropped into the inbox directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			ctx, cancel := signalContext(log)
			defer cancel()

			if err := os.MkdirAll(cfg.Paths.Inbox, 0755); err != nil {
				return fmt.Errorf("create inbox %s: %w", cfg.Paths.Inbox, err)
			}

			a, err := newApp(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			w, err := watcher.New(cfg.Paths.Inbox, watcher.SubmissionHandler(a.submitter(), log), watcher.Options{
				Extensions:    watcher.SubmissionExtensions,
				MaxConcurrent: cfg.Performance.MaxConcurrent,
			}, log)
			if err != nil {
				return err
			}
			defer w.Stop()

			log.Info(ctx, "Drop *.yaml files with title and video_url into %s", cfg.Paths.Inbox)
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

func serve(ctx context.Context, srv httpapi.Server, addr string) error {
	return srv.ListenAndServe(ctx, addr)
}
