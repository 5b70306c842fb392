package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/lecture-notes/internal/config"
	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

func main() {
	// A missing .env is fine; variables may come from the environment.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "lecturenotes",
		Short:         "Turn lecture videos into summarized notes documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config file")

	load := func() (*config.Config, logger.Logger, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load config: %w", err)
		}
		log := logger.NewWithOptions(logger.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			File:   cfg.Logging.File,
		})
		return cfg, log, nil
	}

	root.AddCommand(
		workerCmd(load),
		webCmd(load),
		processCmd(load),
		triggerCmd(load),
		watchCmd(load),
	)
	return root
}

type loader func() (*config.Config, logger.Logger, error)

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(log logger.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			log.Info(ctx, "Shutdown signal received")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}

func banner(ctx context.Context, log logger.Logger, title string, cfg *config.Config) {
	log.Info(ctx, "========================================")
	log.Info(ctx, "%s", title)
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Database: %s", cfg.Database.Path)
	log.Info(ctx, "Queue: %s", cfg.Queue.URL)
	log.Info(ctx, "Bucket: %s", cfg.Storage.Bucket)
}
