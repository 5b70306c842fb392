package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

type implLogger struct {
	logger *logrus.Logger
}

// Options configures where and how log lines are written.
type Options struct {
	Level  string
	Format string
	File   string
}

// New creates a new Logger instance writing text lines to stdout
func New(level string) Logger {
	return NewWithOptions(Options{Level: level})
}

// NewWithOptions creates a Logger. When File is set, lines are also written to
// a size-rotated log file.
func NewWithOptions(opts Options) Logger {
	l := logrus.New()
	l.SetLevel(parseLevel(opts.Level))

	if strings.EqualFold(opts.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var out io.Writer = os.Stdout
	if opts.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
		})
	}
	l.SetOutput(out)

	return &implLogger{logger: l}
}

func parseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// WithTaskID returns a context whose log lines carry the given task id.
func WithTaskID(ctx context.Context, taskID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, taskID)
}

// TaskID returns the task id attached by WithTaskID, if any.
func TaskID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func (l *implLogger) entry(ctx context.Context) *logrus.Entry {
	e := logrus.NewEntry(l.logger)
	if id := TaskID(ctx); id != "" {
		e = e.WithField("task_id", id)
	}
	return e
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.entry(ctx).Debugf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.entry(ctx).Infof(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.entry(ctx).Warnf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.entry(ctx).Errorf(msg, args...)
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &implLogger{logger: l}
}
