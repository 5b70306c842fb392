package summarizer

import (
	"time"

	"github.com/nguyentantai21042004/lecture-notes/internal/gemini"
	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

type Options struct {
	Model       string
	Temperature float32
	Timeout     time.Duration
}

type implSummarizer struct {
	pool   gemini.Pool
	opts   Options
	logger logger.Logger
}

// New creates a Summarizer backed by the Gemini client pool. A nil pool makes
// every call a passthrough.
func New(pool gemini.Pool, opts Options, log logger.Logger) Summarizer {
	if opts.Model == "" {
		opts.Model = "gemini-2.5-flash"
	}
	return &implSummarizer{
		pool:   pool,
		opts:   opts,
		logger: log,
	}
}
