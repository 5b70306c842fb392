package audio

import (
	"time"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
	"github.com/nguyentantai21042004/lecture-notes/pkg/executor"
)

type implExtractor struct {
	executor executor.Executor
	binary   string
	timeout  time.Duration
	logger   logger.Logger
}

// New creates a new Extractor instance
func New(exec executor.Executor, binary string, timeout time.Duration, log logger.Logger) Extractor {
	if binary == "" {
		binary = "ffmpeg"
	}
	return &implExtractor{
		executor: exec,
		binary:   binary,
		timeout:  timeout,
		logger:   log,
	}
}
