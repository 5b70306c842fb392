package transcriber

import (
	"time"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

type Options struct {
	// MaxAudioBytes is the largest file recognized in full. Bigger files are
	// trimmed to TruncateSeconds first.
	MaxAudioBytes   int64
	TruncateSeconds int
	MinChars        int
	Timeout         time.Duration
}

type implTranscriber struct {
	primary  Recognizer
	fallback Recognizer
	trimmer  Trimmer
	opts     Options
	logger   logger.Logger
}

// New creates a Transcriber that tries primary first and fallback on any
// primary failure.
func New(primary, fallback Recognizer, trim Trimmer, opts Options, log logger.Logger) Transcriber {
	if opts.MaxAudioBytes <= 0 {
		opts.MaxAudioBytes = 1_000_000
	}
	if opts.TruncateSeconds <= 0 {
		opts.TruncateSeconds = 30
	}
	if opts.MinChars <= 0 {
		opts.MinChars = 50
	}
	return &implTranscriber{
		primary:  primary,
		fallback: fallback,
		trimmer:  trim,
		opts:     opts,
		logger:   log,
	}
}
