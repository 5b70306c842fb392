package transcriber

import (
	"context"
	"errors"
)

var ErrTranscriptionFailed = errors.New("transcription failed")

// Path records which recognition path produced a transcript.
type Path string

const (
	PathPrimary  Path = "primary"
	PathFallback Path = "fallback"
)

// Transcript is the recognized speech of one audio file.
type Transcript struct {
	Text string
	Path Path
	// Truncated is set when only the leading part of the audio was recognized.
	Truncated bool
}

// Transcriber converts speech audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, languageHint string) (Transcript, error)
}

// Recognizer is a single speech recognition backend.
type Recognizer interface {
	Recognize(ctx context.Context, audio []byte, languageHint string) (string, error)
}

// Trimmer shortens audio to its leading seconds.
type Trimmer interface {
	Trim(ctx context.Context, audioPath string, seconds int) (string, error)
}
