package audio

import (
	"context"
	"errors"
)

var ErrExtractionFailed = errors.New("audio extraction failed")

// Extractor converts media into speech-recognition friendly WAV.
type Extractor interface {
	// Extract writes mono 16 kHz 16-bit PCM next to videoPath and returns its path.
	Extract(ctx context.Context, videoPath string) (string, error)
	// Trim keeps only the leading seconds of audioPath in a new file.
	Trim(ctx context.Context, audioPath string, seconds int) (string, error)
}
