package transcriber

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

const truncationNotice = "\n\n[Only the first %d seconds of the audio were transcribed]"

func (t *implTranscriber) Transcribe(ctx context.Context, audioPath, languageHint string) (Transcript, error) {
	info, err := os.Stat(audioPath)
	if err != nil {
		return Transcript{}, fmt.Errorf("%w: %w", ErrTranscriptionFailed, err)
	}
	t.logger.Info(ctx, "Audio file size: %.2f MB", float64(info.Size())/1024/1024)

	source := audioPath
	truncated := false
	if info.Size() >= t.opts.MaxAudioBytes {
		t.logger.Warn(ctx, "Audio exceeds %d bytes, transcribing only the first %d seconds", t.opts.MaxAudioBytes, t.opts.TruncateSeconds)

		trimmed, err := t.trimmer.Trim(ctx, audioPath, t.opts.TruncateSeconds)
		if err != nil {
			return Transcript{}, fmt.Errorf("%w: truncate audio: %w", ErrTranscriptionFailed, err)
		}
		defer t.removeTemp(ctx, trimmed)

		source = trimmed
		truncated = true
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return Transcript{}, fmt.Errorf("%w: read audio: %w", ErrTranscriptionFailed, err)
	}

	path := PathPrimary
	text, err := t.recognize(ctx, t.primary, data, languageHint)
	if err != nil {
		t.logger.Warn(ctx, "Primary recognition failed: %v, trying fallback", err)

		path = PathFallback
		text, err = t.recognize(ctx, t.fallback, data, languageHint)
		if err != nil {
			return Transcript{}, fmt.Errorf("%w: %w", ErrTranscriptionFailed, err)
		}
	}

	text = strings.TrimSpace(text)
	n := utf8.RuneCountInString(text)
	t.logger.Info(ctx, "Recognized %d characters via %s path", n, path)

	if n < t.opts.MinChars {
		return Transcript{}, fmt.Errorf("%w: could not recognize speech in audio (%d characters)", ErrTranscriptionFailed, n)
	}

	if truncated {
		text += fmt.Sprintf(truncationNotice, t.opts.TruncateSeconds)
	}

	return Transcript{Text: text, Path: path, Truncated: truncated}, nil
}

func (t *implTranscriber) recognize(ctx context.Context, r Recognizer, audio []byte, languageHint string) (string, error) {
	if r == nil {
		return "", fmt.Errorf("recognizer not configured")
	}
	if t.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.opts.Timeout)
		defer cancel()
	}
	return r.Recognize(ctx, audio, languageHint)
}

func (t *implTranscriber) removeTemp(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		t.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	}
}
