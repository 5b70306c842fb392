package audio

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

const (
	sampleRate = 16000
	channels   = 1
	codec      = "pcm_s16le"
)

func (e *implExtractor) Extract(ctx context.Context, videoPath string) (string, error) {
	audioPath := strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + ".wav"

	e.logger.Info(ctx, "Extracting audio: %s", videoPath)

	args := ffmpeg.Input(videoPath).
		Output(audioPath, ffmpeg.KwArgs{
			"vn":     "",
			"acodec": codec,
			"ar":     sampleRate,
			"ac":     channels,
		}).
		OverWriteOutput().
		GetArgs()

	if err := e.run(ctx, args); err != nil {
		return "", err
	}

	e.logger.Info(ctx, "Audio extracted successfully: %s", audioPath)
	return audioPath, nil
}

func (e *implExtractor) Trim(ctx context.Context, audioPath string, seconds int) (string, error) {
	trimmedPath := fmt.Sprintf("%s_%ds.wav", strings.TrimSuffix(audioPath, filepath.Ext(audioPath)), seconds)

	e.logger.Info(ctx, "Trimming audio to %d seconds: %s", seconds, audioPath)

	args := ffmpeg.Input(audioPath).
		Output(trimmedPath, ffmpeg.KwArgs{
			"t":      seconds,
			"acodec": codec,
			"ar":     sampleRate,
			"ac":     channels,
		}).
		OverWriteOutput().
		GetArgs()

	if err := e.run(ctx, args); err != nil {
		return "", err
	}
	return trimmedPath, nil
}

func (e *implExtractor) run(ctx context.Context, args []string) error {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	e.logger.Debug(ctx, "Running %s %s", e.binary, strings.Join(args, " "))

	if _, err := e.executor.Execute(ctx, e.binary, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}
	return nil
}
