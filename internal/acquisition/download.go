package acquisition

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

func (a *implAcquirer) Download(ctx context.Context, url, destination string) error {
	a.logger.Info(ctx, "Downloading video: %s", url)

	resp, err := a.downloader.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return fmt.Errorf("%w: unexpected status code %d", ErrDownloadFailed, resp.StatusCode())
	}

	contentType := resp.Header().Get("Content-Type")
	a.logger.Debug(ctx, "Content-Type: %s", contentType)
	if strings.Contains(strings.ToLower(contentType), "text/html") {
		return fmt.Errorf("%w: url returned an HTML page instead of a video; it is probably not a direct file link", ErrDownloadFailed)
	}

	f, err := os.Create(destination)
	if err != nil {
		return fmt.Errorf("create %s: %w", destination, err)
	}

	n, copyErr := io.Copy(f, body)
	closeErr := f.Close()
	if copyErr != nil {
		return fmt.Errorf("%w: write video file: %v", ErrDownloadFailed, copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", destination, closeErr)
	}

	a.logger.Info(ctx, "Video saved: %s, size: %.2f MB", destination, float64(n)/1024/1024)

	if n < a.opts.MinBytes {
		return fmt.Errorf("%w: downloaded file is too small (%d bytes); the link is probably wrong", ErrDownloadFailed, n)
	}
	return nil
}
