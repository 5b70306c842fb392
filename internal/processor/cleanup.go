package processor

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// workspace holds the per-attempt temp files. Names derive from one
// os.CreateTemp call so concurrent attempts never collide.
type workspace struct {
	video    string
	audio    string
	document string
}

func (p *implProcessor) newWorkspace(ext string) (*workspace, error) {
	f, err := os.CreateTemp(p.opts.TempDir, "lecture-*.mp4")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	f.Close()

	base := strings.TrimSuffix(f.Name(), ".mp4")
	return &workspace{
		video:    f.Name(),
		audio:    base + ".wav",
		document: base + "." + ext,
	}, nil
}

// cleanup removes every temp file of the attempt. Failures are logged only.
func (p *implProcessor) cleanup(ctx context.Context, ws *workspace) {
	if ws == nil {
		return
	}
	for _, path := range []string{ws.video, ws.audio, ws.document} {
		p.cleanupTempFile(ctx, path)
	}
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	err := os.Remove(filePath)
	switch {
	case err == nil:
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	case os.IsNotExist(err):
	default:
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	}
}
