package acquisition

import (
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

// Options configures link classification and HTTP limits.
type Options struct {
	ResolveTimeout  time.Duration
	DownloadTimeout time.Duration
	// MinBytes is the smallest body accepted as a real media file.
	MinBytes     int64
	PublicAPIURL string
	// ScrapeHosts and APIHosts are matched as substrings of the link host.
	ScrapeHosts []string
	APIHosts    []string
}

type implAcquirer struct {
	resolver   *resty.Client
	downloader *resty.Client
	opts       Options
	logger     logger.Logger
}

// New creates a new Acquirer instance
func New(opts Options, log logger.Logger) Acquirer {
	if opts.MinBytes <= 0 {
		opts.MinBytes = 1000
	}
	return &implAcquirer{
		resolver:   resty.New().SetTimeout(opts.ResolveTimeout),
		downloader: resty.New().SetTimeout(opts.DownloadTimeout),
		opts:       opts,
		logger:     log,
	}
}
