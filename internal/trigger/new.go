package trigger

import (
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

type implTrigger struct {
	client   *resty.Client
	url      string
	interval time.Duration
	logger   logger.Logger
}

// New creates a Trigger POSTing to workerURL every interval. Each request may
// take up to timeout, since the worker answers only after a full task.
func New(workerURL string, interval, timeout time.Duration, log logger.Logger) Trigger {
	if interval <= 0 {
		interval = time.Minute
	}
	return &implTrigger{
		client:   resty.New().SetTimeout(timeout),
		url:      workerURL,
		interval: interval,
		logger:   log,
	}
}
