package trigger

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"
)

const logBodyLimit = 500

func (t *implTrigger) Run(ctx context.Context) error {
	t.logger.Info(ctx, "Trigger started, invoking %s every %s", t.url, t.interval)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		t.Invoke(ctx)

		select {
		case <-ctx.Done():
			t.logger.Info(ctx, "Trigger stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (t *implTrigger) Invoke(ctx context.Context) Outcome {
	t.logger.Info(ctx, "Invoking worker: %s", t.url)

	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{}).
		Post(t.url)
	if err != nil {
		out := classify(err)
		t.logger.Error(ctx, "Worker invocation failed (%d): %v", out.StatusCode, err)
		return out
	}

	body := resp.String()
	t.logger.Info(ctx, "Response status: %d", resp.StatusCode())
	t.logger.Info(ctx, "Response body: %s", truncate(body, logBodyLimit))

	return Outcome{StatusCode: resp.StatusCode(), Body: body}
}

func classify(err error) Outcome {
	var netErr net.Error
	var opErr *net.OpError

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return errorOutcome(http.StatusGatewayTimeout, "Timeout calling worker: "+err.Error())
	case errors.As(err, &opErr):
		return errorOutcome(http.StatusServiceUnavailable, "Connection error: "+err.Error())
	default:
		return errorOutcome(http.StatusInternalServerError, "Unexpected error: "+err.Error())
	}
}

func errorOutcome(status int, msg string) Outcome {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return Outcome{StatusCode: status, Body: string(body)}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
