package trigger

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

func TestInvoke(t *testing.T) {
	var method string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"processed","task_id":"t1"}`))
	}))
	defer srv.Close()

	got := New(srv.URL, time.Minute, time.Second, logger.Nop()).Invoke(context.Background())

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, http.StatusOK, got.StatusCode)
	assert.JSONEq(t, `{"status":"processed","task_id":"t1"}`, got.Body)
}

func TestInvoke_PassesWorkerStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream"))
	}))
	defer srv.Close()

	got := New(srv.URL, time.Minute, time.Second, logger.Nop()).Invoke(context.Background())

	assert.Equal(t, http.StatusBadGateway, got.StatusCode)
	assert.Equal(t, "upstream", got.Body)
}

func TestInvoke_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	got := New(srv.URL, time.Minute, 50*time.Millisecond, logger.Nop()).Invoke(context.Background())

	assert.Equal(t, http.StatusGatewayTimeout, got.StatusCode)
	assert.Contains(t, got.Body, "Timeout calling worker")
}

func TestInvoke_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	got := New(url, time.Minute, time.Second, logger.Nop()).Invoke(context.Background())

	assert.Equal(t, http.StatusServiceUnavailable, got.StatusCode)
	assert.Contains(t, got.Body, "Connection error")
}

func TestClassify(t *testing.T) {
	got := classify(errors.New("unsupported protocol scheme"))
	assert.Equal(t, http.StatusInternalServerError, got.StatusCode)
	assert.Contains(t, got.Body, "Unexpected error")
}

func TestRun(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"status":"no_messages"}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(srv.URL, 20*time.Millisecond, time.Second, logger.Nop()).Run(ctx) }()

	require.Eventually(t, func() bool { return hits.Load() >= 3 }, 2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop")
	}
}
