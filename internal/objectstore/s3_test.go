package objectstore

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

type recordedPut struct {
	path        string
	contentType string
	body        string
}

func newFakeS3(t *testing.T) (*httptest.Server, *[]recordedPut) {
	t.Helper()
	var mu sync.Mutex
	var puts []recordedPut
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		data, _ := io.ReadAll(r.Body)
		mu.Lock()
		puts = append(puts, recordedPut{path: r.URL.Path, contentType: r.Header.Get("Content-Type"), body: string(data)})
		mu.Unlock()
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv, &puts
}

func newTestStore(t *testing.T, endpoint string) Store {
	t.Helper()
	store, err := New(Options{
		Bucket:          "notes",
		Endpoint:        endpoint,
		Region:          "ru-central1",
		ForcePathStyle:  true,
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
	}, logger.Nop())
	require.NoError(t, err)
	return store
}

func TestUpload(t *testing.T) {
	srv, puts := newFakeS3(t)
	store := newTestStore(t, srv.URL)

	path := filepath.Join(t.TempDir(), "t1.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 body"), 0644))

	require.NoError(t, store.Upload(context.Background(), "t1.pdf", path, "application/pdf"))

	require.Len(t, *puts, 1)
	assert.Equal(t, "/notes/t1.pdf", (*puts)[0].path)
	assert.Equal(t, "application/pdf", (*puts)[0].contentType)
	assert.Equal(t, "%PDF-1.4 body", (*puts)[0].body)
}

func TestUpload_MissingFile(t *testing.T) {
	srv, puts := newFakeS3(t)
	store := newTestStore(t, srv.URL)

	err := store.Upload(context.Background(), "t1.pdf", filepath.Join(t.TempDir(), "nope.pdf"), "application/pdf")
	assert.Error(t, err)
	assert.Empty(t, *puts)
}

func TestPresignGet(t *testing.T) {
	store := newTestStore(t, "https://storage.example.net")

	url, err := store.PresignGet("t1.pdf", time.Hour)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://storage.example.net/notes/t1.pdf?"), url)
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=3600")
}
