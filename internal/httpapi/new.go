package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
	"github.com/nguyentantai21042004/lecture-notes/internal/objectstore"
	"github.com/nguyentantai21042004/lecture-notes/internal/processor"
	"github.com/nguyentantai21042004/lecture-notes/internal/submitter"
	"github.com/nguyentantai21042004/lecture-notes/internal/task"
)

const shutdownTimeout = 10 * time.Second

type implServer struct {
	engine *gin.Engine
	logger logger.Logger
}

// NewWorker exposes health and process-one routes for the worker.
func NewWorker(proc processor.Processor, log logger.Logger) Server {
	s := newServer(log)
	w := &workerHandler{proc: proc}

	s.engine.GET("/", w.health)
	s.engine.GET("/health", w.health)
	s.engine.POST("/", w.process)
	s.engine.POST("/process", w.process)
	return s
}

// NewWeb exposes task submission, listing and document download routes.
func NewWeb(store task.Store, sub submitter.Submitter, objects objectstore.Store, presignTTL time.Duration, log logger.Logger) Server {
	s := newServer(log)
	h := &webHandler{store: store, submitter: sub, objects: objects, ttl: presignTTL, logger: log}

	s.engine.POST("/tasks", h.submit)
	s.engine.GET("/tasks", h.list)
	s.engine.GET("/tasks/:id", h.get)
	s.engine.GET("/download/:key", h.download)
	return s
}

func newServer(log logger.Logger) *implServer {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(log))
	return &implServer{engine: engine, logger: log}
}

func (s *implServer) Handler() http.Handler {
	return s.engine
}

func (s *implServer) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "HTTP server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info(ctx, "Shutting down HTTP server on %s", addr)
	return srv.Shutdown(shutdownCtx)
}

func requestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug(c.Request.Context(), "%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
