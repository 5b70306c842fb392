package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
	"github.com/nguyentantai21042004/lecture-notes/internal/objectstore"
	"github.com/nguyentantai21042004/lecture-notes/internal/submitter"
	"github.com/nguyentantai21042004/lecture-notes/internal/task"
)

type webHandler struct {
	store     task.Store
	submitter submitter.Submitter
	objects   objectstore.Store
	ttl       time.Duration
	logger    logger.Logger
}

type submitRequest struct {
	Title    string `form:"title" json:"title"`
	VideoURL string `form:"video_url" json:"video_url"`
}

func (h *webHandler) submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.submitter.Submit(c.Request.Context(), req.Title, req.VideoURL)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, submitter.ErrInvalidRequest) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task_id": id})
}

func (h *webHandler) list(c *gin.Context) {
	tasks, err := h.store.List(c.Request.Context())
	if err != nil {
		h.logger.Error(c.Request.Context(), "Failed to list tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if tasks == nil {
		tasks = []*task.Task{}
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (h *webHandler) get(c *gin.Context) {
	t, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *webHandler) download(c *gin.Context) {
	key := c.Param("key")

	url, err := h.objects.PresignGet(key, h.ttl)
	if err != nil {
		h.logger.Error(c.Request.Context(), "Failed to presign %s: %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, url)
}
