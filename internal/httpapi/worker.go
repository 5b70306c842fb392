package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/lecture-notes/internal/processor"
)

const serviceName = "lecture-notes-worker"

type workerHandler struct {
	proc processor.Processor
}

func (h *workerHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": serviceName})
}

// process always answers 200; the outcome is in the body.
func (h *workerHandler) process(c *gin.Context) {
	c.JSON(http.StatusOK, h.proc.ProcessOne(c.Request.Context()))
}
