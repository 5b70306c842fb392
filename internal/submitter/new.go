package submitter

import (
	"github.com/google/uuid"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
	"github.com/nguyentantai21042004/lecture-notes/internal/queue"
	"github.com/nguyentantai21042004/lecture-notes/internal/task"
)

type implSubmitter struct {
	store  task.Store
	queue  queue.Queue
	newID  func() string
	logger logger.Logger
}

// New creates a new Submitter instance
func New(store task.Store, q queue.Queue, log logger.Logger) Submitter {
	return &implSubmitter{
		store:  store,
		queue:  q,
		newID:  uuid.NewString,
		logger: log,
	}
}
