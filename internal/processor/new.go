package processor

import (
	"github.com/nguyentantai21042004/lecture-notes/internal/acquisition"
	"github.com/nguyentantai21042004/lecture-notes/internal/audio"
	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
	"github.com/nguyentantai21042004/lecture-notes/internal/objectstore"
	"github.com/nguyentantai21042004/lecture-notes/internal/queue"
	"github.com/nguyentantai21042004/lecture-notes/internal/renderer"
	"github.com/nguyentantai21042004/lecture-notes/internal/summarizer"
	"github.com/nguyentantai21042004/lecture-notes/internal/task"
	"github.com/nguyentantai21042004/lecture-notes/internal/transcriber"
)

const defaultTitle = "Lecture notes"

// Dependencies are the collaborators of the pipeline, constructed once by the
// caller.
type Dependencies struct {
	Store       task.Store
	Queue       queue.Queue
	Acquirer    acquisition.Acquirer
	Extractor   audio.Extractor
	Transcriber transcriber.Transcriber
	Summarizer  summarizer.Summarizer
	Renderer    renderer.Renderer
	Objects     objectstore.Store
}

type Options struct {
	TempDir      string
	WaitSeconds  int64
	LanguageHint string
}

type implProcessor struct {
	Dependencies
	opts   Options
	logger logger.Logger
}

// New creates a new Processor instance
func New(deps Dependencies, opts Options, log logger.Logger) Processor {
	return &implProcessor{
		Dependencies: deps,
		opts:         opts,
		logger:       log,
	}
}
