package processor

import "context"

// Status is the outcome of one ProcessOne call.
type Status string

const (
	StatusNoMessages Status = "no_messages"
	StatusProcessed  Status = "processed"
	StatusError      Status = "error"
)

// Result reports what a single invocation did. A task that failed inside the
// pipeline is still StatusProcessed; its failure lives in the task record.
type Result struct {
	Status Status `json:"status"`
	TaskID string `json:"task_id,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Processor runs queued tasks through the lecture notes pipeline.
type Processor interface {
	// ProcessOne receives at most one message and runs at most one attempt.
	ProcessOne(ctx context.Context) Result
}
