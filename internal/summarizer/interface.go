package summarizer

import "context"

// Outcome tells whether notes came from the model or are the raw transcript.
type Outcome string

const (
	OutcomeSummarized  Outcome = "summarized"
	OutcomePassthrough Outcome = "passthrough"
)

// Notes is the summarization result. Err is set only for passthrough.
type Notes struct {
	Text    string
	Outcome Outcome
	Err     error
}

// Summarizer turns a lecture transcript into structured notes. It never
// fails: on any model error the transcript itself is returned.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) Notes
}
