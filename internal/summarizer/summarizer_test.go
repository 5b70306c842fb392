package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/lecture-notes/internal/gemini"
	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

type fakeGenerator struct {
	text      string
	err       error
	gotPrompt string
	gotConfig *genai.GenerateContentConfig
}

func (f *fakeGenerator) GenerateContent(_ context.Context, _ string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.gotConfig = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.gotPrompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText(f.text, genai.RoleModel)}},
	}, nil
}

func newSummarizer(gen *fakeGenerator) Summarizer {
	pool := gemini.NewWithGenerators([]gemini.Generator{gen}, logger.Nop())
	return New(pool, Options{Temperature: 0.3}, logger.Nop())
}

func TestSummarize(t *testing.T) {
	gen := &fakeGenerator{text: "  1. Topic\n\n- point  "}
	s := newSummarizer(gen)

	got := s.Summarize(context.Background(), "the lecture transcript")

	if got.Outcome != OutcomeSummarized {
		t.Errorf("Outcome = %v, want %v", got.Outcome, OutcomeSummarized)
	}
	if got.Text != "1. Topic\n\n- point" {
		t.Errorf("Text = %q, want %q", got.Text, "1. Topic\n\n- point")
	}
	if got.Err != nil {
		t.Errorf("Err = %v, want nil", got.Err)
	}
	if !strings.Contains(gen.gotPrompt, "the lecture transcript") {
		t.Errorf("prompt does not contain transcript: %q", gen.gotPrompt)
	}
	if gen.gotConfig == nil || gen.gotConfig.Temperature == nil || *gen.gotConfig.Temperature != 0.3 {
		t.Errorf("Temperature not set to 0.3: %+v", gen.gotConfig)
	}
}

func TestSummarizePassthrough(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
	}{
		{name: "model error", gen: &fakeGenerator{err: errors.New("internal error")}},
		{name: "blank response", gen: &fakeGenerator{text: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSummarizer(tt.gen)

			got := s.Summarize(context.Background(), "raw transcript")

			if got.Outcome != OutcomePassthrough {
				t.Errorf("Outcome = %v, want %v", got.Outcome, OutcomePassthrough)
			}
			if got.Text != "raw transcript" {
				t.Errorf("Text = %q, want %q", got.Text, "raw transcript")
			}
			if got.Err == nil {
				t.Error("Err = nil, want error")
			}
		})
	}
}

func TestSummarizeWithoutPool(t *testing.T) {
	s := New(nil, Options{}, logger.Nop())

	got := s.Summarize(context.Background(), "raw transcript")

	if got.Outcome != OutcomePassthrough {
		t.Errorf("Outcome = %v, want %v", got.Outcome, OutcomePassthrough)
	}
	if !errors.Is(got.Err, gemini.ErrNoAPIKeys) {
		t.Errorf("Err = %v, want %v", got.Err, gemini.ErrNoAPIKeys)
	}
}
