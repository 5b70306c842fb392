package summarizer

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/lecture-notes/internal/gemini"
)

const notesPrompt = `Create structured lecture notes from the transcript below. Write the notes in the language of the lecture.

Requirements:
- Identify the main topics and subtopics
- Use numbered and bulleted lists
- Highlight key definitions and terms
- Finish with a short summary

Separate paragraphs with a blank line.

Lecture transcript:
%s`

func (s *implSummarizer) Summarize(ctx context.Context, transcript string) Notes {
	s.logger.Info(ctx, "Generating notes...")

	text, err := s.generate(ctx, transcript)
	if err != nil {
		s.logger.Warn(ctx, "Notes generation failed: %v, using transcript as notes", err)
		return Notes{Text: transcript, Outcome: OutcomePassthrough, Err: err}
	}

	s.logger.Info(ctx, "Notes generated: %d characters", utf8.RuneCountInString(text))
	return Notes{Text: text, Outcome: OutcomeSummarized}
}

func (s *implSummarizer) generate(ctx context.Context, transcript string) (string, error) {
	if s.pool == nil {
		return "", gemini.ErrNoAPIKeys
	}

	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	config := &genai.GenerateContentConfig{}
	if s.opts.Temperature > 0 {
		config.Temperature = genai.Ptr(s.opts.Temperature)
	}

	text, err := s.pool.Generate(ctx, s.opts.Model, genai.Text(fmt.Sprintf(notesPrompt, transcript)), config)
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", gemini.ErrEmptyResponse
	}
	return text, nil
}
