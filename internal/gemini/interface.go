package gemini

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

var (
	ErrNoAPIKeys     = errors.New("no Gemini API keys configured")
	ErrEmptyResponse = errors.New("empty response from Gemini")
)

// Generator is the subset of *genai.Models the pool drives.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Pool sends generation requests through a set of API keys and moves to the
// next key when the current one is rate limited.
type Pool interface {
	Generate(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error)
	Size() int
}
