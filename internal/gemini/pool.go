package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

func (p *implPool) Size() int {
	return len(p.generators)
}

// Generate returns the concatenated text of the first candidate. Rate-limit
// errors rotate to the next key; any other error is returned immediately.
func (p *implPool) Generate(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error) {
	if len(p.generators) == 0 {
		return "", ErrNoAPIKeys
	}

	var lastErr error
	for range len(p.generators) {
		idx, gen := p.pick()

		result, err := gen.GenerateContent(ctx, model, contents, config)
		if err != nil {
			if isQuotaError(err) {
				p.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				p.rotate(idx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		text := responseText(result)
		if text == "" {
			return "", ErrEmptyResponse
		}
		return text, nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (p *implPool) pick() (int, Generator) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current, p.generators[p.current]
}

// rotate advances past idx unless another caller already did.
func (p *implPool) rotate(idx int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == idx {
		p.current = (p.current + 1) % len(p.generators)
	}
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
