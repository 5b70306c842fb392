package gemini

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

type implPool struct {
	mu         sync.Mutex
	generators []Generator
	current    int
	logger     logger.Logger
}

// New builds one client per API key. Clients are constructed once and reused
// for every request.
func New(ctx context.Context, apiKeys []string, endpoint string, log logger.Logger) (Pool, error) {
	if len(apiKeys) == 0 {
		return nil, ErrNoAPIKeys
	}

	generators := make([]Generator, 0, len(apiKeys))
	for i, key := range apiKeys {
		cfg := &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		}
		if endpoint != "" {
			cfg.HTTPOptions = genai.HTTPOptions{BaseURL: endpoint}
		}

		client, err := genai.NewClient(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("create client for key %d: %w", i+1, err)
		}
		generators = append(generators, client.Models)
	}

	return NewWithGenerators(generators, log), nil
}

// NewWithGenerators wraps already constructed generators.
func NewWithGenerators(generators []Generator, log logger.Logger) Pool {
	return &implPool{
		generators: generators,
		logger:     log,
	}
}
