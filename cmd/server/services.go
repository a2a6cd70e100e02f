package main

import (
	"context"
	"fmt"

	"codeberg.org/path2prevention/server/internal/config"
	"codeberg.org/path2prevention/server/internal/discovery"
	"codeberg.org/path2prevention/server/internal/llm"
	"codeberg.org/path2prevention/server/path2prevention/programs"
)

// creates and configures the LLM client, embedding index cache, and
// discovery service
func InitializeServices(cfg *config.Config, programRepo *programs.Repository) (*Services, error) {
	llmClient, err := llm.NewLLM(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	cache := discovery.NewCache(programRepo, llmClient, discovery.WithTTL(cfg.IndexTTL))
	discoveryService := discovery.NewService(programRepo, llmClient, cache)

	return &Services{
		LLM:       llmClient,
		Cache:     cache,
		Discovery: discoveryService,
	}, nil
}
