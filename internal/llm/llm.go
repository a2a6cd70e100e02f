package llm

import (
	"context"
	"fmt"
)

// combines an Embedder and IntentClassifier into a single LLM
type CompositeLLM struct {
	Embedder
	IntentClassifier
}

// creates a new LLM with auto-configuration from environment variables
func NewLLM(ctx context.Context) (LLM, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load LLM config: %w", err)
	}

	return NewLLMWithConfig(ctx, config)
}

// creates a new LLM with explicit configuration
func NewLLMWithConfig(_ context.Context, config *Config) (LLM, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	var classifier IntentClassifier

	switch config.ClassifierProvider {
	case ProviderAnthropic:
		classifier = NewAnthropicClassifier(AnthropicConfig{
			APIKey:      config.ClassifierAPIKey,
			Model:       config.ClassifierModel,
			MaxTokens:   config.ClassifierMaxTokens,
			Temperature: config.ClassifierTemperature,
		})
	default:
		return nil, fmt.Errorf("unsupported classifier provider: %s", config.ClassifierProvider)
	}

	var embedder Embedder

	switch config.EmbedderProvider {
	case ProviderOpenAI:
		embedder = NewOpenAIEmbedder(OpenAIConfig{
			APIKey: config.EmbedderAPIKey,
			Model:  config.EmbedderModel,
		})
	default:
		return nil, fmt.Errorf("unsupported embedder provider: %s", config.EmbedderProvider)
	}

	return &CompositeLLM{
		Embedder:         embedder,
		IntentClassifier: classifier,
	}, nil
}
