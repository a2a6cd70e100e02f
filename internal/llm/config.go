package llm

import (
	"fmt"
	"os"
	"strconv"
)

// loadConfig loads LLM configuration from environment variables
func loadConfig() (*Config, error) {
	classifierProvider := Provider(os.Getenv("CLASSIFIER_PROVIDER"))
	if classifierProvider == "" {
		classifierProvider = ProviderAnthropic // default
	}

	classifierAPIKey := os.Getenv("ANTHROPIC_API_KEY")
	if classifierAPIKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
	}

	classifierModel := os.Getenv("CLASSIFIER_MODEL")
	if classifierModel == "" {
		classifierModel = "claude-3-haiku-20240307" // default
	}

	embedderProvider := Provider(os.Getenv("EMBEDDER_PROVIDER"))
	if embedderProvider == "" {
		embedderProvider = ProviderOpenAI // default
	}

	embedderAPIKey := os.Getenv("OPENAI_API_KEY")
	if embedderAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	embedderModel := os.Getenv("EMBEDDER_MODEL")
	if embedderModel == "" {
		embedderModel = "text-embedding-3-small" // default
	}

	classifierMaxTokens := 300 // default
	if maxTokensStr := os.Getenv("CLASSIFIER_MAX_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil {
			classifierMaxTokens = val
		}
	}

	classifierTemperature := float32(0.2) // default
	if tempStr := os.Getenv("CLASSIFIER_TEMPERATURE"); tempStr != "" {
		if val, err := strconv.ParseFloat(tempStr, 32); err == nil {
			classifierTemperature = float32(val)
		}
	}

	return &Config{
		ClassifierProvider:    classifierProvider,
		ClassifierAPIKey:      classifierAPIKey,
		ClassifierModel:       classifierModel,
		ClassifierMaxTokens:   classifierMaxTokens,
		ClassifierTemperature: classifierTemperature,
		EmbedderProvider:      embedderProvider,
		EmbedderAPIKey:        embedderAPIKey,
		EmbedderModel:         embedderModel,
	}, nil
}
