package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const defaultIndexTTL = time.Hour

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")
	databaseURL := os.Getenv("DATABASE_URL")
	environment := os.Getenv("ENVIRONMENT")

	if openaiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	if anthropicKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
	}

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	indexTTL := defaultIndexTTL
	if ttlStr := os.Getenv("INDEX_TTL"); ttlStr != "" {
		if val, err := time.ParseDuration(ttlStr); err == nil && val > 0 {
			indexTTL = val
		}
	}

	return &Config{
		OpenAIKey:    openaiKey,
		AnthropicKey: anthropicKey,
		DatabaseURL:  databaseURL,
		Environment:  environment,
		IndexTTL:     indexTTL,
	}, nil
}
