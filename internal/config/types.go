package config

import "time"

type Config struct {
	OpenAIKey    string
	AnthropicKey string
	DatabaseURL  string
	Environment  string

	// how long a built embedding index snapshot stays fresh
	IndexTTL time.Duration
}

// Flags holds CLI flags for the ingester.
type Flags struct {
	Path         string
	CreateSchema bool
	Clear        bool
}
