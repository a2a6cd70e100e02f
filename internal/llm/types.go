package llm

import "context"

// combines embedding generation and intent classification
type LLM interface {
	Embedder
	IntentClassifier
}

// represents different LLM providers
type Provider string

// generates embeddings from text
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

// extracts the user's goal from a free-text query and conversation history;
// the result is informational metadata for the caller, it never filters or
// re-weights ranking
type IntentClassifier interface {
	ClassifyIntent(ctx context.Context, query string, history []Message) (*IntentResult, error)
}

// represents a single conversation turn
type Message struct {
	Role    string `json:"role"`    // "user" or "assistant"
	Content string `json:"content"` // message content
}

// structured output of intent classification, passed through verbatim to
// the caller (e.g. the chat UI)
type IntentResult struct {
	Categories    []string `json:"categories"`
	Confidence    float32  `json:"confidence"`
	Summary       string   `json:"summary,omitempty"`
	WantsLocation bool     `json:"wants_location"`
}

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

// holds configuration for LLM initialization
type Config struct {
	// classifier configuration
	ClassifierProvider    Provider
	ClassifierAPIKey      string
	ClassifierModel       string // e.g., "claude-3-haiku-20240307"
	ClassifierMaxTokens   int
	ClassifierTemperature float32

	// embedder configuration
	EmbedderProvider Provider
	EmbedderAPIKey   string
	EmbedderModel    string // e.g., "text-embedding-3-small"
}
