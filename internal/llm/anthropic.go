package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"
	defaultMaxTokens     = 300
	defaultTemperature   = 0.2

	// intent classification only needs the tail of a long conversation
	maxHistoryTurns = 10
)

// shared HTTP client for Anthropic API calls
var anthropicHTTPClient = &http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for Anthropic API calls (50 requests/second with burst capacity of 10)
var anthropicRateLimiter = rate.NewLimiter(50, 10)

type classifyRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	System      string    `json:"system,omitempty"`
	Messages    []message `json:"messages"`
	Temperature float32   `json:"temperature"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type classifyResponse struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Role    string    `json:"role"`
	Content []content `json:"content"`
	Model   string    `json:"model"`
	Usage   struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

type content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type AnthropicConfig struct {
	APIKey      string
	Model       string  // e.g., "claude-3-haiku-20240307"
	MaxTokens   int     // max tokens for response
	Temperature float32 // 0.0 to 1.0
	BaseURL     string  // overridable for tests
}

type AnthropicClassifier struct {
	config     AnthropicConfig
	httpClient *http.Client
}

func NewAnthropicClassifier(config AnthropicConfig) *AnthropicClassifier {
	if config.MaxTokens == 0 {
		config.MaxTokens = defaultMaxTokens
	}

	if config.Temperature == 0 {
		config.Temperature = defaultTemperature
	}

	if config.BaseURL == "" {
		config.BaseURL = anthropicMessagesURL
	}

	return &AnthropicClassifier{
		config:     config,
		httpClient: anthropicHTTPClient,
	}
}

func (t *AnthropicClassifier) Model() string {
	return t.config.Model
}

// ClassifyIntent extracts structured intent metadata from the user query
// and recent conversation history.
func (t *AnthropicClassifier) ClassifyIntent(ctx context.Context, query string, history []Message) (*IntentResult, error) {
	messages := make([]message, 0, maxHistoryTurns+1)

	start := max(len(history)-maxHistoryTurns, 0)

	for _, msg := range history[start:] {
		if msg.Content == "" {
			continue
		}

		messages = append(messages, message{Role: msg.Role, Content: msg.Content})
	}

	messages = append(messages, message{Role: "user", Content: query})

	reqBody := classifyRequest{
		Model:       t.config.Model,
		MaxTokens:   t.config.MaxTokens,
		System:      buildClassificationPrompt(),
		Temperature: t.config.Temperature,
		Messages:    messages,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", t.config.BaseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", t.config.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	// rate limiting
	if err := anthropicRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var classifyResp classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&classifyResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(classifyResp.Content) == 0 {
		return nil, fmt.Errorf("no content in response")
	}

	responseText := strings.TrimSpace(classifyResp.Content[0].Text)

	var result IntentResult
	if err := json.Unmarshal([]byte(responseText), &result); err != nil {
		return nil, fmt.Errorf("failed to parse intent JSON: %w", err)
	}

	return &result, nil
}

// returns the system prompt for intent classification
func buildClassificationPrompt() string {
	const prompt = `You are an intent classifier for a chronic-disease-prevention program directory.

Your task: Analyze the user's latest message (with the conversation for context) and classify what they are looking for.

Return a JSON object with this structure:
{
  "categories": ["list", "of", "matching", "categories"],
  "confidence": 0.0 to 1.0,
  "summary": "one short sentence restating what the user wants",
  "wants_location": true/false
}

Categories to choose from:
- "diabetes-prevention": National DPP lifestyle-change programs
- "weight-management": weight loss and nutrition coaching
- "physical-activity": exercise and movement programs
- "virtual": online, on-demand, or live-video delivery
- "in-person": classroom or community-based delivery
- "low-cost": free or insurance-covered programs
- "enrollment": questions about signing up, schedules, or availability
- "general": anything else about the directory

Set "wants_location" to true when the user mentions or asks about a place (city, state, zip code, "near me").

Examples:

Input: "are there any free diabetes classes near Atlanta?"
{
  "categories": ["diabetes-prevention", "low-cost", "in-person"],
  "confidence": 0.9,
  "summary": "Free in-person diabetes prevention programs near Atlanta",
  "wants_location": true
}

Input: "I travel a lot, can I do this online at my own pace?"
{
  "categories": ["virtual"],
  "confidence": 0.85,
  "summary": "Self-paced online program options",
  "wants_location": false
}

Return ONLY valid JSON, no markdown or explanations.`

	return prompt
}
