package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClassifyServer(t *testing.T, responseText string, capture *classifyRequest) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req classifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if capture != nil {
			*capture = req
		}

		resp := classifyResponse{
			Type:    "message",
			Role:    "assistant",
			Content: []content{{Type: "text", Text: responseText}},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp) //nolint:errcheck,gosec // test server
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestClassifyIntentParsesResult(t *testing.T) {
	var captured classifyRequest

	srv := newClassifyServer(t, `{
		"categories": ["diabetes-prevention", "low-cost"],
		"confidence": 0.9,
		"summary": "Free diabetes prevention programs near Atlanta",
		"wants_location": true
	}`, &captured)

	classifier := NewAnthropicClassifier(AnthropicConfig{
		APIKey:  "test-key",
		Model:   "claude-3-haiku-20240307",
		BaseURL: srv.URL,
	})

	result, err := classifier.ClassifyIntent(context.Background(), "free diabetes classes near Atlanta?", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"diabetes-prevention", "low-cost"}, result.Categories)
	assert.InDelta(t, 0.9, result.Confidence, 0.001)
	assert.Equal(t, "Free diabetes prevention programs near Atlanta", result.Summary)
	assert.True(t, result.WantsLocation)

	// request carries the system prompt and the query as final user message
	assert.Equal(t, "claude-3-haiku-20240307", captured.Model)
	assert.NotEmpty(t, captured.System)
	require.NotEmpty(t, captured.Messages)
	last := captured.Messages[len(captured.Messages)-1]
	assert.Equal(t, "user", last.Role)
	assert.Equal(t, "free diabetes classes near Atlanta?", last.Content)
}

func TestClassifyIntentSendsAuthHeaders(t *testing.T) {
	var gotKey, gotVersion string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")

		resp := classifyResponse{Content: []content{{Type: "text", Text: `{"categories":["general"],"confidence":0.5,"summary":"","wants_location":false}`}}}
		json.NewEncoder(w).Encode(resp) //nolint:errcheck,gosec // test server
	}))
	t.Cleanup(srv.Close)

	classifier := NewAnthropicClassifier(AnthropicConfig{APIKey: "test-key", BaseURL: srv.URL})

	_, err := classifier.ClassifyIntent(context.Background(), "hello", nil)
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, anthropicVersion, gotVersion)
}

func TestClassifyIntentTruncatesHistory(t *testing.T) {
	var captured classifyRequest

	srv := newClassifyServer(t, `{"categories":["general"],"confidence":0.5,"summary":"","wants_location":false}`, &captured)

	classifier := NewAnthropicClassifier(AnthropicConfig{APIKey: "test-key", BaseURL: srv.URL})

	history := make([]Message, 25)
	for i := range history {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		history[i] = Message{Role: role, Content: fmt.Sprintf("turn %d", i)}
	}

	_, err := classifier.ClassifyIntent(context.Background(), "latest question", history)
	require.NoError(t, err)

	// only the last 10 history turns plus the query are sent
	require.Len(t, captured.Messages, 11)
	assert.Equal(t, "turn 15", captured.Messages[0].Content)
	assert.Equal(t, "latest question", captured.Messages[10].Content)
}

func TestClassifyIntentSkipsEmptyHistoryTurns(t *testing.T) {
	var captured classifyRequest

	srv := newClassifyServer(t, `{"categories":["general"],"confidence":0.5,"summary":"","wants_location":false}`, &captured)

	classifier := NewAnthropicClassifier(AnthropicConfig{APIKey: "test-key", BaseURL: srv.URL})

	history := []Message{
		{Role: "user", Content: "first"},
		{Role: "assistant", Content: ""},
		{Role: "user", Content: "second"},
	}

	_, err := classifier.ClassifyIntent(context.Background(), "query", history)
	require.NoError(t, err)

	require.Len(t, captured.Messages, 3)
	assert.Equal(t, "first", captured.Messages[0].Content)
	assert.Equal(t, "second", captured.Messages[1].Content)
}

func TestClassifyIntentRejectsNonJSONResponse(t *testing.T) {
	srv := newClassifyServer(t, "I think the user wants diabetes programs.", nil)

	classifier := NewAnthropicClassifier(AnthropicConfig{APIKey: "test-key", BaseURL: srv.URL})

	_, err := classifier.ClassifyIntent(context.Background(), "query", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse intent JSON")
}

func TestClassifyIntentEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(classifyResponse{}) //nolint:errcheck,gosec // test server
	}))
	t.Cleanup(srv.Close)

	classifier := NewAnthropicClassifier(AnthropicConfig{APIKey: "test-key", BaseURL: srv.URL})

	_, err := classifier.ClassifyIntent(context.Background(), "query", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content")
}

func TestClassifyIntentAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"type":"overloaded_error"}}`, http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	classifier := NewAnthropicClassifier(AnthropicConfig{APIKey: "test-key", BaseURL: srv.URL})

	_, err := classifier.ClassifyIntent(context.Background(), "query", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}
