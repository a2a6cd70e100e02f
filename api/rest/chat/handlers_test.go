package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/path2prevention/server/internal/discovery"
	"codeberg.org/path2prevention/server/internal/llm"
	progs "codeberg.org/path2prevention/server/path2prevention/programs"
)

type stubStore struct {
	records []progs.ProgramRecord
	err     error
}

func (s *stubStore) FindByFilter(ctx context.Context, filter progs.SearchFilter) ([]progs.ProgramRecord, error) {
	return s.records, s.err
}

func (s *stubStore) FindByID(ctx context.Context, id int) (*progs.ProgramRecord, error) {
	return nil, progs.ErrProgramNotFound
}

func (s *stubStore) FindByNameLike(ctx context.Context, substr string) ([]progs.ProgramRecord, error) {
	return s.records, s.err
}

func (s *stubStore) FindAll(ctx context.Context) ([]progs.ProgramRecord, error) {
	return s.records, s.err
}

type stubLLM struct {
	embedErr error
}

func (s stubLLM) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if s.embedErr != nil {
		return nil, s.embedErr
	}
	return []float32{1}, nil
}

func (s stubLLM) GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	if s.embedErr != nil {
		return nil, s.embedErr
	}

	out := make([][]float32, len(texts))
	for i := range out {
		out[i] = []float32{1}
	}
	return out, nil
}

func (stubLLM) ClassifyIntent(ctx context.Context, query string, history []llm.Message) (*llm.IntentResult, error) {
	return &llm.IntentResult{Categories: []string{"diabetes-prevention"}, Confidence: 0.8}, nil
}

func newTestRouter(store *stubStore, provider stubLLM) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := discovery.NewService(store, provider, discovery.NewCache(store, provider))

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), svc)

	return router
}

func postSearch(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/search", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestSearchHandlerReturnsRankedResults(t *testing.T) {
	store := &stubStore{records: []progs.ProgramRecord{
		{ID: 1, OrganizationName: "Emory Wellness Network"},
		{ID: 2, OrganizationName: "Virtual Lifestyle Coaching"},
	}}
	router := newTestRouter(store, stubLLM{})

	w := postSearch(t, router, SearchRequest{Query: "diabetes classes near me"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 2, resp.Count)
	require.NotNil(t, resp.Intent)
	assert.Equal(t, []string{"diabetes-prevention"}, resp.Intent.Categories)
}

func TestSearchHandlerRejectsMissingQuery(t *testing.T) {
	router := newTestRouter(&stubStore{}, stubLLM{})

	w := postSearch(t, router, map[string]any{"limit": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchHandlerRejectsBlankQuery(t *testing.T) {
	router := newTestRouter(&stubStore{}, stubLLM{})

	w := postSearch(t, router, SearchRequest{Query: "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchHandlerRejectsOversizedLimit(t *testing.T) {
	router := newTestRouter(&stubStore{}, stubLLM{})

	w := postSearch(t, router, SearchRequest{Query: "programs", Limit: 100})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchHandlerIndexUnavailable(t *testing.T) {
	// embedding provider down and no snapshot ever built
	store := &stubStore{records: []progs.ProgramRecord{{ID: 1, OrganizationName: "Emory Wellness Network"}}}
	router := newTestRouter(store, stubLLM{embedErr: fmt.Errorf("provider down")})

	w := postSearch(t, router, SearchRequest{Query: "diabetes programs"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSearchHandlerRejectsMalformedJSON(t *testing.T) {
	router := newTestRouter(&stubStore{}, stubLLM{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/search", bytes.NewReader([]byte(`{"query":`)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
