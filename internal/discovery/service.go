package discovery

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"codeberg.org/path2prevention/server/internal/llm"
	"codeberg.org/path2prevention/server/internal/logger"
	"codeberg.org/path2prevention/server/path2prevention/programs"
)

// Service orchestrates the two discovery request shapes: structured
// location search against the store, and semantic search over the
// embedding index.
type Service struct {
	store ProgramStore
	llm   llm.LLM
	cache *Cache
}

func NewService(store ProgramStore, provider llm.LLM, cache *Cache) *Service {
	return &Service{
		store: store,
		llm:   provider,
		cache: cache,
	}
}

// SearchStructured returns programs matching the location filter, ordered
// by organization name. An all-empty filter means "return everything"; the
// boundary layer decides whether to reject unscoped searches.
func (s *Service) SearchStructured(ctx context.Context, filter programs.SearchFilter) ([]programs.ProgramRecord, error) {
	return s.store.FindByFilter(ctx, filter)
}

// GetByID returns a single program or programs.ErrProgramNotFound.
func (s *Service) GetByID(ctx context.Context, id int) (*programs.ProgramRecord, error) {
	return s.store.FindByID(ctx, id)
}

// SearchByName returns programs whose organization name contains the
// substring, case-insensitively.
func (s *Service) SearchByName(ctx context.Context, substr string) ([]programs.ProgramRecord, error) {
	return s.store.FindByNameLike(ctx, substr)
}

// SearchSemantic ranks programs by vector similarity to a free-text query
// and returns intent metadata extracted from the query alongside them.
//
// The snapshot fetch, query embedding, and intent classification have no
// ordering dependency and run concurrently. An embedding or snapshot
// failure fails the whole call; a classification failure degrades to a nil
// intent, since intent is informational output and never filters ranking.
func (s *Service) SearchSemantic(ctx context.Context, query string, history []llm.Message, limit int) (*SemanticResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	if limit < 1 {
		limit = DefaultLimit
	}

	var (
		snapshot    *Snapshot
		queryVector []float32
		intent      *llm.IntentResult

		snapErr   error
		embedErr  error
		intentErr error
	)

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		snapshot, snapErr = s.cache.Get(ctx)
	}()

	go func() {
		defer wg.Done()
		queryVector, embedErr = s.llm.GenerateEmbedding(ctx, query)
	}()

	go func() {
		defer wg.Done()
		intent, intentErr = s.llm.ClassifyIntent(ctx, query, history)
	}()

	wg.Wait()

	if snapErr != nil {
		return nil, fmt.Errorf("%w: %s", ErrIndexUnavailable, snapErr)
	}

	if embedErr != nil {
		return nil, fmt.Errorf("failed to embed query: %w", embedErr)
	}

	if intentErr != nil {
		// degraded, not fatal: results still rank without intent metadata
		logger.Warn("intent classification failed", "error", intentErr)
		intent = nil
	}

	return &SemanticResult{
		Results: Rank(queryVector, snapshot, limit),
		Intent:  intent,
	}, nil
}

// WarmIndex builds the embedding index ahead of the first semantic search.
// Best-effort: a failure here just means the first request pays the build.
func (s *Service) WarmIndex(ctx context.Context) {
	if _, err := s.cache.Get(ctx); err != nil {
		logger.ErrorErr(err, "index warm-up failed, will retry on demand")
	}
}
