package discovery

import (
	"context"
	"errors"
	"time"

	"codeberg.org/path2prevention/server/internal/llm"
	"codeberg.org/path2prevention/server/path2prevention/programs"
)

const (
	// default number of semantic matches returned to the caller
	DefaultLimit = 5

	// how long a built snapshot stays fresh
	defaultTTL = time.Hour

	// budget for one full rebuild: FindAll plus batched embedding of every
	// program; detached from the triggering request's deadline
	defaultBuildTimeout = 2 * time.Minute
)

var (
	// returned when a semantic search arrives with an empty query
	ErrEmptyQuery = errors.New("query must not be empty")

	// returned when the embedding index has never been built successfully;
	// retryable, and distinct from an empty match list
	ErrIndexUnavailable = errors.New("embedding index unavailable")
)

// interface for the relational store holding programs, locations and details
type ProgramStore interface {
	FindByFilter(ctx context.Context, filter programs.SearchFilter) ([]programs.ProgramRecord, error)
	FindByID(ctx context.Context, id int) (*programs.ProgramRecord, error)
	FindByNameLike(ctx context.Context, substr string) ([]programs.ProgramRecord, error)
	FindAll(ctx context.Context) ([]programs.ProgramRecord, error)
}

// EmbeddingRecord is one program's entry in the index: the program row, the
// vector computed from its search text, and when the vector was generated.
// Records are created in bulk during a rebuild and never mutated in place.
type EmbeddingRecord struct {
	Program     programs.ProgramRecord
	Vector      []float32
	SearchText  string
	GeneratedAt time.Time
}

// Snapshot is an immutable collection of embedding records plus its build
// timestamp. The cache holds at most one live snapshot; a rebuild replaces
// the whole snapshot atomically, so readers never observe a partial index.
type Snapshot struct {
	Records []EmbeddingRecord
	BuiltAt time.Time
}

// ScoredProgram pairs a program with its similarity to the query vector.
type ScoredProgram struct {
	Program    programs.ProgramRecord `json:"program"`
	Similarity float32                `json:"similarity"`
}

// SemanticResult is the output of a semantic search: ranked matches plus
// the intent metadata extracted alongside them. Intent may be nil when
// classification failed; it is informational only and never filters results.
type SemanticResult struct {
	Results []ScoredProgram   `json:"results"`
	Intent  *llm.IntentResult `json:"intent,omitempty"`
}
