package discovery

import (
	"context"
	"fmt"
	"sync"
	"time"

	"codeberg.org/path2prevention/server/internal/llm"
	"codeberg.org/path2prevention/server/internal/logger"
	"golang.org/x/sync/singleflight"
)

// Cache owns the time-bounded in-memory index of program embeddings. It is
// lazily built on first use and rebuilt when the snapshot's TTL elapses,
// amortizing one embedding-provider call per program across requests.
//
// Concurrency contract: the snapshot pointer is swapped under the mutex and
// never edited in place, so in-flight ranking calls keep reading the
// snapshot they started with. Rebuilds are single-flight; concurrent
// callers during a rebuild join the in-flight build, and a failed rebuild
// leaves the previous snapshot (fresh, stale, or absent) untouched.
type Cache struct {
	store    ProgramStore
	embedder llm.Embedder

	ttl          time.Duration
	buildTimeout time.Duration
	now          func() time.Time

	mu       sync.RWMutex
	snapshot *Snapshot

	group singleflight.Group
}

// CacheOption customizes a Cache; used by tests to inject a clock.
type CacheOption func(*Cache)

// WithTTL overrides the snapshot freshness window.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) { c.ttl = ttl }
}

// WithBuildTimeout overrides the rebuild deadline.
func WithBuildTimeout(d time.Duration) CacheOption {
	return func(c *Cache) { c.buildTimeout = d }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) { c.now = now }
}

func NewCache(store ProgramStore, embedder llm.Embedder, opts ...CacheOption) *Cache {
	c := &Cache{
		store:        store,
		embedder:     embedder,
		ttl:          defaultTTL,
		buildTimeout: defaultBuildTimeout,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get returns the current snapshot, rebuilding it first if it is missing or
// expired. When a rebuild fails but an older snapshot exists, the stale
// snapshot is served and the rebuild is retried on the next call; the error
// only surfaces when no snapshot has ever been built.
func (c *Cache) Get(ctx context.Context) (*Snapshot, error) {
	if snap := c.current(); c.fresh(snap) {
		return snap, nil
	}

	v, err, _ := c.group.Do("rebuild", func() (any, error) {
		// a caller queued behind a completed flight may find a fresh
		// snapshot already swapped in
		if snap := c.current(); c.fresh(snap) {
			return snap, nil
		}

		return c.rebuild(ctx)
	})

	if err != nil {
		if snap := c.current(); snap != nil {
			logger.ErrorErr(err, "embedding index rebuild failed, serving stale snapshot",
				"built_at", snap.BuiltAt,
				"records", len(snap.Records),
			)

			return snap, nil
		}

		return nil, fmt.Errorf("failed to build embedding index: %w", err)
	}

	return v.(*Snapshot), nil
}

// Current returns the live snapshot without triggering a rebuild; nil when
// the index has never been built.
func (c *Cache) Current() *Snapshot {
	return c.current()
}

func (c *Cache) current() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.snapshot
}

func (c *Cache) fresh(snap *Snapshot) bool {
	return snap != nil && c.now().Sub(snap.BuiltAt) < c.ttl
}

// rebuild loads every program, embeds its search text, and swaps in a new
// snapshot. The build runs under its own deadline, detached from the
// triggering request's cancellation, so one impatient caller cannot poison
// the index for everyone else.
func (c *Cache) rebuild(ctx context.Context) (*Snapshot, error) {
	buildCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.buildTimeout)
	defer cancel()

	records, err := c.store.FindAll(buildCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to load programs: %w", err)
	}

	snap := &Snapshot{BuiltAt: c.now()}

	if len(records) > 0 {
		texts := make([]string, len(records))
		for i, rec := range records {
			texts[i] = BuildSearchText(rec)
		}

		vectors, err := c.embedder.GenerateEmbeddings(buildCtx, texts)
		if err != nil {
			return nil, fmt.Errorf("failed to embed programs: %w", err)
		}

		if len(vectors) != len(records) {
			return nil, fmt.Errorf("expected %d vectors, got %d", len(records), len(vectors))
		}

		generatedAt := c.now()
		snap.Records = make([]EmbeddingRecord, len(records))

		for i, rec := range records {
			snap.Records[i] = EmbeddingRecord{
				Program:     rec,
				Vector:      vectors[i],
				SearchText:  texts[i],
				GeneratedAt: generatedAt,
			}
		}
	}

	c.mu.Lock()
	c.snapshot = snap
	c.mu.Unlock()

	logger.Info("embedding index rebuilt",
		"programs", len(snap.Records),
		"built_at", snap.BuiltAt,
	)

	return snap, nil
}
