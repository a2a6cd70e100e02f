package discovery

import (
	"context"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"codeberg.org/path2prevention/server/internal/llm"
	"codeberg.org/path2prevention/server/path2prevention/programs"
)

func strPtr(s string) *string { return &s }

// three seeded programs: one in Atlanta/GA, one in Decatur/GA, one virtual
// statewide program with no location row
func seedPrograms() []programs.ProgramRecord {
	return []programs.ProgramRecord{
		{
			ID:               1,
			OrganizationName: "Emory Wellness Network",
			Description:      strPtr("In-person diabetes prevention classes in midtown Atlanta"),
			City:             strPtr("Atlanta"),
			State:            strPtr("GA"),
			ZipCode:          strPtr("30303"),
			DeliveryMode:     strPtr("in-person"),
		},
		{
			ID:               2,
			OrganizationName: "DeKalb Prevention Partners",
			Description:      strPtr("Community lifestyle change program"),
			City:             strPtr("Decatur"),
			State:            strPtr("GA"),
			ZipCode:          strPtr("30030"),
			DeliveryMode:     strPtr("hybrid"),
		},
		{
			ID:               3,
			OrganizationName: "Virtual Lifestyle Coaching",
			Description:      strPtr("On-demand video coaching available statewide"),
			DeliveryMode:     strPtr("on-demand"),
		},
	}
}

// in-memory ProgramStore that interprets resolved location filters the way
// the SQL predicates would
type fakeStore struct {
	records      []programs.ProgramRecord
	err          error
	findAllDelay time.Duration
	findAllCalls atomic.Int64
}

func (f *fakeStore) FindByFilter(_ context.Context, filter programs.SearchFilter) ([]programs.ProgramRecord, error) {
	if f.err != nil {
		return nil, f.err
	}

	resolved := programs.ResolveLocationFilter(filter.ZipCode, filter.State, filter.City)

	var matched []programs.ProgramRecord

	for _, rec := range f.records {
		if matchesFilter(rec, resolved.Kind, filter) {
			matched = append(matched, rec)
		}
	}

	sortByName(matched)

	return matched, nil
}

func matchesFilter(rec programs.ProgramRecord, kind programs.FilterKind, filter programs.SearchFilter) bool {
	stateEq := rec.State != nil && *rec.State == filter.State
	zipEq := rec.ZipCode != nil && *rec.ZipCode == filter.ZipCode
	cityLike := rec.City != nil &&
		strings.Contains(strings.ToLower(*rec.City), strings.ToLower(filter.City))

	switch kind {
	case programs.FilterStateCityZip:
		return stateEq && cityLike && zipEq
	case programs.FilterStateCity:
		return stateEq && cityLike
	case programs.FilterState:
		return stateEq
	case programs.FilterCity:
		return cityLike
	case programs.FilterZip:
		return zipEq
	default:
		return true
	}
}

func (f *fakeStore) FindByID(_ context.Context, id int) (*programs.ProgramRecord, error) {
	if f.err != nil {
		return nil, f.err
	}

	for _, rec := range f.records {
		if rec.ID == id {
			return &rec, nil
		}
	}

	return nil, programs.ErrProgramNotFound
}

func (f *fakeStore) FindByNameLike(_ context.Context, substr string) ([]programs.ProgramRecord, error) {
	if f.err != nil {
		return nil, f.err
	}

	var matched []programs.ProgramRecord

	for _, rec := range f.records {
		if strings.Contains(strings.ToLower(rec.OrganizationName), strings.ToLower(substr)) {
			matched = append(matched, rec)
		}
	}

	sortByName(matched)

	return matched, nil
}

func (f *fakeStore) FindAll(_ context.Context) ([]programs.ProgramRecord, error) {
	f.findAllCalls.Add(1)

	if f.findAllDelay > 0 {
		time.Sleep(f.findAllDelay)
	}

	if f.err != nil {
		return nil, f.err
	}

	all := make([]programs.ProgramRecord, len(f.records))
	copy(all, f.records)
	sortByName(all)

	return all, nil
}

func sortByName(recs []programs.ProgramRecord) {
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].OrganizationName < recs[j].OrganizationName
	})
}

// deterministic embedder: each text maps to a fixed vector keyed by its
// first line, so similarity ordering in tests is under our control
type fakeEmbedder struct {
	vectors    map[string][]float32
	err        error
	embedCalls atomic.Int64
}

func (f *fakeEmbedder) vectorFor(text string) []float32 {
	key, _, _ := strings.Cut(text, "\n")

	if vec, ok := f.vectors[key]; ok {
		return vec
	}

	return []float32{1, 0, 0}
}

func (f *fakeEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	vecs, err := f.GenerateEmbeddings(ctx, []string{text})
	if err != nil {
		return nil, err
	}

	return vecs[0], nil
}

func (f *fakeEmbedder) GenerateEmbeddings(_ context.Context, texts []string) ([][]float32, error) {
	f.embedCalls.Add(1)

	if f.err != nil {
		return nil, f.err
	}

	vecs := make([][]float32, len(texts))
	for i, text := range texts {
		vecs[i] = f.vectorFor(text)
	}

	return vecs, nil
}

type fakeClassifier struct {
	result *llm.IntentResult
	err    error
}

func (f *fakeClassifier) ClassifyIntent(context.Context, string, []llm.Message) (*llm.IntentResult, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.result, nil
}

type fakeLLM struct {
	*fakeEmbedder
	*fakeClassifier
}

func newFakeLLM(embedder *fakeEmbedder, classifier *fakeClassifier) *fakeLLM {
	return &fakeLLM{fakeEmbedder: embedder, fakeClassifier: classifier}
}
