package discovery

import (
	"math"
	"sort"
)

// Rank scores every record in the snapshot against the query vector and
// returns the top matches: descending similarity, ties broken by ascending
// program id so repeated calls produce identical ordering. Never returns
// more than limit results; an empty snapshot yields an empty slice.
func Rank(queryVector []float32, snapshot *Snapshot, limit int) []ScoredProgram {
	if snapshot == nil || len(snapshot.Records) == 0 || limit < 1 {
		return []ScoredProgram{}
	}

	scored := make([]ScoredProgram, 0, len(snapshot.Records))

	for _, record := range snapshot.Records {
		scored = append(scored, ScoredProgram{
			Program:    record.Program,
			Similarity: CosineSimilarity(queryVector, record.Vector),
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Similarity != scored[j].Similarity {
			return scored[i].Similarity > scored[j].Similarity
		}

		return scored[i].Program.ID < scored[j].Program.ID
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	return scored
}

// CosineSimilarity computes the cosine of the angle between two vectors.
// A zero vector (or mismatched lengths) yields 0 rather than NaN, keeping
// the ranking order total and deterministic.
func CosineSimilarity(a, b []float32) float32 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64

	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
