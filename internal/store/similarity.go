package store

import (
	"math"
	"sort"

	"github.com/jonathan/talent-scout/internal/types"
)

// cosineSimilarity returns the cosine of the angle between two vectors.
// Mismatched dimensions or zero vectors score 0 rather than erroring, so a
// placeholder embedding simply ranks last.
func cosineSimilarity(a, b []float32) float64 {
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
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// rank scores every document against the query vector and returns the top k
// as query results, best match first. Ties break on document id so result
// order is stable across runs.
func rank(docs []document, queryVector []float32, k int) []types.QueryResult {
	if len(docs) == 0 {
		return nil
	}

	results := make([]types.QueryResult, 0, len(docs))
	for _, doc := range docs {
		results = append(results, types.QueryResult{
			ID:         doc.ID,
			Document:   doc.Text,
			Metadata:   doc.Metadata,
			Similarity: cosineSimilarity(queryVector, doc.Embedding),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Similarity != results[j].Similarity {
			return results[i].Similarity > results[j].Similarity
		}
		return results[i].ID < results[j].ID
	})

	if len(results) > k {
		results = results[:k]
	}
	return results
}
