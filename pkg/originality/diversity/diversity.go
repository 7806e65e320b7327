// Package diversity measures how different the documents of a batch are
// from one another in TF-IDF vector space.
package diversity

import "github.com/cognicore/originality/pkg/originality/tfidf"

// EmbeddingDiversity computes 1 minus the mean pairwise cosine similarity
// over all unordered document pairs, clamped to [0, 1].
//
// Policy for degenerate batches: an empty batch has undefined diversity
// and yields 0; a single document has nothing to be similar to and yields
// 1; a batch in which no document contains any token yields 0.
//
// Pairs are visited in ascending (i, j) index order, so the result is
// exactly reproducible for a given document sequence.
func EmbeddingDiversity(docs []string) float64 {
	n := len(docs)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return 1
	}

	m, ok := tfidf.Vectorize(docs)
	if !ok {
		return 0
	}

	sum := 0.0
	pairs := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sum += tfidf.Cosine(m.Rows[i], m.Rows[j])
			pairs++
		}
	}

	d := 1 - sum/float64(pairs)
	if d < 0 {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}
