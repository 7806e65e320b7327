// Package tfidf builds term-weighted document vectors for similarity
// comparison.
package tfidf

import (
	"math"
	"sort"

	"github.com/cognicore/originality/pkg/originality/tokenize"
)

// Vector is a sparse document row keyed by term. Rows produced by
// Vectorize are L2-normalized.
type Vector map[string]float64

// Matrix is a row-per-document TF-IDF matrix over the shared vocabulary
// observed across the batch. Rows are in document order; Terms lists the
// vocabulary in lexicographic order so repeated runs are reproducible.
type Matrix struct {
	Terms []string
	Rows  []Vector
}

// Vectorize builds the TF-IDF matrix for docs. The second return value is
// false when no document contains any token, in which case the matrix is
// unusable.
//
// Weights use raw term counts and smoothed inverse document frequency
// ln((1+n)/(1+df)) + 1, so a term present in every document still carries
// weight. Without the smoothing, two identical documents would reduce to
// zero vectors and their similarity would be undefined.
func Vectorize(docs []string) (Matrix, bool) {
	counts := make([]map[string]int64, len(docs))
	df := make(map[string]int64)

	for i, doc := range docs {
		counts[i] = make(map[string]int64)
		for _, tok := range tokenize.Tokenize(doc) {
			counts[i][tok]++
		}
		for term := range counts[i] {
			df[term]++
		}
	}

	if len(df) == 0 {
		return Matrix{}, false
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for term, freq := range df {
		idf[term] = math.Log((1+n)/(1+float64(freq))) + 1
	}

	m := Matrix{Terms: terms, Rows: make([]Vector, len(docs))}
	for i := range docs {
		row := make(Vector, len(counts[i]))
		for term, count := range counts[i] {
			row[term] = float64(count) * idf[term]
		}
		normalize(row)
		m.Rows[i] = row
	}

	return m, true
}

// Cosine returns the cosine similarity of two sparse vectors: 0 when
// either vector is empty or zero, 1 when they point in the same direction.
func Cosine(a, b Vector) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}

	dot := 0.0
	for term, av := range a {
		if bv, ok := b[term]; ok {
			dot += av * bv
		}
	}
	if dot == 0 {
		return 0
	}

	return dot / (norm(a) * norm(b))
}

func normalize(v Vector) {
	n := norm(v)
	if n == 0 {
		return
	}
	for term := range v {
		v[term] /= n
	}
}

func norm(v Vector) float64 {
	sum := 0.0
	for _, val := range v {
		sum += val * val
	}
	return math.Sqrt(sum)
}
