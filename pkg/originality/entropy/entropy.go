// Package entropy computes token-distribution metrics over a document batch.
package entropy

import (
	"math"

	"github.com/cognicore/originality/pkg/originality/tokenize"
)

// Distribution is the pooled token multiset of a document batch.
// Invariant: the counts sum to Total.
type Distribution struct {
	Counts map[string]int64
	Total  int64
}

// NewDistribution tokenizes every text and pools the tokens into a single
// occurrence-count multiset. Document order does not affect the result.
func NewDistribution(texts []string) Distribution {
	d := Distribution{Counts: make(map[string]int64)}
	for _, text := range texts {
		for _, tok := range tokenize.Tokenize(text) {
			d.Counts[tok]++
			d.Total++
		}
	}
	return d
}

// VocabSize returns the number of distinct tokens.
func (d Distribution) VocabSize() int {
	return len(d.Counts)
}

// Bits returns the Shannon entropy of the distribution in bits per token:
// H = -Σ p·log2(p). Zero for an empty distribution.
func (d Distribution) Bits() float64 {
	if d.Total == 0 {
		return 0
	}

	h := 0.0
	total := float64(d.Total)
	for _, count := range d.Counts {
		p := float64(count) / total
		h -= p * math.Log2(p)
	}
	return h
}

// DatasetEntropy computes the normalized Shannon entropy of the pooled
// token distribution of texts. The entropy in bits is divided by the
// maximum possible entropy log2(vocabSize), giving a value in [0, 1]:
// 1 when every distinct token is equally frequent, 0 when the batch has
// at most one distinct token (or no tokens at all).
func DatasetEntropy(texts []string) float64 {
	d := NewDistribution(texts)
	if d.Total == 0 {
		return 0
	}

	vocab := d.VocabSize()
	if vocab <= 1 {
		return 0
	}

	return d.Bits() / math.Log2(float64(vocab))
}

// Perplexity computes 2^H over the pooled token distribution — the
// effective number of equally likely tokens implied by the batch — and
// normalizes it by the actual vocabulary size. Since 2^H never exceeds
// the vocabulary size, the ratio lies in (0, 1]; an empty batch yields 0.
//
// This is not a language-model perplexity: no external model is consulted,
// so the value is monotonically tied to the dataset entropy and serves as
// an auxiliary diagnostic only.
func Perplexity(texts []string) float64 {
	d := NewDistribution(texts)
	if d.Total == 0 {
		return 0
	}

	vocab := d.VocabSize()
	if vocab == 0 {
		return 0
	}

	return math.Pow(2, d.Bits()) / float64(vocab)
}
