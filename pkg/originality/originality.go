// Package originality estimates how much human signal — lexical and
// semantic diversity — a text corpus contains, as a proxy for the risk of
// training-data degeneration from synthetic or repetitive content.
//
// Every function is a pure one-shot transform over an in-memory document
// batch: no state survives a call, so independent call sites may invoke
// the package concurrently without coordination.
package originality

import (
	"github.com/cognicore/originality/pkg/originality/diversity"
	"github.com/cognicore/originality/pkg/originality/entropy"
)

// Weight map keys recognized by the composite score.
const (
	WeightEntropy   = "entropy"
	WeightDiversity = "diversity"
)

// DefaultWeights returns the equal-weight map used when no weights are
// supplied.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		WeightEntropy:   0.5,
		WeightDiversity: 0.5,
	}
}

// HumanSignalScore computes the weighted composite of normalized dataset
// entropy and embedding diversity, clamped to [0, 1].
//
// A nil weight map, or one whose values sum to zero, falls back to
// DefaultWeights. Otherwise the supplied weights are normalized to sum to
// one. Unrecognized keys are accepted: they participate in normalization
// but contribute nothing to the weighted sum. Perplexity is deliberately
// excluded from the composite — it is monotonically tied to entropy and
// would double-count it.
//
// The caller's weight map is never modified.
func HumanSignalScore(texts []string, weights map[string]float64) float64 {
	w := normalizeWeights(weights)

	score := w[WeightEntropy]*entropy.DatasetEntropy(texts) +
		w[WeightDiversity]*diversity.EmbeddingDiversity(texts)

	return clamp01(score)
}

// Report holds the individual metrics behind one composite score.
type Report struct {
	Docs       int
	Entropy    float64
	Perplexity float64
	Diversity  float64
	Score      float64
}

// Evaluate computes all four metrics for a document batch in one pass of
// the public API; it adds no semantics beyond the individual functions.
func Evaluate(texts []string, weights map[string]float64) Report {
	return Report{
		Docs:       len(texts),
		Entropy:    entropy.DatasetEntropy(texts),
		Perplexity: entropy.Perplexity(texts),
		Diversity:  diversity.EmbeddingDiversity(texts),
		Score:      HumanSignalScore(texts, weights),
	}
}

func normalizeWeights(weights map[string]float64) map[string]float64 {
	if weights == nil {
		return DefaultWeights()
	}

	total := 0.0
	for _, v := range weights {
		total += v
	}
	if total == 0 {
		return DefaultWeights()
	}

	norm := make(map[string]float64, len(weights))
	for k, v := range weights {
		norm[k] = v / total
	}
	return norm
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
