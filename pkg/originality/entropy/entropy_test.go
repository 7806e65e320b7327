package entropy

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestDistributionInvariant(t *testing.T) {
	d := NewDistribution([]string{"a b b", "c c C"})

	var sum int64
	for _, count := range d.Counts {
		sum += count
	}
	if sum != d.Total {
		t.Errorf("Counts sum to %d, Total is %d", sum, d.Total)
	}
	if d.Total != 6 {
		t.Errorf("Expected 6 pooled tokens, got %d", d.Total)
	}
	if d.Counts["c"] != 3 {
		t.Errorf("Case folding should pool 'c' and 'C', got count %d", d.Counts["c"])
	}
}

func TestDatasetEntropyUniform(t *testing.T) {
	// Six distinct tokens, each occurring once: maximum entropy.
	ent := DatasetEntropy([]string{"a b c", "d e f"})
	if math.Abs(ent-1.0) > eps {
		t.Errorf("Uniform distribution entropy = %f, want 1.0", ent)
	}
}

func TestDatasetEntropySingleToken(t *testing.T) {
	ent := DatasetEntropy([]string{"x x x x"})
	if math.Abs(ent) > eps {
		t.Errorf("Single-token entropy = %f, want 0.0", ent)
	}
}

func TestDatasetEntropyEmpty(t *testing.T) {
	if ent := DatasetEntropy(nil); ent != 0 {
		t.Errorf("Entropy of no documents = %f, want 0", ent)
	}
	if ent := DatasetEntropy([]string{"", "   ", "\t"}); ent != 0 {
		t.Errorf("Entropy of all-empty documents = %f, want 0", ent)
	}
}

func TestDatasetEntropySkewedInRange(t *testing.T) {
	// Skewed but not degenerate: strictly between 0 and 1.
	ent := DatasetEntropy([]string{"a a a a a a a b"})
	if ent <= 0 || ent >= 1 {
		t.Errorf("Skewed distribution entropy = %f, want value in (0, 1)", ent)
	}
}

func TestDatasetEntropyOrderIndependent(t *testing.T) {
	a := DatasetEntropy([]string{"red green", "blue blue"})
	b := DatasetEntropy([]string{"blue blue", "red green"})
	if a != b {
		t.Errorf("Entropy depends on document order: %f vs %f", a, b)
	}
}

func TestPerplexityUniform(t *testing.T) {
	// Uniform distribution: 2^H equals the vocabulary size, ratio 1.
	perp := Perplexity([]string{"a b c", "d e f"})
	if math.Abs(perp-1.0) > eps {
		t.Errorf("Uniform perplexity = %f, want 1.0", perp)
	}
}

func TestPerplexitySingleToken(t *testing.T) {
	// Entropy 0, 2^0 = 1, vocabulary size 1, ratio 1.
	perp := Perplexity([]string{"x x x x"})
	if math.Abs(perp-1.0) > eps {
		t.Errorf("Single-token perplexity = %f, want 1.0", perp)
	}
}

func TestPerplexityEmpty(t *testing.T) {
	if perp := Perplexity(nil); perp != 0 {
		t.Errorf("Perplexity of no documents = %f, want 0", perp)
	}
}

func TestPerplexitySkewedInRange(t *testing.T) {
	perp := Perplexity([]string{"a a a a b c"})
	if perp <= 0 || perp > 1 {
		t.Errorf("Perplexity = %f, want value in (0, 1]", perp)
	}
}

func TestMetricsIdempotent(t *testing.T) {
	texts := []string{"the quick brown fox", "jumps over the lazy dog"}

	e1, e2 := DatasetEntropy(texts), DatasetEntropy(texts)
	if e1 != e2 {
		t.Errorf("DatasetEntropy not reproducible: %v vs %v", e1, e2)
	}

	p1, p2 := Perplexity(texts), Perplexity(texts)
	if p1 != p2 {
		t.Errorf("Perplexity not reproducible: %v vs %v", p1, p2)
	}
}
