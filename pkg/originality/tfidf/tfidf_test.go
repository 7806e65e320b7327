package tfidf

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestVectorizeEmptyBatch(t *testing.T) {
	if _, ok := Vectorize(nil); ok {
		t.Error("Vectorize of no documents should report failure")
	}
	if _, ok := Vectorize([]string{"", "   "}); ok {
		t.Error("Vectorize of all-empty documents should report failure")
	}
}

func TestVectorizeRowsUnitLength(t *testing.T) {
	m, ok := Vectorize([]string{"red green blue", "red red yellow"})
	if !ok {
		t.Fatal("Vectorize failed on non-empty documents")
	}

	for i, row := range m.Rows {
		if n := norm(row); math.Abs(n-1.0) > eps {
			t.Errorf("Row %d has norm %f, want 1.0", i, n)
		}
	}
}

func TestVectorizeEmptyDocAmongOthers(t *testing.T) {
	m, ok := Vectorize([]string{"alpha beta", ""})
	if !ok {
		t.Fatal("Vectorize should succeed while any document has tokens")
	}
	if len(m.Rows[1]) != 0 {
		t.Errorf("Empty document should map to a zero row, got %v", m.Rows[1])
	}
}

func TestVectorizeDeterministicVocabulary(t *testing.T) {
	docs := []string{"zebra apple", "mango apple"}

	m1, _ := Vectorize(docs)
	m2, _ := Vectorize(docs)

	if len(m1.Terms) != len(m2.Terms) {
		t.Fatalf("Vocabulary size differs between runs: %d vs %d", len(m1.Terms), len(m2.Terms))
	}
	for i := range m1.Terms {
		if m1.Terms[i] != m2.Terms[i] {
			t.Errorf("Term order differs at %d: %s vs %s", i, m1.Terms[i], m2.Terms[i])
		}
	}
	for i := 1; i < len(m1.Terms); i++ {
		if m1.Terms[i-1] >= m1.Terms[i] {
			t.Errorf("Terms not sorted: %s before %s", m1.Terms[i-1], m1.Terms[i])
		}
	}
}

func TestCosineIdenticalDocuments(t *testing.T) {
	m, ok := Vectorize([]string{"hello world", "hello world"})
	if !ok {
		t.Fatal("Vectorize failed")
	}

	sim := Cosine(m.Rows[0], m.Rows[1])
	if math.Abs(sim-1.0) > eps {
		t.Errorf("Identical documents cosine = %f, want 1.0", sim)
	}
}

func TestCosineDisjointDocuments(t *testing.T) {
	m, ok := Vectorize([]string{"cats purr softly", "dogs bark loudly"})
	if !ok {
		t.Fatal("Vectorize failed")
	}

	if sim := Cosine(m.Rows[0], m.Rows[1]); sim != 0 {
		t.Errorf("Disjoint-vocabulary cosine = %f, want 0", sim)
	}
}

func TestCosineZeroVector(t *testing.T) {
	if sim := Cosine(Vector{}, Vector{"a": 1}); sim != 0 {
		t.Errorf("Cosine with zero vector = %f, want 0", sim)
	}
}

func TestCosinePartialOverlapInRange(t *testing.T) {
	m, ok := Vectorize([]string{"shared unique-one", "shared unique-two"})
	if !ok {
		t.Fatal("Vectorize failed")
	}

	sim := Cosine(m.Rows[0], m.Rows[1])
	if sim <= 0 || sim >= 1 {
		t.Errorf("Partially overlapping cosine = %f, want value in (0, 1)", sim)
	}
}
