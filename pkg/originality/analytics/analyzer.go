// Package analytics aggregates corpus-level token statistics for
// reporting alongside the originality metrics.
package analytics

import "sort"

// Analyzer consumes one document's tokens at a time and accumulates
// corpus totals, term counts and document frequencies.
type Analyzer struct {
	totalDocs   int64
	totalTokens int64
	termCounts  map[string]int64
	docFreq     map[string]int64
}

// NewAnalyzer creates an empty analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		termCounts: make(map[string]int64),
		docFreq:    make(map[string]int64),
	}
}

// Process consumes one document's tokens.
func (a *Analyzer) Process(tokens []string) {
	a.totalDocs++

	seen := make(map[string]struct{})
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		a.termCounts[tok]++
		a.totalTokens++
		if _, ok := seen[tok]; !ok {
			seen[tok] = struct{}{}
			a.docFreq[tok]++
		}
	}
}

// Stats is an immutable snapshot of the aggregated corpus statistics.
type Stats struct {
	TotalDocs   int64
	TotalTokens int64
	VocabSize   int
	termCounts  map[string]int64
	docFreq     map[string]int64
}

// Snapshot returns the current statistics. Later Process calls do not
// affect a snapshot already taken.
func (a *Analyzer) Snapshot() Stats {
	terms := make(map[string]int64, len(a.termCounts))
	for term, count := range a.termCounts {
		terms[term] = count
	}
	df := make(map[string]int64, len(a.docFreq))
	for term, count := range a.docFreq {
		df[term] = count
	}

	return Stats{
		TotalDocs:   a.totalDocs,
		TotalTokens: a.totalTokens,
		VocabSize:   len(terms),
		termCounts:  terms,
		docFreq:     df,
	}
}

// TermCount is one vocabulary entry with its corpus statistics.
type TermCount struct {
	Term      string
	Count     int64
	DFPercent float64
}

// TopTerms returns the k most frequent terms, ties broken alphabetically
// so the ordering is stable across runs.
func (s Stats) TopTerms(k int) []TermCount {
	entries := make([]TermCount, 0, len(s.termCounts))
	for term, count := range s.termCounts {
		entry := TermCount{Term: term, Count: count}
		if s.TotalDocs > 0 {
			entry.DFPercent = 100 * float64(s.docFreq[term]) / float64(s.TotalDocs)
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Term < entries[j].Term
	})

	if k > 0 && len(entries) > k {
		entries = entries[:k]
	}
	return entries
}
