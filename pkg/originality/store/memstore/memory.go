// Package memstore provides an in-memory corpus store for tests and
// ephemeral runs.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/originality/pkg/originality/internalerr"
	"github.com/cognicore/originality/pkg/originality/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu          sync.RWMutex
	docs        map[string]store.Doc
	sourceIndex map[string]string
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		docs:        make(map[string]store.Doc),
		sourceIndex: make(map[string]string),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertDoc inserts or updates a document, keyed by source. An existing
// document keeps its original ID.
func (s *Store) UpsertDoc(ctx context.Context, d store.Doc) error {
	if d.ID == "" || d.Source == "" {
		return fmt.Errorf("%w: doc needs both ID and source", internalerr.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existingID, ok := s.sourceIndex[d.Source]; ok {
		d.ID = existingID
	} else {
		s.sourceIndex[d.Source] = d.ID
	}

	s.docs[d.ID] = d
	return nil
}

// GetDoc returns a document by ID.
func (s *Store) GetDoc(ctx context.Context, id string) (store.Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return store.Doc{}, fmt.Errorf("doc %s: %w", id, internalerr.ErrNotFound)
	}
	return doc, nil
}

// GetDocBySource returns a document by its source path or URL.
func (s *Store) GetDocBySource(ctx context.Context, source string) (store.Doc, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.sourceIndex[source]
	if !ok {
		return store.Doc{}, false, nil
	}
	return s.docs[id], true, nil
}

// ListDocs returns all documents ordered by ingestion time, then ID.
func (s *Store) ListDocs(ctx context.Context) ([]store.Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]store.Doc, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].IngestedAt.Equal(docs[j].IngestedAt) {
			return docs[i].IngestedAt.Before(docs[j].IngestedAt)
		}
		return docs[i].ID < docs[j].ID
	})
	return docs, nil
}

// CountDocs returns the number of stored documents.
func (s *Store) CountDocs(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.docs)), nil
}
