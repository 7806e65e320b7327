package store

import (
	"context"
	"time"
)

// Store persists corpus documents between ingestion and scoring. Only the
// source documents are stored; computed scores are never persisted.
type Store interface {
	Close() error

	// UpsertDoc inserts the document, or replaces the body of an existing
	// document with the same source while keeping its ID.
	UpsertDoc(ctx context.Context, d Doc) error
	GetDoc(ctx context.Context, id string) (Doc, error)
	GetDocBySource(ctx context.Context, source string) (Doc, bool, error)

	// ListDocs returns all documents in ingestion order, so a stored
	// corpus always scores as the same document sequence.
	ListDocs(ctx context.Context) ([]Doc, error)
	CountDocs(ctx context.Context) (int64, error)
}

// Doc represents a stored corpus document
type Doc struct {
	ID         string // ULID assigned at ingest time
	Source     string // path or URL the text was extracted from
	Title      string
	Body       string
	IngestedAt time.Time
}
