// Package sqlite implements the corpus store on a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/originality/pkg/originality/internalerr"
	"github.com/cognicore/originality/pkg/originality/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if necessary) a SQLite corpus database with WAL
// mode enabled.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS docs (
	id TEXT PRIMARY KEY,
	source TEXT UNIQUE NOT NULL,
	title TEXT,
	body TEXT NOT NULL,
	ingested_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_docs_ingested_at ON docs(ingested_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertDoc inserts or updates a document, keyed by source. An existing
// document keeps its original ID.
func (s *sqliteStore) UpsertDoc(ctx context.Context, d store.Doc) error {
	if d.ID == "" || d.Source == "" {
		return fmt.Errorf("%w: doc needs both ID and source", internalerr.ErrInvalidInput)
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO docs (id, source, title, body, ingested_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(source) DO UPDATE SET
	title = excluded.title,
	body = excluded.body,
	ingested_at = excluded.ingested_at`,
		d.ID, d.Source, d.Title, d.Body, d.IngestedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("upsert doc %s: %w", d.Source, err)
	}
	return nil
}

// GetDoc returns a document by ID.
func (s *sqliteStore) GetDoc(ctx context.Context, id string) (store.Doc, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, source, title, body, ingested_at FROM docs WHERE id = ?", id)

	doc, err := scanDoc(row)
	if err == sql.ErrNoRows {
		return store.Doc{}, fmt.Errorf("doc %s: %w", id, internalerr.ErrNotFound)
	}
	if err != nil {
		return store.Doc{}, err
	}
	return doc, nil
}

// GetDocBySource returns a document by its source path or URL.
func (s *sqliteStore) GetDocBySource(ctx context.Context, source string) (store.Doc, bool, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, source, title, body, ingested_at FROM docs WHERE source = ?", source)

	doc, err := scanDoc(row)
	if err == sql.ErrNoRows {
		return store.Doc{}, false, nil
	}
	if err != nil {
		return store.Doc{}, false, err
	}
	return doc, true, nil
}

// ListDocs returns all documents ordered by ingestion time, then ID.
func (s *sqliteStore) ListDocs(ctx context.Context) ([]store.Doc, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, source, title, body, ingested_at FROM docs ORDER BY ingested_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []store.Doc
	for rows.Next() {
		doc, err := scanDoc(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// CountDocs returns the number of stored documents.
func (s *sqliteStore) CountDocs(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM docs").Scan(&n)
	return n, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDoc(row scanner) (store.Doc, error) {
	var doc store.Doc
	var ingestedAt string
	if err := row.Scan(&doc.ID, &doc.Source, &doc.Title, &doc.Body, &ingestedAt); err != nil {
		return store.Doc{}, err
	}

	t, err := time.Parse(time.RFC3339Nano, ingestedAt)
	if err != nil {
		return store.Doc{}, fmt.Errorf("parse ingested_at for %s: %w", doc.ID, err)
	}
	doc.IngestedAt = t
	return doc, nil
}
