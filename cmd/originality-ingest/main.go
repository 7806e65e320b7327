// Command originality-ingest extracts text from the given files and
// stores them in a SQLite corpus database for later scoring.
package main

import (
	"context"
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/oklog/ulid/v2"

	"github.com/cognicore/originality/internal/extract"
	"github.com/cognicore/originality/pkg/originality/store"
	"github.com/cognicore/originality/pkg/originality/store/sqlite"
)

func main() {
	_ = godotenv.Load()

	dbPath := flag.String("db", envOr("ORIGINALITY_DB", "originality.db"), "SQLite corpus database path")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: originality-ingest [flags] FILE...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	ctx := context.Background()

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open corpus %s: %v", *dbPath, err)
	}
	defer st.Close()

	entropy := ulid.Monotonic(rand.Reader, 0)
	ingested := 0

	for _, path := range paths {
		text, err := extract.FromFile(path)
		if err != nil {
			log.Fatal(err)
		}

		doc := store.Doc{
			ID:         ulid.MustNew(ulid.Now(), entropy).String(),
			Source:     path,
			Title:      strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
			Body:       text,
			IngestedAt: time.Now().UTC(),
		}
		if err := st.UpsertDoc(ctx, doc); err != nil {
			log.Fatalf("store %s: %v", path, err)
		}

		ingested++
		log.Printf("ingested %s (%d bytes)", path, len(text))
	}

	total, err := st.CountDocs(ctx)
	if err != nil {
		log.Fatalf("count docs: %v", err)
	}
	log.Printf("✓ ingested %d files; corpus %s now holds %d documents", ingested, *dbPath, total)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
