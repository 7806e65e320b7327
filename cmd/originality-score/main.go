// Command originality-score computes the human signal score for one or
// more text files, or for a previously ingested corpus database.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"

	"github.com/cognicore/originality/internal/extract"
	"github.com/cognicore/originality/pkg/originality"
	"github.com/cognicore/originality/pkg/originality/analytics"
	"github.com/cognicore/originality/pkg/originality/config"
	"github.com/cognicore/originality/pkg/originality/store/sqlite"
	"github.com/cognicore/originality/pkg/originality/tokenize"
)

// multiFlag collects repeated -w flags.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func main() {
	_ = godotenv.Load()

	var weightFlags multiFlag
	var (
		configPath = flag.String("config", os.Getenv("ORIGINALITY_CONFIG"), "Optional YAML config with component weights")
		dbPath     = flag.String("db", "", "Score an ingested corpus database instead of files")
		stats      = flag.Bool("stats", false, "Print corpus token statistics before the scores")
		watch      = flag.Bool("watch", false, "Re-score whenever an input file changes")
	)
	flag.Var(&weightFlags, "w", "Weight override key=value[,key=value], e.g. entropy=0.7,diversity=0.3")
	flag.Parse()

	paths := flag.Args()
	if *dbPath == "" && len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: originality-score [flags] FILE...")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if *dbPath != "" && *watch {
		log.Fatal("-watch applies to file inputs, not -db")
	}

	weights, err := loadWeights(*configPath, weightFlags)
	if err != nil {
		log.Fatalf("weights: %v", err)
	}

	texts, err := loadTexts(*dbPath, paths)
	if err != nil {
		log.Fatal(err)
	}

	report(os.Stdout, texts, weights, *stats)

	if *watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := watchAndRescore(ctx, paths, weights, *stats); err != nil {
			log.Fatalf("watch: %v", err)
		}
	}
}

// parseWeights parses key=value specs. Each spec may hold several
// comma-separated assignments. Later assignments win.
func parseWeights(specs []string) (map[string]float64, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	weights := make(map[string]float64)
	for _, spec := range specs {
		for _, item := range strings.Split(spec, ",") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			key, value, ok := strings.Cut(item, "=")
			if !ok {
				return nil, fmt.Errorf("invalid weight specification: %s", item)
			}
			f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid weight value for %s: %s", strings.TrimSpace(key), strings.TrimSpace(value))
			}
			weights[strings.TrimSpace(key)] = f
		}
	}
	return weights, nil
}

// loadWeights merges config-file weights with -w overrides. Returns nil
// when neither source supplies any weight, which makes the scorer use its
// defaults.
func loadWeights(configPath string, specs []string) (map[string]float64, error) {
	var weights map[string]float64

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		if len(cfg.Weights) > 0 {
			weights = make(map[string]float64, len(cfg.Weights))
			for k, v := range cfg.Weights {
				weights[k] = v
			}
		}
	}

	overrides, err := parseWeights(specs)
	if err != nil {
		return nil, err
	}
	if len(overrides) > 0 {
		if weights == nil {
			weights = make(map[string]float64, len(overrides))
		}
		for k, v := range overrides {
			weights[k] = v
		}
	}

	return weights, nil
}

func loadTexts(dbPath string, paths []string) ([]string, error) {
	if dbPath != "" {
		ctx := context.Background()
		st, err := sqlite.Open(ctx, dbPath)
		if err != nil {
			return nil, fmt.Errorf("open corpus %s: %w", dbPath, err)
		}
		defer st.Close()

		docs, err := st.ListDocs(ctx)
		if err != nil {
			return nil, fmt.Errorf("list corpus %s: %w", dbPath, err)
		}
		texts := make([]string, 0, len(docs))
		for _, d := range docs {
			texts = append(texts, d.Body)
		}
		return texts, nil
	}

	texts := make([]string, 0, len(paths))
	for _, path := range paths {
		text, err := extract.FromFile(path)
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, nil
}

func report(w io.Writer, texts []string, weights map[string]float64, stats bool) {
	if stats {
		printStats(w, texts)
	}
	printReport(w, originality.Evaluate(texts, weights))
}

func printReport(w io.Writer, rep originality.Report) {
	fmt.Fprintf(w, "Documents: %d\n", rep.Docs)
	fmt.Fprintf(w, "Token entropy (normalized): %.4f\n", rep.Entropy)
	fmt.Fprintf(w, "Perplexity (normalized):    %.4f\n", rep.Perplexity)
	fmt.Fprintf(w, "Embedding diversity:        %.4f\n", rep.Diversity)
	fmt.Fprintln(w, "--------------------------------")
	fmt.Fprintf(w, "Human Signal Score:         %.4f\n", rep.Score)
}

func printStats(w io.Writer, texts []string) {
	analyzer := analytics.NewAnalyzer()
	for _, text := range texts {
		analyzer.Process(tokenize.Tokenize(text))
	}

	s := analyzer.Snapshot()
	fmt.Fprintf(w, "Corpus tokens: %d (vocabulary %d)\n", s.TotalTokens, s.VocabSize)
	for _, tc := range s.TopTerms(10) {
		fmt.Fprintf(w, "  %-24s %6d  %5.1f%% of docs\n", tc.Term, tc.Count, tc.DFPercent)
	}
}

// watchAndRescore re-reads and re-scores all paths whenever one of them
// changes. Every pass is a full one-shot batch recompute; nothing is kept
// between passes. Runs until ctx is cancelled.
func watchAndRescore(ctx context.Context, paths []string, weights map[string]float64, stats bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}

	log.Printf("watching %d files for changes...", len(paths))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Editors often replace files on save, so catch Create too.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			texts, err := loadTexts("", paths)
			if err != nil {
				log.Printf("reload failed, keeping previous scores: %v", err)
				continue
			}

			log.Printf("change on %s, re-scoring", event.Name)
			report(os.Stdout, texts, weights, stats)

			// Re-add in case an atomic save replaced the inode.
			_ = watcher.Add(event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher error: %v", err)
		}
	}
}
