package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/cognicore/lexical/internal/corpusio"
	"github.com/cognicore/lexical/internal/logging"
	"github.com/cognicore/lexical/pkg/lexical"
	"github.com/cognicore/lexical/pkg/lexical/config"
	"github.com/cognicore/lexical/pkg/lexical/internalerr"
	"github.com/cognicore/lexical/pkg/lexical/inventory"
	"github.com/cognicore/lexical/pkg/lexical/store"
	"github.com/cognicore/lexical/pkg/lexical/store/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		slog.Error("lexical failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

type options struct {
	configPath  string
	corpusPath  string
	wordsPath   string
	outputPath  string
	encoding    string
	system      string
	inventory   string
	metrics     string
	storePath   string
	workers     int
	maxWords    int
	corpusPhon  bool
	phonOnly    bool
	listMetrics bool
	listRuns    int
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("lexical", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "YAML configuration file (optional)")
	fs.StringVar(&o.corpusPath, "corpus", "", "Corpus CSV file (required)")
	fs.StringVar(&o.wordsPath, "words", "", "Input word list CSV file (required)")
	fs.StringVar(&o.outputPath, "output", "", "Output CSV file (default: stdout)")
	fs.StringVar(&o.encoding, "encoding", "utf-8", "Output encoding: utf-8, utf-16 or utf-32")
	fs.StringVar(&o.system, "system", "", "Transcription system, overrides the configuration")
	fs.StringVar(&o.inventory, "inventory", "", "Custom phonetic system file (.csv or .yaml)")
	fs.StringVar(&o.metrics, "metrics", "", "Comma separated metric names, overrides the configuration")
	fs.StringVar(&o.storePath, "store", "", "SQLite database receiving completed runs")
	fs.IntVar(&o.workers, "workers", 0, "Words computed concurrently, overrides the configuration")
	fs.IntVar(&o.maxWords, "max-words", 0, "Read at most this many input words (0 = all)")
	fs.BoolVar(&o.corpusPhon, "corpus-phon", true, "Corpus has a phonology column between spelling and frequency")
	fs.BoolVar(&o.phonOnly, "phon-only", false, "Word list holds transcriptions only")
	fs.BoolVar(&o.listMetrics, "list-metrics", false, "Print the metric names and exit")
	fs.IntVar(&o.listRuns, "list-runs", 0, "Print the most recent stored runs and exit")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.listMetrics || o.listRuns > 0 {
		return o, nil
	}
	if o.corpusPath == "" {
		return o, fmt.Errorf("%w: --corpus required", internalerr.ErrInvalidInput)
	}
	if o.wordsPath == "" {
		return o, fmt.Errorf("%w: --words required", internalerr.ErrInvalidInput)
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if o.listMetrics {
		for _, name := range config.MetricNames() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	log := logging.New(cfg.Log, stderr)

	var st store.Store
	if cfg.StorePath != "" {
		if st, err = sqlite.OpenSQLite(ctx, cfg.StorePath); err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
	}
	if o.listRuns > 0 {
		return listRuns(ctx, st, o.listRuns, stdout)
	}

	sel, err := cfg.Selection()
	if err != nil {
		return err
	}
	inv, err := resolveInventory(cfg)
	if err != nil {
		return fmt.Errorf("load inventory: %w", err)
	}
	rows, err := corpusio.LoadCorpus(o.corpusPath, o.corpusPhon)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	words, err := corpusio.LoadWords(o.wordsPath, o.phonOnly, o.maxWords)
	if err != nil {
		return fmt.Errorf("load words: %w", err)
	}
	enc, err := corpusio.ParseOutputEncoding(o.encoding)
	if err != nil {
		return err
	}
	log.Debug("inputs loaded",
		slog.Int("corpus_rows", len(rows)),
		slog.Int("words", len(words)),
		slog.String("system", cfg.System),
	)

	engine := lexical.New(lexical.Options{
		Inventory: inv,
		Corpus:    rows,
		Words:     words,
		Selection: sel,
		Workers:   cfg.Workers,
		Logger:    log,
		Store:     st,
	})
	res, err := engine.Run(ctx, func(done, total int) {
		if done%100 == 0 || done == total {
			log.Debug("progress", slog.Int("done", done), slog.Int("total", total))
		}
	})
	if err != nil {
		return err
	}

	out := stdout
	if o.outputPath != "" {
		f, err := os.Create(o.outputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := corpusio.WriteCSV(out, enc, res.Header, res.Rows()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// loadConfig applies flag overrides on top of the configuration file.
func loadConfig(o options) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.system != "" {
		cfg.System = o.system
	}
	if o.inventory != "" {
		cfg.InventoryPath = o.inventory
		if o.system == "" {
			cfg.System = string(inventory.Custom)
		}
	}
	if o.metrics != "" {
		cfg.Metrics = strings.Split(o.metrics, ",")
	}
	if o.workers > 0 {
		cfg.Workers = o.workers
	}
	if o.storePath != "" {
		cfg.StorePath = o.storePath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveInventory(cfg *config.Config) (*inventory.Inventory, error) {
	sys, err := inventory.ParseSystem(cfg.System)
	if err != nil {
		return nil, err
	}
	if sys != inventory.Custom {
		return inventory.Predefined(sys)
	}
	switch strings.ToLower(filepath.Ext(cfg.InventoryPath)) {
	case ".yaml", ".yml":
		return config.LoadInventory(cfg.InventoryPath)
	default:
		return corpusio.LoadInventory(cfg.InventoryPath)
	}
}

func listRuns(ctx context.Context, st store.Store, limit int, w io.Writer) error {
	if st == nil {
		return fmt.Errorf("%w: --list-runs needs --store", internalerr.ErrInvalidInput)
	}
	runs, err := st.ListRuns(ctx, limit)
	if err != nil {
		return err
	}
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.System, r.Words)
	}
	return nil
}
