// Package lexical computes psycholinguistic metrics of words against a
// reference corpus of spellings, transcriptions and frequencies.
package lexical

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cognicore/lexical/pkg/lexical/corpus"
	"github.com/cognicore/lexical/pkg/lexical/internalerr"
	"github.com/cognicore/lexical/pkg/lexical/inventory"
	"github.com/cognicore/lexical/pkg/lexical/metrics"
	"github.com/cognicore/lexical/pkg/lexical/neighbours"
	"github.com/cognicore/lexical/pkg/lexical/record"
	"github.com/cognicore/lexical/pkg/lexical/store"
	"github.com/cognicore/lexical/pkg/lexical/stress"
	"github.com/cognicore/lexical/pkg/lexical/tokenize"
)

// Engine is the main metrics facade
type Engine struct {
	inv     *inventory.Inventory
	rows    []corpus.Row
	words   []metrics.InputWord
	sel     metrics.Selection
	workers int
	log     *slog.Logger
	store   store.Store
	ids     *store.IDs

	calc     *metrics.Calculator
	prepared []metrics.Prepared
}

// Options configures an Engine
type Options struct {
	// Inventory is required when any metric works on transcriptions.
	Inventory *inventory.Inventory
	Corpus    []corpus.Row
	Words     []metrics.InputWord
	Selection metrics.Selection
	// Workers bounds the words computed concurrently. Defaults to 1.
	Workers int
	Logger  *slog.Logger
	// Store, when set, receives every completed run.
	Store store.Store
}

// Result is the output of one run, one record per input word in input
// order.
type Result struct {
	RunID   string
	Header  []string
	Records []record.Record
}

// Rows renders every record with undefined values as "NULL".
func (r Result) Rows() [][]string {
	out := make([][]string, len(r.Records))
	for i, rec := range r.Records {
		out[i] = rec.Strings()
	}
	return out
}

// Progress is called after each completed word.
type Progress func(done, total int)

// New creates an Engine with the given dependencies
func New(opts Options) *Engine {
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		inv:     opts.Inventory,
		rows:    opts.Corpus,
		words:   opts.Words,
		sel:     opts.Selection,
		workers: workers,
		log:     log,
		store:   opts.Store,
		ids:     store.NewIDs(),
	}
}

// Header returns the column names of the records.
func (e *Engine) Header() []string { return e.sel.Header() }

// Prepare validates the inputs, builds the indices and tokenizes every
// corpus row and input word. The first string that cannot be tokenized
// aborts preparation before any metric is computed.
func (e *Engine) Prepare() error {
	start := time.Now()
	if err := e.precheck(); err != nil {
		return err
	}

	sel := e.sel
	needPhonIndex := sel.Phon.Any() || sel.Phonographic.Any()

	var (
		orthSeg  *tokenize.Orthographic
		phonTok  *tokenize.Tokenizer
		orthIdx  *corpus.Index
		phonIdx  *corpus.Index
		cross    *corpus.CrossMap
		orthFace *metrics.Orthographic
		phonFace *metrics.Phonological
		graph    *metrics.Phonographic
		st       *metrics.Stress
		err      error
	)

	if sel.NeedsOrth() {
		orthSeg = tokenize.NewOrthographic()
		if orthIdx, err = corpus.BuildOrthographic(e.rows, orthSeg); err != nil {
			return fmt.Errorf("orthographic corpus: %w", err)
		}
		if sel.Orth.OLD20 && orthIdx.Len() < neighbours.NearestCount {
			return fmt.Errorf("OLD-20: %w (have %d)", internalerr.ErrInsufficientCorpus, orthIdx.Len())
		}
		orthFace = metrics.NewOrthographic(orthIdx)
	}

	if needPhonIndex {
		phonTok = tokenize.New(e.inv)
		if phonIdx, err = corpus.BuildPhonological(e.rows, phonTok); err != nil {
			return fmt.Errorf("phonological corpus: %w", err)
		}
		if sel.Phon.PLD20 && phonIdx.Len() < neighbours.NearestCount {
			return fmt.Errorf("PLD-20: %w (have %d)", internalerr.ErrInsufficientCorpus, phonIdx.Len())
		}
		cross = corpus.BuildCrossMap(e.rows)
		phonFace = metrics.NewPhonological(phonIdx, phonTok, cross)
	}

	if sel.Phonographic.Any() {
		pairs, err := corpus.BuildPairs(e.rows, orthIdx, phonIdx)
		if err != nil {
			return fmt.Errorf("phonographic corpus: %w", err)
		}
		graph = metrics.NewPhonographic(orthFace, phonFace, cross, pairs)
	}

	var stressTok *tokenize.Tokenizer
	if sel.Stress.Any() {
		stressTok = tokenize.New(e.inv, tokenize.WithStress())
		model, err := stress.NewModel(stressTok)
		if err != nil {
			return err
		}
		ref, err := tokenizeReference(e.rows, stressTok)
		if err != nil {
			return fmt.Errorf("stress reference: %w", err)
		}
		st = metrics.NewStress(model, ref)
	}

	prepared := make([]metrics.Prepared, len(e.words))
	for i, w := range e.words {
		p := metrics.Prepared{Input: w}
		if orthSeg != nil {
			if p.Orth, err = orthSeg.Tokenize(w.Orth); err != nil {
				return fmt.Errorf("input word %d: %w", i+1, err)
			}
		}
		if phonTok != nil {
			if p.Phon, err = phonTok.Tokenize(w.Phon); err != nil {
				return fmt.Errorf("input word %d: %w", i+1, err)
			}
		}
		if stressTok != nil {
			if p.Stress, err = stressTok.Tokenize(w.Phon); err != nil {
				return fmt.Errorf("input word %d: %w", i+1, err)
			}
		}
		prepared[i] = p
	}

	e.calc = metrics.NewCalculator(sel, orthFace, phonFace, graph, st)
	e.prepared = prepared

	attrs := []any{
		slog.Int("corpus_rows", len(e.rows)),
		slog.Int("words", len(prepared)),
		slog.Duration("duration", time.Since(start)),
	}
	if orthIdx != nil {
		attrs = append(attrs, slog.Int("orthographic_entries", orthIdx.Len()))
	}
	if phonIdx != nil {
		attrs = append(attrs, slog.Int("phonological_entries", phonIdx.Len()))
	}
	e.log.Info("prepared corpus", attrs...)
	return nil
}

// precheck rejects selections the inputs cannot satisfy.
func (e *Engine) precheck() error {
	sel := e.sel
	if !sel.Any() {
		return internalerr.ErrNoMetrics
	}
	if sel.NeedsPhon() && e.inv == nil {
		return fmt.Errorf("%w: transcription metrics need an inventory", internalerr.ErrInvalidInput)
	}
	if sel.Stress.Any() && !e.inv.SupportsStress() {
		return fmt.Errorf("%s: %w", e.inv.System(), internalerr.ErrStressUnsupported)
	}

	var hasOrth, hasPhon bool
	for _, w := range e.words {
		hasOrth = hasOrth || w.Orth != ""
		hasPhon = hasPhon || w.Phon != ""
	}
	if sel.NeedsOrth() && !hasOrth {
		return fmt.Errorf("%w: orthographic metrics selected without orthographic words", internalerr.ErrInvalidInput)
	}
	if sel.NeedsPhon() && !hasPhon {
		return fmt.Errorf("%w: phonological metrics selected without phonological words", internalerr.ErrInvalidInput)
	}
	return nil
}

// tokenizeReference tokenizes every corpus transcription, duplicates
// included.
func tokenizeReference(rows []corpus.Row, tok *tokenize.Tokenizer) ([]tokenize.Word, error) {
	out := make([]tokenize.Word, 0, len(rows))
	for _, r := range rows {
		w, err := tok.Tokenize(r.Phon)
		if err != nil {
			return nil, err
		}
		if !w.Empty() {
			out = append(out, w)
		}
	}
	return out, nil
}

// Run computes one record per input word. Prepare is called first when
// it has not been. Cancelling ctx stops the run between two words and
// yields ErrAborted. progress may be nil.
func (e *Engine) Run(ctx context.Context, progress Progress) (Result, error) {
	if e.calc == nil {
		if err := e.Prepare(); err != nil {
			return Result{}, err
		}
	}
	start := time.Now()
	total := len(e.prepared)
	records := make([]record.Record, total)

	var (
		mu   sync.Mutex
		done int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := range e.prepared {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, err := e.calc.Record(e.prepared[i])
			if err != nil {
				return fmt.Errorf("word %d: %w", i+1, err)
			}
			records[i] = rec

			if progress != nil {
				mu.Lock()
				done++
				progress(done, total)
				mu.Unlock()
			}
			return nil
		})
	}
	err := g.Wait()
	if ctx.Err() != nil {
		e.log.Warn("run aborted", slog.Int("words", total))
		return Result{}, fmt.Errorf("%w: %v", internalerr.ErrAborted, ctx.Err())
	}
	if err != nil {
		return Result{}, err
	}

	res := Result{Header: e.Header(), Records: records}
	if e.store != nil {
		now := time.Now().UTC()
		res.RunID = e.ids.Next(now)
		run := store.Run{
			ID:        res.RunID,
			System:    e.systemName(),
			CreatedAt: now,
			Header:    res.Header,
			Rows:      res.Rows(),
		}
		if err := e.store.SaveRun(ctx, run); err != nil {
			return Result{}, fmt.Errorf("save run: %w", err)
		}
	}

	e.log.Info("run completed",
		slog.Int("words", total),
		slog.Int("workers", e.workers),
		slog.String("run_id", res.RunID),
		slog.Duration("duration", time.Since(start)),
	)
	return res, nil
}

func (e *Engine) systemName() string {
	if e.inv == nil {
		return ""
	}
	return string(e.inv.System())
}
