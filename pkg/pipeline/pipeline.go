// Package pipeline drives one full lexicon build: sources are normalized and
// merged in priority order, the table is enriched with English translations,
// and the result is handed back with everything the summary report needs.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/roniwahyu/multibahasa/pkg/config"
	"github.com/roniwahyu/multibahasa/pkg/export"
	"github.com/roniwahyu/multibahasa/pkg/lexicon"
	"github.com/roniwahyu/multibahasa/pkg/source"
	"github.com/roniwahyu/multibahasa/pkg/translate"
)

// SourceResult is what happened to one processed source.
type SourceResult struct {
	Name     string
	Priority int
	Read     source.Stats
	Merge    lexicon.MergeStats
}

// SkippedSource records a source that could not be read at all. The pipeline
// keeps going, but the omission is never silent.
type SkippedSource struct {
	Name string
	Err  error
}

// Result is the outcome of a full pipeline run.
type Result struct {
	Table    *lexicon.Table
	Sources  []SourceResult
	Skipped  []SkippedSource
	Enriched bool
	Enrich   translate.Stats
	Coverage export.Coverage
}

// Pipeline builds a lexicon table from the configured sources. The run is a
// single linear pass; the table is owned by the run until it is returned.
type Pipeline struct {
	Config *config.Config
	// Dict is the translation dictionary injected into the enricher.
	// nil selects the curated default.
	Dict translate.Dictionary
	// Logger gets progress lines. nil means no logging.
	Logger *log.Logger
}

// New creates a pipeline for cfg.
func New(cfg *config.Config) *Pipeline {
	return &Pipeline{Config: cfg}
}

// Run executes merge and enrich and returns the finished table with its run
// statistics. The context is only checked between sources: no single source's
// processing is unbounded, so that is the natural cancellation boundary.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	res := &Result{Table: lexicon.NewTable()}
	merger := lexicon.NewMerger(res.Table)

	for _, src := range p.Config.SourcesByPriority() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		stats, mstats, err := p.processSource(src, merger)
		if err != nil {
			if p.Logger != nil {
				p.Logger.Printf("skipping source %s: %v", src.Name, err)
			}
			res.Skipped = append(res.Skipped, SkippedSource{Name: src.Name, Err: err})
			continue
		}
		res.Sources = append(res.Sources, SourceResult{
			Name:     src.Name,
			Priority: src.Priority,
			Read:     stats,
			Merge:    mstats,
		})
		if p.Logger != nil {
			p.Logger.Printf("source %s: %d rows read, %d inserted, %d merged",
				src.Name, stats.RowsRead, mstats.Inserted, mstats.Merged)
		}
	}

	if p.Config.Translate.Enabled {
		dict := p.Dict
		if dict == nil {
			dict = translate.DefaultDictionary()
		}
		enr := translate.NewEnricher(dict)
		enr.MaxRunes = p.Config.Translate.MaxRunes
		enr.MaxTokens = p.Config.Translate.MaxTokens
		res.Enrich = enr.Enrich(res.Table)
		res.Enriched = true
	}

	res.Coverage = export.Cover(res.Table)
	return res, nil
}

// processSource opens, normalizes, and folds one raw source. The file handle
// is released on every exit path.
func (p *Pipeline) processSource(src config.Source, merger *lexicon.Merger) (source.Stats, lexicon.MergeStats, error) {
	f, err := os.Open(src.Path)
	if err != nil {
		return source.Stats{}, lexicon.MergeStats{}, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()

	r, err := source.NewReader(f, src.Mapping(), src.CategoryColumn)
	if err != nil {
		return source.Stats{}, lexicon.MergeStats{}, fmt.Errorf("read source %s: %w", src.Path, err)
	}

	merger.ResetStats()
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return source.Stats{}, lexicon.MergeStats{}, fmt.Errorf("source %s: %w", src.Path, err)
		}
		if _, err := merger.Apply(rec.Entry); err != nil {
			// The normalizer never emits empty entries; anything else
			// here is a programming error worth surfacing.
			return source.Stats{}, lexicon.MergeStats{}, fmt.Errorf("merge %s: %w", src.Path, err)
		}
	}
	return r.Stats(), merger.Stats(), nil
}
