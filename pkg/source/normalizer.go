// Package source parses raw lexical source tables into normalized candidate
// entries. Each source declares which of its CSV columns feed which canonical
// lexicon field; everything else about a source is data, not code.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/roniwahyu/multibahasa/pkg/lexicon"
)

// Mapping declares which raw CSV columns (by header name) map to which
// canonical lexicon fields.
type Mapping map[string]lexicon.Field

// Record is one normalized row of a raw source. Category is a free-form tag
// (particle, pronoun, question word, ...) used only for reporting.
type Record struct {
	Entry    lexicon.Entry
	Category string
}

// Stats counts what happened to the raw rows of one source.
type Stats struct {
	RowsRead  int // raw data rows consumed, good or bad
	Malformed int // wrong column count or unparseable, skipped
	Rejected  int // parsed fine but normalized to zero non-empty fields
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize lowercases, trims, and collapses internal whitespace. Blank or
// whitespace-only input normalizes to the empty string, i.e. an absent field.
func Normalize(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return ""
	}
	return whitespaceRe.ReplaceAllString(s, " ")
}

// Reader streams normalized records out of one raw CSV source. Individual bad
// rows are skipped and counted, never fatal: the reader always gets through
// the whole source.
type Reader struct {
	cr        *csv.Reader
	fieldCols map[int]lexicon.Field
	catCol    int // -1 when the source has no category column
	headerLen int
	stats     Stats
}

// NewReader consumes the header row of r and resolves the declared mapping
// against it. A mapped column missing from the header is a configuration
// error, not a data error, and fails immediately.
func NewReader(r io.Reader, mapping Mapping, categoryColumn string) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[strings.TrimSpace(strings.ToLower(h))] = i
	}

	fieldCols := make(map[int]lexicon.Field, len(mapping))
	for col, field := range mapping {
		idx, ok := byName[strings.TrimSpace(strings.ToLower(col))]
		if !ok {
			return nil, fmt.Errorf("mapped column %q not present in source header", col)
		}
		fieldCols[idx] = field
	}
	if len(fieldCols) == 0 {
		return nil, fmt.Errorf("mapping resolves to no columns")
	}

	catCol := -1
	if categoryColumn != "" {
		if idx, ok := byName[strings.TrimSpace(strings.ToLower(categoryColumn))]; ok {
			catCol = idx
		}
		// A missing category column is harmless: the tag is reporting-only.
	}

	return &Reader{
		cr:        cr,
		fieldCols: fieldCols,
		catCol:    catCol,
		headerLen: len(header),
	}, nil
}

// Next returns the next normalized record. It returns io.EOF when the source
// is exhausted. Malformed and empty rows are consumed silently; only their
// counters are visible.
func (r *Reader) Next() (Record, error) {
	for {
		row, err := r.cr.Read()
		if err == io.EOF {
			return Record{}, io.EOF
		}
		if err != nil {
			// Unparseable line: count and keep going.
			r.stats.RowsRead++
			r.stats.Malformed++
			continue
		}
		r.stats.RowsRead++

		if len(row) != r.headerLen {
			r.stats.Malformed++
			continue
		}

		var e lexicon.Entry
		for idx, field := range r.fieldCols {
			if v := Normalize(row[idx]); v != "" {
				e.Set(field, v)
			}
		}
		if e.IsZero() {
			r.stats.Rejected++
			continue
		}

		rec := Record{Entry: e}
		if r.catCol >= 0 && r.catCol < len(row) {
			rec.Category = Normalize(row[r.catCol])
		}
		return rec, nil
	}
}

// Stats returns the counters accumulated so far. Call after Next has
// returned io.EOF for the totals of the whole source.
func (r *Reader) Stats() Stats { return r.stats }
