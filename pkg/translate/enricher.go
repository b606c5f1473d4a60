package translate

import (
	"log"
	"strings"
	"unicode/utf8"

	"github.com/roniwahyu/multibahasa/pkg/lexicon"
)

const (
	// DefaultMaxRunes rejects translation candidates longer than this; a
	// stopword gloss should be a short phrase, anything longer is noise.
	DefaultMaxRunes = 50
	// DefaultMaxTokens caps the number of words in a candidate.
	DefaultMaxTokens = 5
)

// Stats counts the outcomes of one enrichment pass.
type Stats struct {
	Examined int // rows with english absent and an Indonesian form present
	Filled   int
	Unmapped int // no dictionary entry for the form; the common case
	Rejected int // candidate found but failed validation
}

// Enricher fills absent english fields on a table in a single pass. Rows are
// only ever transitioned from absent to one non-empty value; present values
// are never touched and nothing is removed. An unmapped form is not an error:
// most of the table has no English equivalent by design.
type Enricher struct {
	Dict      Dictionary
	MaxRunes  int
	MaxTokens int
	// Logger, when set, gets a line per filled row. nil means no logging.
	Logger *log.Logger
}

// NewEnricher creates an enricher over the given dictionary with default
// validation thresholds.
func NewEnricher(dict Dictionary) *Enricher {
	return &Enricher{
		Dict:      dict,
		MaxRunes:  DefaultMaxRunes,
		MaxTokens: DefaultMaxTokens,
	}
}

// Enrich runs the pass over t and returns what happened.
func (e *Enricher) Enrich(t *lexicon.Table) Stats {
	var st Stats
	for i := 0; i < t.Len(); i++ {
		row := t.At(i)
		if row.English != "" {
			continue
		}

		// The formal register is the better lookup key when both are
		// present; colloquial spellings are noisier.
		form := row.Formal
		if form == "" {
			form = row.Colloquial
		}
		if form == "" {
			continue
		}
		st.Examined++

		cand, ok := e.Dict.Lookup(form)
		if !ok {
			st.Unmapped++
			continue
		}
		cand = strings.TrimSpace(cand)
		if !e.valid(cand, form) {
			st.Rejected++
			continue
		}

		t.SetField(i, lexicon.English, cand)
		st.Filled++
		if e.Logger != nil {
			e.Logger.Printf("translated %q -> %q", form, cand)
		}
	}
	return st
}

// valid applies the acceptance rules to an already-trimmed candidate
// translation for the given source form.
func (e *Enricher) valid(cand, form string) bool {
	if cand == "" {
		return false
	}
	maxRunes := e.MaxRunes
	if maxRunes <= 0 {
		maxRunes = DefaultMaxRunes
	}
	if utf8.RuneCountInString(cand) > maxRunes {
		return false
	}
	maxTokens := e.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	if len(strings.Fields(cand)) > maxTokens {
		return false
	}
	// A candidate identical to its source form means the translation
	// effectively failed upstream.
	return cand != form
}
