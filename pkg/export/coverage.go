package export

import (
	"fmt"
	"strings"

	"github.com/roniwahyu/multibahasa/pkg/lexicon"
)

// Coverage holds per-field fill statistics for a table.
type Coverage struct {
	Total  int
	Counts map[lexicon.Field]int
}

// Cover computes coverage for t.
func Cover(t *lexicon.Table) Coverage {
	c := Coverage{
		Total:  t.Len(),
		Counts: make(map[lexicon.Field]int, len(lexicon.Fields)),
	}
	for i := 0; i < t.Len(); i++ {
		e := t.At(i)
		for _, f := range lexicon.Fields {
			if e.Get(f) != "" {
				c.Counts[f]++
			}
		}
	}
	return c
}

// Fraction returns the share of rows with a non-empty value for f. It is 0
// for an empty table.
func (c Coverage) Fraction(f lexicon.Field) float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Counts[f]) / float64(c.Total)
}

// Report renders the coverage as a line-per-metric plain-text block.
func (c Coverage) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rows: %d\n", c.Total)
	for _, f := range lexicon.Fields {
		fmt.Fprintf(&b, "coverage %s: %d (%.1f%%)\n", f, c.Counts[f], c.Fraction(f)*100)
	}
	return b.String()
}
