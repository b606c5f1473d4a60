package pipeline

import (
	"fmt"
	"strings"
)

// Report renders the run summary as a line-per-metric plain-text block.
// Data-quality outcomes (rejected, duplicates, unmapped translations) are
// reported separately from I/O failures (skipped sources) so operators can
// tell gaps in the data from infrastructure faults.
func (r *Result) Report() string {
	var b strings.Builder

	b.WriteString("=== lexicon build summary ===\n")
	for _, s := range r.Sources {
		fmt.Fprintf(&b, "source %s (priority %d):\n", s.Name, s.Priority)
		fmt.Fprintf(&b, "  rows read: %d\n", s.Read.RowsRead)
		fmt.Fprintf(&b, "  rows normalized: %d\n", s.Read.RowsRead-s.Read.Malformed-s.Read.Rejected)
		fmt.Fprintf(&b, "  rows inserted: %d\n", s.Merge.Inserted)
		fmt.Fprintf(&b, "  rows merged: %d\n", s.Merge.Merged)
		fmt.Fprintf(&b, "  rows skipped as duplicate: %d\n", s.Merge.Duplicates)
		fmt.Fprintf(&b, "  rows rejected (empty): %d\n", s.Read.Rejected)
		fmt.Fprintf(&b, "  rows malformed: %d\n", s.Read.Malformed)
	}

	if len(r.Skipped) > 0 {
		b.WriteString("sources skipped due to I/O errors:\n")
		for _, s := range r.Skipped {
			fmt.Fprintf(&b, "  %s: %v\n", s.Name, s.Err)
		}
	}

	if r.Enriched {
		b.WriteString("translation enrichment:\n")
		fmt.Fprintf(&b, "  rows examined: %d\n", r.Enrich.Examined)
		fmt.Fprintf(&b, "  english filled: %d\n", r.Enrich.Filled)
		fmt.Fprintf(&b, "  unmapped (left absent): %d\n", r.Enrich.Unmapped)
		fmt.Fprintf(&b, "  rejected candidates: %d\n", r.Enrich.Rejected)
	}

	b.WriteString(r.Coverage.Report())
	return b.String()
}
