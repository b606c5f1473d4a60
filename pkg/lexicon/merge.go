package lexicon

// ErrEmptyEntry is returned when a candidate with no fields reaches the
// merger. The source normalizer drops such rows before they get here.
var ErrEmptyEntry = &MergeError{"entry has no non-empty fields"}

// MergeError is a typed error for merge operations.
type MergeError struct{ msg string }

func (e *MergeError) Error() string { return e.msg }

// MergeStats counts the outcomes of applied candidates.
type MergeStats struct {
	Inserted   int
	Merged     int
	Duplicates int
}

// Merger folds normalized candidates into a single growing table. Sources
// must be applied in declared priority order: once a field is set on a row,
// later candidates never change it (first writer wins per field), so the
// order decides which source fills a field first. Re-running the same ordered
// inputs reproduces the same table.
//
// The merger exclusively owns the table for the duration of a run; it is not
// safe for concurrent use.
type Merger struct {
	table *Table
	stats MergeStats
}

// NewMerger creates a merger that appends to t.
func NewMerger(t *Table) *Merger {
	return &Merger{table: t}
}

// Apply resolves one candidate and mutates the table accordingly. Fields
// already present on a merge target are left untouched; only absent fields
// are filled from the candidate. Duplicates leave the table unchanged.
func (m *Merger) Apply(cand Entry) (Decision, error) {
	if cand.IsZero() {
		return InsertNew, ErrEmptyEntry
	}

	dec, idx := Resolve(m.table, cand)
	switch dec {
	case InsertNew:
		m.table.Append(cand)
		m.stats.Inserted++
	case MergeInto:
		for _, f := range Fields {
			if v := cand.Get(f); v != "" && m.table.At(idx).Get(f) == "" {
				m.table.SetField(idx, f, v)
			}
		}
		m.stats.Merged++
	case Duplicate:
		m.stats.Duplicates++
	}
	return dec, nil
}

// Stats returns the outcome counters accumulated so far.
func (m *Merger) Stats() MergeStats { return m.stats }

// ResetStats clears the counters, typically between sources so callers can
// attribute outcomes per source.
func (m *Merger) ResetStats() { m.stats = MergeStats{} }

// Table returns the table the merger writes to.
func (m *Merger) Table() *Table { return m.table }
