package lexicon

// Decision is the outcome of resolving a candidate against the table.
type Decision int

const (
	// InsertNew appends the candidate as a fresh row.
	InsertNew Decision = iota
	// MergeInto fills absent fields on an existing row.
	MergeInto
	// Duplicate means the candidate contributes nothing new to its match
	// and must be dropped without mutating the table.
	Duplicate
)

// Resolve decides whether a candidate becomes a new row or merges into an
// existing one. Rows are scanned in insertion order and the first compatible
// row wins; no globally optimal match is searched for. A row is compatible
// when it shares at least one identical non-empty field with the candidate
// and no field present in both disagrees. Conflicting claims are never merged
// silently: a single disagreeing shared field forces a new row.
//
// When the first compatible row already holds every field the candidate
// carries, the candidate is a duplicate and the table is left untouched.
//
// The returned index is the target row for MergeInto and Duplicate; it is -1
// for InsertNew.
func Resolve(t *Table, cand Entry) (Decision, int) {
	for i, row := range t.entries {
		if !compatible(row, cand) {
			continue
		}
		if contributes(row, cand) {
			return MergeInto, i
		}
		return Duplicate, i
	}
	return InsertNew, -1
}

// compatible reports whether cand may merge into row: at least one shared
// identical non-empty field and no shared field with different values.
func compatible(row, cand Entry) bool {
	shared := false
	for _, f := range Fields {
		a, b := row.Get(f), cand.Get(f)
		if a == "" || b == "" {
			continue
		}
		if a != b {
			return false
		}
		shared = true
	}
	return shared
}

// contributes reports whether cand carries a field that is absent on row.
func contributes(row, cand Entry) bool {
	for _, f := range Fields {
		if cand.Get(f) != "" && row.Get(f) == "" {
			return true
		}
	}
	return false
}
