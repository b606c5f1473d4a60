package lexicon

// Table is the ordered lexicon under construction. Insertion order is
// preserved so that identical inputs reproduce identical output byte for
// byte. Rows are appended by the merge engine and filled in place by the
// translation enricher; rows are never removed.
type Table struct {
	entries []Entry
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.entries) }

// At returns the row at index i.
func (t *Table) At(i int) Entry { return t.entries[i] }

// Append adds a new row at the end of the table.
func (t *Table) Append(e Entry) { t.entries = append(t.entries, e) }

// SetField sets a single field on the row at index i.
func (t *Table) SetField(i int, f Field, v string) {
	t.entries[i].Set(f, v)
}

// Entries returns the rows in insertion order. The returned slice is the
// table's backing storage; callers must not mutate it.
func (t *Table) Entries() []Entry { return t.entries }
