package lexicon

import (
	"reflect"
	"testing"
)

func applyAll(t *testing.T, m *Merger, entries []Entry) {
	t.Helper()
	for _, e := range entries {
		if _, err := m.Apply(e); err != nil {
			t.Fatalf("apply %+v: %v", e, err)
		}
	}
}

func TestMergeFillsAbsentField(t *testing.T) {
	// Scenario: a bare colloquial term arrives first, a lower-priority
	// source later supplies the english equivalent for the same term.
	tbl := NewTable()
	m := NewMerger(tbl)
	applyAll(t, m, []Entry{
		{Colloquial: "bgt"},
		{Colloquial: "bgt", English: "very"},
	})

	if tbl.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", tbl.Len())
	}
	want := Entry{Colloquial: "bgt", English: "very"}
	if tbl.At(0) != want {
		t.Fatalf("expected %+v, got %+v", want, tbl.At(0))
	}
	if s := m.Stats(); s.Inserted != 1 || s.Merged != 1 {
		t.Fatalf("unexpected stats: %+v", s)
	}
}

func TestMergeConflictInsertsSecondRow(t *testing.T) {
	tbl := NewTable()
	m := NewMerger(tbl)
	applyAll(t, m, []Entry{
		{Colloquial: "ini", English: "this"},
		{Colloquial: "ini", English: "that"},
	})

	if tbl.Len() != 2 {
		t.Fatalf("expected 2 rows for conflicting groupings, got %d", tbl.Len())
	}
	if tbl.At(0).English != "this" || tbl.At(1).English != "that" {
		t.Fatalf("rows out of order: %+v, %+v", tbl.At(0), tbl.At(1))
	}
}

func TestMergeFirstWriterWinsPerField(t *testing.T) {
	tbl := NewTable()
	m := NewMerger(tbl)
	applyAll(t, m, []Entry{
		{Colloquial: "banget", Formal: "sangat"},
		// Shares both fields with identical values plus a new one: the
		// existing values must survive and only javanese is filled.
		{Colloquial: "banget", Formal: "sangat", Javanese: "banget"},
	})

	if tbl.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", tbl.Len())
	}
	got := tbl.At(0)
	if got.Formal != "sangat" || got.Javanese != "banget" {
		t.Fatalf("unexpected row: %+v", got)
	}
}

func TestMergeDuplicateDoesNotMutate(t *testing.T) {
	tbl := NewTable()
	m := NewMerger(tbl)
	applyAll(t, m, []Entry{
		{Colloquial: "bgt", English: "very"},
		{Colloquial: "bgt", English: "very"},
	})

	if tbl.Len() != 1 {
		t.Fatalf("expected duplicate to be dropped, got %d rows", tbl.Len())
	}
	if s := m.Stats(); s.Duplicates != 1 {
		t.Fatalf("expected 1 duplicate counted, got %+v", s)
	}
}

func TestMergeRejectsEmptyEntry(t *testing.T) {
	m := NewMerger(NewTable())
	if _, err := m.Apply(Entry{}); err != ErrEmptyEntry {
		t.Fatalf("expected ErrEmptyEntry, got %v", err)
	}
	if m.Table().Len() != 0 {
		t.Fatal("empty entry must never reach the table")
	}
}

func TestMergeIdempotence(t *testing.T) {
	inputs := []Entry{
		{Colloquial: "bgt"},
		{Colloquial: "bgt", English: "very"},
		{Colloquial: "ini", English: "this"},
		{Colloquial: "ini", English: "that"},
		{Formal: "sangat", Javanese: "banget"},
		{Colloquial: "gimana", Formal: "bagaimana"},
		{Formal: "bagaimana", English: "how"},
	}

	run := func() []Entry {
		tbl := NewTable()
		m := NewMerger(tbl)
		for _, e := range inputs {
			if _, err := m.Apply(e); err != nil {
				t.Fatalf("apply: %v", err)
			}
		}
		return append([]Entry(nil), tbl.Entries()...)
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("merge is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}

	// Folding the finished table's own rows back in must change nothing:
	// every row resolves to a duplicate of itself.
	tbl := NewTable()
	m := NewMerger(tbl)
	for _, e := range first {
		if _, err := m.Apply(e); err != nil {
			t.Fatalf("apply: %v", err)
		}
	}
	m.ResetStats()
	for _, e := range first {
		if _, err := m.Apply(e); err != nil {
			t.Fatalf("re-apply: %v", err)
		}
	}
	if got := tbl.Entries(); !reflect.DeepEqual(got, first) {
		t.Fatalf("re-applying finished rows mutated the table:\nwant: %+v\ngot:  %+v", first, got)
	}
	if s := m.Stats(); s.Inserted != 0 || s.Merged != 0 {
		t.Fatalf("expected only duplicates on re-apply, got %+v", s)
	}
}

func TestTableInvariants(t *testing.T) {
	inputs := []Entry{
		{Colloquial: "bgt"},
		{Colloquial: "bgt", English: "very"},
		{Colloquial: "ini", English: "this"},
		{Colloquial: "ini", English: "that"},
		{Formal: "sangat"},
		{Formal: "sangat"},
	}
	tbl := NewTable()
	m := NewMerger(tbl)
	applyAll(t, m, inputs)

	// Validity: every row has at least one non-empty field.
	for i := 0; i < tbl.Len(); i++ {
		if tbl.At(i).IsZero() {
			t.Fatalf("row %d is empty", i)
		}
	}

	// No two rows are field-wise identical.
	for i := 0; i < tbl.Len(); i++ {
		for j := i + 1; j < tbl.Len(); j++ {
			if tbl.At(i) == tbl.At(j) {
				t.Fatalf("rows %d and %d are identical: %+v", i, j, tbl.At(i))
			}
		}
	}
}
