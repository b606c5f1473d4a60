package stopword

import (
	"testing"

	"github.com/roniwahyu/multibahasa/pkg/lexicon"
)

func buildTable() *lexicon.Table {
	t := lexicon.NewTable()
	t.Append(lexicon.Entry{English: "very", Colloquial: "bgt", Formal: "banget"})
	t.Append(lexicon.Entry{Colloquial: "ini", Javanese: "iki", Sundanese: "ieu"})
	t.Append(lexicon.Entry{Formal: "makan"})
	return t
}

func TestContains(t *testing.T) {
	d := NewDetector(buildTable())

	tests := []struct {
		word string
		want bool
	}{
		{"bgt", true},
		{"BGT", true}, // lookup normalizes
		{"  iki ", true},
		{"ieu", true},
		{"very", true},
		{"kucing", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := d.Contains(tt.word); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestContainsIn(t *testing.T) {
	d := NewDetector(buildTable())

	if !d.ContainsIn(lexicon.Javanese, "iki") {
		t.Error("iki should be in the javanese set")
	}
	if d.ContainsIn(lexicon.Sundanese, "iki") {
		t.Error("iki should not be in the sundanese set")
	}
}

func TestIsLikelyStopwordStemsAffixedForms(t *testing.T) {
	d := NewDetector(buildTable())

	// memakan stems to makan, which the formal set holds.
	if !d.IsLikelyStopword("memakan") {
		t.Error("expected affixed form of a known root to be detected")
	}
	if d.IsLikelyStopword("kucing") {
		t.Error("kucing is not a stopword")
	}
}

func TestIsLikelyStopwordShortTokens(t *testing.T) {
	d := NewDetector(buildTable())

	// One and two letter tokens read as function words even when the
	// table never listed them.
	if !d.IsLikelyStopword("di") {
		t.Error("expected two-letter token to be detected")
	}
	if d.IsLikelyStopword("k9") {
		t.Error("tokens with digits must not match the short-token rule")
	}
}

func TestLanguageShares(t *testing.T) {
	d := NewDetector(buildTable())

	shares := d.LanguageShares("ini iki kucing anjing")
	if got := shares[lexicon.Colloquial]; got != 0.25 {
		t.Errorf("colloquial share = %v, want 0.25", got)
	}
	if got := shares[lexicon.Javanese]; got != 0.25 {
		t.Errorf("javanese share = %v, want 0.25", got)
	}
	if got := shares[lexicon.Sundanese]; got != 0 {
		t.Errorf("sundanese share = %v, want 0", got)
	}
}

func TestFilterDropsStopwords(t *testing.T) {
	d := NewDetector(buildTable())

	kept := d.Filter("ini kucing bgt")
	if len(kept) != 1 || kept[0] != "kucing" {
		t.Fatalf("expected [kucing], got %v", kept)
	}
}
