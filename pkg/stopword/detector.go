// Package stopword turns a finished lexicon table into the read-only lookup
// structure downstream text pipelines load at startup.
package stopword

import (
	"unicode"

	"github.com/RadhiFadlillah/go-sastrawi"

	"github.com/roniwahyu/multibahasa/pkg/lexicon"
	"github.com/roniwahyu/multibahasa/pkg/source"
)

// Detector answers stopword membership questions against one finished table.
// It is immutable after construction and safe for concurrent readers.
type Detector struct {
	sets    map[lexicon.Field]map[string]struct{}
	stemmer sastrawi.Stemmer
}

// NewDetector builds per-language lookup sets from t. The Indonesian stemmer
// lets affixed colloquial forms (ngebanget, bangetnya) fall back to their
// root before lookup.
func NewDetector(t *lexicon.Table) *Detector {
	d := &Detector{
		sets:    make(map[lexicon.Field]map[string]struct{}, len(lexicon.Fields)),
		stemmer: sastrawi.NewStemmer(sastrawi.DefaultDictionary()),
	}
	for _, f := range lexicon.Fields {
		d.sets[f] = make(map[string]struct{})
	}
	for i := 0; i < t.Len(); i++ {
		e := t.At(i)
		for _, f := range lexicon.Fields {
			if v := e.Get(f); v != "" {
				d.sets[f][v] = struct{}{}
			}
		}
	}
	return d
}

// Contains reports whether the normalized word appears in any language set.
func (d *Detector) Contains(word string) bool {
	word = source.Normalize(word)
	if word == "" {
		return false
	}
	for _, f := range lexicon.Fields {
		if _, ok := d.sets[f][word]; ok {
			return true
		}
	}
	return false
}

// ContainsIn reports membership in one specific language set.
func (d *Detector) ContainsIn(f lexicon.Field, word string) bool {
	word = source.Normalize(word)
	if word == "" {
		return false
	}
	_, ok := d.sets[f][word]
	return ok
}

// IsLikelyStopword extends Contains with two fallbacks: alphabetic tokens of
// one or two runes are treated as function words even when the table does not
// list them, and an affixed Indonesian form counts when its sastrawi root is
// in either Indonesian set.
func (d *Detector) IsLikelyStopword(word string) bool {
	if d.Contains(word) {
		return true
	}
	word = source.Normalize(word)
	if word == "" {
		return false
	}
	if shortAlpha(word) {
		return true
	}
	root := d.stemmer.Stem(word)
	if root == word {
		return false
	}
	if _, ok := d.sets[lexicon.Colloquial][root]; ok {
		return true
	}
	_, ok := d.sets[lexicon.Formal][root]
	return ok
}

// shortAlpha reports whether the normalized word is one or two letters.
func shortAlpha(word string) bool {
	runes := []rune(word)
	if len(runes) > 2 {
		return false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// LanguageShares estimates, per language column, the share of tokens in text
// found in that column's set. Tokens outside every set dilute all shares, so
// the values do not sum to one.
func (d *Detector) LanguageShares(text string) map[lexicon.Field]float64 {
	shares := make(map[lexicon.Field]float64, len(lexicon.Fields))
	tokens := sastrawi.Tokenize(text)
	if len(tokens) == 0 {
		return shares
	}
	for _, tok := range tokens {
		tok = source.Normalize(tok)
		for _, f := range lexicon.Fields {
			if _, ok := d.sets[f][tok]; ok {
				shares[f]++
			}
		}
	}
	for f := range shares {
		shares[f] /= float64(len(tokens))
	}
	return shares
}

// Filter returns the tokens of text that are not stopwords, in order. This is
// the operation sentiment preprocessing actually wants from the lexicon.
func (d *Detector) Filter(text string) []string {
	var kept []string
	for _, tok := range sastrawi.Tokenize(text) {
		if !d.IsLikelyStopword(tok) {
			kept = append(kept, tok)
		}
	}
	return kept
}
