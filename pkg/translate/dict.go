// Package translate fills missing English fields on finished lexicon tables
// from a curated Indonesian-to-English dictionary.
package translate

import (
	"sort"
	"strings"
)

// Dictionary is an immutable Indonesian-to-English mapping. It is injected
// into the enricher; the enricher never owns or mutates it.
type Dictionary map[string]string

// Lookup translates an already-normalized Indonesian form. Exact matches win;
// failing that, a dictionary key longer than two runes contained in the form
// matches, which catches affixed compounds like "sebanget" or "dimananya".
// Among several containment matches the longest key wins, ties broken
// lexicographically, so lookups are deterministic.
func (d Dictionary) Lookup(form string) (string, bool) {
	if form == "" {
		return "", false
	}
	if v, ok := d[form]; ok {
		return v, true
	}

	var keys []string
	for k := range d {
		if len([]rune(k)) > 2 && strings.Contains(form, k) {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return "", false
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return d[keys[0]], true
}

// DefaultDictionary returns the curated stopword translation dictionary:
// pronouns, function words, question words, colloquial forms, and the common
// social-media abbreviations. Several particles (lah, kah, pun, ...) map to
// the empty string on purpose: they have no English equivalent and the
// enricher rejects the empty candidate, leaving the field absent.
func DefaultDictionary() Dictionary {
	return Dictionary{
		// Pronouns
		"saya": "i", "aku": "i", "kamu": "you", "anda": "you", "dia": "he", "ia": "he",
		"mereka": "they", "kita": "we", "kami": "we", "kalian": "you",

		// Common function words
		"yang": "which", "dengan": "with", "untuk": "for", "dari": "from", "pada": "on",
		"dalam": "in", "oleh": "by", "ke": "to", "di": "at", "akan": "will",
		"sudah": "already", "sedang": "being", "masih": "still", "belum": "not yet",
		"tidak": "not", "bukan": "not", "jangan": "do not", "juga": "also",
		"hanya": "only", "saja": "just", "pula": "also", "lagi": "again",

		// Conjunctions
		"dan": "and", "atau": "or", "tetapi": "but", "karena": "because",
		"jika": "if", "ketika": "when", "sementara": "while", "sebelum": "before",
		"sesudah": "after", "sampai": "until", "sejak": "since",

		// Demonstratives
		"ini": "this", "itu": "that", "begini": "like this", "begitu": "like that",
		"demikian": "thus", "seperti": "like", "sama": "same",

		// Question words
		"apa": "what", "siapa": "who", "dimana": "where", "kemana": "where to",
		"kapan": "when", "mengapa": "why", "kenapa": "why", "bagaimana": "how",
		"berapa": "how many", "mana": "which",

		// Adverbs
		"sangat": "very", "banget": "very", "sekali": "very", "agak": "quite",
		"cukup": "enough", "terlalu": "too", "lebih": "more", "paling": "most",
		"kurang": "less", "hampir": "almost", "selalu": "always", "sering": "often",
		"kadang": "sometimes", "jarang": "rarely", "pernah": "ever",

		// Modal verbs
		"bisa": "can", "dapat": "can", "mau": "want", "ingin": "want",
		"harus": "must", "perlu": "need", "boleh": "may", "seharusnya": "should",

		// Particles without an English equivalent
		"lah": "", "kah": "", "pun": "", "sih": "", "dong": "", "kok": "",
		"deh": "", "tuh": "", "nih": "", "yah": "", "ya": "yes",

		// Common colloquial
		"gitu": "like that", "gini": "like this", "kayak": "like", "kaya": "like",
		"gimana": "how", "emang": "indeed", "memang": "indeed",
		"udah": "already", "belom": "not yet", "aja": "just",

		// Common abbreviations
		"yg": "which", "dgn": "with", "utk": "for", "dr": "from", "pd": "on",
		"dlm": "in", "krn": "because", "jk": "if", "jgn": "do not",
		"bgt": "very", "bngt": "very", "gk": "not", "ga": "not", "tdk": "not",
		"blm": "not yet", "sdh": "already", "lg": "again",
		"sm": "with", "sma": "same", "kl": "if", "klo": "if", "kalo": "if",

		// Family terms
		"ayah": "father", "ibu": "mother", "bapak": "father", "mama": "mother",
		"papa": "father", "kakak": "sibling", "adik": "sibling", "anak": "child",

		// Time words
		"sekarang": "now", "nanti": "later", "kemarin": "yesterday", "besok": "tomorrow",
		"hari": "day", "minggu": "week", "bulan": "month", "tahun": "year",
		"jam": "hour", "menit": "minute", "detik": "second",

		// Common expressions
		"terima kasih": "thank you", "maaf": "sorry", "permisi": "excuse me",
		"selamat": "congratulations", "halo": "hello", "hai": "hi",

		// Laughing expressions
		"haha": "haha", "hehe": "hehe", "hihi": "hihi", "hoho": "hoho", "huhu": "huhu",
		"hahaha": "hahaha", "hehehe": "hehehe",

		// Internet slang
		"wkwk": "lol", "wkwkwk": "lol", "kwkw": "lol", "anjay": "wow",
		"mantap": "great", "keren": "cool", "bagus": "good", "jelek": "bad",
	}
}
