package lexicon

// Field identifies one of the five language/register columns of the lexicon.
type Field int

const (
	English Field = iota
	Colloquial
	Javanese
	Sundanese
	Formal
)

// Fields lists all columns in the canonical export order.
var Fields = []Field{English, Colloquial, Javanese, Sundanese, Formal}

// fieldNames are the persisted column names, aligned with Fields.
var fieldNames = [...]string{
	English:    "english",
	Colloquial: "indonesian_colloquial",
	Javanese:   "javanese",
	Sundanese:  "sundanese",
	Formal:     "formal_indonesian",
}

// String returns the persisted column name for the field.
func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "unknown"
	}
	return fieldNames[f]
}

// FieldByName maps a column name back to its Field. The second return is
// false for unknown names.
func FieldByName(name string) (Field, bool) {
	for _, f := range Fields {
		if fieldNames[f] == name {
			return f, true
		}
	}
	return 0, false
}

// Entry is one row of the lexicon: a cross-language equivalence group.
// An empty string means the field is absent.
type Entry struct {
	English    string
	Colloquial string
	Javanese   string
	Sundanese  string
	Formal     string
}

// Get returns the value of the given field.
func (e Entry) Get(f Field) string {
	switch f {
	case English:
		return e.English
	case Colloquial:
		return e.Colloquial
	case Javanese:
		return e.Javanese
	case Sundanese:
		return e.Sundanese
	case Formal:
		return e.Formal
	}
	return ""
}

// Set assigns the value of the given field.
func (e *Entry) Set(f Field, v string) {
	switch f {
	case English:
		e.English = v
	case Colloquial:
		e.Colloquial = v
	case Javanese:
		e.Javanese = v
	case Sundanese:
		e.Sundanese = v
	case Formal:
		e.Formal = v
	}
}

// IsZero reports whether every field is absent. Such an entry is invalid and
// must never reach the table.
func (e Entry) IsZero() bool {
	for _, f := range Fields {
		if e.Get(f) != "" {
			return false
		}
	}
	return true
}
