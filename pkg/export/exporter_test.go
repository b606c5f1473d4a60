package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roniwahyu/multibahasa/pkg/lexicon"
)

func TestWriteEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, lexicon.NewTable()))

	assert.Equal(t, "english,indonesian_colloquial,javanese,sundanese,formal_indonesian\n", buf.String())
}

func TestWriteRowsInInsertionOrder(t *testing.T) {
	tbl := lexicon.NewTable()
	tbl.Append(lexicon.Entry{English: "very", Colloquial: "bgt", Formal: "banget"})
	tbl.Append(lexicon.Entry{Colloquial: "ini", Javanese: "iki", Sundanese: "ieu"})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tbl))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "very,bgt,,,banget", lines[1])
	assert.Equal(t, ",ini,iki,ieu,", lines[2])
}

func TestWriteIsDeterministic(t *testing.T) {
	tbl := lexicon.NewTable()
	tbl.Append(lexicon.Entry{Colloquial: "bgt", English: "very"})
	tbl.Append(lexicon.Entry{Formal: "sangat"})

	var a, b bytes.Buffer
	require.NoError(t, Write(&a, tbl))
	require.NoError(t, Write(&b, tbl))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestWriteQuotesDefensively(t *testing.T) {
	tbl := lexicon.NewTable()
	tbl.Append(lexicon.Entry{Colloquial: `a,b`, Formal: `say "hi"`})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tbl))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `,"a,b",,,"say ""hi"""`, lines[1])
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.csv")

	tbl := lexicon.NewTable()
	tbl.Append(lexicon.Entry{Colloquial: "bgt"})
	require.NoError(t, WriteFile(path, tbl))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "english,"))

	// No stray temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileUnwritableDestination(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir", "out.csv"), lexicon.NewTable())
	require.Error(t, err)
}

func TestCoverage(t *testing.T) {
	tbl := lexicon.NewTable()
	tbl.Append(lexicon.Entry{English: "very", Colloquial: "bgt", Formal: "banget"})
	tbl.Append(lexicon.Entry{Colloquial: "ini"})
	tbl.Append(lexicon.Entry{Colloquial: "itu", Javanese: "iku"})
	tbl.Append(lexicon.Entry{Formal: "sangat"})

	c := Cover(tbl)
	assert.Equal(t, 4, c.Total)
	assert.Equal(t, 1, c.Counts[lexicon.English])
	assert.Equal(t, 3, c.Counts[lexicon.Colloquial])
	assert.Equal(t, 1, c.Counts[lexicon.Javanese])
	assert.Equal(t, 0, c.Counts[lexicon.Sundanese])
	assert.Equal(t, 2, c.Counts[lexicon.Formal])
	assert.InDelta(t, 0.25, c.Fraction(lexicon.English), 1e-9)
}

func TestCoverageEmptyTable(t *testing.T) {
	c := Cover(lexicon.NewTable())
	assert.Equal(t, 0, c.Total)
	for _, f := range lexicon.Fields {
		assert.Zero(t, c.Fraction(f))
	}
	report := c.Report()
	assert.Contains(t, report, "rows: 0")
	assert.Contains(t, report, "coverage english: 0 (0.0%)")
}
