// Package export serializes finished lexicon tables to the persisted CSV
// format and computes per-field coverage.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/roniwahyu/multibahasa/pkg/lexicon"
)

// ErrNilTable is returned when a nil table is handed to the exporter.
var ErrNilTable = &ExportError{"nil table"}

// ExportError is a typed error for export operations.
type ExportError struct{ msg string }

func (e *ExportError) Error() string { return e.msg }

// Write serializes t to w: a header row followed by one row per entry in
// insertion order, absent fields rendered empty. Output is byte-identical
// for identical tables; encoding/csv quotes any field that needs it.
func Write(w io.Writer, t *lexicon.Table) error {
	if t == nil {
		return ErrNilTable
	}

	cw := csv.NewWriter(w)

	header := make([]string, len(lexicon.Fields))
	for i, f := range lexicon.Fields {
		header[i] = f.String()
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(lexicon.Fields))
	for i := 0; i < t.Len(); i++ {
		e := t.At(i)
		for j, f := range lexicon.Fields {
			row[j] = e.Get(f)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile atomically serializes t to path. The table is written to a
// temporary file in the destination directory and renamed into place only
// after a successful write and sync, so a failed run never leaves a partial
// file that looks like a complete output.
func WriteFile(path string, t *lexicon.Table) error {
	if t == nil {
		return ErrNilTable
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := Write(tmp, t); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("export to %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("finalize %s: %w", path, err)
	}
	return nil
}
