package db

import (
	"database/sql"
	"fmt"

	"github.com/roniwahyu/multibahasa/pkg/lexicon"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx.
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// SaveTable replaces the stored lexicon with the contents of t. The whole
// replacement runs inside one transaction: on any failure the store keeps its
// previous contents, so readers never observe a half-written run. Inserts are
// batched through a prepared statement.
func SaveTable(conn *sql.DB, t *lexicon.Table) error {
	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // ignored if committed
	}()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO entries
		(position, english, indonesian_colloquial, javanese, sundanese, formal_indonesian)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < t.Len(); i++ {
		e := t.At(i)
		if _, err := stmt.Exec(i, e.English, e.Colloquial, e.Javanese, e.Sundanese, e.Formal); err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save (%d rows): %w", t.Len(), err)
	}
	return nil
}

// LoadTable reads the stored lexicon back in its original row order.
func LoadTable(db DBExecutor) (*lexicon.Table, error) {
	rows, err := db.Query(`SELECT english, indonesian_colloquial, javanese, sundanese, formal_indonesian
		FROM entries ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	t := lexicon.NewTable()
	for rows.Next() {
		var e lexicon.Entry
		if err := rows.Scan(&e.English, &e.Colloquial, &e.Javanese, &e.Sundanese, &e.Formal); err != nil {
			return nil, err
		}
		t.Append(e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// CountEntries returns the number of stored rows.
func CountEntries(db DBExecutor) (int, error) {
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// LookupByField returns the entries whose given field equals value, in row
// order. Downstream consumers use this as their read-only lookup.
func LookupByField(db DBExecutor, f lexicon.Field, value string) ([]lexicon.Entry, error) {
	col, ok := columnFor(f)
	if !ok {
		return nil, fmt.Errorf("unknown field %v", f)
	}
	rows, err := db.Query(`SELECT english, indonesian_colloquial, javanese, sundanese, formal_indonesian
		FROM entries WHERE `+col+` = ? ORDER BY position`, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []lexicon.Entry
	for rows.Next() {
		var e lexicon.Entry
		if err := rows.Scan(&e.English, &e.Colloquial, &e.Javanese, &e.Sundanese, &e.Formal); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// columnFor maps a lexicon field to its column name. The names match the
// lexicon's canonical field names but are spelled out here so the SQL never
// interpolates unchecked input.
func columnFor(f lexicon.Field) (string, bool) {
	switch f {
	case lexicon.English:
		return "english", true
	case lexicon.Colloquial:
		return "indonesian_colloquial", true
	case lexicon.Javanese:
		return "javanese", true
	case lexicon.Sundanese:
		return "sundanese", true
	case lexicon.Formal:
		return "formal_indonesian", true
	}
	return "", false
}
