// Package db persists finished lexicon tables into SQLite for downstream
// consumers that want indexed lookups instead of re-parsing the CSV.
package db

import (
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const migrationsSQL = `
CREATE TABLE IF NOT EXISTS entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	position INTEGER NOT NULL,
	english TEXT NOT NULL DEFAULT '',
	indonesian_colloquial TEXT NOT NULL DEFAULT '',
	javanese TEXT NOT NULL DEFAULT '',
	sundanese TEXT NOT NULL DEFAULT '',
	formal_indonesian TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_entries_position ON entries(position);
CREATE INDEX IF NOT EXISTS idx_entries_colloquial ON entries(indonesian_colloquial);
CREATE INDEX IF NOT EXISTS idx_entries_formal ON entries(formal_indonesian)
`

// InitDB runs migrations on the given DB connection using the embedded SQL.
func InitDB(db *sql.DB) error {
	stmts := strings.Split(migrationsSQL, ";")
	for _, s := range stmts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
