// Package seeddata provides starter rows for a fresh database.
package seeddata

import (
	"database/sql"
	"embed"
)

//go:embed sample.sql
var sampleSQL embed.FS

// LoadIfEmpty inserts the sample rows, but only when the customer table has
// no rows yet. An already-populated database is left untouched, so this is
// safe to call on every startup after migrations.
func LoadIfEmpty(db *sql.DB) (loaded bool, err error) {
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM customer`).Scan(&n); err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	data, err := sampleSQL.ReadFile("sample.sql")
	if err != nil {
		return false, err
	}

	if _, err := db.Exec(string(data)); err != nil {
		return false, err
	}
	return true, nil
}
