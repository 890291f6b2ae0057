package store

// Additive-only schema migrations. These cover databases created by older
// builds where a table exists but lacks newer columns; nothing here ever
// drops or rewrites data.

import (
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Migration adds one column to one table.
type Migration struct {
	Table  string
	Column string
	Def    string
}

// pendingMigrations lists all column additions to apply.
var pendingMigrations = []Migration{
	// Sender attribution on corpus rows
	{"corpus", "nick", "TEXT NOT NULL DEFAULT ''"},
	// Token counters and replay cursor on the chain cache
	{"chain_cache", "tokens", "INTEGER NOT NULL DEFAULT 0"},
	{"chain_cache", "last_entry_id", "INTEGER NOT NULL DEFAULT 0"},
}

// RunMigrations applies pending column additions for existing databases.
// Schema inspection failures abort the run: skipping a migration because a
// PRAGMA transiently failed would leave the schema silently stale.
func RunMigrations(db *sql.DB, log *zap.Logger) error {
	applied := 0
	for _, m := range pendingMigrations {
		exists, err := tableExists(db, m.Table)
		if err != nil {
			return fmt.Errorf("migration check for table %s: %w", m.Table, err)
		}
		if !exists {
			continue
		}
		has, err := columnExists(db, m.Table, m.Column)
		if err != nil {
			return fmt.Errorf("migration check for %s.%s: %w", m.Table, m.Column, err)
		}
		if has {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", m.Table, m.Column, m.Def)
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %s.%s failed: %w", m.Table, m.Column, err)
		}
		log.Info("applied schema migration",
			zap.String("table", m.Table),
			zap.String("column", m.Column))
		applied++
	}
	if applied > 0 {
		log.Info("schema migrations complete", zap.Int("applied", applied))
	}
	return nil
}

func tableExists(db *sql.DB, table string) (bool, error) {
	var name string
	err := db.QueryRow(
		`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func columnExists(db *sql.DB, table, column string) (bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notnull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
