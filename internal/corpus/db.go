// internal/corpus/db.go
//
// SQLite storage for word lists.
// Responsibilities:
//   - Opening SQLite database with safe defaults (WAL, busy timeout).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Importing a word list and reading it back in source order.

package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/assets"
)

/**
 * OpenDB opens (and creates if missing) a SQLite database file.
 *
 * - Ensures parent directory exists for relative paths (e.g. ./data/words.db).
 * - Configures busy timeout and WAL journaling mode.
 */
func OpenDB(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

/**
 * Migrate applies the embedded SQL migrations.
 *
 * - Uses a _migrations table to track applied files.
 * - Executes each *.sql file in lexical order, each in its own transaction.
 * - Skips files already recorded.
 */
func Migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := assets.Migrations()
	if err != nil {
		return err
	}
	return migrateFS(ctx, db, fsys)
}

func migrateFS(ctx context.Context, db *sql.DB, fsys fs.FS) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := fs.ReadFile(fsys, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		if strings.TrimSpace(string(body)) == "" {
			continue
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

/**
 * Import appends words to the words table after the current last position.
 *
 * - Words already stored are ignored (INSERT OR IGNORE), keeping their position.
 * - Returns the number of rows actually inserted.
 */
func Import(ctx context.Context, db *sql.DB, words []string) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var next int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position) + 1, 0) FROM words`).Scan(&next); err != nil {
		return 0, fmt.Errorf("next position: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words (word, position) VALUES (?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	inserted := 0
	for _, w := range Normalize(words) {
		res, err := stmt.ExecContext(ctx, w, next)
		if err != nil {
			return 0, fmt.Errorf("insert %q: %w", w, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
			next++
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return inserted, nil
}

// ReadDB returns every stored word ordered by position.
func ReadDB(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT word FROM words ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
