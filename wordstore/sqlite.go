package wordstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite" // pure-Go SQLite driver (no CGO)
)

// SQLite is a Store backed by a SQLite database file with one table per
// category (see Category.Table). This mirrors how the word database asset is
// distributed: a read-only file provisioned ahead of time.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens an existing word database at path. The file must already
// be provisioned (see ProvisionSQLite); a missing or unreadable file is
// reported as ErrStoreUnavailable rather than silently created empty.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	db, err := openSQLiteDB(ctx, path)
	if err != nil {
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// ProvisionSQLite creates (or opens) a word database at path, applies the
// word table schema and loads the given word lists. It is the counterpart of
// OpenSQLite for whoever builds the database asset, and for tests.
func ProvisionSQLite(ctx context.Context, path string, words map[Category][]string, log logger) (*SQLite, error) {
	db, err := openSQLiteDB(ctx, path)
	if err != nil {
		return nil, err
	}
	s := &SQLite{db: db}
	if err := migrate(ctx, db, "sqlite3", log); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := s.Seed(ctx, words); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func openSQLiteDB(ctx context.Context, path string) (*sql.DB, error) {
	// For modernc.org/sqlite, the DSN can be a simple file path.
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	// Conservative pool settings for SQLite.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	_, _ = db.ExecContext(ctx, "PRAGMA busy_timeout = 5000;")

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return db, nil
}

// RandomWord implements Store. ORDER BY random() LIMIT 1 gives every
// qualifying row the same selection probability.
func (s *SQLite) RandomWord(ctx context.Context, cat Category, minLen, maxLen int) (string, error) {
	if !cat.Valid() {
		return "", fmt.Errorf("%w: %d", ErrUnknownCategory, int(cat))
	}

	// The table name comes from the closed Category enum, never from input.
	q := fmt.Sprintf(
		`SELECT lower(word) FROM %s WHERE length(word) BETWEEN ? AND ? ORDER BY random() LIMIT 1`,
		cat.Table(),
	)

	var word string
	err := s.db.QueryRowContext(ctx, q, minLen, maxLen).Scan(&word)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s words of length %d..%d", ErrNoMatchingWord, cat, minLen, maxLen)
	}
	if err != nil {
		return "", err
	}
	return word, nil
}

// Seed loads word lists into their category tables. Words are lowercased on
// insert. Loading happens in one transaction so a failed seed leaves no
// partial state behind.
func (s *SQLite) Seed(ctx context.Context, words map[Category][]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for cat, list := range words {
		if !cat.Valid() {
			return fmt.Errorf("%w: %d", ErrUnknownCategory, int(cat))
		}
		stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`INSERT INTO %s (word) VALUES (?)`, cat.Table()))
		if err != nil {
			return err
		}
		for _, w := range list {
			if _, err := stmt.ExecContext(ctx, strings.ToLower(w)); err != nil {
				_ = stmt.Close()
				return err
			}
		}
		if err := stmt.Close(); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Close implements Store and releases the underlying database handle.
func (s *SQLite) Close() error { return s.db.Close() }
