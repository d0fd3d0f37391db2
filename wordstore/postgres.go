package wordstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// Postgres is a Store backed by a shared PostgreSQL database, for deployments
// where many services draw from one word corpus instead of shipping a file
// per binary. The schema is the same one table per category layout as SQLite.
type Postgres struct {
	pool *pgxpool.Pool
}

// OpenPostgres establishes a connection pool to the word database with retry
// logic. Backoff grows linearly per attempt to avoid hammering a database
// that is still starting up.
func OpenPostgres(ctx context.Context, cfg Config) (*Postgres, error) {
	if cfg.PostgresURL == "" {
		return nil, errors.Join(ErrStoreUnavailable, errors.New("empty postgres connection string, use WORDSTORE_POSTGRES_URL env var"))
	}
	connConfig, err := pgxpool.ParseConfig(cfg.PostgresURL)
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	for i := range attempts {
		pool, err := pgxpool.NewWithConfig(ctx, connConfig)
		if err != nil {
			time.Sleep(time.Duration(i+1) * cfg.RetryInterval)
			continue
		}
		// Verify with an actual ping to catch authentication and permission issues.
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			time.Sleep(time.Duration(i+1) * cfg.RetryInterval)
			continue
		}
		return &Postgres{pool: pool}, nil
	}
	return nil, ErrStoreUnavailable
}

// RandomWord implements Store.
func (p *Postgres) RandomWord(ctx context.Context, cat Category, minLen, maxLen int) (string, error) {
	if !cat.Valid() {
		return "", fmt.Errorf("%w: %d", ErrUnknownCategory, int(cat))
	}

	// The table name comes from the closed Category enum, never from input.
	q := fmt.Sprintf(
		`SELECT lower(word) FROM %s WHERE length(word) BETWEEN $1 AND $2 ORDER BY random() LIMIT 1`,
		cat.Table(),
	)

	var word string
	err := p.pool.QueryRow(ctx, q, minLen, maxLen).Scan(&word)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("%w: %s words of length %d..%d", ErrNoMatchingWord, cat, minLen, maxLen)
	}
	if err != nil {
		return "", err
	}
	return word, nil
}

// Migrate applies the word table schema. goose speaks database/sql, so the
// pgx pool is bridged through stdlib for the duration of the migration.
func (p *Postgres) Migrate(ctx context.Context, log logger) error {
	db := stdlib.OpenDBFromPool(p.pool)
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			orDiscard(log).ErrorContext(ctx, "failed to close migration db handle", "error", err)
		}
	}(db)
	return migrate(ctx, db, "postgres", log)
}

// Seed loads word lists into their category tables in one transaction.
func (p *Postgres) Seed(ctx context.Context, words map[Category][]string) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for cat, list := range words {
		if !cat.Valid() {
			return fmt.Errorf("%w: %d", ErrUnknownCategory, int(cat))
		}
		q := fmt.Sprintf(`INSERT INTO %s (word) VALUES ($1)`, cat.Table())
		for _, w := range list {
			if _, err := tx.Exec(ctx, q, strings.ToLower(w)); err != nil {
				return err
			}
		}
	}
	return tx.Commit(ctx)
}

// Close implements Store and releases the connection pool.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
