package wordstore

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// goose keeps dialect, base FS and logger as process-wide state, so schema
// application is serialized.
var migrateMu sync.Mutex

// migrate applies the word table schema to db using goose. dialect is a goose
// dialect name ("sqlite3" or "postgres").
func migrate(ctx context.Context, db *sql.DB, dialect string, log logger) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	// Route goose migration logs through the structured logger instead of stdout.
	goose.SetLogger(newGooseAdapter(orDiscard(log)))
	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect(dialect); err != nil {
		return errors.Join(ErrMigrationFailed, err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return errors.Join(ErrMigrationFailed, err)
	}
	return nil
}

// gooseAdapter bridges goose's Printf-style logging to structured logging.
type gooseAdapter struct {
	log logger
}

func newGooseAdapter(log logger) goose.Logger {
	return &gooseAdapter{log: log}
}

func (a *gooseAdapter) Fatalf(format string, v ...any) {
	a.log.ErrorContext(context.Background(), fmt.Sprintf(format, v...))
}

func (a *gooseAdapter) Printf(format string, v ...any) {
	a.log.InfoContext(context.Background(), fmt.Sprintf(format, v...))
}
