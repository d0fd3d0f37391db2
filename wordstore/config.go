package wordstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config selects and configures a word store backend from the environment.
type Config struct {
	Driver      string `env:"WORDSTORE_DRIVER" envDefault:"memory"`             // Driver is the backend to open: memory, sqlite or postgres.
	SQLitePath  string `env:"WORDSTORE_SQLITE_PATH" envDefault:"./db/words.db"` // SQLitePath is the path to the provisioned SQLite word database.
	PostgresURL string `env:"WORDSTORE_POSTGRES_URL"`                           // PostgresURL is the connection string of the shared word database.

	RetryAttempts int           `env:"WORDSTORE_RETRY_ATTEMPTS" envDefault:"3"`  // RetryAttempts is the number of postgres connection attempts.
	RetryInterval time.Duration `env:"WORDSTORE_RETRY_INTERVAL" envDefault:"5s"` // RetryInterval is the base interval between retry attempts.
}

// ErrParsingConfig is returned when environment variables cannot be parsed
// into the Config struct.
var ErrParsingConfig = errors.New("failed to parse environment variables into config")

var defaultEnvLoaded sync.Once

// LoadConfig reads the store configuration from the environment, loading a
// .env file first if one exists.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Open opens the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case "memory", "":
		return NewMemory(), nil
	case "sqlite":
		return OpenSQLite(ctx, cfg.SQLitePath)
	case "postgres":
		return OpenPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
