package wordstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluentcode/wordstore"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := wordstore.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Driver)
	assert.Equal(t, "./db/words.db", cfg.SQLitePath)
	assert.Equal(t, 3, cfg.RetryAttempts)
	assert.Equal(t, 5*time.Second, cfg.RetryInterval)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("WORDSTORE_DRIVER", "sqlite")
	t.Setenv("WORDSTORE_SQLITE_PATH", "/var/lib/words/release.db")

	cfg, err := wordstore.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Driver)
	assert.Equal(t, "/var/lib/words/release.db", cfg.SQLitePath)
}

func TestOpenMemoryDriver(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := wordstore.Open(ctx, wordstore.Config{Driver: "memory"})
	require.NoError(t, err)
	defer store.Close()

	word, err := store.RandomWord(ctx, wordstore.Noun, 3, 8)
	require.NoError(t, err)
	assert.NotEmpty(t, word)
}

func TestOpenUnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := wordstore.Open(context.Background(), wordstore.Config{Driver: "etcd"})
	assert.ErrorIs(t, err, wordstore.ErrUnknownDriver)
}

func TestOpenSQLiteDriverMissingFile(t *testing.T) {
	t.Parallel()

	_, err := wordstore.Open(context.Background(), wordstore.Config{
		Driver:     "sqlite",
		SQLitePath: t.TempDir() + "/missing.db",
	})
	assert.ErrorIs(t, err, wordstore.ErrStoreUnavailable)
}
