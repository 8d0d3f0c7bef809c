package pg_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pocketrest/pkg/authstore"
	"github.com/dmitrymomot/pocketrest/pkg/logger"
	"github.com/dmitrymomot/pocketrest/pkg/pg"
)

func testConfig(t *testing.T) pg.Config {
	t.Helper()
	dsn := os.Getenv("PG_CONN_URL")
	if dsn == "" {
		t.Skip("PG_CONN_URL is not set")
	}
	return pg.Config{
		ConnectionString: dsn,
		MaxOpenConns:     4,
		RetryAttempts:    3,
		RetryInterval:    100 * time.Millisecond,
		MigrationsTable:  "pocketrest_migrations_test",
	}
}

func TestStorage(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	pool, err := pg.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, pg.Migrate(ctx, pool, cfg, logger.Discard()))
	// Applying twice is a no-op.
	require.NoError(t, pg.Migrate(ctx, pool, cfg, logger.Discard()))

	s := pg.NewStorage(pool)
	key := "test_" + time.Now().Format("150405.000000")
	t.Cleanup(func() { _ = s.Delete(context.Background(), key) })

	v, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, s.Set(ctx, key, []byte("one")))
	require.NoError(t, s.Set(ctx, key, []byte("two")))
	v, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), v)

	store := authstore.New(authstore.WithStorage(s), authstore.WithStorageKey(key))
	store.Save(ctx, "t1", authstore.Record{"id": "u1"})
	restored := authstore.New(authstore.WithStorage(s), authstore.WithStorageKey(key))
	require.NoError(t, restored.LoadFromStorage(ctx))
	assert.Equal(t, "t1", restored.Token())

	require.NoError(t, s.Delete(ctx, key))
	v, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestConnect_Errors(t *testing.T) {
	t.Parallel()

	_, err := pg.Connect(context.Background(), pg.Config{})
	assert.ErrorIs(t, err, pg.ErrEmptyConnectionString)

	_, err = pg.Connect(context.Background(), pg.Config{ConnectionString: "postgres://%zz"})
	assert.ErrorIs(t, err, pg.ErrFailedToParseDBConfig)
}

func TestStorage_EmptyKey(t *testing.T) {
	t.Parallel()

	s := pg.NewStorage(nil)
	_, err := s.Get(context.Background(), "")
	assert.ErrorIs(t, err, pg.ErrEmptyKey)
	assert.ErrorIs(t, s.Set(context.Background(), "", nil), pg.ErrEmptyKey)
	assert.ErrorIs(t, s.Delete(context.Background(), ""), pg.ErrEmptyKey)
}
