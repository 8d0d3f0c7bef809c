package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pocketrest/pkg/authstore"
	"github.com/dmitrymomot/pocketrest/pkg/sqlite"
)

func openTestDB(t *testing.T) *sqlite.Storage {
	t.Helper()
	db, err := sqlite.Open(context.Background(), sqlite.Config{
		Path: filepath.Join(t.TempDir(), "state", "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlite.NewStorage(db)
}

func TestStorage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openTestDB(t)

	v, err := s.Get(ctx, "rest_auth")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, s.Set(ctx, "rest_auth", []byte("one")))
	require.NoError(t, s.Set(ctx, "rest_auth", []byte("two")))
	require.NoError(t, s.Set(ctx, "other", []byte("x")))

	v, err = s.Get(ctx, "rest_auth")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), v)

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"other", "rest_auth"}, keys)

	require.NoError(t, s.Delete(ctx, "rest_auth"))
	v, err = s.Get(ctx, "rest_auth")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = s.Get(ctx, "")
	assert.ErrorIs(t, err, sqlite.ErrEmptyKey)
}

func TestStorage_SurvivesReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	db, err := sqlite.Open(ctx, sqlite.Config{Path: path})
	require.NoError(t, err)
	store := authstore.New(authstore.WithStorage(sqlite.NewStorage(db)))
	store.Save(ctx, "t1", authstore.Record{"id": "u1", "role": authstore.AdminRole})
	require.NoError(t, db.Close())

	db, err = sqlite.Open(ctx, sqlite.Config{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	restored := authstore.New(authstore.WithStorage(sqlite.NewStorage(db)))
	require.NoError(t, restored.LoadFromStorage(ctx))
	assert.Equal(t, "t1", restored.Token())
	assert.True(t, restored.IsAdmin())
}

func TestOpen_Memory(t *testing.T) {
	t.Parallel()

	db, err := sqlite.Open(context.Background(), sqlite.Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := sqlite.NewStorage(db)
	require.NoError(t, s.Set(context.Background(), "k", []byte("v")))
}
