package mongo_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pocketrest/pkg/authstore"
	"github.com/dmitrymomot/pocketrest/pkg/mongo"
)

func TestStorage(t *testing.T) {
	url := os.Getenv("MONGODB_URL")
	if url == "" {
		t.Skip("MONGODB_URL is not set")
	}
	ctx := context.Background()

	s, err := mongo.NewStorageFromConfig(ctx, mongo.Config{
		ConnectionURL:  url,
		Database:       "pocketrest_test",
		Collection:     "sessions",
		ConnectTimeout: 5 * time.Second,
		MaxPoolSize:    4,
		RetryAttempts:  2,
		RetryInterval:  100 * time.Millisecond,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Client().Disconnect(context.Background()) })

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

func TestStorage_EmptyKey(t *testing.T) {
	t.Parallel()

	s := mongo.NewStorage(nil)
	_, err := s.Get(context.Background(), "")
	assert.ErrorIs(t, err, mongo.ErrEmptyKey)
	assert.ErrorIs(t, s.Set(context.Background(), "", nil), mongo.ErrEmptyKey)
	assert.ErrorIs(t, s.Delete(context.Background(), ""), mongo.ErrEmptyKey)
}
