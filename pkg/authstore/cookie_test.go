package authstore_test

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pocketrest/pkg/authstore"
)

func TestStore_LoadFromCookie(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("literal cookie", func(t *testing.T) {
		t.Parallel()
		storage := authstore.NewMemoryStorage()
		s := authstore.New(authstore.WithStorage(storage))

		err := s.LoadFromCookie(ctx, "rest_auth=%7B%22token%22%3A%22t1%22%2C%22model%22%3A%7B%7D%7D")
		require.NoError(t, err)

		assert.Equal(t, "t1", s.Token())
		assert.Equal(t, authstore.Record{}, s.Record())
		assert.False(t, s.IsValid(), "t1 is not a decodable token")

		data, err := storage.Get(ctx, authstore.DefaultStorageKey)
		require.NoError(t, err)
		assert.JSONEq(t, `{"token":"t1","model":{}}`, string(data))
	})

	t.Run("cookie among others", func(t *testing.T) {
		t.Parallel()
		s := authstore.New()
		tok := token(t, 9999999999)
		value := strings.ReplaceAll(url.QueryEscape(`{"token":"`+tok+`","model":{"role":"ADMIN"}}`), "+", "%20")

		err := s.LoadFromCookie(ctx, "theme=dark; rest_auth="+value+"; lang=en")
		require.NoError(t, err)
		assert.Equal(t, tok, s.Token())
		assert.True(t, s.IsValid())
		assert.True(t, s.IsAdmin())
	})

	t.Run("custom key", func(t *testing.T) {
		t.Parallel()
		s := authstore.New()
		err := s.LoadFromCookie(ctx, "pb=%7B%22token%22%3A%22t2%22%7D", "pb")
		require.NoError(t, err)
		assert.Equal(t, "t2", s.Token())
	})

	t.Run("absent cookie clears memory only", func(t *testing.T) {
		t.Parallel()
		storage := authstore.NewMemoryStorage()
		s := authstore.New(authstore.WithStorage(storage))
		s.Save(ctx, token(t, 9999999999), authstore.Record{"role": authstore.AdminRole})

		require.NoError(t, s.LoadFromCookie(ctx, "theme=dark"))

		assert.Empty(t, s.Token())
		assert.Nil(t, s.Record())
		assert.False(t, s.IsValid())
		assert.False(t, s.IsAdmin())
		assert.Equal(t, 1, storage.Len(), "storage slot must be untouched")
	})

	t.Run("corrupt cookie leaves session unchanged", func(t *testing.T) {
		t.Parallel()
		s := authstore.New()
		tok := token(t, 9999999999)
		s.Save(ctx, tok, nil)

		for _, header := range []string{
			"rest_auth=%7Bbroken",
			"rest_auth=%zz",
			"rest_auth=null",
			"rest_auth=%7B%22token%22%3A5%7D",
		} {
			err := s.LoadFromCookie(ctx, header)
			assert.ErrorIs(t, err, authstore.ErrCorruptSession, header)
			assert.Equal(t, tok, s.Token(), header)
		}
	})
}

func TestStore_ExportToCookie(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("no token", func(t *testing.T) {
		t.Parallel()
		v, ok := authstore.New().ExportToCookie(nil)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("invalid cookie name", func(t *testing.T) {
		t.Parallel()
		s := authstore.New()
		s.Save(ctx, "t1", authstore.Record{})

		v, ok := s.ExportToCookie(nil, "my key")
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("bare pair", func(t *testing.T) {
		t.Parallel()
		s := authstore.New()
		s.Save(ctx, "t1", authstore.Record{})

		v, ok := s.ExportToCookie(nil)
		require.True(t, ok)
		assert.Equal(t, "rest_auth=%7B%22token%22%3A%22t1%22%2C%22model%22%3A%7B%7D%7D", v)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		src := authstore.New()
		tok := token(t, 9999999999)
		src.Save(ctx, tok, authstore.Record{"id": "u1", "name": "Jane Doe", "role": authstore.AdminRole})

		v, ok := src.ExportToCookie(nil)
		require.True(t, ok)

		dst := authstore.New()
		require.NoError(t, dst.LoadFromCookie(ctx, v))
		assert.Equal(t, src.Token(), dst.Token())
		assert.Equal(t, src.Record(), dst.Record())
		assert.True(t, dst.IsValid())
		assert.True(t, dst.IsAdmin())
	})

	t.Run("attributes", func(t *testing.T) {
		t.Parallel()
		s := authstore.New()
		s.Save(ctx, token(t, 9999999999), nil)

		expires := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
		v, ok := s.ExportToCookie(&authstore.CookieOptions{
			Expires:  expires,
			Path:     "/",
			Domain:   "example.com",
			MaxAge:   3600,
			Secure:   true,
			HttpOnly: true,
			SameSite: http.SameSiteStrictMode,
		}, "pb")
		require.True(t, ok)

		assert.True(t, strings.HasPrefix(v, "pb="))
		assert.Contains(t, v, "; Expires=Wed, 02 Jan 2030 03:04:05 GMT")
		assert.Contains(t, v, "; Path=/")
		assert.Contains(t, v, "; Domain=example.com")
		assert.Contains(t, v, "; Max-Age=3600")
		assert.Contains(t, v, "; Secure")
		assert.Contains(t, v, "; HttpOnly")
		assert.Contains(t, v, "; SameSite=Strict")
	})

	t.Run("expires defaults to token expiry", func(t *testing.T) {
		t.Parallel()
		s := authstore.New()
		s.Save(ctx, token(t, 1893456000), nil)

		v, ok := s.ExportToCookie(&authstore.CookieOptions{})
		require.True(t, ok)
		assert.Contains(t, v, "; Expires="+time.Unix(1893456000, 0).UTC().Format(http.TimeFormat))
		assert.NotContains(t, v, "Path=")
		assert.NotContains(t, v, "HttpOnly")
	})
}

func TestMemoryStorage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := authstore.NewMemoryStorage()
	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, m.Set(ctx, "k", []byte("v")))
	v, err = m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)

	require.NoError(t, m.Delete(ctx, "k"))
	require.NoError(t, m.Delete(ctx, "k"))
	assert.Equal(t, 0, m.Len())
}
