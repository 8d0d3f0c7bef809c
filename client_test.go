package pocketrest_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pocketrest"
	"github.com/dmitrymomot/pocketrest/pkg/authstore"
)

func token(t *testing.T, exp int64) string {
	t.Helper()
	claims, err := json.Marshal(map[string]any{"exp": exp})
	require.NoError(t, err)
	return "eyJhbGciOiJIUzI1NiJ9." + base64.RawURLEncoding.EncodeToString(claims) + ".sig"
}

func newBackend(t *testing.T, tok string) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Post("/api/collections/users/auth-with-password", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token":  tok,
			"record": map[string]any{"id": "u1", "role": "ADMIN"},
		})
	})
	r.Get("/api/collections/posts/records", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+tok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"Only admins can perform this action."}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":"p1"},{"id":"p2"}]}`))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Collection(t *testing.T) {
	t.Parallel()

	c := pocketrest.New("https://api.example.com/")
	assert.Equal(t, "https://api.example.com", c.BaseURL())

	posts := c.Collection("posts")
	assert.Same(t, posts, c.Collection("posts"), "collections are cached by name")
	assert.NotSame(t, posts, c.Collection("users"))
	assert.Equal(t, "https://api.example.com/api/collections/posts", posts.RecordsURL())
	assert.NotNil(t, c.AuthStore())

	c = pocketrest.New("http://x//")
	assert.Equal(t, "http://x/", c.BaseURL())
	assert.Equal(t, "http://x//api/collections/posts", c.Collection("posts").RecordsURL(), "only one trailing slash is trimmed")
}

func TestClient_SharedSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tok := token(t, 9999999999)
	srv := newBackend(t, tok)
	storage := authstore.NewMemoryStorage()
	c := pocketrest.New(srv.URL, pocketrest.WithStorage(storage), pocketrest.WithStorageKey("app_auth"))

	_, err := c.Collection("posts").GetFullList(ctx, nil)
	require.Error(t, err, "anonymous request is rejected")

	_, err = c.Collection("users").AuthWithPassword(ctx, "admin@example.com", "secret")
	require.NoError(t, err)
	assert.True(t, c.AuthStore().IsValid())
	assert.True(t, c.AuthStore().IsAdmin())

	items, err := c.Collection("posts").GetFullList(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	data, err := storage.Get(ctx, "app_auth")
	require.NoError(t, err)
	assert.NotNil(t, data)

	// A fresh client restores the persisted session.
	restored := pocketrest.New(srv.URL, pocketrest.WithStorage(storage), pocketrest.WithStorageKey("app_auth"))
	require.NoError(t, restored.AuthStore().LoadFromStorage(ctx))
	assert.Equal(t, tok, restored.AuthStore().Token())
}

func TestClient_WithAuthStore(t *testing.T) {
	t.Parallel()

	store := authstore.New()
	a := pocketrest.New("http://localhost:8090", pocketrest.WithAuthStore(store))
	b := pocketrest.New("http://localhost:8090", pocketrest.WithAuthStore(store))
	assert.Same(t, a.AuthStore(), b.AuthStore())
}

func TestClient_Close(t *testing.T) {
	t.Parallel()

	c := pocketrest.New("http://localhost:8090")
	c.Collection("posts")
	assert.NoError(t, c.Close())
	assert.NoError(t, pocketrest.New("http://localhost:8090").Close())
}
