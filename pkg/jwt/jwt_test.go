package jwt_test

import (
	"encoding/base64"
	"strconv"
	"testing"
	"time"

	gjwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pocketrest/pkg/jwt"
)

func signed(t *testing.T, claims gjwt.MapClaims) string {
	t.Helper()
	token, err := gjwt.NewWithClaims(gjwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func payloadOnly(payload string) string {
	return "abc." + base64.RawURLEncoding.EncodeToString([]byte(payload)) + ".ghi"
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("signed token", func(t *testing.T) {
		token := signed(t, gjwt.MapClaims{"sub": "user123", "role": "ADMIN"})

		claims, err := jwt.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, "user123", claims["sub"])
		assert.Equal(t, "ADMIN", claims["role"])
	})

	t.Run("header and signature are ignored", func(t *testing.T) {
		claims, err := jwt.Decode(payloadOnly(`{"id":"rec1"}`))
		require.NoError(t, err)
		assert.Equal(t, "rec1", claims["id"])
	})

	t.Run("malformed tokens", func(t *testing.T) {
		for _, token := range []string{
			"",
			"not-a-token",
			"a.b",
			"a.b.c.d",
			"abc.%%%.ghi",
			payloadOnly("not json"),
		} {
			_, err := jwt.Decode(token)
			assert.ErrorIs(t, err, jwt.ErrMalformedToken, "token %q", token)
		}
	})
}

func TestExpiresAt(t *testing.T) {
	t.Parallel()

	t.Run("exp claim", func(t *testing.T) {
		exp := time.Now().Add(time.Hour).Truncate(time.Second)
		token := signed(t, gjwt.MapClaims{"exp": exp.Unix()})

		got, err := jwt.ExpiresAt(token)
		require.NoError(t, err)
		assert.True(t, exp.Equal(got))
	})

	t.Run("far future payload", func(t *testing.T) {
		got, err := jwt.ExpiresAt(payloadOnly(`{"exp":9999999999}`))
		require.NoError(t, err)
		assert.Equal(t, int64(9999999999), got.Unix())
	})

	t.Run("missing exp is the epoch", func(t *testing.T) {
		got, err := jwt.ExpiresAt(payloadOnly(`{"sub":"x"}`))
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.Unix())
	})

	t.Run("exp of wrong type", func(t *testing.T) {
		_, err := jwt.ExpiresAt(payloadOnly(`{"exp":"tomorrow"}`))
		assert.ErrorIs(t, err, jwt.ErrMalformedToken)
		assert.ErrorIs(t, err, jwt.ErrInvalidClaims)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := jwt.ExpiresAt("garbage")
		assert.ErrorIs(t, err, jwt.ErrMalformedToken)
	})
}

func TestIsExpired(t *testing.T) {
	t.Parallel()
	now := time.Now()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"empty", "", true},
		{"malformed", "garbage", true},
		{"no exp", payloadOnly(`{}`), true},
		{"past", payloadOnly(`{"exp":1}`), true},
		{"future", payloadOnly(`{"exp":9999999999}`), false},
		{"exactly now", payloadOnly(`{"exp":` + strconv.FormatInt(now.Unix(), 10) + `}`), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, jwt.IsExpired(tt.token, time.Unix(now.Unix(), 0)))
		})
	}
}
