package requestid_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pocketrest/pkg/requestid"
)

func TestEnsure(t *testing.T) {
	t.Run("generates uuid when missing", func(t *testing.T) {
		ctx, id := requestid.Ensure(context.Background())
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, requestid.FromContext(ctx))
	})

	t.Run("keeps caller id", func(t *testing.T) {
		ctx := requestid.WithContext(context.Background(), "import-42")
		_, id := requestid.Ensure(ctx)
		assert.Equal(t, "import-42", id)
	})

	t.Run("replaces invalid id", func(t *testing.T) {
		ctx := requestid.WithContext(context.Background(), "bad id\r\n")
		_, id := requestid.Ensure(ctx)
		assert.NotEqual(t, "bad id\r\n", id)
		assert.True(t, requestid.IsValid(id))
	})
}

func TestIsValid(t *testing.T) {
	assert.True(t, requestid.IsValid("abc_DEF-123"))
	assert.False(t, requestid.IsValid(""))
	assert.False(t, requestid.IsValid("with space"))
	assert.False(t, requestid.IsValid(strings.Repeat("a", 129)))
}

func TestLoggerExtractor(t *testing.T) {
	ex := requestid.LoggerExtractor()

	_, ok := ex(context.Background())
	assert.False(t, ok)

	attr, ok := ex(requestid.WithContext(context.Background(), "r1"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "r1", attr.Value.String())
}
