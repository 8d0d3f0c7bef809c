package requestid

import (
	"context"
	"regexp"

	"github.com/google/uuid"
)

const (
	// Header is the canonical request correlation header.
	Header      = "X-Request-ID"
	maxIDLength = 128
	idPattern   = "^[a-zA-Z0-9_-]+$"
)

var validIDRegex = regexp.MustCompile(idPattern)

// New returns a fresh UUIDv4 request id.
func New() string {
	return uuid.New().String()
}

// Ensure returns the request id stored in ctx, generating and storing a new
// one when ctx has none or holds an invalid value.
func Ensure(ctx context.Context) (context.Context, string) {
	if id := FromContext(ctx); IsValid(id) {
		return ctx, id
	}
	id := New()
	return WithContext(ctx, id), id
}

// IsValid reports whether id is safe to send as a header value.
func IsValid(id string) bool {
	if len(id) == 0 || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}

type contextKey struct{}

// WithContext stores a request id to be reused by the next outgoing call.
func WithContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKey{}, requestID)
}

// FromContext returns the stored request id or an empty string.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
