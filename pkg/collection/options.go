package collection

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/pocketrest/pkg/realtime"
)

// Option configures a Collection.
type Option func(*Collection)

// WithLogger sets the logger for request tracing.
func WithLogger(log *slog.Logger) Option {
	return func(c *Collection) {
		if log != nil {
			c.log = log
		}
	}
}

// WithRealtimeOptions passes options to the collection's realtime channel.
func WithRealtimeOptions(opts ...realtime.Option) Option {
	return func(c *Collection) {
		c.realtimeOpts = append(c.realtimeOpts, opts...)
	}
}

// CallOption adjusts a single request.
type CallOption func(*callConfig)

type callConfig struct {
	auth   bool
	header http.Header
}

// WithoutAuth omits the Authorization header even when a valid session exists.
func WithoutAuth() CallOption {
	return func(c *callConfig) {
		c.auth = false
	}
}

// WithHeader adds a request header.
func WithHeader(key, value string) CallOption {
	return func(c *callConfig) {
		c.header.Add(key, value)
	}
}
