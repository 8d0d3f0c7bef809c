package pocketrest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/pocketrest/pkg/authstore"
	"github.com/dmitrymomot/pocketrest/pkg/collection"
	"github.com/dmitrymomot/pocketrest/pkg/realtime"
	"github.com/dmitrymomot/pocketrest/pkg/transport"
)

// Option configures a Client.
type Option func(*Client)

// WithAuthStore shares an existing session store instead of creating one.
// Storage options are ignored when it is set.
func WithAuthStore(store *authstore.Store) Option {
	return func(c *Client) {
		c.store = store
	}
}

// WithStorage persists the session in a durable backend.
func WithStorage(storage authstore.Storage) Option {
	return func(c *Client) {
		c.storeOpts = append(c.storeOpts, authstore.WithStorage(storage))
	}
}

// WithStorageKey overrides the storage slot and cookie name.
func WithStorageKey(key string) Option {
	return func(c *Client) {
		c.storeOpts = append(c.storeOpts, authstore.WithStorageKey(key))
	}
}

// WithSender replaces the HTTP transport entirely. Transport options are ignored when it is set.
func WithSender(sender collection.Sender) Option {
	return func(c *Client) {
		c.sender = sender
	}
}

// WithHTTPClient sets the http.Client used by the default transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.transportOpts = append(c.transportOpts, transport.WithHTTPClient(client))
	}
}

// WithTimeout sets the per-request timeout of the default transport.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.transportOpts = append(c.transportOpts, transport.WithTimeout(timeout))
	}
}

// WithUserAgent sets the User-Agent header of the default transport.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.transportOpts = append(c.transportOpts, transport.WithUserAgent(ua))
	}
}

// WithRealtimeOptions configures every collection's realtime channel.
func WithRealtimeOptions(opts ...realtime.Option) Option {
	return func(c *Client) {
		c.collectionOpts = append(c.collectionOpts, collection.WithRealtimeOptions(opts...))
	}
}

// WithLogger sets the logger propagated to the store, transport and collections.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}
