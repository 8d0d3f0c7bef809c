package pocketrest

import (
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/dmitrymomot/pocketrest/pkg/authstore"
	"github.com/dmitrymomot/pocketrest/pkg/collection"
	"github.com/dmitrymomot/pocketrest/pkg/logger"
	"github.com/dmitrymomot/pocketrest/pkg/transport"
)

// Client caches one collection client per name and shares a single session
// store between them.
type Client struct {
	baseURL string
	store   *authstore.Store
	sender  collection.Sender
	log     *slog.Logger

	storeOpts      []authstore.Option
	transportOpts  []transport.Option
	collectionOpts []collection.Option

	mu          sync.Mutex
	collections map[string]*collection.Collection
}

// New creates a client for the backend at baseURL with an empty session.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:     baseURL,
		log:         logger.Discard(),
		collections: make(map[string]*collection.Collection),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.store == nil {
		c.store = authstore.New(append([]authstore.Option{authstore.WithLogger(c.log)}, c.storeOpts...)...)
	}
	if c.sender == nil {
		c.sender = transport.New(append([]transport.Option{transport.WithLogger(c.log)}, c.transportOpts...)...)
	}
	c.collectionOpts = append([]collection.Option{collection.WithLogger(c.log)}, c.collectionOpts...)
	return c
}

// Collection returns the cached client for name, creating it on first use.
func (c *Client) Collection(name string) *collection.Collection {
	c.mu.Lock()
	defer c.mu.Unlock()

	if col, ok := c.collections[name]; ok {
		return col
	}
	col := collection.New(c.baseURL, name, c.store, c.sender, c.collectionOpts...)
	c.collections[name] = col
	return col
}

// AuthStore returns the session shared by all collections.
func (c *Client) AuthStore() *authstore.Store {
	return c.store
}

// BaseURL returns the backend root without a trailing slash.
func (c *Client) BaseURL() string {
	return strings.TrimSuffix(c.baseURL, "/")
}

// Close closes every open realtime channel. Collections stay usable.
func (c *Client) Close() error {
	c.mu.Lock()
	cols := make([]*collection.Collection, 0, len(c.collections))
	for _, col := range c.collections {
		cols = append(cols, col)
	}
	c.mu.Unlock()

	var errs []error
	for _, col := range cols {
		if err := col.Unsubscribe(); err != nil {
			c.log.Warn("failed to close realtime channel", logger.Collection(col.Name()), logger.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
