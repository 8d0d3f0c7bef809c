package realtime

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dmitrymomot/pocketrest/pkg/logger"
)

// Event is a record change notification name.
type Event string

const (
	EventCreate Event = "create"
	EventUpdate Event = "update"
	EventDelete Event = "delete"
)

func (e Event) known() bool {
	return e == EventCreate || e == EventUpdate || e == EventDelete
}

const (
	handshakeTimeout = 10 * time.Second
	closeGracePeriod = time.Second
)

// Channel is a lazily opened WebSocket subscription.
type Channel struct {
	url    string
	dialer *websocket.Dialer
	header http.Header
	log    *slog.Logger

	mu       sync.Mutex
	conn     *websocket.Conn
	gen      uint64
	handlers map[Event]func()
}

// New creates a closed channel for the given ws:// or wss:// URL.
func New(url string, opts ...Option) *Channel {
	c := &Channel{
		url: url,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
		},
		log:      logger.Discard(),
		handlers: map[Event]func(){},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logger.Component("realtime"), logger.URL(url))
	return c
}

// URL returns the socket address.
func (c *Channel) URL() string {
	return c.url
}

// IsOpen reports whether a connection is currently held.
func (c *Channel) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// Subscribe replaces the handler table with an empty one and opens the
// connection if none is held. Dial failures are logged; the returned
// Registrar is usable either way and takes effect once a connection exists.
func (c *Channel) Subscribe(ctx context.Context) *Registrar {
	c.mu.Lock()
	table := map[Event]func(){}
	c.handlers = table
	r := &Registrar{ch: c, table: table}
	open := c.conn != nil
	gen := c.gen
	c.mu.Unlock()

	if open {
		return r
	}

	conn, resp, err := c.dialer.DialContext(ctx, c.url, c.header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		c.log.ErrorContext(ctx, "failed to open realtime connection", logger.Error(err))
		return r
	}

	c.mu.Lock()
	// Another Subscribe won the race, or Unsubscribe ran while dialing.
	if c.conn != nil || c.gen != gen {
		c.mu.Unlock()
		_ = conn.Close()
		return r
	}
	c.conn = conn
	c.mu.Unlock()

	go c.readLoop(conn)
	c.log.DebugContext(ctx, "realtime connection opened")
	return r
}

// Unsubscribe closes the connection if one is open. A later Subscribe reopens it.
func (c *Channel) Unsubscribe() error {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.gen++
	c.mu.Unlock()

	if conn == nil {
		return nil
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	werr := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGracePeriod))
	if errors.Is(werr, websocket.ErrCloseSent) {
		werr = nil
	}
	return errors.Join(werr, conn.Close())
}

func (c *Channel) readLoop(conn *websocket.Conn) {
	defer func() {
		c.mu.Lock()
		if c.conn == conn {
			c.conn = nil
		}
		c.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		typ, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && c.owns(conn) {
				c.log.Warn("realtime connection lost", logger.Error(err))
			} else {
				c.log.Debug("realtime connection closed")
			}
			return
		}
		if typ != websocket.TextMessage {
			continue
		}
		c.dispatch(Event(data))
	}
}

func (c *Channel) owns(conn *websocket.Conn) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn == conn
}

func (c *Channel) dispatch(event Event) {
	if !event.known() {
		return
	}

	c.mu.Lock()
	fn := c.handlers[event]
	c.mu.Unlock()

	if fn == nil {
		return
	}
	c.log.Debug("realtime event", logger.Event(string(event)))
	fn()
}
