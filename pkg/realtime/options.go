package realtime

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// Option configures a Channel.
type Option func(*Channel)

// WithDialer replaces the default WebSocket dialer.
func WithDialer(d *websocket.Dialer) Option {
	return func(c *Channel) {
		if d != nil {
			c.dialer = d
		}
	}
}

// WithHeader sets headers sent with the opening handshake.
func WithHeader(h http.Header) Option {
	return func(c *Channel) {
		c.header = h.Clone()
	}
}

// WithLogger sets the logger used for connection errors.
func WithLogger(log *slog.Logger) Option {
	return func(c *Channel) {
		if log != nil {
			c.log = log
		}
	}
}
