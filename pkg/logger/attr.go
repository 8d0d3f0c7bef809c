package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting package under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Collection records the backend collection name.
func Collection(name string) slog.Attr {
	return slog.String("collection", name)
}

// Method records the HTTP method of an outgoing request.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// URL records the target URL of an outgoing request or socket.
func URL(u string) slog.Attr {
	return slog.String("url", u)
}

// Status records the HTTP status code of a response.
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// Event records a realtime event name.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// StorageKey records the durable storage slot of a session.
func StorageKey(key string) slog.Attr {
	return slog.String("storage_key", key)
}

// RequestID records the request identifier under the key "request_id".
// Empty ids produce an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Duration records how long an operation took.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
