package transport

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
)

// Request describes one outgoing call.
// Body is nil, a *Multipart, an io.Reader, []byte, or any JSON-encodable value.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   any
}

// Response is a fully read 2xx response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsEmpty reports whether the body carries no value (no bytes or JSON null).
func (r *Response) IsEmpty() bool {
	if r == nil {
		return true
	}
	trimmed := bytes.TrimSpace(r.Body)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Decode unmarshals the JSON body into v. Empty bodies leave v untouched.
func (r *Response) Decode(v any) error {
	if r.IsEmpty() {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return errors.Join(ErrDecodeResponse, err)
	}
	return nil
}
