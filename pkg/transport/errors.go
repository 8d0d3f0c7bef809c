package transport

import (
	"errors"
	"fmt"
)

// Transport errors. Callers classify failures with errors.Is; HTTP status
// failures additionally carry details through *StatusError.
var (
	ErrNetwork         = errors.New("transport: network failure")
	ErrHTTPStatus      = errors.New("transport: unexpected http status")
	ErrInvalidRequest  = errors.New("transport: invalid request")
	ErrInvalidURL      = errors.New("transport: invalid url")
	ErrEncodeRequest   = errors.New("transport: failed to encode request body")
	ErrDecodeResponse  = errors.New("transport: failed to decode response body")
	ErrResponseTooLong = errors.New("transport: response body exceeds limit")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	// Message is the backend's "message" field when the body is a JSON error.
	Message string
	Body    []byte
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("transport: http status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("transport: http status %d", e.StatusCode)
}

// Is makes errors.Is(err, ErrHTTPStatus) match any StatusError.
func (e *StatusError) Is(target error) bool {
	return target == ErrHTTPStatus
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}
