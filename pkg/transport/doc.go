// Package transport is the HTTP collaborator of the SDK: it turns a Request
// (method, URL, headers, body) into a call against the backend and hands back
// the raw 2xx body.
//
// Bodies may be nil, JSON-encodable values, raw bytes, io.Readers, or a
// *Multipart form for records carrying files. Every request gets an
// X-Request-ID header (see pkg/requestid) and a User-Agent.
//
// # Error Handling
//
//   - ErrInvalidRequest, ErrInvalidURL, ErrEncodeRequest: nothing was sent.
//   - ErrNetwork: the request was sent but no response was read.
//   - *StatusError (matches ErrHTTPStatus): the backend answered non-2xx;
//     Message holds the backend's "message" field when present.
//   - ErrResponseTooLong: the body exceeded WithMaxBodySize.
//
// There are no retries and no backoff at this layer. Callers that need a
// deadline pass a context with one.
package transport
