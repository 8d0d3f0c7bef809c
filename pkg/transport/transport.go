package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/pocketrest/pkg/logger"
	"github.com/dmitrymomot/pocketrest/pkg/requestid"
)

const (
	DefaultUserAgent   = "pocketrest-go/1.0"
	DefaultTimeout     = 30 * time.Second
	defaultMaxBodySize = 10 << 20
)

// Client sends requests to the backend and decodes nothing on its own:
// it returns the raw 2xx body or a classified error. No retries are made.
type Client struct {
	// client is reused across requests for connection pooling
	client      *http.Client
	userAgent   string
	maxBodySize int64
	log         *slog.Logger
}

// New creates a Client with a pooled http.Client.
func New(opts ...Option) *Client {
	c := &Client{
		client: &http.Client{
			Timeout: DefaultTimeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent:   DefaultUserAgent,
		maxBodySize: defaultMaxBodySize,
		log:         logger.Discard(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Send performs req and returns the read response for 2xx statuses.
//
// Failures are classified as ErrInvalidRequest/ErrInvalidURL/ErrEncodeRequest
// (nothing was sent), ErrNetwork (no response) or *StatusError (non-2xx).
func (c *Client) Send(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Method == "" {
		return nil, ErrInvalidRequest
	}
	if err := validateURL(req.URL); err != nil {
		return nil, err
	}

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	ctx, reqID := requestid.Ensure(ctx)

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, errors.Join(ErrInvalidRequest, err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set(requestid.Header, reqID)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	for k, values := range req.Header {
		httpReq.Header.Del(k)
		for _, v := range values {
			httpReq.Header.Add(k, v)
		}
	}

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.log.DebugContext(ctx, "request failed",
			logger.Method(req.Method), logger.URL(req.URL), logger.Duration(time.Since(start)), logger.Error(err))
		return nil, errors.Join(ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Read one byte past the limit to detect oversized bodies.
	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize+1))
	if err != nil {
		return nil, errors.Join(ErrNetwork, err)
	}
	if int64(len(data)) > c.maxBodySize {
		return nil, ErrResponseTooLong
	}

	c.log.DebugContext(ctx, "request completed",
		logger.Method(req.Method), logger.URL(req.URL), logger.Status(resp.StatusCode), logger.Duration(time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newStatusError(resp.StatusCode, data)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// validateURL rejects anything but absolute http(s) URLs before a request is built.
func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: URL is required", ErrInvalidURL)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return errors.Join(ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidURL)
	}
	return nil
}

func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case *Multipart:
		buf, contentType, err := b.encode()
		if err != nil {
			return nil, "", err
		}
		return buf, contentType, nil
	case io.Reader:
		return b, "application/octet-stream", nil
	case []byte:
		return bytes.NewReader(b), "application/json", nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, "", errors.Join(ErrEncodeRequest, err)
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

func newStatusError(code int, body []byte) *StatusError {
	se := &StatusError{StatusCode: code, Body: body}

	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		se.Message = payload.Message
		return se
	}

	// Plain-text bodies are kept short and on one line for logs.
	text := strings.ReplaceAll(strings.TrimSpace(string(body)), "\n", " ")
	if len(text) > 200 {
		text = text[:200] + "..."
	}
	se.Message = text
	return se
}
