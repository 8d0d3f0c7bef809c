package collection

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/pocketrest/pkg/authstore"
	"github.com/dmitrymomot/pocketrest/pkg/logger"
	"github.com/dmitrymomot/pocketrest/pkg/realtime"
	"github.com/dmitrymomot/pocketrest/pkg/transport"
)

// Record is a backend record; its fields are defined by the collection schema.
type Record = authstore.Record

// Sender performs HTTP requests. *transport.Client implements it.
type Sender interface {
	Send(ctx context.Context, req *transport.Request) (*transport.Response, error)
}

const (
	headerPreflightMethod = "Access-Control-Request-Method"
	headerAuthorization   = "Authorization"

	fullListPerPage = 30
)

// Collection is a client for one named backend collection.
type Collection struct {
	name        string
	recordsURL  string
	filesURL    string
	realtimeURL string

	store  *authstore.Store
	sender Sender
	log    *slog.Logger

	realtimeOpts []realtime.Option
	channel      *realtime.Channel
}

// New creates a client for collection name under rootURL.
// A trailing slash on rootURL is ignored. store is shared and may be nil for
// anonymous access.
func New(rootURL, name string, store *authstore.Store, sender Sender, opts ...Option) *Collection {
	root := strings.TrimSuffix(rootURL, "/")
	c := &Collection{
		name:        name,
		recordsURL:  root + "/api/collections/" + name,
		filesURL:    root + "/api/files/" + name,
		realtimeURL: strings.Replace(root, "http", "ws", 1) + "/ws/" + name,
		store:       store,
		sender:      sender,
		log:         logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	base := c.log.With(logger.Collection(name))
	c.log = base.With(logger.Component("collection"))
	c.channel = realtime.New(c.realtimeURL, append([]realtime.Option{realtime.WithLogger(base)}, c.realtimeOpts...)...)
	return c
}

func (c *Collection) Name() string        { return c.name }
func (c *Collection) RecordsURL() string  { return c.recordsURL }
func (c *Collection) FilesURL() string    { return c.filesURL }
func (c *Collection) RealtimeURL() string { return c.realtimeURL }

// Create adds a record. data is any JSON-encodable value or a *transport.Multipart.
func (c *Collection) Create(ctx context.Context, data any, opts ...CallOption) (Record, error) {
	resp, err := c.do(ctx, http.MethodPost, http.MethodPost, c.recordsURL+"/records", data, opts)
	if err != nil {
		return nil, err
	}
	return decodeRecord(resp)
}

// Update patches the record with the given id.
func (c *Collection) Update(ctx context.Context, id string, data any, opts ...CallOption) (Record, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	resp, err := c.do(ctx, http.MethodPatch, http.MethodPatch, c.recordURL(id), data, opts)
	if err != nil {
		return nil, err
	}
	return decodeRecord(resp)
}

// Delete removes the record with the given id and returns the decoded reply,
// which is nil for an empty body.
// The pre-flight hint header announces PATCH, which existing backends expect.
func (c *Collection) Delete(ctx context.Context, id string, opts ...CallOption) (Record, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	resp, err := c.do(ctx, http.MethodDelete, http.MethodPatch, c.recordURL(id), nil, opts)
	if err != nil {
		return nil, err
	}
	return decodeRecord(resp)
}

// GetOne fetches a single record. Non-empty params are sent as the query string.
func (c *Collection) GetOne(ctx context.Context, id string, params Params, opts ...CallOption) (Record, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	u := c.recordURL(id)
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	resp, err := c.do(ctx, http.MethodGet, http.MethodGet, u, nil, opts)
	if err != nil {
		return nil, err
	}
	return decodeRecord(resp)
}

// GetList fetches one page of records and returns its items.
// A response without items yields a nil slice.
func (c *Collection) GetList(ctx context.Context, page, perPage int, params Params, opts ...CallOption) ([]Record, error) {
	u := c.recordsURL + "/records?page=" + strconv.Itoa(page) + "&perPage=" + strconv.Itoa(perPage)
	if len(params) > 0 {
		u += "&" + params.Encode()
	}
	resp, err := c.do(ctx, http.MethodGet, http.MethodGet, u, nil, opts)
	if err != nil {
		return nil, err
	}

	var list struct {
		Items []Record `json:"items"`
	}
	if err := resp.Decode(&list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

// GetFullList returns the first page of up to 30 records with the total count skipped.
// It does not page further.
func (c *Collection) GetFullList(ctx context.Context, params Params, opts ...CallOption) ([]Record, error) {
	return c.GetList(ctx, 1, fullListPerPage, mergeParams(Params{"skipTotal": 1}, params), opts...)
}

// GetFirstListItem returns the first record matching filter, or nil when none does.
func (c *Collection) GetFirstListItem(ctx context.Context, filter string, params Params, opts ...CallOption) (Record, error) {
	items, err := c.GetList(ctx, 1, 1, mergeParams(Params{"skipTotal": 1}, params, Params{"filter": filter}), opts...)
	if err != nil || len(items) == 0 {
		return nil, err
	}
	return items[0], nil
}

// File returns the download URL of a file attached to a record.
func (c *Collection) File(recordID, filename string) string {
	return c.filesURL + "/" + recordID + "/" + filename
}

// Subscribe opens the collection's realtime channel if needed and returns a
// fresh handler registrar.
func (c *Collection) Subscribe(ctx context.Context) *realtime.Registrar {
	return c.channel.Subscribe(ctx)
}

// Unsubscribe closes the realtime channel.
func (c *Collection) Unsubscribe() error {
	return c.channel.Unsubscribe()
}

// IsSubscribed reports whether the realtime channel is open.
func (c *Collection) IsSubscribed() bool {
	return c.channel.IsOpen()
}

func (c *Collection) recordURL(id string) string {
	return c.recordsURL + "/records/" + id
}

func (c *Collection) do(ctx context.Context, method, preflight, url string, body any, opts []CallOption) (*transport.Response, error) {
	if c.sender == nil {
		return nil, ErrNoSender
	}

	cfg := callConfig{auth: true, header: http.Header{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	header := cfg.header
	header.Set(headerPreflightMethod, preflight)
	if cfg.auth && c.store != nil && c.store.IsValid() {
		header.Set(headerAuthorization, "Bearer "+c.store.Token())
	}

	log := c.log.With(logger.Method(method), logger.URL(url))
	resp, err := c.sender.Send(ctx, &transport.Request{
		Method: method,
		URL:    url,
		Header: header,
		Body:   body,
	})
	if err != nil {
		log.DebugContext(ctx, "request failed", logger.Error(err))
		return nil, err
	}
	log.DebugContext(ctx, "request completed", logger.Status(resp.StatusCode))
	return resp, nil
}

func decodeRecord(resp *transport.Response) (Record, error) {
	var rec Record
	if err := resp.Decode(&rec); err != nil {
		return nil, err
	}
	return rec, nil
}
