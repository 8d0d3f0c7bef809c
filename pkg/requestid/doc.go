// Package requestid attaches correlation identifiers to outgoing requests.
//
// The HTTP transport calls Ensure for every request: a caller that already
// put an id into the context (WithContext) keeps it, otherwise a UUIDv4 is
// generated. The id is sent in the X-Request-ID header and can be added to
// log records through LoggerExtractor.
//
//	ctx := requestid.WithContext(context.Background(), "import-42")
//	_, err := posts.Create(ctx, data) // sent with X-Request-ID: import-42
package requestid
