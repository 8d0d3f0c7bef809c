// Package logger builds the *slog.Logger instances used across the SDK and
// the pocketrest command line tool.
//
// New creates a logger from functional options (format, level, output,
// static attributes and context extractors). The returned handler is wrapped
// in LogHandlerDecorator, which appends attributes pulled from the context of
// each record, for example the X-Request-ID of an outgoing HTTP call.
//
// Library packages never log by default: they take a logger through their
// own WithLogger option and fall back to Discard.
//
// # Usage
//
//	import "github.com/dmitrymomot/pocketrest/pkg/logger"
//
//	log := logger.New(
//	    logger.WithLevel(logger.ParseLevel("debug")),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "record created", logger.Collection("posts"))
//
// # Attributes
//
// attr.go holds constructors that keep key names consistent: Component,
// Collection, Method, URL, Status, Event, StorageKey, RequestID, Duration
// and Error.
package logger
