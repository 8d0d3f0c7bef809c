package collection

import "errors"

var (
	// ErrEmptyID is returned when a record operation is called without an id.
	ErrEmptyID = errors.New("collection.empty_id")

	// ErrNoSender is returned by operations on a Collection built without a Sender.
	ErrNoSender = errors.New("collection.no_sender")
)
