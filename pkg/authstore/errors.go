package authstore

import "errors"

var (
	// ErrCorruptSession indicates a persisted or cookie session blob could not be parsed.
	ErrCorruptSession = errors.New("authstore.corrupt_session")

	// ErrStorageUnavailable is reported to the logger when the durable slot cannot be used.
	ErrStorageUnavailable = errors.New("authstore.storage_unavailable")
)
