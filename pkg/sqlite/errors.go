package sqlite

import "errors"

var (
	ErrFailedToOpenDB          = errors.New("sqlite: failed to open database")
	ErrFailedToApplyMigrations = errors.New("sqlite: failed to apply migrations")
	ErrEmptyKey                = errors.New("sqlite: empty session key")
)
