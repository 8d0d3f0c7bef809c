package authstore

import (
	"log/slog"
	"time"
)

// Option configures a Store.
type Option func(*Store)

// WithStorage sets the durable slot backend. Without it the session lives in memory only.
func WithStorage(storage Storage) Option {
	return func(s *Store) {
		s.storage = storage
	}
}

// WithStorageKey overrides DefaultStorageKey for both storage and cookies.
func WithStorageKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.storageKey = key
		}
	}
}

// WithLogger sets the logger used to report storage failures.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides time.Now for validity checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}
