package authstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/pocketrest/pkg/jwt"
	"github.com/dmitrymomot/pocketrest/pkg/logger"
)

// DefaultStorageKey names both the durable slot and the cookie.
const DefaultStorageKey = "rest_auth"

// Store holds the authenticated session shared by every collection of a client.
type Store struct {
	mu     sync.RWMutex
	token  string
	record Record
	valid  bool
	admin  bool

	// writeMu serializes mutations together with their persistence so the
	// durable slot never lags behind an older in-memory state.
	writeMu sync.Mutex

	storageKey string
	storage    Storage
	now        func() time.Time
	log        *slog.Logger
}

// payload is the persisted and cookie representation of a session.
type payload struct {
	Token string `json:"token"`
	Model Record `json:"model"`
}

// New creates an empty, unauthenticated session store.
func New(opts ...Option) *Store {
	s := &Store{
		storageKey: DefaultStorageKey,
		now:        time.Now,
		log:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("authstore"))
	return s
}

// Token returns the current bearer token, "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Record returns a copy of the identity record, nil when unauthenticated.
func (s *Store) Record() Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record.Clone()
}

// IsValid reports whether the token was unexpired when validity was last evaluated.
func (s *Store) IsValid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.valid
}

// IsAdmin reports whether the identity record carries the admin role.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin
}

// StorageKey returns the slot name used for storage and cookies.
func (s *Store) StorageKey() string {
	return s.storageKey
}

// Revalidate re-evaluates token expiry against the clock and returns the new validity.
func (s *Store) Revalidate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.valid = s.tokenValid(s.token)
	return s.valid
}

// Save replaces the session and writes it to the durable slot.
// Storage failures are logged; the in-memory session is updated regardless.
func (s *Store) Save(ctx context.Context, token string, record Record) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.set(token, record)
	s.persist(ctx, token, record)
}

// SetAuth installs the result of a password authentication and persists it.
// Any non-empty token is trusted as valid, whatever its format; Revalidate
// applies the expiry check later.
func (s *Store) SetAuth(ctx context.Context, token string, record Record) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.setWithValidity(token, record, token != "")
	s.persist(ctx, token, record)
}

// Clear drops the session and removes the durable slot.
func (s *Store) Clear(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.set("", nil)
	if s.storage == nil {
		return
	}
	if err := s.storage.Delete(ctx, s.storageKey); err != nil {
		s.log.WarnContext(ctx, "failed to delete persisted session",
			logger.StorageKey(s.storageKey),
			logger.Error(errors.Join(ErrStorageUnavailable, err)),
		)
	}
}

// LoadFromStorage restores the session from the durable slot.
// A missing slot leaves the session untouched.
func (s *Store) LoadFromStorage(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	data, err := s.storage.Get(ctx, s.storageKey)
	if err != nil {
		return errors.Join(ErrStorageUnavailable, err)
	}
	if data == nil {
		return nil
	}

	p, err := decodePayload(data)
	if err != nil {
		return err
	}
	s.set(p.Token, p.Model)
	return nil
}

// set overwrites the in-memory fields and derives validity and admin flags.
func (s *Store) set(token string, record Record) {
	s.setWithValidity(token, record, s.tokenValid(token))
}

func (s *Store) setWithValidity(token string, record Record, valid bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.record = record.Clone()
	s.valid = valid
	s.admin = record.IsAdmin()
}

func (s *Store) tokenValid(token string) bool {
	return token != "" && !jwt.IsExpired(token, s.now())
}

func (s *Store) persist(ctx context.Context, token string, record Record) {
	log := s.log.With(logger.StorageKey(s.storageKey))
	if s.storage == nil {
		log.DebugContext(ctx, "no storage configured, session kept in memory")
		return
	}

	data, err := json.Marshal(payload{Token: token, Model: record})
	if err != nil {
		log.WarnContext(ctx, "failed to encode session", logger.Error(err))
		return
	}
	if err := s.storage.Set(ctx, s.storageKey, data); err != nil {
		log.WarnContext(ctx, "failed to persist session",
			logger.Error(errors.Join(ErrStorageUnavailable, err)),
		)
	}
}

func decodePayload(data []byte) (payload, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return payload{}, errors.Join(ErrCorruptSession, err)
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return payload{}, errors.Join(ErrCorruptSession, err)
	}
	return p, nil
}
