package authstore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/pocketrest/pkg/jwt"
	"github.com/dmitrymomot/pocketrest/pkg/logger"
)

// CookieOptions selects the attributes appended to an exported cookie.
// Zero-valued fields produce no attribute. Expires defaults to the token expiry.
type CookieOptions struct {
	Expires  time.Time
	Path     string
	Domain   string
	MaxAge   int
	Secure   bool
	HttpOnly bool
	SameSite http.SameSite
}

// LoadFromCookie restores the session from a Cookie header value.
// When the cookie is absent the session is cleared in memory and storage is left alone.
// A cookie that fails to decode returns ErrCorruptSession and changes nothing.
func (s *Store) LoadFromCookie(ctx context.Context, header string, key ...string) error {
	name := s.cookieName(key)

	raw, ok := findCookie(header, name)
	if !ok {
		s.writeMu.Lock()
		s.set("", nil)
		s.writeMu.Unlock()
		return nil
	}

	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return errors.Join(ErrCorruptSession, err)
	}
	p, err := decodePayload([]byte(decoded))
	if err != nil {
		s.log.DebugContext(ctx, "rejected session cookie", logger.StorageKey(name), logger.Error(err))
		return err
	}

	s.Save(ctx, p.Token, p.Model)
	return nil
}

// ExportToCookie renders the session as a Set-Cookie value.
// It returns false when there is no token or the cookie name is invalid.
// opts may be nil for a bare name=value pair.
func (s *Store) ExportToCookie(opts *CookieOptions, key ...string) (string, bool) {
	s.mu.RLock()
	token, record := s.token, s.record
	s.mu.RUnlock()

	if token == "" {
		return "", false
	}

	data, err := json.Marshal(payload{Token: token, Model: record})
	if err != nil {
		return "", false
	}

	c := &http.Cookie{
		Name:  s.cookieName(key),
		Value: escapeComponent(string(data)),
	}
	if opts != nil {
		c.Expires = opts.Expires
		if c.Expires.IsZero() {
			if exp, err := jwt.ExpiresAt(token); err == nil {
				c.Expires = exp
			}
		}
		c.Path = opts.Path
		c.Domain = opts.Domain
		c.MaxAge = opts.MaxAge
		c.Secure = opts.Secure
		c.HttpOnly = opts.HttpOnly
		c.SameSite = opts.SameSite
	}
	v := c.String()
	if v == "" {
		return "", false
	}
	return v, true
}

func (s *Store) cookieName(key []string) string {
	if len(key) > 0 && key[0] != "" {
		return key[0]
	}
	return s.storageKey
}

func findCookie(header, name string) (string, bool) {
	for part := range strings.SplitSeq(header, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if ok && k == name {
			return strings.Trim(v, `"`), true
		}
	}
	return "", false
}

// escapeComponent escapes s the way browsers encode URI components.
func escapeComponent(s string) string {
	return componentEscaper.Replace(url.QueryEscape(s))
}

// componentEscaper restores the characters URI component encoding leaves intact.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)
