package jwt

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	gjwt "github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded, unverified payload of a token.
type Claims = gjwt.MapClaims

// parser is only used for segment decoding. Signatures are never checked here:
// the SDK holds tokens issued by the backend, it does not verify them.
var parser = gjwt.NewParser()

// Decode returns the claims carried in the payload segment of token.
// Header and signature segments are not inspected, so any three-part token
// with a base64url JSON payload decodes.
func Decode(token string) (Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, ErrMalformedToken
	}

	payload, err := parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}

	claims := Claims{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}

	return claims, nil
}

// ExpiresAt returns the expiry encoded in the exp claim.
// A token without exp yields the Unix epoch, i.e. it is already expired.
func ExpiresAt(token string) (time.Time, error) {
	claims, err := Decode(token)
	if err != nil {
		return time.Time{}, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, errors.Join(ErrMalformedToken, ErrInvalidClaims, err)
	}
	if exp == nil {
		return time.Unix(0, 0), nil
	}

	return exp.Time, nil
}

// IsExpired reports whether token can no longer be used at now.
// Malformed tokens are treated as expired.
func IsExpired(token string, now time.Time) bool {
	if token == "" {
		return true
	}
	exp, err := ExpiresAt(token)
	if err != nil {
		return true
	}
	return !exp.After(now)
}
