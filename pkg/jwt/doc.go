// Package jwt decodes bearer tokens handed out by the backend.
//
// The SDK never verifies signatures: it only needs to know when a token
// stops being usable so it can decide whether to send an Authorization
// header. Decoding reads the payload segment only, mirroring what browser
// helpers such as jwt-decode do.
//
// # Usage
//
//	exp, err := jwt.ExpiresAt(token)
//	if errors.Is(err, jwt.ErrMalformedToken) {
//	    // treat as logged out
//	}
//
//	if jwt.IsExpired(token, time.Now()) {
//	    // ask the user to sign in again
//	}
//
// A token without an exp claim decodes to the Unix epoch and is therefore
// always expired.
//
// # Error Handling
//
// ErrMalformedToken is returned for anything that is not three dot-separated
// segments with a base64url JSON payload. ErrInvalidClaims is joined in when
// the exp claim has an unexpected type.
package jwt
