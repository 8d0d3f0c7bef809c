package collection

import (
	"context"
	"net/http"
)

// AuthResponse is the backend reply to a password authentication.
type AuthResponse struct {
	Token  string `json:"token"`
	Record Record `json:"record"`
}

// AuthWithPassword authenticates against this collection and installs the
// result into the shared session store.
//
// The request is sent without credentials. Whatever the outcome, the store is
// overwritten with the returned token and record: an empty reply or a failed
// request leaves it unauthenticated. Transport errors are returned after the
// store has been updated.
func (c *Collection) AuthWithPassword(ctx context.Context, identity, password string) (*AuthResponse, error) {
	body := map[string]string{
		"identity": identity,
		"password": password,
	}
	resp, err := c.do(ctx, http.MethodPost, http.MethodPost, c.recordsURL+"/auth-with-password", body, []CallOption{WithoutAuth()})

	var auth AuthResponse
	if err == nil {
		if derr := resp.Decode(&auth); derr != nil {
			auth, err = AuthResponse{}, derr
		}
	}
	if c.store != nil {
		c.store.SetAuth(ctx, auth.Token, auth.Record)
	}
	if err != nil {
		return nil, err
	}
	return &auth, nil
}
