// Package authstore keeps the authenticated session of a pocketrest client.
//
// A Store holds the bearer token, the identity record and two derived flags:
// validity (token present and unexpired at evaluation time) and admin (record
// role equals AdminRole). The session can be persisted to any Storage backend
// and exchanged with browsers through cookies:
//
//	store := authstore.New(authstore.WithStorage(authstore.NewMemoryStorage()))
//	if err := store.LoadFromCookie(ctx, r.Header.Get("Cookie")); err != nil {
//		// corrupt cookie, session unchanged
//	}
//	if v, ok := store.ExportToCookie(&authstore.CookieOptions{Path: "/", HttpOnly: true}); ok {
//		w.Header().Add("Set-Cookie", v)
//	}
//
// Validity is recomputed whenever the token changes and on Revalidate; it is
// never refreshed in the background.
package authstore
