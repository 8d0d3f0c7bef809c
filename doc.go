// Package pocketrest is a Go client for REST backends that expose record
// collections, password authentication and per-collection realtime events.
//
// A Client is the registry entry point. It owns one session store and hands
// out one cached collection client per name, all sharing that session:
//
//	client := pocketrest.New("https://api.example.com",
//		pocketrest.WithStorage(redis.NewStorage(rdb)),
//	)
//	defer client.Close()
//
//	users := client.Collection("users")
//	if _, err := users.AuthWithPassword(ctx, "jane@example.com", "secret"); err != nil {
//		return err
//	}
//
//	// Authenticated, since the session is shared.
//	posts, err := client.Collection("posts").GetFullList(ctx, collection.Params{"sort": "-created"})
//
// Configuration can also be read from the environment with LoadConfig and
// NewFromConfig.
package pocketrest
