// Package collection is the client for a single backend record collection.
//
// Records live under {root}/api/collections/{name}/records, attached files
// under {root}/api/files/{name} and change notifications on
// {ws root}/ws/{name}. Every request carries an Access-Control-Request-Method
// hint and, while the shared session is valid, a Bearer token:
//
//	posts := collection.New("https://api.example.com", "posts", store, transport.New())
//	items, err := posts.GetList(ctx, 1, 20, collection.Params{"sort": "-created"})
//
// AuthWithPassword writes its result into the shared authstore.Store, so one
// login authenticates every collection built on the same store.
package collection
