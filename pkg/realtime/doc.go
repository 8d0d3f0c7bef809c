// Package realtime delivers record change notifications for a collection
// over a WebSocket connection.
//
// A Channel holds at most one connection. Subscribe opens it when needed and
// returns a Registrar for event handlers; every Subscribe call starts with a
// fresh handler table:
//
//	ch := realtime.New("wss://api.example.com/ws/posts")
//	ch.Subscribe(ctx).
//		OnCreate(func() { log.Println("created") }).
//		OnUpdate(func() { log.Println("updated") })
//	defer ch.Unsubscribe()
//
// Messages are plain text event names ("create", "update", "delete"); any
// other payload is ignored. Handlers run synchronously on the connection's
// read goroutine.
package realtime
