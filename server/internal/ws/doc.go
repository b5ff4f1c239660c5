// Package ws implements the WebSocket hub that keeps open pages in sync with
// the session state.
//
// New(store, interval) creates a Hub.
// Hub.Run(ctx) polls the store every interval and broadcasts when the
// generation count changed; it blocks until ctx is cancelled, then closes all
// active connections.
// Hub.ServeHTTP upgrades an HTTP connection to WebSocket, sends the current
// state immediately on connect, then streams updates.
//
// Message format sent to clients:
//
//	{
//	  "event": "state",
//	  "data":  {"generated_count": 3, "history": ["…", "…", "…"], "updated_at": "…"}
//	}
//
// The endpoint is mounted at /ws/stream by the server.
package ws
