/*
Package handler provides the HTTP handlers and routing setup for postboard.

This file contains the WebSocket endpoint: the connection is upgraded,
registered with the feed registry, and served by the client's read and write
pumps until it disconnects.
*/
package handler

import (
	"net/http"

	"github.com/gorilla/websocket"

	"postboard/internal/app/feed"
	"postboard/internal/pkg/logx"
)

// HandleWebSocket upgrades the connection and runs the subscriber lifecycle.
// Registration happens on accept; deregistration is guaranteed by the read
// pump on every exit path.
func HandleWebSocket(upgrader websocket.Upgrader, deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logx.Error(err, "Failed to upgrade connection to WebSocket")
			return
		}

		client := feed.NewClient(deps.Feed, conn)
		deps.Feed.Add(client)

		logx.Info("WebSocket subscriber connected.")

		go client.WritePump()

		client.ReadPump(r.Context())
	}
}
