/*
Package feed contains the WebSocket connection registry and broadcaster.

This file defines the Client struct, one active subscriber connection. It
manages the connection's lifecycle and its read and write pumps.
*/
package feed

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"postboard/internal/pkg/logx"
	"postboard/internal/pkg/randx"
)

const (
	// timeout for writing to the WebSocket connection.
	writeWait = 10 * time.Second

	// maximum time the server waits for a Pong from the client.
	pongWait = 60 * time.Second

	// frequency at which the server sends a Ping message.
	pingPeriod = (pongWait * 9) / 10

	// inbound messages are only refresh triggers, so the read limit is small.
	maxMessageSize = 512

	// sendChannelBuffer sizes the per-client outbound queue.
	sendChannelBuffer = 16
)

// Client represents one active subscriber connection.
type Client struct {
	// id identifies the connection for the lifetime of its session.
	id string

	// registry is the process-wide connection registry.
	registry *Registry

	// conn is the underlying WebSocket connection.
	conn *websocket.Conn

	// send queues payloads waiting to be written to the connection.
	send chan []byte

	// structured logger with connection context.
	logger zerolog.Logger
}

// NewClient constructs a Client for the given connection.
func NewClient(registry *Registry, conn *websocket.Conn) *Client {
	id := randx.ConnectionID()

	return &Client{
		id:       id,
		registry: registry,
		conn:     conn,
		send:     make(chan []byte, sendChannelBuffer),
		logger:   logx.Logger().With().Str("conn_id", id).Logger(),
	}
}

// ReadPump reads from the WebSocket connection. Every inbound message,
// whatever its content, triggers a broadcast of the current list state to
// all subscribers. Deregistration runs on every exit path.
func (c *Client) ReadPump(ctx context.Context) {
	defer c.cleanupOnDisconnect()

	c.conn.SetReadLimit(maxMessageSize)

	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set read deadline")
		return
	}

	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Info().Err(err).Msg("Subscriber read failed (client close/going away)")
			}
			break
		}

		c.registry.NotifyChanged(ctx)
	}
}

// cleanupOnDisconnect deregisters the client and closes the connection when
// ReadPump terminates, normally or not.
func (c *Client) cleanupOnDisconnect() {
	c.logger.Info().Msg("Subscriber connection cleanup starting.")

	c.registry.Remove(c)

	if err := c.conn.Close(); err != nil {
		c.logger.Error().Err(err).Msg("Subscriber connection close error")
	}
}

// WritePump writes queued payloads from the send channel to the WebSocket
// connection and keeps the heartbeat alive.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()

		if err := c.conn.Close(); err != nil {
			c.logger.Error().Err(err).Msg("Subscriber connection close error in WritePump")
		}
	}()

	for {
		select {
		case payload, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.logger.Error().Err(err).Msg("Failed to set write deadline")
				return
			}

			if !ok {
				// registry closed the channel
				if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.logger.Error().Err(err).Msg("Error writing close message")
				}
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				c.logger.Error().Err(err).Msg("Error writing payload")
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.logger.Error().Err(err).Msg("Failed to set write deadline on ping")
				return
			}

			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.logger.Error().Err(err).Msg("Error writing ping")
				return
			}
		}
	}
}
