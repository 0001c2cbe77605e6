/*
Package feed contains the WebSocket connection registry and broadcaster.

The Registry owns the set of live subscriber connections for the process and
pushes full-state notifications to all of them whenever post state changes.
It is an explicitly owned object injected into the WebSocket handler and the
mutation paths, with a lifecycle tied to process start and stop.
*/
package feed

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"postboard/internal/pkg/logx"
)

const broadcastChannelBuffer = 16

// SnapshotFunc produces the payload broadcast to every subscriber: the
// current list state, marshaled.
type SnapshotFunc func(ctx context.Context) ([]byte, error)

// Registry maintains the set of live subscriber connections. Membership
// changes and broadcast passes are serialized through the run loop, so a
// pass never races a concurrent connect or disconnect.
type Registry struct {
	// clients maps connection id to the live client. Owned by the run loop.
	clients map[string]*Client

	// register queues clients joining the registry.
	register chan *Client

	// unregister queues clients leaving the registry.
	unregister chan *Client

	// broadcast queues payloads for delivery to every registered client.
	broadcast chan []byte

	// stop signals the run loop to shut down.
	stop chan struct{}

	// wg waits for the run loop to finish during shutdown.
	wg sync.WaitGroup

	// snapshot produces the current state payload for a broadcast.
	snapshot SnapshotFunc

	// structured logger with registry context.
	logger zerolog.Logger
}

// NewRegistry constructs a Registry and starts its run loop.
func NewRegistry(snapshot SnapshotFunc) *Registry {
	r := &Registry{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, broadcastChannelBuffer),
		stop:       make(chan struct{}),
		snapshot:   snapshot,
		logger:     logx.Logger().With().Str("component", "feed").Logger(),
	}

	r.wg.Add(1)

	go r.run()

	return r
}

// run is the registry's event loop. It owns the clients map.
func (r *Registry) run() {
	defer r.wg.Done()

	r.logger.Info().Msg("Feed registry loop started.")

	for {
		select {
		case client := <-r.register:
			r.clients[client.id] = client
			r.logger.Info().
				Str("conn_id", client.id).
				Int("subscribers", len(r.clients)).
				Msg("Subscriber registered.")

		case client := <-r.unregister:
			r.drop(client)

		case payload := <-r.broadcast:
			r.deliver(payload)

		case <-r.stop:
			for _, client := range r.clients {
				close(client.send)
			}
			r.clients = make(map[string]*Client)

			r.logger.Info().Msg("Feed registry loop stopped.")
			return
		}
	}
}

// drop removes the client from the registry and closes its send channel.
// Stale unregisters (a newer client reused nothing; the entry is already
// gone or belongs to another connection) are ignored.
func (r *Registry) drop(client *Client) {
	current, ok := r.clients[client.id]
	if !ok || current != client {
		return
	}

	delete(r.clients, client.id)
	close(client.send)

	r.logger.Info().
		Str("conn_id", client.id).
		Int("subscribers", len(r.clients)).
		Msg("Subscriber removed.")
}

// deliver pushes the payload to every registered client. A client whose send
// buffer is full cannot be waited on mid-pass: it is pruned so one dead
// connection does not block delivery to the rest.
func (r *Registry) deliver(payload []byte) {
	for id, client := range r.clients {
		select {
		case client.send <- payload:
		default:
			r.logger.Warn().
				Str("conn_id", id).
				Msg("Subscriber send buffer full. Pruning connection.")

			delete(r.clients, id)
			close(client.send)
		}
	}
}

// Add queues the client for registration.
func (r *Registry) Add(client *Client) {
	select {
	case r.register <- client:
	case <-r.stop:
	}
}

// Remove queues the client for removal.
func (r *Registry) Remove(client *Client) {
	select {
	case r.unregister <- client:
	case <-r.stop:
	}
}

// NotifyChanged re-reads the current state and broadcasts it to every
// subscriber. Snapshot failures are logged and the broadcast is skipped;
// subscribers simply keep their previous view.
func (r *Registry) NotifyChanged(ctx context.Context) {
	payload, err := r.snapshot(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to snapshot state for broadcast.")
		return
	}

	select {
	case r.broadcast <- payload:
	case <-r.stop:
	}
}

// Shutdown stops the run loop and closes every registered connection's send
// channel, which terminates their write pumps.
func (r *Registry) Shutdown() {
	select {
	case <-r.stop:
	default:
		close(r.stop)
	}

	r.wg.Wait()
}
