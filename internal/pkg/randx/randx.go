/*
Package randx provides generation of unique identifiers.

It is used to assign identities to in-memory objects that have no persisted
identity, such as WebSocket subscriber connections.
*/
package randx

import "github.com/google/uuid"

// ConnectionID generates a UUID v4 string identifying one subscriber
// connection for the lifetime of its transport session.
func ConnectionID() string {
	return uuid.New().String()
}
