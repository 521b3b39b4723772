// Package client provides the client (customer) catalog as seen by reporting.
package client

import (
	"fmt"

	"bizreport/internal/core/id"
)

// Client is a customer registered by an owner.
type Client struct {
	ID      id.ID  `db:"id" json:"id"`
	OwnerID id.ID  `db:"owner_id" json:"ownerId"`
	Name    string `db:"name" json:"name"`
}

// PlaceholderName is used when a referenced client cannot be found.
func PlaceholderName(clientID id.ID) string {
	return fmt.Sprintf("Client ID %s", clientID)
}

// ResolveName returns the client's name from the lookup, or a placeholder.
func ResolveName(lookup map[id.ID]Client, clientID id.ID) string {
	if c, ok := lookup[clientID]; ok {
		return c.Name
	}
	return PlaceholderName(clientID)
}
