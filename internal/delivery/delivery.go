// Package delivery defines the inbound transport abstraction.
package delivery

import "context"

// Delivery is a long-running inbound server. Serve blocks until the server
// stops; shutdown is driven by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
