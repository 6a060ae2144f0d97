// Package delivery holds the long-running entry points started by the fx app.
package delivery

import "context"

// Delivery is a server or runner collected through the "deliveries" value group.
type Delivery interface {
	// Serve blocks until the delivery stops.
	Serve(ctx context.Context) error
}
