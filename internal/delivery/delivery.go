// Package delivery defines the entry points through which the outside world
// talks to the application.
package delivery

import "context"

// Delivery is a serving surface (HTTP today). Each implementation registers
// itself in the "deliveries" group and is started by the main entry point.
type Delivery interface {
	// Serve blocks and serves until the process shuts down.
	Serve(ctx context.Context) error
}
