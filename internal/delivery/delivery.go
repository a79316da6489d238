// Package delivery defines the contract shared by every transport frontend.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...) started by
// the application container.
type Delivery interface {
	// Serve blocks, accepting work until the delivery is shut down.
	Serve(ctx context.Context) error
}
