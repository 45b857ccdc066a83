// Package delivery defines the shared contract for transport servers.
package delivery

import "context"

// Delivery is a server that carries traffic into the application. Serve
// blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
