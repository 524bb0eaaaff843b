// Package delivery defines the transport-facing contracts of the project.
package delivery

import "context"

// Delivery is a long-running transport endpoint, e.g. an HTTP server.
type Delivery interface {
	Serve(ctx context.Context) error
}
