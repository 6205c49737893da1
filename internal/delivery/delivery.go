// Package delivery defines the contract every transport entrypoint implements.
package delivery

import "context"

// Delivery is a long-running transport (an HTTP server here) started by main.
type Delivery interface {
	Serve(ctx context.Context) error
}
