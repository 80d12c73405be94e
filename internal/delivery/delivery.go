// Package delivery defines the contract every transport implementation
// satisfies so the entrypoint can start them uniformly.
package delivery

import "context"

// Delivery is a transport surface that serves requests until its
// lifecycle hook shuts it down.
type Delivery interface {
	Serve(ctx context.Context) error
}
