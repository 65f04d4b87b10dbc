// Package delivery contains the transports that expose lostfound use cases.
package delivery

import "context"

// Delivery is a server started by the fx invoke hook and stopped through its lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
