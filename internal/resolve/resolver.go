package resolve

import "context"

// Resolver maps a log origin (container id, container name or hostname) to
// the logical service name used to label canonical events.
type Resolver interface {
	Resolve(ctx context.Context, origin string) (serviceName string, ok bool)
}
