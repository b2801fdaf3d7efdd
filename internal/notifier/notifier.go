// Package notifier delivers the composed broadcast to the configured
// channels. Each channel failure is logged and isolated; a broken
// webhook never blocks the others.
package notifier

import "context"

// Notifier sends one broadcast text to a single channel.
type Notifier interface {
	Name() string
	Send(ctx context.Context, text string) error
}
