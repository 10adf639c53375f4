package interfaces

import (
	"context"

	"cleanmatch/internal/domain/events"
)

// IRatingPublisher hands a RequestRated event to the cleaner profile
// aggregate. The lifecycle engine only publishes; it never touches Cleaner
// documents directly.
type IRatingPublisher interface {
	Publish(ctx context.Context, event events.RequestRated) error
}
