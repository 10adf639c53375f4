package events

import (
	"context"

	domainevents "cleanmatch/internal/domain/events"
	"cleanmatch/internal/usecase/interfaces"
)

// ratingApplier is the slice of the cleaner use case the publisher needs.
type ratingApplier interface {
	ApplyRating(ctx context.Context, event domainevents.RequestRated) error
}

// SyncRatingPublisher delivers RequestRated events to the cleaner profile
// aggregate in-process, on the caller's goroutine. The lifecycle engine and
// the stars read model stay decoupled behind the event type, so a broker
// could replace this without touching either side.
type SyncRatingPublisher struct {
	applier ratingApplier
}

var _ interfaces.IRatingPublisher = (*SyncRatingPublisher)(nil)

func NewSyncRatingPublisher(applier ratingApplier) *SyncRatingPublisher {
	return &SyncRatingPublisher{applier: applier}
}

func (p *SyncRatingPublisher) Publish(ctx context.Context, event domainevents.RequestRated) error {
	return p.applier.ApplyRating(ctx, event)
}
