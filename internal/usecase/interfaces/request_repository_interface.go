package interfaces

import (
	"context"
	"time"

	"cleanmatch/internal/domain/entities"
)

// IRequestRepository abstracts DynamoDB persistence for Request.
//
// Contract shared by every conditional write:
//   - a zero-value Request with a nil error means the condition did not
//     hold (document missing, or a concurrent transition won the race);
//     the use case decides which of the two it was.
//   - a non-nil error is an infrastructure failure and is never a domain
//     outcome.

type IRequestRepository interface {
	Create(ctx context.Context, r entities.Request) (entities.Request, error)
	GetByID(ctx context.Context, id string) (entities.Request, error)

	// ListByCleaner returns the cleaner's assigned requests restricted to
	// the given statuses, newest first.
	ListByCleaner(ctx context.Context, cleanerID string, statuses []entities.RequestStatus) ([]entities.Request, error)
	// ListByClient is the client-side equivalent; an empty status list
	// means no restriction.
	ListByClient(ctx context.Context, clientID string, statuses []entities.RequestStatus) ([]entities.Request, error)
	// ListGeneralOpen returns every open general request, newest first.
	ListGeneralOpen(ctx context.Context) ([]entities.Request, error)

	// UpdateStatus transitions status only while the current status is one
	// of from. acceptedAt, when non-nil, is stamped in the same write.
	UpdateStatus(ctx context.Context, id string, from []entities.RequestStatus, to entities.RequestStatus, acceptedAt *time.Time) (entities.Request, error)

	// AssignCleaner atomically fills an open general request: sets the
	// cleaner, flips the type to specific, moves status to accepted,
	// stamps acceptedAt and discards all applications. Conditional on the
	// request still being open and general.
	AssignCleaner(ctx context.Context, id, cleanerID string, acceptedAt time.Time) (entities.Request, error)

	// AddApplication appends the application, conditional on the request
	// being open and the cleaner not having applied yet.
	AddApplication(ctx context.Context, id string, app entities.Application) (entities.Request, error)

	// SetRating writes rating/review, conditional on the request being
	// completed and not rated before.
	SetRating(ctx context.Context, id string, rating int, review string) (entities.Request, error)
}
