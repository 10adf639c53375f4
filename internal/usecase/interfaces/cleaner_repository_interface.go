package interfaces

import (
	"context"

	"cleanmatch/internal/domain/entities"
)

// ICleanerRepository abstracts DynamoDB persistence for Cleaner.
//
// Zero-value returns follow the same convention as IRequestRepository:
// missing document (or failed condition) with a nil error.

type ICleanerRepository interface {
	Create(ctx context.Context, c entities.Cleaner) (entities.Cleaner, error)
	GetByID(ctx context.Context, id string) (entities.Cleaner, error)
	GetByUsername(ctx context.Context, username string) (entities.Cleaner, error)
	// FindByUsernameOrEmail backs the signup uniqueness probe.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (entities.Cleaner, error)
	Update(ctx context.Context, c entities.Cleaner) (entities.Cleaner, error)
	Delete(ctx context.Context, id string) (bool, error)

	// List returns up to limit cleaners for the dashboard page.
	List(ctx context.Context, limit int) ([]entities.Cleaner, error)
	// Filter returns every cleaner matching all supplied criteria.
	Filter(ctx context.Context, f entities.CleanerFilter) ([]entities.Cleaner, error)

	// ApplyRating folds one rating into the derived stars aggregate and
	// appends the review comment, using an optimistic precondition on the
	// current rating count so concurrent ratings never lose updates.
	ApplyRating(ctx context.Context, id string, rating int, comment string) (entities.Cleaner, error)
}
