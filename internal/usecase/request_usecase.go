package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"cleanmatch/internal/domain/entities"
	"cleanmatch/internal/domain/events"
	"cleanmatch/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidRequestID    = errors.New("invalid request id")
	ErrInvalidClientID     = errors.New("invalid client id")
	ErrInvalidActorID      = errors.New("invalid actor id")
	ErrMissingFields       = errors.New("missing required fields")
	ErrCleanerRequired     = errors.New("cleaner id is required for specific requests")
	ErrInvalidRequestType  = errors.New("invalid request type")
	ErrInvalidTimeRange    = errors.New("invalid time range")
	ErrGeneralOnlyFields   = errors.New("budget and deadline only apply to general requests")
	ErrDeadlineInPast      = errors.New("deadline must be in the future")
	ErrOutsideSchedule     = errors.New("booking is outside the cleaner's declared hours")
	ErrRequestNotFound     = errors.New("request not found")
	ErrForbidden           = errors.New("actor is not allowed to perform this transition")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidTransition   = errors.New("status does not permit this transition")
	ErrOfferNotOpen        = errors.New("request is no longer available")
	ErrDeadlinePassed      = errors.New("application deadline has passed")
	ErrAlreadyApplied      = errors.New("cleaner already applied to this request")
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyAssigned     = errors.New("request already has a cleaner assigned")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrNotCompleted        = errors.New("request is not completed")
	ErrAlreadyRated        = errors.New("request already rated")
)

// CreateRequestCommand carries the client's booking input into the engine.
type CreateRequestCommand struct {
	Service     string
	Date        string
	StartTime   string
	EndTime     string
	Note        string
	RequestType entities.RequestType
	CleanerID   string
	Budget      float64
	Deadline    *time.Time
}

// IRequestUseCase is the request lifecycle engine: it owns every status
// transition, enforces who may trigger it, and runs the general-offer
// application/selection sub-protocol.
//
// Authorization is uniform: the acting identity is always an explicit
// argument and is checked against the field that denotes authority for the
// action (ClientID for client actions, CleanerID for cleaner actions).

type IRequestUseCase interface {
	Create(ctx context.Context, clientID string, cmd CreateRequestCommand) (entities.Request, error)
	GetByID(ctx context.Context, id string) (entities.Request, error)
	ListForCleaner(ctx context.Context, cleanerID string) ([]entities.Request, error)
	ListForClient(ctx context.Context, clientID string) ([]entities.Request, error)
	ListGeneral(ctx context.Context) ([]entities.Request, error)
	CompletedForCleaner(ctx context.Context, cleanerID string) ([]entities.Request, error)
	CompletedForClient(ctx context.Context, clientID string) ([]entities.Request, error)
	UpdateStatus(ctx context.Context, requestID, actorCleanerID string, newStatus entities.RequestStatus) (entities.Request, error)
	AcceptGeneral(ctx context.Context, requestID, actorCleanerID string) (entities.Request, error)
	ApplyToOffer(ctx context.Context, requestID, actorCleanerID string) (entities.Request, error)
	SelectApplication(ctx context.Context, requestID, actorClientID, applicationCleanerID string) (entities.Request, error)
	CancelByClient(ctx context.Context, requestID, actorClientID string) (entities.Request, error)
	Rate(ctx context.Context, requestID, actorClientID string, rating int, review string) (entities.Request, error)
}

type RequestUseCase struct {
	repo        interfaces.IRequestRepository
	cleanerRepo interfaces.ICleanerRepository
	ratings     interfaces.IRatingPublisher
	now         func() time.Time
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(repo interfaces.IRequestRepository, cleanerRepo interfaces.ICleanerRepository, ratings interfaces.IRatingPublisher) *RequestUseCase {
	return &RequestUseCase{
		repo:        repo,
		cleanerRepo: cleanerRepo,
		ratings:     ratings,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// transitions maps a target status to the statuses a cleaner may move a
// specific request from. The same table feeds the conditional write, so a
// transition observed as legal can still lose the race and come back as a
// conflict.
var transitions = map[entities.RequestStatus][]entities.RequestStatus{
	entities.RequestStatusAccepted:  {entities.RequestStatusPending},
	entities.RequestStatusDeclined:  {entities.RequestStatusPending},
	entities.RequestStatusCancelled: {entities.RequestStatusPending, entities.RequestStatusAccepted},
	entities.RequestStatusCompleted: {entities.RequestStatusAccepted},
}

func (u *RequestUseCase) Create(ctx context.Context, clientID string, cmd CreateRequestCommand) (entities.Request, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Request{}, ErrInvalidClientID
	}
	if strings.TrimSpace(cmd.Service) == "" || strings.TrimSpace(cmd.Date) == "" ||
		strings.TrimSpace(cmd.StartTime) == "" || strings.TrimSpace(cmd.EndTime) == "" {
		return entities.Request{}, ErrMissingFields
	}

	requestType := cmd.RequestType
	if requestType == "" {
		requestType = entities.RequestTypeSpecific
	}
	if requestType != entities.RequestTypeSpecific && requestType != entities.RequestTypeGeneral {
		return entities.Request{}, ErrInvalidRequestType
	}

	now := u.now()
	r := entities.Request{
		ID:          uuid.NewString(),
		ClientID:    clientID,
		RequestType: requestType,
		Service:     strings.TrimSpace(cmd.Service),
		Date:        strings.TrimSpace(cmd.Date),
		StartTime:   strings.TrimSpace(cmd.StartTime),
		EndTime:     strings.TrimSpace(cmd.EndTime),
		Note:        strings.TrimSpace(cmd.Note),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	switch requestType {
	case entities.RequestTypeSpecific:
		if cmd.Budget != 0 || cmd.Deadline != nil {
			return entities.Request{}, ErrGeneralOnlyFields
		}
		cleanerID := strings.TrimSpace(cmd.CleanerID)
		if cleanerID == "" {
			return entities.Request{}, ErrCleanerRequired
		}
		cleaner, err := u.cleanerRepo.GetByID(ctx, cleanerID)
		if err != nil {
			return entities.Request{}, err
		}
		if cleaner.ID == "" {
			return entities.Request{}, ErrCleanerNotFound
		}

		within, declared, err := scheduleAllows(cleaner, r.Date, r.StartTime, r.EndTime)
		if err != nil {
			return entities.Request{}, err
		}
		if declared && !within {
			if cleaner.ScheduleType == entities.ScheduleTypeStrict {
				return entities.Request{}, ErrOutsideSchedule
			}
			r.ScheduleWarning = true
		}

		r.CleanerID = cleanerID
		r.Status = entities.RequestStatusPending

	case entities.RequestTypeGeneral:
		if cmd.Budget < 0 {
			return entities.Request{}, ErrMissingFields
		}
		if cmd.Deadline != nil && !cmd.Deadline.After(now) {
			return entities.Request{}, ErrDeadlineInPast
		}
		r.Budget = cmd.Budget
		r.Deadline = cmd.Deadline
		r.Status = entities.RequestStatusOpen
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.Request{}, err
	}
	log.Printf("[request][usecase] created request_id=%s type=%s status=%s client_id=%s", created.ID, created.RequestType, created.Status, created.ClientID)
	return created, nil
}

func (u *RequestUseCase) GetByID(ctx context.Context, id string) (entities.Request, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Request{}, ErrInvalidRequestID
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Request{}, err
	}
	if r.ID == "" {
		return entities.Request{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *RequestUseCase) ListForCleaner(ctx context.Context, cleanerID string) ([]entities.Request, error) {
	cleanerID = strings.TrimSpace(cleanerID)
	if cleanerID == "" {
		return nil, ErrInvalidActorID
	}
	return u.repo.ListByCleaner(ctx, cleanerID, []entities.RequestStatus{
		entities.RequestStatusPending,
		entities.RequestStatusAccepted,
	})
}

func (u *RequestUseCase) ListForClient(ctx context.Context, clientID string) ([]entities.Request, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClient(ctx, clientID, nil)
}

func (u *RequestUseCase) ListGeneral(ctx context.Context) ([]entities.Request, error) {
	return u.repo.ListGeneralOpen(ctx)
}

func (u *RequestUseCase) CompletedForCleaner(ctx context.Context, cleanerID string) ([]entities.Request, error) {
	cleanerID = strings.TrimSpace(cleanerID)
	if cleanerID == "" {
		return nil, ErrInvalidActorID
	}
	return u.repo.ListByCleaner(ctx, cleanerID, []entities.RequestStatus{entities.RequestStatusCompleted})
}

func (u *RequestUseCase) CompletedForClient(ctx context.Context, clientID string) ([]entities.Request, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClient(ctx, clientID, []entities.RequestStatus{entities.RequestStatusCompleted})
}

// UpdateStatus is the assigned cleaner's transition endpoint: respond to a
// pending request (accept/decline), cancel, or mark the job completed.
func (u *RequestUseCase) UpdateStatus(ctx context.Context, requestID, actorCleanerID string, newStatus entities.RequestStatus) (entities.Request, error) {
	requestID = strings.TrimSpace(requestID)
	actorCleanerID = strings.TrimSpace(actorCleanerID)
	if requestID == "" {
		return entities.Request{}, ErrInvalidRequestID
	}
	if actorCleanerID == "" {
		return entities.Request{}, ErrInvalidActorID
	}
	from, ok := transitions[newStatus]
	if !ok {
		return entities.Request{}, ErrInvalidStatus
	}

	r, err := u.repo.GetByID(ctx, requestID)
	if err != nil {
		return entities.Request{}, err
	}
	if r.ID == "" {
		return entities.Request{}, ErrRequestNotFound
	}
	if r.CleanerID != actorCleanerID {
		return entities.Request{}, ErrForbidden
	}
	if !statusIn(r.Status, from) {
		return entities.Request{}, ErrInvalidTransition
	}

	var acceptedAt *time.Time
	if newStatus == entities.RequestStatusAccepted {
		now := u.now()
		acceptedAt = &now
	}

	updated, err := u.repo.UpdateStatus(ctx, requestID, from, newStatus, acceptedAt)
	if err != nil {
		return entities.Request{}, err
	}
	if updated.ID == "" {
		// The document moved between our read and the conditional write.
		return entities.Request{}, ErrInvalidTransition
	}
	log.Printf("[request][usecase] status updated request_id=%s status=%s cleaner_id=%s", updated.ID, updated.Status, actorCleanerID)
	return updated, nil
}

// AcceptGeneral lets a cleaner take an open general request directly,
// without the application round. First writer wins.
func (u *RequestUseCase) AcceptGeneral(ctx context.Context, requestID, actorCleanerID string) (entities.Request, error) {
	requestID = strings.TrimSpace(requestID)
	actorCleanerID = strings.TrimSpace(actorCleanerID)
	if requestID == "" {
		return entities.Request{}, ErrInvalidRequestID
	}
	if actorCleanerID == "" {
		return entities.Request{}, ErrInvalidActorID
	}

	r, err := u.repo.GetByID(ctx, requestID)
	if err != nil {
		return entities.Request{}, err
	}
	if r.ID == "" {
		return entities.Request{}, ErrRequestNotFound
	}
	if r.RequestType != entities.RequestTypeGeneral || r.Status != entities.RequestStatusOpen {
		return entities.Request{}, ErrOfferNotOpen
	}

	updated, err := u.repo.AssignCleaner(ctx, requestID, actorCleanerID, u.now())
	if err != nil {
		return entities.Request{}, err
	}
	if updated.ID == "" {
		return entities.Request{}, ErrOfferNotOpen
	}
	log.Printf("[request][usecase] general request taken request_id=%s cleaner_id=%s", updated.ID, actorCleanerID)
	return updated, nil
}

// ApplyToOffer records a cleaner's interest in an open general request.
// Reapplying is a conflict, never a duplicate entry; the deadline is
// evaluated lazily, there is no timer closing offers.
func (u *RequestUseCase) ApplyToOffer(ctx context.Context, requestID, actorCleanerID string) (entities.Request, error) {
	requestID = strings.TrimSpace(requestID)
	actorCleanerID = strings.TrimSpace(actorCleanerID)
	if requestID == "" {
		return entities.Request{}, ErrInvalidRequestID
	}
	if actorCleanerID == "" {
		return entities.Request{}, ErrInvalidActorID
	}

	r, err := u.repo.GetByID(ctx, requestID)
	if err != nil {
		return entities.Request{}, err
	}
	if r.ID == "" {
		return entities.Request{}, ErrRequestNotFound
	}
	if r.RequestType != entities.RequestTypeGeneral || r.Status != entities.RequestStatusOpen {
		return entities.Request{}, ErrOfferNotOpen
	}
	now := u.now()
	if r.Deadline != nil && now.After(*r.Deadline) {
		return entities.Request{}, ErrDeadlinePassed
	}
	if r.HasApplicant(actorCleanerID) {
		return entities.Request{}, ErrAlreadyApplied
	}

	updated, err := u.repo.AddApplication(ctx, requestID, entities.Application{
		CleanerID: actorCleanerID,
		AppliedAt: now,
	})
	if err != nil {
		return entities.Request{}, err
	}
	if updated.ID == "" {
		// Lost a race: either a concurrent apply by the same cleaner or the
		// offer closed. Re-read once to report the right conflict.
		cur, err := u.repo.GetByID(ctx, requestID)
		if err != nil {
			return entities.Request{}, err
		}
		if cur.ID == "" {
			return entities.Request{}, ErrRequestNotFound
		}
		if cur.HasApplicant(actorCleanerID) {
			return entities.Request{}, ErrAlreadyApplied
		}
		return entities.Request{}, ErrOfferNotOpen
	}
	log.Printf("[request][usecase] application added request_id=%s cleaner_id=%s applications=%d", updated.ID, actorCleanerID, len(updated.Applications))
	return updated, nil
}

// SelectApplication is the owning client's choice among applicants. Exactly
// one select may ever succeed per request; the losing side of a race gets a
// conflict, and a selection whose cleaner disappeared mid-flight leaves the
// offer open for the others.
func (u *RequestUseCase) SelectApplication(ctx context.Context, requestID, actorClientID, applicationCleanerID string) (entities.Request, error) {
	requestID = strings.TrimSpace(requestID)
	actorClientID = strings.TrimSpace(actorClientID)
	applicationCleanerID = strings.TrimSpace(applicationCleanerID)
	if requestID == "" {
		return entities.Request{}, ErrInvalidRequestID
	}
	if actorClientID == "" {
		return entities.Request{}, ErrInvalidClientID
	}
	if applicationCleanerID == "" {
		return entities.Request{}, ErrInvalidActorID
	}

	r, err := u.repo.GetByID(ctx, requestID)
	if err != nil {
		return entities.Request{}, err
	}
	if r.ID == "" {
		return entities.Request{}, ErrRequestNotFound
	}
	if r.ClientID != actorClientID {
		return entities.Request{}, ErrForbidden
	}
	if r.RequestType != entities.RequestTypeGeneral || r.Status != entities.RequestStatusOpen {
		return entities.Request{}, ErrAlreadyAssigned
	}
	if !r.HasApplicant(applicationCleanerID) {
		return entities.Request{}, ErrApplicationNotFound
	}

	cleaner, err := u.cleanerRepo.GetByID(ctx, applicationCleanerID)
	if err != nil {
		return entities.Request{}, err
	}
	if cleaner.ID == "" {
		return entities.Request{}, ErrCleanerNotFound
	}

	updated, err := u.repo.AssignCleaner(ctx, requestID, applicationCleanerID, u.now())
	if err != nil {
		return entities.Request{}, err
	}
	if updated.ID == "" {
		return entities.Request{}, ErrAlreadyAssigned
	}
	log.Printf("[request][usecase] application selected request_id=%s cleaner_id=%s client_id=%s", updated.ID, applicationCleanerID, actorClientID)
	return updated, nil
}

// CancelByClient is the owner-side cancel, allowed from pending or accepted.
func (u *RequestUseCase) CancelByClient(ctx context.Context, requestID, actorClientID string) (entities.Request, error) {
	requestID = strings.TrimSpace(requestID)
	actorClientID = strings.TrimSpace(actorClientID)
	if requestID == "" {
		return entities.Request{}, ErrInvalidRequestID
	}
	if actorClientID == "" {
		return entities.Request{}, ErrInvalidClientID
	}

	r, err := u.repo.GetByID(ctx, requestID)
	if err != nil {
		return entities.Request{}, err
	}
	if r.ID == "" {
		return entities.Request{}, ErrRequestNotFound
	}
	if r.ClientID != actorClientID {
		return entities.Request{}, ErrForbidden
	}
	from := transitions[entities.RequestStatusCancelled]
	if !statusIn(r.Status, from) {
		return entities.Request{}, ErrInvalidTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, requestID, from, entities.RequestStatusCancelled, nil)
	if err != nil {
		return entities.Request{}, err
	}
	if updated.ID == "" {
		return entities.Request{}, ErrInvalidTransition
	}
	log.Printf("[request][usecase] cancelled by client request_id=%s client_id=%s", updated.ID, actorClientID)
	return updated, nil
}

// Rate records the client's rating exactly once on a completed request and
// publishes RequestRated for the cleaner profile aggregate.
func (u *RequestUseCase) Rate(ctx context.Context, requestID, actorClientID string, rating int, review string) (entities.Request, error) {
	requestID = strings.TrimSpace(requestID)
	actorClientID = strings.TrimSpace(actorClientID)
	if requestID == "" {
		return entities.Request{}, ErrInvalidRequestID
	}
	if actorClientID == "" {
		return entities.Request{}, ErrInvalidClientID
	}
	if rating < 1 || rating > 5 {
		return entities.Request{}, ErrInvalidRating
	}
	review = strings.TrimSpace(review)

	r, err := u.repo.GetByID(ctx, requestID)
	if err != nil {
		return entities.Request{}, err
	}
	if r.ID == "" {
		return entities.Request{}, ErrRequestNotFound
	}
	if r.ClientID != actorClientID {
		return entities.Request{}, ErrForbidden
	}
	if r.Status != entities.RequestStatusCompleted {
		return entities.Request{}, ErrNotCompleted
	}
	if r.Rating != 0 {
		return entities.Request{}, ErrAlreadyRated
	}

	updated, err := u.repo.SetRating(ctx, requestID, rating, review)
	if err != nil {
		return entities.Request{}, err
	}
	if updated.ID == "" {
		return entities.Request{}, ErrAlreadyRated
	}

	if u.ratings != nil {
		event := events.RequestRated{
			RequestID: updated.ID,
			CleanerID: updated.CleanerID,
			Rating:    rating,
			Review:    review,
		}
		if err := u.ratings.Publish(ctx, event); err != nil {
			// The rating itself is already durable; the stars read model
			// catches up on the next rating for this cleaner.
			log.Printf("[request][usecase] rating event publish failed request_id=%s cleaner_id=%s err=%v", updated.ID, updated.CleanerID, err)
		}
	}
	log.Printf("[request][usecase] rated request_id=%s rating=%d client_id=%s", updated.ID, rating, actorClientID)
	return updated, nil
}

func statusIn(s entities.RequestStatus, set []entities.RequestStatus) bool {
	for _, candidate := range set {
		if s == candidate {
			return true
		}
	}
	return false
}
