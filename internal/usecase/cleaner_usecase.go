package usecase

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"cleanmatch/internal/domain/entities"
	"cleanmatch/internal/domain/events"
	"cleanmatch/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrCleanerNotFound          = errors.New("cleaner not found")
	ErrCleanerExists            = errors.New("cleaner with this username or email already exists")
	ErrInvalidCleanerID         = errors.New("invalid cleaner id")
	ErrMissingCleanerFields     = errors.New("missing required cleaner fields")
	ErrInvalidAge               = errors.New("age must be between 18 and 80")
	ErrInvalidHourlyPrice       = errors.New("hourly price must be positive")
	ErrInvalidScheduleType      = errors.New("invalid schedule type")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrInvalidFilterRange       = errors.New("invalid filter range")
	ErrNoCleanersMatch          = errors.New("no cleaners found matching the filters")
	ErrCleanerHasActiveRequests = errors.New("cleaner has requests in non-terminal states")
)

const dashboardPageSize = 20

// CreateCleanerCommand is the signup input.
type CreateCleanerCommand struct {
	Username     string
	Password     string
	Name         string
	PhoneNumber  string
	Email        string
	Gender       string
	Age          int
	Service      []string
	HourlyPrice  float64
	Schedule     entities.Schedule
	ScheduleType entities.ScheduleType
}

// UpdateCleanerCommand carries a partial profile update. Nil fields are
// left untouched. Stars and the rating count are deliberately absent: the
// aggregate is only written through ApplyRating.
type UpdateCleanerCommand struct {
	Name         *string
	PhoneNumber  *string
	Password     *string
	Service      []string
	HourlyPrice  *float64
	Schedule     entities.Schedule
	ScheduleType *entities.ScheduleType
}

// FilterCommand is the listing predicate as it arrives over the API:
// numeric criteria are "min-max" range strings, gender and service are
// exact matches. Empty strings mean unconstrained.
type FilterCommand struct {
	Stars   string
	Price   string
	Age     string
	Gender  string
	Service string
}

// ICleanerUseCase covers the service-provider profile: signup/login, CRUD,
// the dashboard and filter listings, and the stars read model fed by
// RequestRated events.

type ICleanerUseCase interface {
	Signup(ctx context.Context, cmd CreateCleanerCommand) (entities.Cleaner, error)
	Login(ctx context.Context, username, password string) (entities.Cleaner, string, error)
	GetByID(ctx context.Context, id string) (entities.Cleaner, error)
	Update(ctx context.Context, id, actorID string, cmd UpdateCleanerCommand) (entities.Cleaner, error)
	Delete(ctx context.Context, id, actorID string) error
	Dashboard(ctx context.Context) ([]entities.Cleaner, error)
	Filter(ctx context.Context, cmd FilterCommand) ([]entities.Cleaner, error)
	ApplyRating(ctx context.Context, event events.RequestRated) error
}

type CleanerUseCase struct {
	repo        interfaces.ICleanerRepository
	requestRepo interfaces.IRequestRepository
	tokens      *TokenService
}

var _ ICleanerUseCase = (*CleanerUseCase)(nil)

func NewCleanerUseCase(repo interfaces.ICleanerRepository, requestRepo interfaces.IRequestRepository, tokens *TokenService) *CleanerUseCase {
	return &CleanerUseCase{repo: repo, requestRepo: requestRepo, tokens: tokens}
}

func (u *CleanerUseCase) Signup(ctx context.Context, cmd CreateCleanerCommand) (entities.Cleaner, error) {
	cmd.Username = strings.TrimSpace(cmd.Username)
	cmd.Email = strings.TrimSpace(cmd.Email)
	if cmd.Username == "" || cmd.Password == "" || strings.TrimSpace(cmd.Name) == "" ||
		strings.TrimSpace(cmd.PhoneNumber) == "" || cmd.Email == "" ||
		strings.TrimSpace(cmd.Gender) == "" || len(cmd.Service) == 0 {
		return entities.Cleaner{}, ErrMissingCleanerFields
	}
	if cmd.Age < 18 || cmd.Age > 80 {
		return entities.Cleaner{}, ErrInvalidAge
	}
	if cmd.HourlyPrice <= 0 {
		return entities.Cleaner{}, ErrInvalidHourlyPrice
	}
	scheduleType := cmd.ScheduleType
	if len(cmd.Schedule) > 0 {
		if scheduleType == "" {
			scheduleType = entities.ScheduleTypeNormal
		}
		if scheduleType != entities.ScheduleTypeStrict && scheduleType != entities.ScheduleTypeNormal {
			return entities.Cleaner{}, ErrInvalidScheduleType
		}
	}

	existing, err := u.repo.FindByUsernameOrEmail(ctx, cmd.Username, cmd.Email)
	if err != nil {
		return entities.Cleaner{}, err
	}
	if existing.ID != "" {
		return entities.Cleaner{}, ErrCleanerExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.Cleaner{}, err
	}

	now := time.Now().UTC()
	c := entities.Cleaner{
		ID:           uuid.NewString(),
		Username:     cmd.Username,
		Password:     string(hash),
		Name:         strings.TrimSpace(cmd.Name),
		PhoneNumber:  strings.TrimSpace(cmd.PhoneNumber),
		Email:        cmd.Email,
		Gender:       strings.TrimSpace(cmd.Gender),
		Age:          cmd.Age,
		Service:      cmd.Service,
		HourlyPrice:  cmd.HourlyPrice,
		Schedule:     cmd.Schedule,
		ScheduleType: scheduleType,
		Role:         RoleCleaner,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Cleaner{}, err
	}
	log.Printf("[cleaner][usecase] signup cleaner_id=%s username=%s", created.ID, created.Username)
	return created, nil
}

func (u *CleanerUseCase) Login(ctx context.Context, username, password string) (entities.Cleaner, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.Cleaner{}, "", ErrInvalidCredentials
	}

	c, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return entities.Cleaner{}, "", err
	}
	if c.ID == "" {
		return entities.Cleaner{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(password)); err != nil {
		return entities.Cleaner{}, "", ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(c.ID, RoleCleaner, c.Username)
	if err != nil {
		return entities.Cleaner{}, "", err
	}
	return c, token, nil
}

func (u *CleanerUseCase) GetByID(ctx context.Context, id string) (entities.Cleaner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Cleaner{}, ErrInvalidCleanerID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Cleaner{}, err
	}
	if c.ID == "" {
		return entities.Cleaner{}, ErrCleanerNotFound
	}
	return c, nil
}

func (u *CleanerUseCase) Update(ctx context.Context, id, actorID string, cmd UpdateCleanerCommand) (entities.Cleaner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Cleaner{}, ErrInvalidCleanerID
	}
	if id != strings.TrimSpace(actorID) {
		return entities.Cleaner{}, ErrForbidden
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Cleaner{}, err
	}
	if c.ID == "" {
		return entities.Cleaner{}, ErrCleanerNotFound
	}

	if cmd.Name != nil {
		if strings.TrimSpace(*cmd.Name) == "" {
			return entities.Cleaner{}, ErrMissingCleanerFields
		}
		c.Name = strings.TrimSpace(*cmd.Name)
	}
	if cmd.PhoneNumber != nil {
		c.PhoneNumber = strings.TrimSpace(*cmd.PhoneNumber)
	}
	if cmd.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*cmd.Password), bcrypt.DefaultCost)
		if err != nil {
			return entities.Cleaner{}, err
		}
		c.Password = string(hash)
	}
	if cmd.Service != nil {
		if len(cmd.Service) == 0 {
			return entities.Cleaner{}, ErrMissingCleanerFields
		}
		c.Service = cmd.Service
	}
	if cmd.HourlyPrice != nil {
		if *cmd.HourlyPrice <= 0 {
			return entities.Cleaner{}, ErrInvalidHourlyPrice
		}
		c.HourlyPrice = *cmd.HourlyPrice
	}
	if cmd.Schedule != nil {
		c.Schedule = cmd.Schedule
	}
	if cmd.ScheduleType != nil {
		if *cmd.ScheduleType != entities.ScheduleTypeStrict && *cmd.ScheduleType != entities.ScheduleTypeNormal {
			return entities.Cleaner{}, ErrInvalidScheduleType
		}
		c.ScheduleType = *cmd.ScheduleType
	}
	c.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, c)
}

// Delete removes the cleaner account. Deletion is restricted: while any
// request still references the cleaner in a non-terminal state the account
// must stay, otherwise those requests would dangle.
func (u *CleanerUseCase) Delete(ctx context.Context, id, actorID string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCleanerID
	}
	if id != strings.TrimSpace(actorID) {
		return ErrForbidden
	}

	active, err := u.requestRepo.ListByCleaner(ctx, id, []entities.RequestStatus{
		entities.RequestStatusPending,
		entities.RequestStatusAccepted,
	})
	if err != nil {
		return err
	}
	if len(active) > 0 {
		return ErrCleanerHasActiveRequests
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrCleanerNotFound
	}
	log.Printf("[cleaner][usecase] deleted cleaner_id=%s", id)
	return nil
}

// Dashboard returns one page of cleaners in random order. The order is
// cosmetic, not a correctness property.
func (u *CleanerUseCase) Dashboard(ctx context.Context) ([]entities.Cleaner, error) {
	cleaners, err := u.repo.List(ctx, dashboardPageSize)
	if err != nil {
		return nil, err
	}
	if len(cleaners) == 0 {
		return nil, ErrNoCleanersMatch
	}
	rand.Shuffle(len(cleaners), func(i, j int) {
		cleaners[i], cleaners[j] = cleaners[j], cleaners[i]
	})
	return cleaners, nil
}

func (u *CleanerUseCase) Filter(ctx context.Context, cmd FilterCommand) ([]entities.Cleaner, error) {
	f := entities.CleanerFilter{
		Gender:  strings.TrimSpace(cmd.Gender),
		Service: strings.TrimSpace(cmd.Service),
	}

	var err error
	if f.Stars, err = parseRange(cmd.Stars); err != nil {
		return nil, err
	}
	if f.Price, err = parseRange(cmd.Price); err != nil {
		return nil, err
	}
	if f.Age, err = parseRange(cmd.Age); err != nil {
		return nil, err
	}

	cleaners, err := u.repo.Filter(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(cleaners) == 0 {
		return nil, ErrNoCleanersMatch
	}
	rand.Shuffle(len(cleaners), func(i, j int) {
		cleaners[i], cleaners[j] = cleaners[j], cleaners[i]
	})
	if len(cleaners) > dashboardPageSize {
		cleaners = cleaners[:dashboardPageSize]
	}
	return cleaners, nil
}

// ApplyRating folds a RequestRated event into the cleaner's stars
// aggregate. Ratings for cleaners deleted after their last job completed
// are dropped.
func (u *CleanerUseCase) ApplyRating(ctx context.Context, event events.RequestRated) error {
	if strings.TrimSpace(event.CleanerID) == "" {
		return ErrInvalidCleanerID
	}
	if event.Rating < 1 || event.Rating > 5 {
		return ErrInvalidRating
	}

	updated, err := u.repo.ApplyRating(ctx, event.CleanerID, event.Rating, event.Review)
	if err != nil {
		return err
	}
	if updated.ID == "" {
		return ErrCleanerNotFound
	}
	log.Printf("[cleaner][usecase] rating applied cleaner_id=%s stars=%.2f count=%d", updated.ID, updated.Stars, updated.RatingCount)
	return nil
}

// parseRange parses the "min-max" range strings used by the filter API,
// e.g. "4-5" or "15-25".
func parseRange(s string) (*entities.Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return nil, ErrInvalidFilterRange
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, ErrInvalidFilterRange
	}
	max, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, ErrInvalidFilterRange
	}
	if min > max {
		return nil, ErrInvalidFilterRange
	}
	return &entities.Range{Min: min, Max: max}, nil
}
