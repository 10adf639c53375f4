package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"cleanmatch/internal/domain/entities"
	"cleanmatch/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrClientNotFound      = errors.New("client not found")
	ErrClientExists        = errors.New("client with this username or email already exists")
	ErrMissingClientFields = errors.New("missing required client fields")
)

type CreateClientCommand struct {
	Username    string
	Password    string
	Name        string
	PhoneNumber string
	Email       string
	Gender      string
	Age         int
	Address     string
}

type UpdateClientCommand struct {
	Name        *string
	PhoneNumber *string
	Password    *string
	Address     *string
}

type IClientUseCase interface {
	Signup(ctx context.Context, cmd CreateClientCommand) (entities.Client, error)
	Login(ctx context.Context, username, password string) (entities.Client, string, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Update(ctx context.Context, id, actorID string, cmd UpdateClientCommand) (entities.Client, error)
	Delete(ctx context.Context, id, actorID string) error
}

type ClientUseCase struct {
	repo   interfaces.IClientRepository
	tokens *TokenService
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, tokens *TokenService) *ClientUseCase {
	return &ClientUseCase{repo: repo, tokens: tokens}
}

func (u *ClientUseCase) Signup(ctx context.Context, cmd CreateClientCommand) (entities.Client, error) {
	cmd.Username = strings.TrimSpace(cmd.Username)
	cmd.Email = strings.TrimSpace(cmd.Email)
	if cmd.Username == "" || cmd.Password == "" || strings.TrimSpace(cmd.Name) == "" ||
		strings.TrimSpace(cmd.PhoneNumber) == "" || cmd.Email == "" {
		return entities.Client{}, ErrMissingClientFields
	}

	existing, err := u.repo.FindByUsernameOrEmail(ctx, cmd.Username, cmd.Email)
	if err != nil {
		return entities.Client{}, err
	}
	if existing.ID != "" {
		return entities.Client{}, ErrClientExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.Client{}, err
	}

	now := time.Now().UTC()
	c := entities.Client{
		ID:          uuid.NewString(),
		Username:    cmd.Username,
		Password:    string(hash),
		Name:        strings.TrimSpace(cmd.Name),
		PhoneNumber: strings.TrimSpace(cmd.PhoneNumber),
		Email:       cmd.Email,
		Gender:      strings.TrimSpace(cmd.Gender),
		Age:         cmd.Age,
		Address:     strings.TrimSpace(cmd.Address),
		Role:        RoleClient,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	log.Printf("[client][usecase] signup client_id=%s username=%s", created.ID, created.Username)
	return created, nil
}

func (u *ClientUseCase) Login(ctx context.Context, username, password string) (entities.Client, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.Client{}, "", ErrInvalidCredentials
	}

	c, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return entities.Client{}, "", err
	}
	if c.ID == "" {
		return entities.Client{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(password)); err != nil {
		return entities.Client{}, "", ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(c.ID, RoleClient, c.Username)
	if err != nil {
		return entities.Client{}, "", err
	}
	return c, token, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) Update(ctx context.Context, id, actorID string, cmd UpdateClientCommand) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	if id != strings.TrimSpace(actorID) {
		return entities.Client{}, ErrForbidden
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}

	if cmd.Name != nil {
		if strings.TrimSpace(*cmd.Name) == "" {
			return entities.Client{}, ErrMissingClientFields
		}
		c.Name = strings.TrimSpace(*cmd.Name)
	}
	if cmd.PhoneNumber != nil {
		c.PhoneNumber = strings.TrimSpace(*cmd.PhoneNumber)
	}
	if cmd.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*cmd.Password), bcrypt.DefaultCost)
		if err != nil {
			return entities.Client{}, err
		}
		c.Password = string(hash)
	}
	if cmd.Address != nil {
		c.Address = strings.TrimSpace(*cmd.Address)
	}
	c.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, c)
}

func (u *ClientUseCase) Delete(ctx context.Context, id, actorID string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}
	if id != strings.TrimSpace(actorID) {
		return ErrForbidden
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrClientNotFound
	}
	log.Printf("[client][usecase] deleted client_id=%s", id)
	return nil
}
