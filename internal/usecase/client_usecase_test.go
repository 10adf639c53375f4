package usecase

import (
	"context"
	"errors"
	"testing"

	"cleanmatch/internal/domain/entities"
	mock_interfaces "cleanmatch/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func validClientCmd() CreateClientCommand {
	return CreateClientCommand{
		Username:    "joao",
		Password:    "s3cret",
		Name:        "Joao Lima",
		PhoneNumber: "11888880000",
		Email:       "joao@example.com",
	}
}

func TestClientUseCase_Signup(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewClientUseCase(nil, nil)
		cmd := validClientCmd()
		cmd.Email = ""
		_, err := uc.Signup(context.Background(), cmd)
		if !errors.Is(err, ErrMissingClientFields) {
			t.Fatalf("expected ErrMissingClientFields, got %v", err)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo, nil)

		repo.EXPECT().FindByUsernameOrEmail(gomock.Any(), "joao", "joao@example.com").
			Return(entities.Client{ID: "existing"}, nil)

		_, err := uc.Signup(context.Background(), validClientCmd())
		if !errors.Is(err, ErrClientExists) {
			t.Fatalf("expected ErrClientExists, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo, nil)

		repo.EXPECT().FindByUsernameOrEmail(gomock.Any(), "joao", "joao@example.com").
			Return(entities.Client{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.ID == "" || c.Role != RoleClient {
					t.Fatalf("unexpected client: %+v", c)
				}
				if err := bcrypt.CompareHashAndPassword([]byte(c.Password), []byte("s3cret")); err != nil {
					t.Fatalf("stored hash does not verify: %v", err)
				}
				return c, nil
			},
		)

		res, err := uc.Signup(context.Background(), validClientCmd())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Username != "joao" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestClientUseCase_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	stored := entities.Client{ID: "client-1", Username: "joao", Password: string(hash)}

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo, NewTokenService("test-secret"))
		repo.EXPECT().GetByUsername(gomock.Any(), "joao").Return(stored, nil)

		_, _, err := uc.Login(context.Background(), "joao", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success carries the client role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		tokens := NewTokenService("test-secret")
		uc := NewClientUseCase(repo, tokens)
		repo.EXPECT().GetByUsername(gomock.Any(), "joao").Return(stored, nil)

		_, token, err := uc.Login(context.Background(), "joao", "s3cret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		actor, err := tokens.Verify(token)
		if err != nil {
			t.Fatalf("token does not verify: %v", err)
		}
		if actor.Role != RoleClient {
			t.Fatalf("unexpected role: %s", actor.Role)
		}
	})
}

func TestClientUseCase_UpdateDelete(t *testing.T) {
	t.Run("update only own profile", func(t *testing.T) {
		uc := NewClientUseCase(nil, nil)
		_, err := uc.Update(context.Background(), "client-1", "client-2", UpdateClientCommand{})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("update address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo, nil)

		address := " Rua Nova, 10 "
		repo.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1", Name: "Joao"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.Address != "Rua Nova, 10" || c.Name != "Joao" {
					t.Fatalf("unexpected update: %+v", c)
				}
				return c, nil
			},
		)

		if _, err := uc.Update(context.Background(), "client-1", "client-1", UpdateClientCommand{Address: &address}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo, nil)
		repo.EXPECT().Delete(gomock.Any(), "client-1").Return(false, nil)

		if err := uc.Delete(context.Background(), "client-1", "client-1"); !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}
