package usecase

import (
	"context"
	"errors"
	"testing"

	"cleanmatch/internal/domain/entities"
	"cleanmatch/internal/domain/events"
	mock_interfaces "cleanmatch/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func validCleanerCmd() CreateCleanerCommand {
	return CreateCleanerCommand{
		Username:    "maria",
		Password:    "s3cret",
		Name:        "Maria Souza",
		PhoneNumber: "11999990000",
		Email:       "maria@example.com",
		Gender:      "female",
		Age:         30,
		Service:     []string{"deep-clean"},
		HourlyPrice: 25,
	}
}

func TestCleanerUseCase_Signup(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewCleanerUseCase(nil, nil, nil)
		cmd := validCleanerCmd()
		cmd.Service = nil
		_, err := uc.Signup(context.Background(), cmd)
		if !errors.Is(err, ErrMissingCleanerFields) {
			t.Fatalf("expected ErrMissingCleanerFields, got %v", err)
		}
	})

	t.Run("invalid age", func(t *testing.T) {
		uc := NewCleanerUseCase(nil, nil, nil)
		for _, age := range []int{17, 81} {
			cmd := validCleanerCmd()
			cmd.Age = age
			_, err := uc.Signup(context.Background(), cmd)
			if !errors.Is(err, ErrInvalidAge) {
				t.Fatalf("age %d: expected ErrInvalidAge, got %v", age, err)
			}
		}
	})

	t.Run("invalid hourly price", func(t *testing.T) {
		uc := NewCleanerUseCase(nil, nil, nil)
		cmd := validCleanerCmd()
		cmd.HourlyPrice = 0
		_, err := uc.Signup(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidHourlyPrice) {
			t.Fatalf("expected ErrInvalidHourlyPrice, got %v", err)
		}
	})

	t.Run("invalid schedule type", func(t *testing.T) {
		uc := NewCleanerUseCase(nil, nil, nil)
		cmd := validCleanerCmd()
		cmd.Schedule = entities.Schedule{"Monday": {StartTime: "08:00", EndTime: "12:00"}}
		cmd.ScheduleType = "LOOSE"
		_, err := uc.Signup(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidScheduleType) {
			t.Fatalf("expected ErrInvalidScheduleType, got %v", err)
		}
	})

	t.Run("duplicate username or email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICleanerRepository(ctrl)
		uc := NewCleanerUseCase(repo, nil, nil)

		repo.EXPECT().FindByUsernameOrEmail(gomock.Any(), "maria", "maria@example.com").
			Return(entities.Cleaner{ID: "existing"}, nil)

		_, err := uc.Signup(context.Background(), validCleanerCmd())
		if !errors.Is(err, ErrCleanerExists) {
			t.Fatalf("expected ErrCleanerExists, got %v", err)
		}
	})

	t.Run("success hashes password and defaults schedule type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICleanerRepository(ctrl)
		uc := NewCleanerUseCase(repo, nil, nil)

		cmd := validCleanerCmd()
		cmd.Schedule = entities.Schedule{"Monday": {StartTime: "08:00", EndTime: "12:00"}}

		repo.EXPECT().FindByUsernameOrEmail(gomock.Any(), "maria", "maria@example.com").
			Return(entities.Cleaner{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Cleaner{})).DoAndReturn(
			func(_ context.Context, c entities.Cleaner) (entities.Cleaner, error) {
				if c.ID == "" || c.Role != RoleCleaner {
					t.Fatalf("unexpected cleaner: %+v", c)
				}
				if c.Password == "s3cret" {
					t.Fatalf("password stored in plaintext")
				}
				if err := bcrypt.CompareHashAndPassword([]byte(c.Password), []byte("s3cret")); err != nil {
					t.Fatalf("stored hash does not verify: %v", err)
				}
				if c.ScheduleType != entities.ScheduleTypeNormal {
					t.Fatalf("expected NORMAL default, got %s", c.ScheduleType)
				}
				if c.Stars != 0 || c.RatingCount != 0 {
					t.Fatalf("aggregate must start at zero: %+v", c)
				}
				return c, nil
			},
		)

		res, err := uc.Signup(context.Background(), cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Username != "maria" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestCleanerUseCase_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	stored := entities.Cleaner{ID: "cleaner-1", Username: "maria", Password: string(hash)}

	t.Run("unknown username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICleanerRepository(ctrl)
		uc := NewCleanerUseCase(repo, nil, NewTokenService("test-secret"))
		repo.EXPECT().GetByUsername(gomock.Any(), "maria").Return(entities.Cleaner{}, nil)

		_, _, err := uc.Login(context.Background(), "maria", "s3cret")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICleanerRepository(ctrl)
		uc := NewCleanerUseCase(repo, nil, NewTokenService("test-secret"))
		repo.EXPECT().GetByUsername(gomock.Any(), "maria").Return(stored, nil)

		_, _, err := uc.Login(context.Background(), "maria", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success issues verifiable token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICleanerRepository(ctrl)
		tokens := NewTokenService("test-secret")
		uc := NewCleanerUseCase(repo, nil, tokens)
		repo.EXPECT().GetByUsername(gomock.Any(), "maria").Return(stored, nil)

		c, token, err := uc.Login(context.Background(), "maria", "s3cret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "cleaner-1" || token == "" {
			t.Fatalf("unexpected result: %+v token=%q", c, token)
		}
		actor, err := tokens.Verify(token)
		if err != nil {
			t.Fatalf("token does not verify: %v", err)
		}
		if actor.ID != "cleaner-1" || actor.Role != RoleCleaner || actor.Username != "maria" {
			t.Fatalf("unexpected actor: %+v", actor)
		}
	})
}

func TestCleanerUseCase_Update(t *testing.T) {
	t.Run("only own profile", func(t *testing.T) {
		uc := NewCleanerUseCase(nil, nil, nil)
		_, err := uc.Update(context.Background(), "cleaner-1", "cleaner-2", UpdateCleanerCommand{})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICleanerRepository(ctrl)
		uc := NewCleanerUseCase(repo, nil, nil)

		price := 30.0
		repo.EXPECT().GetByID(gomock.Any(), "cleaner-1").Return(entities.Cleaner{
			ID:          "cleaner-1",
			Name:        "Maria Souza",
			HourlyPrice: 25,
			Stars:       4.5,
			RatingCount: 12,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Cleaner{})).DoAndReturn(
			func(_ context.Context, c entities.Cleaner) (entities.Cleaner, error) {
				if c.HourlyPrice != 30 || c.Name != "Maria Souza" {
					t.Fatalf("unexpected update: %+v", c)
				}
				if c.Stars != 4.5 || c.RatingCount != 12 {
					t.Fatalf("aggregate must not change on profile update: %+v", c)
				}
				return c, nil
			},
		)

		if _, err := uc.Update(context.Background(), "cleaner-1", "cleaner-1", UpdateCleanerCommand{HourlyPrice: &price}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCleanerUseCase_Delete(t *testing.T) {
	t.Run("blocked while requests are active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requestRepo := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewCleanerUseCase(nil, requestRepo, nil)

		requestRepo.EXPECT().ListByCleaner(gomock.Any(), "cleaner-1", []entities.RequestStatus{
			entities.RequestStatusPending,
			entities.RequestStatusAccepted,
		}).Return([]entities.Request{{ID: "req-1"}}, nil)

		err := uc.Delete(context.Background(), "cleaner-1", "cleaner-1")
		if !errors.Is(err, ErrCleanerHasActiveRequests) {
			t.Fatalf("expected ErrCleanerHasActiveRequests, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICleanerRepository(ctrl)
		requestRepo := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewCleanerUseCase(repo, requestRepo, nil)

		requestRepo.EXPECT().ListByCleaner(gomock.Any(), "cleaner-1", gomock.Any()).Return(nil, nil)
		repo.EXPECT().Delete(gomock.Any(), "cleaner-1").Return(false, nil)

		err := uc.Delete(context.Background(), "cleaner-1", "cleaner-1")
		if !errors.Is(err, ErrCleanerNotFound) {
			t.Fatalf("expected ErrCleanerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICleanerRepository(ctrl)
		requestRepo := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewCleanerUseCase(repo, requestRepo, nil)

		requestRepo.EXPECT().ListByCleaner(gomock.Any(), "cleaner-1", gomock.Any()).Return(nil, nil)
		repo.EXPECT().Delete(gomock.Any(), "cleaner-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "cleaner-1", "cleaner-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCleanerUseCase_Dashboard(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICleanerRepository(ctrl)
		uc := NewCleanerUseCase(repo, nil, nil)
		repo.EXPECT().List(gomock.Any(), dashboardPageSize).Return(nil, nil)

		_, err := uc.Dashboard(context.Background())
		if !errors.Is(err, ErrNoCleanersMatch) {
			t.Fatalf("expected ErrNoCleanersMatch, got %v", err)
		}
	})

	t.Run("returns the page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICleanerRepository(ctrl)
		uc := NewCleanerUseCase(repo, nil, nil)
		repo.EXPECT().List(gomock.Any(), dashboardPageSize).Return([]entities.Cleaner{
			{ID: "cleaner-1"}, {ID: "cleaner-2"},
		}, nil)

		res, err := uc.Dashboard(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected 2 cleaners, got %d", len(res))
		}
	})
}

func TestCleanerUseCase_Filter(t *testing.T) {
	t.Run("invalid range", func(t *testing.T) {
		uc := NewCleanerUseCase(nil, nil, nil)
		for _, bad := range []string{"abc", "5-2", "4"} {
			_, err := uc.Filter(context.Background(), FilterCommand{Stars: bad})
			if !errors.Is(err, ErrInvalidFilterRange) {
				t.Fatalf("range %q: expected ErrInvalidFilterRange, got %v", bad, err)
			}
		}
	})

	t.Run("criteria are combined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICleanerRepository(ctrl)
		uc := NewCleanerUseCase(repo, nil, nil)

		repo.EXPECT().Filter(gomock.Any(), entities.CleanerFilter{
			Stars:   &entities.Range{Min: 4, Max: 5},
			Price:   &entities.Range{Min: 15, Max: 25},
			Gender:  "female",
			Service: "deep-clean",
		}).Return([]entities.Cleaner{{ID: "cleaner-1"}}, nil)

		res, err := uc.Filter(context.Background(), FilterCommand{
			Stars:   "4-5",
			Price:   "15-25",
			Gender:  "female",
			Service: "deep-clean",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "cleaner-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("no match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICleanerRepository(ctrl)
		uc := NewCleanerUseCase(repo, nil, nil)
		repo.EXPECT().Filter(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := uc.Filter(context.Background(), FilterCommand{Gender: "female"})
		if !errors.Is(err, ErrNoCleanersMatch) {
			t.Fatalf("expected ErrNoCleanersMatch, got %v", err)
		}
	})

	t.Run("result is capped at the page size", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICleanerRepository(ctrl)
		uc := NewCleanerUseCase(repo, nil, nil)

		many := make([]entities.Cleaner, dashboardPageSize+5)
		for i := range many {
			many[i] = entities.Cleaner{ID: "cleaner"}
		}
		repo.EXPECT().Filter(gomock.Any(), gomock.Any()).Return(many, nil)

		res, err := uc.Filter(context.Background(), FilterCommand{Gender: "female"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != dashboardPageSize {
			t.Fatalf("expected %d cleaners, got %d", dashboardPageSize, len(res))
		}
	})
}

func TestCleanerUseCase_ApplyRating(t *testing.T) {
	t.Run("invalid rating", func(t *testing.T) {
		uc := NewCleanerUseCase(nil, nil, nil)
		err := uc.ApplyRating(context.Background(), events.RequestRated{CleanerID: "cleaner-1", Rating: 6})
		if !errors.Is(err, ErrInvalidRating) {
			t.Fatalf("expected ErrInvalidRating, got %v", err)
		}
	})

	t.Run("cleaner gone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICleanerRepository(ctrl)
		uc := NewCleanerUseCase(repo, nil, nil)
		repo.EXPECT().ApplyRating(gomock.Any(), "cleaner-1", 5, "great").Return(entities.Cleaner{}, nil)

		err := uc.ApplyRating(context.Background(), events.RequestRated{CleanerID: "cleaner-1", Rating: 5, Review: "great"})
		if !errors.Is(err, ErrCleanerNotFound) {
			t.Fatalf("expected ErrCleanerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICleanerRepository(ctrl)
		uc := NewCleanerUseCase(repo, nil, nil)
		repo.EXPECT().ApplyRating(gomock.Any(), "cleaner-1", 5, "great").
			Return(entities.Cleaner{ID: "cleaner-1", Stars: 4.8, RatingCount: 10}, nil)

		if err := uc.ApplyRating(context.Background(), events.RequestRated{CleanerID: "cleaner-1", Rating: 5, Review: "great"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestParseRange(t *testing.T) {
	t.Run("empty is unconstrained", func(t *testing.T) {
		r, err := parseRange("  ")
		if err != nil || r != nil {
			t.Fatalf("expected nil range, got %+v err=%v", r, err)
		}
	})

	t.Run("valid", func(t *testing.T) {
		r, err := parseRange("4-5")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Min != 4 || r.Max != 5 {
			t.Fatalf("unexpected range: %+v", r)
		}
	})

	t.Run("min above max", func(t *testing.T) {
		if _, err := parseRange("5-4"); !errors.Is(err, ErrInvalidFilterRange) {
			t.Fatalf("expected ErrInvalidFilterRange, got %v", err)
		}
	})
}
