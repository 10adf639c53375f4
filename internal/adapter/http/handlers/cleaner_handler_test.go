package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cleanmatch/internal/adapter/http/handlers/mocks"
	"cleanmatch/internal/domain/entities"
	"cleanmatch/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCleanerHandler_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICleanerUseCase(ctrl)
		h := NewCleanerHandler(uc)

		r := gin.New()
		r.POST("/v1/cleaners/signup", h.Signup)

		req := httptest.NewRequest(http.MethodPost, "/v1/cleaners/signup", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICleanerUseCase(ctrl)
		h := NewCleanerHandler(uc)

		uc.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(entities.Cleaner{}, usecase.ErrCleanerExists)

		r := gin.New()
		r.POST("/v1/cleaners/signup", h.Signup)

		body, _ := json.Marshal(map[string]interface{}{
			"username": "maria", "password": "s3cret", "name": "Maria",
			"phone_number": "11999990000", "email": "maria@example.com",
			"gender": "female", "age": 30, "service": []string{"deep-clean"},
			"hourly_price": 25,
		})
		req := httptest.NewRequest(http.MethodPost, "/v1/cleaners/signup", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success never echoes the password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICleanerUseCase(ctrl)
		h := NewCleanerHandler(uc)

		uc.EXPECT().Signup(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateCleanerCommand{})).DoAndReturn(
			func(_ context.Context, cmd usecase.CreateCleanerCommand) (entities.Cleaner, error) {
				if cmd.Username != "maria" || cmd.HourlyPrice != 25 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Cleaner{ID: "cleaner-1", Username: "maria", Password: "hashed"}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/cleaners/signup", h.Signup)

		body, _ := json.Marshal(map[string]interface{}{
			"username": "maria", "password": "s3cret", "name": "Maria",
			"phone_number": "11999990000", "email": "maria@example.com",
			"gender": "female", "age": 30, "service": []string{"deep-clean"},
			"hourly_price": 25,
		})
		req := httptest.NewRequest(http.MethodPost, "/v1/cleaners/signup", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		if bytes.Contains(w.Body.Bytes(), []byte("hashed")) || bytes.Contains(w.Body.Bytes(), []byte("password")) {
			t.Fatalf("password leaked in response: %s", w.Body.String())
		}
	})
}

func TestCleanerHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICleanerUseCase(ctrl)
		h := NewCleanerHandler(uc)

		uc.EXPECT().Login(gomock.Any(), "maria", "wrong").Return(entities.Cleaner{}, "", usecase.ErrInvalidCredentials)

		r := gin.New()
		r.POST("/v1/cleaners/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/v1/cleaners/login", bytes.NewBufferString(`{"username":"maria","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICleanerUseCase(ctrl)
		h := NewCleanerHandler(uc)

		uc.EXPECT().Login(gomock.Any(), "maria", "s3cret").
			Return(entities.Cleaner{ID: "cleaner-1", Username: "maria"}, "jwt-token", nil)

		r := gin.New()
		r.POST("/v1/cleaners/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/v1/cleaners/login", bytes.NewBufferString(`{"username":"maria","password":"s3cret"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp["token"] != "jwt-token" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestCleanerHandler_Filter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("query params reach the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICleanerUseCase(ctrl)
		h := NewCleanerHandler(uc)

		uc.EXPECT().Filter(gomock.Any(), usecase.FilterCommand{
			Stars:   "4-5",
			Price:   "15-25",
			Gender:  "female",
			Service: "deep-clean",
		}).Return([]entities.Cleaner{{ID: "cleaner-1"}}, nil)

		r := gin.New()
		r.GET("/v1/cleaners/filter", h.Filter)

		req := httptest.NewRequest(http.MethodGet, "/v1/cleaners/filter?stars=4-5&price=15-25&gender=female&service=deep-clean", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("no match maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICleanerUseCase(ctrl)
		h := NewCleanerHandler(uc)

		uc.EXPECT().Filter(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrNoCleanersMatch)

		r := gin.New()
		r.GET("/v1/cleaners/filter", h.Filter)

		req := httptest.NewRequest(http.MethodGet, "/v1/cleaners/filter?gender=female", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCleanerHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("blocked while requests active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICleanerUseCase(ctrl)
		h := NewCleanerHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "cleaner-1", "cleaner-1").Return(usecase.ErrCleanerHasActiveRequests)

		r := gin.New()
		r.DELETE("/v1/cleaners/:id", asActor(usecase.Actor{ID: "cleaner-1", Role: usecase.RoleCleaner}), h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/v1/cleaners/cleaner-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICleanerUseCase(ctrl)
		h := NewCleanerHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "cleaner-1", "cleaner-1").Return(nil)

		r := gin.New()
		r.DELETE("/v1/cleaners/:id", asActor(usecase.Actor{ID: "cleaner-1", Role: usecase.RoleCleaner}), h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/v1/cleaners/cleaner-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
