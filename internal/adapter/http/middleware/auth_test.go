package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cleanmatch/internal/usecase"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(t *testing.T, tokens *usecase.TokenService, role string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{RequireAuth(tokens)}
	if role != "" {
		handlers = append(handlers, RequireRole(role))
	}
	handlers = append(handlers, func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no actor"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "role": actor.Role})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestRequireAuth(t *testing.T) {
	tokens := usecase.NewTokenService("test-secret")

	t.Run("missing header", func(t *testing.T) {
		r := newAuthRouter(t, tokens, "")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		r := newAuthRouter(t, tokens, "")
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := usecase.NewTokenService("other-secret")
		token, err := other.Issue("cleaner-1", usecase.RoleCleaner, "maria")
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		r := newAuthRouter(t, tokens, "")
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token exposes the actor", func(t *testing.T) {
		token, err := tokens.Issue("cleaner-1", usecase.RoleCleaner, "maria")
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		r := newAuthRouter(t, tokens, "")
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestRequireRole(t *testing.T) {
	tokens := usecase.NewTokenService("test-secret")

	t.Run("wrong role", func(t *testing.T) {
		token, err := tokens.Issue("cleaner-1", usecase.RoleCleaner, "maria")
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		r := newAuthRouter(t, tokens, usecase.RoleClient)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("matching role", func(t *testing.T) {
		token, err := tokens.Issue("client-1", usecase.RoleClient, "joao")
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		r := newAuthRouter(t, tokens, usecase.RoleClient)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
