package middleware

import (
	"net/http"
	"strings"

	"cleanmatch/internal/usecase"
	"cleanmatch/pkg"

	"github.com/gin-gonic/gin"
)

const actorContextKey = "actor"

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
	errWrongRole    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role for this endpoint", http.StatusForbidden)
)

// RequireAuth validates the Authorization bearer token and stores the
// resulting actor (subject id + role) in the gin context. Use cases still
// check the actor against the owning fields; this only proves identity.
func RequireAuth(tokens *usecase.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		actor, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// RequireRole gates an endpoint to one marketplace role. Must run after
// RequireAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok || actor.Role != role {
			c.AbortWithStatusJSON(errWrongRole.HTTPStatus, errWrongRole.ToHTTPError())
			return
		}
		c.Next()
	}
}

func ActorFrom(c *gin.Context) (usecase.Actor, bool) {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return usecase.Actor{}, false
	}
	actor, ok := v.(usecase.Actor)
	return actor, ok
}
