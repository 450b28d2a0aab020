package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"authgate/internal/models"
	"authgate/internal/repository"
)

const (
	ClaimsKey    = "claims"
	PrincipalKey = "principal"
)

// JWT returns a gin middleware that validates a Bearer token and loads the
// principal — the user with roles and role permissions — from the store.
// The load happens exactly once per request; downstream gates read the
// principal from the context and evaluate without further I/O. Claims roles
// are never used for decisions, only the fresh database state is.
func JWT(users repository.UserRepository, tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader("Authorization")
		if !strings.HasPrefix(tokenStr, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr = strings.TrimSpace(strings.TrimPrefix(tokenStr, "Bearer "))

		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		principal, err := users.FindByID(c.Request.Context(), claims.Subject, repository.WithRolesAndPermissions)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}
		if principal.Status != models.UserActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "account suspended"})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// PrincipalFrom extracts the loaded principal placed by the JWT middleware.
func PrincipalFrom(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok
}
