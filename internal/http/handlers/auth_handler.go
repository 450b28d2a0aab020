package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authgate/internal/auth"
	"authgate/internal/service"
)

// Register creates a local account and returns it with a session token.
func Register(svc *service.AuthService, audit *Auditor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email     string `json:"email" binding:"required,email"`
			Password  string `json:"password" binding:"required,min=8"`
			FirstName string `json:"first_name" binding:"required"`
			LastName  string `json:"last_name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := svc.Register(c.Request.Context(), input.Email, input.Password, input.FirstName, input.LastName)
		if err != nil {
			fail(c, err)
			return
		}
		token, err := svc.IssueToken(user)
		if err != nil {
			fail(c, err)
			return
		}

		audit.Record(c, user.ID, "auth.register", "user", user.ID, nil)
		c.JSON(http.StatusCreated, gin.H{
			"message": "User registered successfully",
			"user":    user,
			"token":   token,
		})
	}
}

// Login authenticates local credentials and returns a session token.
// Unknown email and wrong password produce the same response.
func Login(svc *service.AuthService, audit *Auditor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, token, err := svc.Login(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			fail(c, err)
			return
		}

		audit.Record(c, user.ID, "auth.login", "user", user.ID, nil)
		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    user,
			"token":   token,
		})
	}
}

// OAuthCallback accepts the normalized profile produced by the external
// handshake layer and resolves it to a canonical user plus token.
func OAuthCallback(svc *service.AuthService, audit *Auditor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var profile service.Profile
		if err := c.ShouldBindJSON(&profile); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := svc.ResolveOAuthProfile(c.Request.Context(), profile)
		if err != nil {
			fail(c, err)
			return
		}
		token, err := svc.IssueToken(user)
		if err != nil {
			fail(c, err)
			return
		}

		audit.Record(c, user.ID, "auth.oauth", "user", user.ID,
			map[string]interface{}{"provider": profile.Provider})
		c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
	}
}

// Profile returns the authenticated principal.
func Profile() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.PrincipalFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": principal})
	}
}

// Refresh re-issues a token from current database state, never from the
// presented token's role snapshot.
func Refresh(svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.PrincipalFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		token, err := svc.Refresh(c.Request.Context(), principal.ID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Token refreshed successfully", "token": token})
	}
}

// Logout acknowledges the request. Tokens are stateless; the client simply
// discards its copy.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
	}
}
