package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"authgate/internal/errs"
)

// fail translates taxonomy errors into HTTP responses. Anything outside the
// taxonomy is a 500 with a generic body; details stay server-side.
func fail(c *gin.Context, err error) {
	var fe *errs.ForbiddenError
	switch {
	case errors.As(err, &fe):
		body := gin.H{"error": fe.Error()}
		if len(fe.Missing) > 0 {
			body["missing"] = fe.Missing
		}
		c.JSON(http.StatusForbidden, body)
	case errors.Is(err, errs.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "conflict"})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, errs.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, errs.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
