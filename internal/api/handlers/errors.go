package handlers

import (
	"errors"
	"log"
	"net/http"

	"jobboard-api/internal/services"

	"github.com/gin-gonic/gin"
)

// RespondServiceError translates a service error into the HTTP status and
// body for the response. Every handler routes its service failures through
// here so the taxonomy stays in one place.
func RespondServiceError(c *gin.Context, err error, operation string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrConflict), errors.Is(err, services.ErrCategoryInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDeadlinePassed), errors.Is(err, services.ErrJobNotPublished):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
	default:
		log.Printf("Handler: Unexpected error during %s: %v", operation, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + operation})
	}
}
