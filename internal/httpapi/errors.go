package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Leganyst/meetpoint/internal/booking"
	"github.com/Leganyst/meetpoint/internal/repository"
	"github.com/Leganyst/meetpoint/internal/service"
)

// writeError maps domain errors onto HTTP statuses:
// validation 400, no session 401, permission 403, not found 404,
// lifecycle/rating conflicts 409, storage 502, timeout 504.
func writeError(c *gin.Context, err error) {
	var ve *booking.ValidationError

	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
	case errors.Is(err, booking.ErrSameParticipant):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNoSession):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrAlreadyRated),
		errors.Is(err, booking.ErrNotCompleted),
		errors.Is(err, booking.ErrNotElapsed),
		errors.Is(err, booking.ErrStaleLocation):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "storage timeout"})
	case repository.IsStorage(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
