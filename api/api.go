package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Domenick1991/airportsystem/internal/domain"
	"github.com/Domenick1991/airportsystem/internal/service/session"
)

// statusFor maps the domain failure taxonomy to HTTP statuses. Unrecognized
// errors are treated as server faults.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated), errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyBooked), errors.Is(err, domain.ErrBookingClosed), errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// requireAdmin returns the acting identity when it carries the admin role
// flag, writing the failure response otherwise.
func requireAdmin(c *gin.Context, sessions session.SessionUseCase) (*domain.User, bool) {
	current, ok := sessions.Current()
	if !ok {
		fail(c, domain.ErrNotAuthenticated)
		return nil, false
	}
	if current.Role != domain.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
		return nil, false
	}
	return current, true
}
