package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fieldplay/fieldplay-api/internal/httperr"
	"github.com/fieldplay/fieldplay-api/internal/middleware"
)

func currentUserID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

func currentUserRole(c *gin.Context) string {
	return c.GetString(middleware.ContextUserRole)
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid id parameter.")
		return 0, false
	}
	return uint(id), true
}

// businessCode extracts the code of a domain error, if the chain carries one.
func businessCode(err error) (string, bool) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

// writeBusinessError maps domain error codes onto HTTP statuses. Anything the
// taxonomy does not know is a plain 400.
func writeBusinessError(c *gin.Context, code string) {
	switch code {
	case "pitch_not_found", "booking_not_found":
		httperr.NotFound(c, code, "Resource not found.")
	case "slot_unavailable":
		httperr.Conflict(c, code, "Time slot no longer available.")
	case "not_booking_owner", "not_pitch_owner":
		httperr.Forbidden(c, code, "You are not allowed to perform this action.")
	case "not_pending_cancellation":
		httperr.BadRequest(c, code, "This booking is not pending cancellation.")
	case "not_cancellable":
		httperr.BadRequest(c, code, "This booking cannot be cancelled.")
	default:
		httperr.BadRequest(c, code, "Invalid request.")
	}
}
