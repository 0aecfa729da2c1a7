package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/fieldplay/fieldplay-api/internal/domain/booking"
	"github.com/fieldplay/fieldplay-api/internal/httperr"
	"github.com/fieldplay/fieldplay-api/internal/logger"
	"github.com/fieldplay/fieldplay-api/internal/models"
	"github.com/fieldplay/fieldplay-api/internal/stats"
)

type OwnerHandler struct {
	db *gorm.DB
}

func NewOwnerHandler(db *gorm.DB) *OwnerHandler {
	return &OwnerHandler{db: db}
}

// ListPitches returns the owner dashboard payload: every pitch the owner
// manages with its bookings, pending cancellation requests and ratings.
func (h *OwnerHandler) ListPitches(c *gin.Context) {
	ownerID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if ownerID != currentUserID(c) && currentUserRole(c) != models.RoleAdmin {
		httperr.Forbidden(c, "forbidden", "You can only view your own pitches.")
		return
	}

	var pitches []models.Pitch
	if err := h.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Amenities").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&pitches).Error; err != nil {

		logger.Log.WithError(err).Error("owner pitch list failed")
		httperr.Internal(c, "failed_to_list_pitches", "Failed to fetch pitches.")
		return
	}

	out := make([]gin.H, 0, len(pitches))
	for i := range pitches {
		p := &pitches[i]

		var bookings []models.Booking
		h.db.Preload("User").
			Preload("Payment").
			Where("pitch_id = ?", p.ID).
			Order("booking_date DESC, start_time DESC").
			Find(&bookings)

		var reviews []models.Review
		h.db.Where("pitch_id = ?", p.ID).Find(&reviews)

		pendingCancellations := 0
		for j := range bookings {
			if bookings[j].Status == string(domain.StatusCancellationRequested) {
				pendingCancellations++
			}
		}

		out = append(out, gin.H{
			"pitch":                 p,
			"bookings":              bookings,
			"average_rating":        stats.AverageRating(reviews),
			"reviews_count":         len(reviews),
			"revenue":               stats.BookingRevenue(bookings),
			"pending_cancellations": pendingCancellations,
		})
	}

	c.JSON(http.StatusOK, out)
}
