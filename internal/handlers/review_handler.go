package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/fieldplay/fieldplay-api/internal/domain/booking"
	"github.com/fieldplay/fieldplay-api/internal/httperr"
	"github.com/fieldplay/fieldplay-api/internal/logger"
	"github.com/fieldplay/fieldplay-api/internal/models"
)

type ReviewHandler struct {
	db *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// Create stores the review a player leaves after a completed booking. One
// review per booking, and only by the player who booked.
func (h *ReviewHandler) Create(c *gin.Context) {
	bookingID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_rating", "Rating must be between 1 and 5.")
		return
	}

	var booking models.Booking
	if err := h.db.Preload("Review").First(&booking, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_booking", "Failed to fetch booking.")
		return
	}

	if booking.UserID != currentUserID(c) {
		httperr.Forbidden(c, "not_booking_owner", "You can only review your own bookings.")
		return
	}
	if booking.Status != string(domain.StatusCompleted) {
		httperr.BadRequest(c, "booking_not_completed", "Only completed bookings can be reviewed.")
		return
	}
	if booking.Review != nil {
		httperr.Conflict(c, "already_reviewed", "This booking already has a review.")
		return
	}

	review := models.Review{
		BookingID: booking.ID,
		PitchID:   booking.PitchID,
		UserID:    booking.UserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := h.db.Create(&review).Error; err != nil {
		logger.Log.WithError(err).Error("review create failed")
		httperr.Internal(c, "failed_to_create_review", "Failed to create review.")
		return
	}

	c.JSON(http.StatusCreated, review)
}
