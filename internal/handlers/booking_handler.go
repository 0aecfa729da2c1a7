package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fieldplay/fieldplay-api/internal/httperr"
	"github.com/fieldplay/fieldplay-api/internal/logger"
	"github.com/fieldplay/fieldplay-api/internal/models"
	ucBooking "github.com/fieldplay/fieldplay-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db      *gorm.DB
	create  *ucBooking.CreateBooking
	cancel  *ucBooking.RequestCancellation
	respond *ucBooking.RespondCancellation
}

func NewBookingHandler(
	db *gorm.DB,
	create *ucBooking.CreateBooking,
	cancel *ucBooking.RequestCancellation,
	respond *ucBooking.RespondCancellation,
) *BookingHandler {
	return &BookingHandler{
		db:      db,
		create:  create,
		cancel:  cancel,
		respond: respond,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	PitchID     uint   `json:"pitch_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	DurationMin int    `json:"duration_min"`

	TotalAmount decimal.Decimal `json:"total_amount" binding:"required"`

	TeamName      string `json:"team_name"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"payment_method"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type CancellationResponseRequest struct {
	Action    string `json:"action" binding:"required"`
	OwnerNote string `json:"owner_note"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := currentUserID(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	booking, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:        userID,
		PitchID:       req.PitchID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		DurationMin:   req.DurationMin,
		TotalAmount:   req.TotalAmount,
		TeamName:      req.TeamName,
		Notes:         req.Notes,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		if code, ok := businessCode(err); ok {
			writeBusinessError(c, code)
			return
		}
		logger.Log.WithError(err).Error("booking create failed")
		httperr.Internal(c, "failed_to_create_booking", "Failed to create booking.")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ======================================================
// CANCEL (user requests cancellation)
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "reason_required", "A cancellation reason is required.")
		return
	}

	booking, err := h.cancel.Execute(
		c.Request.Context(),
		id,
		currentUserID(c),
		currentUserRole(c),
		req.Reason,
	)
	if err != nil {
		if code, ok := businessCode(err); ok {
			writeBusinessError(c, code)
			return
		}
		logger.Log.WithError(err).Error("cancellation request failed")
		httperr.Internal(c, "failed_to_cancel_booking", "Failed to request cancellation.")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ======================================================
// CANCELLATION RESPONSE (owner approves or denies)
// ======================================================

func (h *BookingHandler) CancellationResponse(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req CancellationResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_action", "Action must be APPROVE or DENY.")
		return
	}

	booking, err := h.respond.Execute(c.Request.Context(), ucBooking.RespondCancellationInput{
		BookingID:     id,
		ResponderID:   currentUserID(c),
		ResponderRole: currentUserRole(c),
		Action:        req.Action,
		OwnerNote:     req.OwnerNote,
	})
	if err != nil {
		if code, ok := businessCode(err); ok {
			writeBusinessError(c, code)
			return
		}
		logger.Log.WithError(err).Error("cancellation response failed")
		httperr.Internal(c, "failed_to_respond", "Failed to process cancellation response.")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ======================================================
// LIST FOR USER
// ======================================================

func (h *BookingHandler) ListForUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if id != currentUserID(c) && currentUserRole(c) != models.RoleAdmin {
		httperr.Forbidden(c, "forbidden", "You can only view your own bookings.")
		return
	}

	var bookings []models.Booking
	if err := h.db.
		Preload("Pitch").
		Preload("Pitch.Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Payment").
		Preload("Review").
		Where("user_id = ?", id).
		Order("booking_date DESC, start_time DESC").
		Find(&bookings).Error; err != nil {

		logger.Log.WithError(err).Error("booking list failed")
		httperr.Internal(c, "failed_to_list_bookings", "Failed to fetch bookings.")
		return
	}

	c.JSON(http.StatusOK, bookings)
}
