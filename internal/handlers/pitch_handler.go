package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fieldplay/fieldplay-api/internal/audit"
	"github.com/fieldplay/fieldplay-api/internal/httperr"
	"github.com/fieldplay/fieldplay-api/internal/logger"
	"github.com/fieldplay/fieldplay-api/internal/models"
	"github.com/fieldplay/fieldplay-api/internal/stats"
	ucBooking "github.com/fieldplay/fieldplay-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type PitchHandler struct {
	db           *gorm.DB
	audit        *audit.Dispatcher
	availability *ucBooking.GetAvailability
}

func NewPitchHandler(
	db *gorm.DB,
	dispatcher *audit.Dispatcher,
	availability *ucBooking.GetAvailability,
) *PitchHandler {
	return &PitchHandler{
		db:           db,
		audit:        dispatcher,
		availability: availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePitchRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address" binding:"required"`
	City        string `json:"city" binding:"required"`
	State       string `json:"state" binding:"required"`
	ZipCode     string `json:"zip_code"`

	Type       string `json:"type" binding:"required,oneof=INDOOR OUTDOOR"`
	Surface    string `json:"surface" binding:"required"`
	Size       string `json:"size"`
	Dimensions string `json:"dimensions"`
	Capacity   int    `json:"capacity" binding:"required,min=1"`

	PricePerHour decimal.Decimal `json:"price_per_hour" binding:"required"`

	Images    []string `json:"images"`
	Amenities []string `json:"amenities"`
}

// Known amenity identifiers and their display metadata; unknown ids are
// stored as-is with a generic icon.
var amenityMap = map[string]models.PitchAmenity{
	"parking":      {Name: "Free Parking", Icon: "Car"},
	"changing":     {Name: "Changing Rooms", Icon: "ShirtIcon"},
	"showers":      {Name: "Showers", Icon: "Droplets"},
	"floodlights":  {Name: "Floodlights", Icon: "Clock"},
	"wifi":         {Name: "WiFi", Icon: "Wifi"},
	"refreshments": {Name: "Refreshments", Icon: "Coffee"},
	"equipment":    {Name: "Equipment Rental", Icon: "Package"},
	"photography":  {Name: "Photography Area", Icon: "Camera"},
}

// ======================================================
// LIST (public catalog)
// ======================================================

func (h *PitchHandler) List(c *gin.Context) {
	var pitches []models.Pitch
	if err := h.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Amenities").
		Preload("Owner").
		Where("is_active = ? AND is_verified = ?", true, true).
		Order("created_at DESC").
		Find(&pitches).Error; err != nil {

		logger.Log.WithError(err).Error("pitch list failed")
		httperr.Internal(c, "failed_to_list_pitches", "Failed to fetch pitches.")
		return
	}

	out := make([]gin.H, 0, len(pitches))
	for i := range pitches {
		p := &pitches[i]

		var reviews []models.Review
		h.db.Where("pitch_id = ?", p.ID).Find(&reviews)

		out = append(out, gin.H{
			"pitch":          p,
			"average_rating": stats.AverageRating(reviews),
			"reviews_count":  len(reviews),
		})
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// GET (detail with rating)
// ======================================================

func (h *PitchHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var pitch models.Pitch
	if err := h.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Amenities").
		Preload("Availability").
		Preload("Owner").
		First(&pitch, id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "pitch_not_found", "Pitch not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_pitch", "Failed to fetch pitch.")
		return
	}

	var reviews []models.Review
	h.db.Preload("User").
		Where("pitch_id = ?", pitch.ID).
		Order("created_at DESC").
		Find(&reviews)

	c.JSON(http.StatusOK, gin.H{
		"pitch":          pitch,
		"reviews":        reviews,
		"average_rating": stats.AverageRating(reviews),
		"reviews_count":  len(reviews),
	})
}

// ======================================================
// CREATE (owner)
// ======================================================

func (h *PitchHandler) Create(c *gin.Context) {
	ownerID := currentUserID(c)

	var req CreatePitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.PricePerHour.IsNegative() {
		httperr.BadRequest(c, "invalid_price", "Price per hour must not be negative.")
		return
	}

	pitch := models.Pitch{
		OwnerID:      ownerID,
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Type:         req.Type,
		Surface:      req.Surface,
		Size:         req.Size,
		Dimensions:   req.Dimensions,
		Capacity:     req.Capacity,
		PricePerHour: req.PricePerHour,
		IsActive:     true,
		IsVerified:   true,
	}

	for i, url := range req.Images {
		pitch.Images = append(pitch.Images, models.PitchImage{
			URL:   url,
			Alt:   fmt.Sprintf("%s - Image %d", req.Name, i+1),
			Order: i + 1,
		})
	}

	for _, id := range req.Amenities {
		amenity, known := amenityMap[id]
		if !known {
			amenity = models.PitchAmenity{Name: id, Icon: "Package"}
		}
		pitch.Amenities = append(pitch.Amenities, amenity)
	}

	// Every new pitch opens with the default weekly template.
	for day := 0; day < 7; day++ {
		pitch.Availability = append(pitch.Availability, models.PitchAvailability{
			DayOfWeek: day,
			StartTime: "08:00",
			EndTime:   "22:00",
			IsActive:  true,
		})
	}

	if err := h.db.Create(&pitch).Error; err != nil {
		logger.Log.WithError(err).Error("pitch create failed")
		httperr.Internal(c, "failed_to_create_pitch", "Failed to create pitch.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   audit.ActionPitchCreated,
		Entity:   "pitch",
		EntityID: &pitch.ID,
	})

	c.JSON(http.StatusCreated, pitch)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PitchHandler) Availability(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date parameter is required.")
		return
	}

	out, err := h.availability.Execute(c.Request.Context(), id, dateStr)
	if err != nil {
		if code, ok := businessCode(err); ok {
			writeBusinessError(c, code)
			return
		}
		logger.Log.WithError(err).Error("availability failed")
		httperr.Internal(c, "failed_to_get_availability", "Failed to fetch availability.")
		return
	}

	c.JSON(http.StatusOK, out)
}
