package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "github.com/fieldplay/fieldplay-api/internal/domain/booking"
	"github.com/fieldplay/fieldplay-api/internal/dto"
	"github.com/fieldplay/fieldplay-api/internal/httperr"
	"github.com/fieldplay/fieldplay-api/internal/httpresp"
	"github.com/fieldplay/fieldplay-api/internal/logger"
	"github.com/fieldplay/fieldplay-api/internal/models"
	"github.com/fieldplay/fieldplay-api/internal/stats"
	"github.com/fieldplay/fieldplay-api/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	db *gorm.DB
	tz string
}

func NewAdminHandler(db *gorm.DB, tz string) *AdminHandler {
	return &AdminHandler{db: db, tz: tz}
}

// ======================================================
// USERS
// ======================================================

func (h *AdminHandler) Users(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("created_at DESC").Find(&users).Error; err != nil {
		logger.Log.WithError(err).Error("admin user list failed")
		httperr.Internal(c, "failed_to_list_users", "Failed to fetch users.")
		return
	}

	out := make([]dto.AdminUserDTO, 0, len(users))
	for _, u := range users {
		var bookingsCount, pitchesCount int64
		if err := h.db.Model(&models.Booking{}).
			Where("user_id = ?", u.ID).
			Count(&bookingsCount).Error; err != nil {
			logger.Log.WithError(err).Error("admin user list failed")
			httperr.Internal(c, "failed_to_list_users", "Failed to fetch users.")
			return
		}
		if err := h.db.Model(&models.Pitch{}).
			Where("owner_id = ?", u.ID).
			Count(&pitchesCount).Error; err != nil {
			logger.Log.WithError(err).Error("admin user list failed")
			httperr.Internal(c, "failed_to_list_users", "Failed to fetch users.")
			return
		}

		var payments []models.Payment
		if err := h.db.Joins("JOIN bookings ON bookings.id = payments.booking_id").
			Where("bookings.user_id = ? AND payments.status = ?", u.ID, models.PaymentStatusCompleted).
			Find(&payments).Error; err != nil {
			logger.Log.WithError(err).Error("admin user list failed")
			httperr.Internal(c, "failed_to_list_users", "Failed to fetch users.")
			return
		}

		status := "active"
		if !u.Verified {
			status = "pending"
		}

		out = append(out, dto.AdminUserDTO{
			User:          u,
			BookingsCount: bookingsCount,
			PitchesCount:  pitchesCount,
			TotalSpent:    stats.TotalRevenue(payments),
			Status:        status,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// PITCHES
// ======================================================

func (h *AdminHandler) Pitches(c *gin.Context) {
	var pitches []models.Pitch
	if err := h.db.Preload("Owner").Order("created_at DESC").Find(&pitches).Error; err != nil {
		logger.Log.WithError(err).Error("admin pitch list failed")
		httperr.Internal(c, "failed_to_list_pitches", "Failed to fetch pitches.")
		return
	}

	out := make([]dto.AdminPitchDTO, 0, len(pitches))
	for i := range pitches {
		p := &pitches[i]

		var bookings []models.Booking
		if err := h.db.Preload("Payment").
			Where("pitch_id = ?", p.ID).
			Find(&bookings).Error; err != nil {
			logger.Log.WithError(err).Error("admin pitch list failed")
			httperr.Internal(c, "failed_to_list_pitches", "Failed to fetch pitches.")
			return
		}

		var reviews []models.Review
		if err := h.db.Where("pitch_id = ?", p.ID).Find(&reviews).Error; err != nil {
			logger.Log.WithError(err).Error("admin pitch list failed")
			httperr.Internal(c, "failed_to_list_pitches", "Failed to fetch pitches.")
			return
		}

		status := "inactive"
		if p.IsActive && p.IsVerified {
			status = "active"
		} else if p.IsActive {
			status = "pending"
		}

		ownerName := p.Owner.FirstName + " " + p.Owner.LastName

		out = append(out, dto.AdminPitchDTO{
			ID:            p.ID,
			Name:          p.Name,
			Address:       p.Address + ", " + p.City,
			OwnerName:     ownerName,
			AverageRating: stats.AverageRating(reviews),
			TotalRevenue:  stats.BookingRevenue(bookings),
			Status:        status,
			BookingsCount: int64(len(bookings)),
			ReviewsCount:  int64(len(reviews)),
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// STATS
// ======================================================

func (h *AdminHandler) Stats(c *gin.Context) {
	var out dto.AdminStatsDTO

	// Every query feeds the same DTO; the first failure aborts the request
	// rather than reporting zeros as real numbers.
	fail := func(err error) {
		logger.Log.WithError(err).Error("admin stats failed")
		httperr.Internal(c, "failed_to_get_stats", "Failed to compute stats.")
	}

	if err := h.db.Model(&models.User{}).Count(&out.TotalUsers).Error; err != nil {
		fail(err)
		return
	}
	if err := h.db.Model(&models.Pitch{}).Count(&out.TotalPitches).Error; err != nil {
		fail(err)
		return
	}
	if err := h.db.Model(&models.Booking{}).Count(&out.TotalBookings).Error; err != nil {
		fail(err)
		return
	}

	var payments []models.Payment
	if err := h.db.Where("status = ?", models.PaymentStatusCompleted).
		Find(&payments).Error; err != nil {
		fail(err)
		return
	}
	out.TotalRevenue = stats.TotalRevenue(payments)

	now := timezone.NowIn(h.tz)
	loc := timezone.Location(h.tz)

	thisMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	lastMonthStart := thisMonthStart.AddDate(0, -1, 0)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	var thisMonth, lastMonth int64
	if err := h.db.Model(&models.Booking{}).
		Where("created_at >= ?", thisMonthStart).
		Count(&thisMonth).Error; err != nil {
		fail(err)
		return
	}
	if err := h.db.Model(&models.Booking{}).
		Where("created_at >= ? AND created_at < ?", lastMonthStart, thisMonthStart).
		Count(&lastMonth).Error; err != nil {
		fail(err)
		return
	}
	out.MonthlyGrowth = stats.MonthlyGrowth(thisMonth, lastMonth)

	// Active means "booked something or touched their profile in the last
	// 30 days"; there is no login timestamp to go on.
	cutoff := now.AddDate(0, 0, -30)
	recentBookers := h.db.Model(&models.Booking{}).
		Select("user_id").
		Where("created_at >= ?", cutoff)
	if err := h.db.Model(&models.User{}).
		Where("updated_at >= ? OR id IN (?)", cutoff, recentBookers).
		Count(&out.ActiveUsers).Error; err != nil {
		fail(err)
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("created_at >= ?", todayStart).
		Count(&out.NewUsersToday).Error; err != nil {
		fail(err)
		return
	}

	if err := h.db.Model(&models.Pitch{}).
		Where("is_verified = ?", false).
		Count(&out.PendingVerifications).Error; err != nil {
		fail(err)
		return
	}

	if err := h.db.Model(&models.Booking{}).
		Where("status = ?", string(domain.StatusCancellationRequested)).
		Count(&out.ReportedIssues).Error; err != nil {
		fail(err)
		return
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// SETTINGS
// ======================================================

type UpdateSettingsRequest struct {
	CommissionRate          *decimal.Decimal `json:"commission_rate"`
	CancellationWindowHours *int             `json:"cancellation_window_hours"`
	MaintenanceMode         *bool            `json:"maintenance_mode"`
}

func (h *AdminHandler) loadSettings() (*models.AdminSettings, error) {
	var s models.AdminSettings
	err := h.db.First(&s).Error
	if err == gorm.ErrRecordNotFound {
		s = models.AdminSettings{
			CommissionRate:          decimal.NewFromFloat(0.10),
			CancellationWindowHours: 24,
		}
		err = h.db.Create(&s).Error
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (h *AdminHandler) GetSettings(c *gin.Context) {
	s, err := h.loadSettings()
	if err != nil {
		logger.Log.WithError(err).Error("settings load failed")
		httperr.Internal(c, "failed_to_get_settings", "Failed to fetch settings.")
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid settings payload.")
		return
	}

	s, err := h.loadSettings()
	if err != nil {
		logger.Log.WithError(err).Error("settings load failed")
		httperr.Internal(c, "failed_to_get_settings", "Failed to fetch settings.")
		return
	}

	if req.CommissionRate != nil {
		if req.CommissionRate.IsNegative() || req.CommissionRate.GreaterThan(decimal.NewFromInt(1)) {
			httperr.BadRequest(c, "invalid_commission_rate", "Commission rate must be between 0 and 1.")
			return
		}
		s.CommissionRate = *req.CommissionRate
	}
	if req.CancellationWindowHours != nil {
		if *req.CancellationWindowHours < 0 {
			httperr.BadRequest(c, "invalid_cancellation_window", "Cancellation window must not be negative.")
			return
		}
		s.CancellationWindowHours = *req.CancellationWindowHours
	}
	if req.MaintenanceMode != nil {
		s.MaintenanceMode = *req.MaintenanceMode
	}

	if err := h.db.Save(s).Error; err != nil {
		logger.Log.WithError(err).Error("settings save failed")
		httperr.Internal(c, "failed_to_update_settings", "Failed to update settings.")
		return
	}

	c.JSON(http.StatusOK, s)
}
