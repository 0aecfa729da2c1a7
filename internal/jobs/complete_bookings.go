package jobs

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/fieldplay/fieldplay-api/internal/audit"
	domain "github.com/fieldplay/fieldplay-api/internal/domain/booking"
	"github.com/fieldplay/fieldplay-api/internal/logger"
	"github.com/fieldplay/fieldplay-api/internal/models"
	"github.com/fieldplay/fieldplay-api/internal/timezone"
)

// BookingSweeper flips CONFIRMED bookings whose end has passed to COMPLETED.
// Revenue and review flows both key off COMPLETED, so without the sweep they
// would never fire.
type BookingSweeper struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	tz    string
}

func NewBookingSweeper(db *gorm.DB, audit *audit.Dispatcher, tz string) *BookingSweeper {
	return &BookingSweeper{db: db, audit: audit, tz: tz}
}

func (s *BookingSweeper) CompleteElapsedBookings() error {
	now := timezone.NowIn(s.tz)
	loc := timezone.Location(s.tz)

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	currentTime := now.Format("15:04")

	var bookings []models.Booking
	err := s.db.
		Where("status = ?", string(domain.StatusConfirmed)).
		Where(
			"booking_date < ? OR (booking_date < ? AND end_time <= ?)",
			todayStart, todayStart.Add(24*time.Hour), currentTime,
		).
		Find(&bookings).Error
	if err != nil {
		return fmt.Errorf("booking sweep: list elapsed: %w", err)
	}

	if len(bookings) == 0 {
		return nil
	}

	for i := range bookings {
		b := &bookings[i]
		if err := domain.Complete(b); err != nil {
			continue
		}
		if err := s.db.Model(&models.Booking{}).
			Where("id = ? AND status = ?", b.ID, string(domain.StatusConfirmed)).
			Update("status", b.Status).Error; err != nil {
			return fmt.Errorf("booking sweep: update %d: %w", b.ID, err)
		}

		s.audit.Dispatch(audit.Event{
			Action:   audit.ActionBookingCompleted,
			Entity:   "booking",
			EntityID: &b.ID,
		})
	}

	logger.Log.WithField("count", len(bookings)).Info("completed elapsed bookings")
	return nil
}
