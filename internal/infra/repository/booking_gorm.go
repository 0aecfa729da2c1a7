package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/fieldplay/fieldplay-api/internal/domain/booking"
	"github.com/fieldplay/fieldplay-api/internal/httperr"
	"github.com/fieldplay/fieldplay-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Pitch
// --------------------------------------------------

func (r *BookingGormRepository) GetPitchByID(
	ctx context.Context,
	id uint,
) (*models.Pitch, error) {

	var pitch models.Pitch
	if err := r.db.WithContext(ctx).First(&pitch, id).Error; err != nil {
		return nil, err
	}
	return &pitch, nil
}

// --------------------------------------------------
// Availability template
// --------------------------------------------------

func (r *BookingGormRepository) ListAvailabilityForWeekday(
	ctx context.Context,
	pitchID uint,
	weekday int,
) ([]models.PitchAvailability, error) {

	var rows []models.PitchAvailability
	if err := r.db.WithContext(ctx).
		Where("pitch_id = ? AND day_of_week = ?", pitchID, weekday).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveBookingsForDay(
	ctx context.Context,
	pitchID uint,
	day time.Time,
) ([]models.Booking, error) {

	dayEnd := day.Add(24 * time.Hour)

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("start_time", "duration_min").
		Where(
			"pitch_id = ? AND booking_date >= ? AND booking_date < ? AND status IN ?",
			pitchID, day, dayEnd, domain.ActiveStatuses(),
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) CreateBookingWithPayment(
	ctx context.Context,
	b *models.Booking,
	p *models.Payment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Where(
				"pitch_id = ? AND booking_date = ? AND start_time = ? AND status IN ?",
				b.PitchID, b.BookingDate, b.StartTime, domain.ActiveStatuses(),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_unavailable")
		}

		if err := tx.Create(b).Error; err != nil {
			// The partial unique index catches the race the existence check
			// cannot: two requests passing the check before either inserts.
			if isActiveSlotViolation(err) {
				return httperr.ErrBusiness("slot_unavailable")
			}
			return err
		}

		if p != nil {
			p.BookingID = b.ID
			if err := tx.Create(p).Error; err != nil {
				return err
			}
			b.Payment = p
		}

		return nil
	})
}

// isActiveSlotViolation recognizes the partial unique index firing, whatever
// the driver phrases it as. The booking insert's only other unique column is
// the freshly generated UUID reference, so any duplicate-key error here is
// the slot index.
func isActiveSlotViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "idx_bookings_active_slot") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Pitch").
		Preload("Payment").
		First(&b, id).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error
}

// ApplyCancellationDecision is the one multi-statement write in the system:
// the booking update, the refund and the notification land together or not
// at all.
func (r *BookingGormRepository) ApplyCancellationDecision(
	ctx context.Context,
	b *models.Booking,
	refunded *models.Payment,
	n *models.Notification,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(b).Error; err != nil {
			return err
		}

		if refunded != nil {
			if err := tx.Save(refunded).Error; err != nil {
				return err
			}
		}

		if n != nil {
			if err := tx.Create(n).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
