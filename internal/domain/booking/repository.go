package booking

import (
	"context"
	"time"

	"github.com/fieldplay/fieldplay-api/internal/models"
)

type Repository interface {
	// -------- Pitch --------
	GetPitchByID(
		ctx context.Context,
		id uint,
	) (*models.Pitch, error)

	// -------- Availability template --------

	// ListAvailabilityForWeekday returns every template row for the weekday,
	// inactive rows included, so "closed" and "no template" stay
	// distinguishable.
	ListAvailabilityForWeekday(
		ctx context.Context,
		pitchID uint,
		weekday int,
	) ([]models.PitchAvailability, error)

	// -------- Booking (create / conflict) --------

	ListActiveBookingsForDay(
		ctx context.Context,
		pitchID uint,
		day time.Time,
	) ([]models.Booking, error)

	// CreateBookingWithPayment inserts the booking and its payment row (nil
	// for cash) in one transaction, failing with a slot conflict if an
	// active booking already holds the same pitch/date/start.
	CreateBookingWithPayment(
		ctx context.Context,
		b *models.Booking,
		p *models.Payment,
	) error

	// -------- Booking (state change) --------

	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// ApplyCancellationDecision persists the booking update, the optional
	// refund and the notification together or not at all.
	ApplyCancellationDecision(
		ctx context.Context,
		b *models.Booking,
		refunded *models.Payment,
		n *models.Notification,
	) error
}
