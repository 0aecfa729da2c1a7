package booking

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fieldplay/fieldplay-api/internal/audit"
	domain "github.com/fieldplay/fieldplay-api/internal/domain/booking"
	"github.com/fieldplay/fieldplay-api/internal/httperr"
	"github.com/fieldplay/fieldplay-api/internal/models"
	"github.com/fieldplay/fieldplay-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID  uint
	PitchID uint

	Date      string // YYYY-MM-DD
	StartTime string // HH:MM

	DurationMin int
	TotalAmount decimal.Decimal

	TeamName      string
	Notes         string
	PaymentMethod string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	pitch, err := uc.repo.GetPitchByID(ctx, in.PitchID)
	if err != nil {
		return nil, httperr.ErrBusiness("pitch_not_found")
	}
	if !pitch.IsActive {
		return nil, httperr.ErrBusiness("pitch_inactive")
	}

	date, err := timezone.ParseDate(uc.tz, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if _, err := domain.HourOf(in.StartTime); err != nil {
		return nil, err
	}

	duration := in.DurationMin
	if duration <= 0 {
		duration = 60
	}

	method, err := normalizeMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	if in.TotalAmount.IsNegative() {
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	b := &models.Booking{
		Reference:   uuid.NewString(),
		UserID:      in.UserID,
		PitchID:     pitch.ID,
		BookingDate: date,
		StartTime:   in.StartTime,
		EndTime:     domain.EndTimeFor(in.StartTime, duration),
		DurationMin: duration,
		TotalAmount: in.TotalAmount,
		TeamName:    in.TeamName,
		Notes:       in.Notes,
		Status:      string(domain.InitialStatus()),
	}

	// Cash is settled at the pitch; everything else records a completed
	// payment immediately, there is no gateway round-trip.
	var payment *models.Payment
	if method != models.PaymentMethodCash {
		payment = &models.Payment{
			Amount: in.TotalAmount,
			Method: method,
			Status: models.PaymentStatusCompleted,
		}
	}

	if err := uc.repo.CreateBookingWithPayment(ctx, b, payment); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

func normalizeMethod(method string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(method)) {
	case "", models.PaymentMethodCard:
		return models.PaymentMethodCard, nil
	case models.PaymentMethodPayPal:
		return models.PaymentMethodPayPal, nil
	case models.PaymentMethodCash:
		return models.PaymentMethodCash, nil
	default:
		return "", httperr.ErrBusiness("invalid_payment_method")
	}
}
