package booking

import (
	"context"

	"github.com/fieldplay/fieldplay-api/internal/audit"
	domain "github.com/fieldplay/fieldplay-api/internal/domain/booking"
	"github.com/fieldplay/fieldplay-api/internal/httperr"
	"github.com/fieldplay/fieldplay-api/internal/models"
)

type RequestCancellation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRequestCancellation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RequestCancellation {
	return &RequestCancellation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RequestCancellation) Execute(
	ctx context.Context,
	bookingID uint,
	requesterID uint,
	requesterRole string,
	reason string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if b.UserID != requesterID && requesterRole != models.RoleAdmin {
		return nil, httperr.ErrBusiness("not_booking_owner")
	}

	if err := domain.RequestCancellation(b, reason); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &requesterID,
		Action:   audit.ActionCancellationRequested,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
