package booking

import (
	"context"

	"github.com/fieldplay/fieldplay-api/internal/audit"
	domain "github.com/fieldplay/fieldplay-api/internal/domain/booking"
	"github.com/fieldplay/fieldplay-api/internal/httperr"
	"github.com/fieldplay/fieldplay-api/internal/models"
	"github.com/fieldplay/fieldplay-api/internal/timezone"
)

type RespondCancellationInput struct {
	BookingID     uint
	ResponderID   uint
	ResponderRole string
	Action        string
	OwnerNote     string
}

// RespondCancellation is the single cancellation-decision operation: status
// flip, note merge, full refund when a payment exists, and the user-facing
// notification, all in one transaction.
type RespondCancellation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewRespondCancellation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *RespondCancellation {
	return &RespondCancellation{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

func (uc *RespondCancellation) Execute(
	ctx context.Context,
	in RespondCancellationInput,
) (*models.Booking, error) {

	decision, err := domain.ParseDecision(in.Action)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingByID(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if b.Pitch.OwnerID != in.ResponderID && in.ResponderRole != models.RoleAdmin {
		return nil, httperr.ErrBusiness("not_pitch_owner")
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.ApplyDecision(b, decision, in.OwnerNote, now); err != nil {
		return nil, err
	}

	var refunded *models.Payment
	if decision == domain.DecisionApprove && b.Payment != nil {
		refunded = b.Payment
		domain.Refund(refunded, now)
	}

	notification := buildDecisionNotification(b, decision, in.OwnerNote)

	if err := uc.repo.ApplyCancellationDecision(ctx, b, refunded, notification); err != nil {
		return nil, err
	}

	action := audit.ActionCancellationDenied
	if decision == domain.DecisionApprove {
		action = audit.ActionCancellationApproved
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ResponderID,
		Action:   action,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

func buildDecisionNotification(
	b *models.Booking,
	decision domain.Decision,
	ownerNote string,
) *models.Notification {

	title := "Cancellation Denied"
	message := "Your cancellation request for " + b.Pitch.Name + " has been denied."
	if ownerNote != "" {
		message += " Reason: " + ownerNote
	}

	if decision == domain.DecisionApprove {
		title = "Cancellation Approved"
		message = "Your cancellation request for " + b.Pitch.Name + " has been approved."
		if ownerNote != "" {
			message += " Owner note: " + ownerNote
		} else {
			message += " Refund will be processed within 3-5 business days."
		}
	}

	return &models.Notification{
		UserID:  b.UserID,
		Title:   title,
		Message: message,
		Type:    models.NotificationTypeCancellationResponse,
	}
}
