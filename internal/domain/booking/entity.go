package booking

import (
	"strings"
	"time"

	"github.com/fieldplay/fieldplay-api/internal/httperr"
	"github.com/fieldplay/fieldplay-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// RequestCancellation moves a booking into CANCELLATION_REQUESTED and appends
// the reason to its notes.
func RequestCancellation(b *models.Booking, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return httperr.ErrBusiness("reason_required")
	}

	if err := CanRequestCancellation(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancellationRequested)
	b.Notes = appendNote(b.Notes, "Cancellation requested: "+reason)
	return nil
}

// ApplyDecision resolves a cancellation request: APPROVE cancels the booking,
// DENY puts it back to CONFIRMED.
func ApplyDecision(b *models.Booking, decision Decision, ownerNote string, now time.Time) error {
	if err := CanRespondToCancellation(Status(b.Status)); err != nil {
		return err
	}

	if ownerNote != "" {
		b.Notes = appendNote(b.Notes, "Owner response: "+ownerNote)
	}

	if decision == DecisionApprove {
		b.Status = string(StatusCancelled)
		b.CancelledAt = &now
		b.CancelReason = "Approved by owner"
	} else {
		b.Status = string(StatusConfirmed)
	}
	return nil
}

// Refund marks a payment fully refunded.
func Refund(p *models.Payment, now time.Time) {
	amount := p.Amount
	p.Status = models.PaymentStatusRefunded
	p.RefundAmount = &amount
	p.RefundedAt = &now
}

// Complete finishes a confirmed booking whose time has passed.
func Complete(b *models.Booking) error {
	if Status(b.Status) != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	b.Status = string(StatusCompleted)
	return nil
}

func appendNote(existing, note string) string {
	if existing == "" {
		return note
	}
	return existing + "\n" + note
}
