package booking

import "github.com/fieldplay/fieldplay-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending               Status = "PENDING"
	StatusConfirmed             Status = "CONFIRMED"
	StatusCompleted             Status = "COMPLETED"
	StatusCancellationRequested Status = "CANCELLATION_REQUESTED"
	StatusCancelled             Status = "CANCELLED"
)

// ActiveStatuses are the statuses that hold a slot.
func ActiveStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}

// ===============================
// Validations
// ===============================

// CanRequestCancellation rejects terminal bookings.
func CanRequestCancellation(current Status) error {
	if current == StatusCancelled || current == StatusCompleted {
		return httperr.ErrBusiness("not_cancellable")
	}
	return nil
}

// CanRespondToCancellation only allows a decision on a pending request.
func CanRespondToCancellation(current Status) error {
	if current != StatusCancellationRequested {
		return httperr.ErrBusiness("not_pending_cancellation")
	}
	return nil
}

// InitialStatus is the status a booking is created with. Checkout confirms
// immediately; PENDING exists only for payment flows that never record one.
func InitialStatus() Status {
	return StatusConfirmed
}

// ===============================
// Cancellation decision
// ===============================

type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionDeny    Decision = "DENY"
)

func ParseDecision(action string) (Decision, error) {
	switch Decision(action) {
	case DecisionApprove, DecisionDeny:
		return Decision(action), nil
	default:
		return "", httperr.ErrBusiness("invalid_action")
	}
}
