package booking_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fieldplay/fieldplay-api/internal/httperr"
	"github.com/fieldplay/fieldplay-api/internal/models"
	ucBooking "github.com/fieldplay/fieldplay-api/internal/usecase/booking"
)

func activePitch(repo *mockRepository) *models.Pitch {
	return repo.addPitch(&models.Pitch{
		Name:     "Greenfield Arena",
		IsActive: true,
	})
}

func TestCreateBooking_Success(t *testing.T) {
	repo := newMockRepository()
	pitch := activePitch(repo)
	uc := ucBooking.NewCreateBooking(repo, nil, "UTC")

	b, err := uc.Execute(context.Background(), ucBooking.CreateBookingInput{
		UserID:        7,
		PitchID:       pitch.ID,
		Date:          "2026-03-14",
		StartTime:     "14:00",
		TotalAmount:   decimal.RequireFromString("75.00"),
		TeamName:      "FC Test",
		PaymentMethod: "CARD",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.Status != "CONFIRMED" {
		t.Errorf("expected CONFIRMED, got %s", b.Status)
	}
	if b.Reference == "" {
		t.Error("expected a generated reference")
	}
	if b.DurationMin != 60 {
		t.Errorf("expected default 60 minutes, got %d", b.DurationMin)
	}
	if b.EndTime != "15:00" {
		t.Errorf("expected end 15:00, got %s", b.EndTime)
	}
	if b.Payment == nil {
		t.Fatal("expected a payment row for card")
	}
	if b.Payment.Status != models.PaymentStatusCompleted {
		t.Errorf("expected COMPLETED payment, got %s", b.Payment.Status)
	}
}

func TestCreateBooking_CashSkipsPayment(t *testing.T) {
	repo := newMockRepository()
	pitch := activePitch(repo)
	uc := ucBooking.NewCreateBooking(repo, nil, "UTC")

	b, err := uc.Execute(context.Background(), ucBooking.CreateBookingInput{
		UserID:        7,
		PitchID:       pitch.ID,
		Date:          "2026-03-14",
		StartTime:     "14:00",
		TotalAmount:   decimal.RequireFromString("75.00"),
		PaymentMethod: "CASH",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.Payment != nil {
		t.Error("cash bookings must not record a payment")
	}
	if len(repo.savedPayments) != 0 {
		t.Errorf("expected no payments saved, got %d", len(repo.savedPayments))
	}
}

func TestCreateBooking_SlotConflict(t *testing.T) {
	repo := newMockRepository()
	pitch := activePitch(repo)
	uc := ucBooking.NewCreateBooking(repo, nil, "UTC")

	in := ucBooking.CreateBookingInput{
		UserID:      7,
		PitchID:     pitch.ID,
		Date:        "2026-03-14",
		StartTime:   "14:00",
		TotalAmount: decimal.RequireFromString("75.00"),
	}

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	in.UserID = 8
	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "slot_unavailable") {
		t.Fatalf("expected slot_unavailable, got %v", err)
	}
}

func TestCreateBooking_PitchNotFound(t *testing.T) {
	repo := newMockRepository()
	uc := ucBooking.NewCreateBooking(repo, nil, "UTC")

	_, err := uc.Execute(context.Background(), ucBooking.CreateBookingInput{
		UserID:      7,
		PitchID:     99,
		Date:        "2026-03-14",
		StartTime:   "14:00",
		TotalAmount: decimal.NewFromInt(50),
	})
	if !httperr.IsBusiness(err, "pitch_not_found") {
		t.Fatalf("expected pitch_not_found, got %v", err)
	}
}

func TestCreateBooking_InactivePitch(t *testing.T) {
	repo := newMockRepository()
	pitch := repo.addPitch(&models.Pitch{Name: "Closed", IsActive: false})
	uc := ucBooking.NewCreateBooking(repo, nil, "UTC")

	_, err := uc.Execute(context.Background(), ucBooking.CreateBookingInput{
		UserID:      7,
		PitchID:     pitch.ID,
		Date:        "2026-03-14",
		StartTime:   "14:00",
		TotalAmount: decimal.NewFromInt(50),
	})
	if !httperr.IsBusiness(err, "pitch_inactive") {
		t.Fatalf("expected pitch_inactive, got %v", err)
	}
}

func TestCreateBooking_InvalidInputs(t *testing.T) {
	repo := newMockRepository()
	pitch := activePitch(repo)
	uc := ucBooking.NewCreateBooking(repo, nil, "UTC")

	base := ucBooking.CreateBookingInput{
		UserID:      7,
		PitchID:     pitch.ID,
		Date:        "2026-03-14",
		StartTime:   "14:00",
		TotalAmount: decimal.NewFromInt(50),
	}

	bad := base
	bad.Date = "14/03/2026"
	if _, err := uc.Execute(context.Background(), bad); !httperr.IsBusiness(err, "invalid_date") {
		t.Errorf("expected invalid_date, got %v", err)
	}

	bad = base
	bad.StartTime = "x"
	if _, err := uc.Execute(context.Background(), bad); !httperr.IsBusiness(err, "invalid_time") {
		t.Errorf("expected invalid_time, got %v", err)
	}

	bad = base
	bad.PaymentMethod = "BITCOIN"
	if _, err := uc.Execute(context.Background(), bad); !httperr.IsBusiness(err, "invalid_payment_method") {
		t.Errorf("expected invalid_payment_method, got %v", err)
	}

	bad = base
	bad.TotalAmount = decimal.NewFromInt(-10)
	if _, err := uc.Execute(context.Background(), bad); !httperr.IsBusiness(err, "invalid_amount") {
		t.Errorf("expected invalid_amount, got %v", err)
	}
}

func TestCreateBooking_MultiHourSpansEnd(t *testing.T) {
	repo := newMockRepository()
	pitch := activePitch(repo)
	uc := ucBooking.NewCreateBooking(repo, nil, "UTC")

	b, err := uc.Execute(context.Background(), ucBooking.CreateBookingInput{
		UserID:      7,
		PitchID:     pitch.ID,
		Date:        "2026-03-14",
		StartTime:   "14:00",
		DurationMin: 120,
		TotalAmount: decimal.NewFromInt(150),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.EndTime != "16:00" {
		t.Errorf("expected end 16:00 for two hours, got %s", b.EndTime)
	}
}
