package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/fieldplay/fieldplay-api/internal/httperr"
	"github.com/fieldplay/fieldplay-api/internal/models"
	ucBooking "github.com/fieldplay/fieldplay-api/internal/usecase/booking"
)

// 2026-03-14 is a Saturday (weekday 6).
const saturday = "2026-03-14"

func saturdayDate() time.Time {
	return time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
}

func TestAvailability_DefaultWindow(t *testing.T) {
	repo := newMockRepository()
	pitch := repo.addPitch(&models.Pitch{Name: "No Template", IsActive: true})
	uc := ucBooking.NewGetAvailability(repo, "UTC")

	out, err := uc.Execute(context.Background(), pitch.ID, saturday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.AvailableSlots) != 14 {
		t.Fatalf("expected 14 default slots, got %d", len(out.AvailableSlots))
	}
	if out.AvailableSlots[0] != "8:00 AM" {
		t.Errorf("expected first slot 8:00 AM, got %s", out.AvailableSlots[0])
	}
	if out.AvailableSlots[len(out.AvailableSlots)-1] != "9:00 PM" {
		t.Errorf("expected last slot 9:00 PM, got %s", out.AvailableSlots[len(out.AvailableSlots)-1])
	}
}

func TestAvailability_BookedSlotsSubtracted(t *testing.T) {
	repo := newMockRepository()
	pitch := repo.addPitch(&models.Pitch{Name: "Busy", IsActive: true})
	repo.addBooking(&models.Booking{
		PitchID:     pitch.ID,
		BookingDate: saturdayDate(),
		StartTime:   "14:00",
		DurationMin: 60,
		Status:      "CONFIRMED",
	})
	uc := ucBooking.NewGetAvailability(repo, "UTC")

	out, err := uc.Execute(context.Background(), pitch.ID, saturday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.BookedSlots) != 1 || out.BookedSlots[0] != "2:00 PM" {
		t.Fatalf("expected booked [2:00 PM], got %v", out.BookedSlots)
	}

	for _, slot := range out.AvailableSlots {
		if slot == "2:00 PM" {
			t.Error("booked slot leaked into available slots")
		}
	}
	if len(out.AvailableSlots)+len(out.BookedSlots) != 14 {
		t.Errorf("slots must partition the window, got %d + %d",
			len(out.AvailableSlots), len(out.BookedSlots))
	}
}

func TestAvailability_MultiHourBookingBlocksSpan(t *testing.T) {
	repo := newMockRepository()
	pitch := repo.addPitch(&models.Pitch{Name: "Busy", IsActive: true})
	repo.addBooking(&models.Booking{
		PitchID:     pitch.ID,
		BookingDate: saturdayDate(),
		StartTime:   "14:00",
		DurationMin: 120,
		Status:      "CONFIRMED",
	})
	uc := ucBooking.NewGetAvailability(repo, "UTC")

	out, err := uc.Execute(context.Background(), pitch.ID, saturday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.BookedSlots) != 2 {
		t.Fatalf("expected two booked slots, got %v", out.BookedSlots)
	}
	if out.BookedSlots[0] != "2:00 PM" || out.BookedSlots[1] != "3:00 PM" {
		t.Errorf("expected [2:00 PM 3:00 PM], got %v", out.BookedSlots)
	}
}

func TestAvailability_CancelledBookingFreesSlot(t *testing.T) {
	repo := newMockRepository()
	pitch := repo.addPitch(&models.Pitch{Name: "Freed", IsActive: true})
	repo.addBooking(&models.Booking{
		PitchID:     pitch.ID,
		BookingDate: saturdayDate(),
		StartTime:   "14:00",
		DurationMin: 60,
		Status:      "CANCELLED",
	})
	uc := ucBooking.NewGetAvailability(repo, "UTC")

	out, err := uc.Execute(context.Background(), pitch.ID, saturday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.BookedSlots) != 0 {
		t.Errorf("cancelled booking must not block slots, got %v", out.BookedSlots)
	}
}

func TestAvailability_TemplateWindow(t *testing.T) {
	repo := newMockRepository()
	pitch := repo.addPitch(&models.Pitch{Name: "Templated", IsActive: true})
	repo.availability[pitch.ID] = []models.PitchAvailability{
		{PitchID: pitch.ID, DayOfWeek: 6, StartTime: "10:00", EndTime: "13:00", IsActive: true},
	}
	uc := ucBooking.NewGetAvailability(repo, "UTC")

	out, err := uc.Execute(context.Background(), pitch.ID, saturday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"10:00 AM", "11:00 AM", "12:00 PM"}
	if len(out.AvailableSlots) != len(want) {
		t.Fatalf("expected %v, got %v", want, out.AvailableSlots)
	}
	for i := range want {
		if out.AvailableSlots[i] != want[i] {
			t.Errorf("slot %d: expected %s, got %s", i, want[i], out.AvailableSlots[i])
		}
	}
}

func TestAvailability_ClosedDay(t *testing.T) {
	repo := newMockRepository()
	pitch := repo.addPitch(&models.Pitch{Name: "Closed Saturdays", IsActive: true})
	repo.availability[pitch.ID] = []models.PitchAvailability{
		{PitchID: pitch.ID, DayOfWeek: 6, StartTime: "08:00", EndTime: "22:00", IsActive: false},
	}
	uc := ucBooking.NewGetAvailability(repo, "UTC")

	out, err := uc.Execute(context.Background(), pitch.ID, saturday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Inactive rows exist for the day, so the pitch is closed, not defaulted.
	if len(out.AvailableSlots) != 0 || len(out.BookedSlots) != 0 {
		t.Errorf("expected no slots on a closed day, got %v / %v",
			out.AvailableSlots, out.BookedSlots)
	}
}

func TestAvailability_UnknownPitch(t *testing.T) {
	repo := newMockRepository()
	uc := ucBooking.NewGetAvailability(repo, "UTC")

	_, err := uc.Execute(context.Background(), 99, saturday)
	if !httperr.IsBusiness(err, "pitch_not_found") {
		t.Fatalf("expected pitch_not_found, got %v", err)
	}
}
