package booking_test

import (
	"context"
	"time"

	"github.com/fieldplay/fieldplay-api/internal/httperr"
	"github.com/fieldplay/fieldplay-api/internal/models"
)

// mockRepository is an in-memory stand-in with the same conflict semantics
// as the real store.
type mockRepository struct {
	pitches      map[uint]*models.Pitch
	availability map[uint][]models.PitchAvailability
	bookings     map[uint]*models.Booking

	nextID uint

	savedPayments      []*models.Payment
	savedNotifications []*models.Notification
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		pitches:      make(map[uint]*models.Pitch),
		availability: make(map[uint][]models.PitchAvailability),
		bookings:     make(map[uint]*models.Booking),
		nextID:       1,
	}
}

func (m *mockRepository) addPitch(p *models.Pitch) *models.Pitch {
	if p.ID == 0 {
		p.ID = m.nextID
		m.nextID++
	}
	m.pitches[p.ID] = p
	return p
}

func (m *mockRepository) addBooking(b *models.Booking) *models.Booking {
	if b.ID == 0 {
		b.ID = m.nextID
		m.nextID++
	}
	m.bookings[b.ID] = b
	return b
}

func (m *mockRepository) GetPitchByID(ctx context.Context, id uint) (*models.Pitch, error) {
	if p, ok := m.pitches[id]; ok {
		return p, nil
	}
	return nil, httperr.ErrBusiness("pitch_not_found")
}

func (m *mockRepository) ListAvailabilityForWeekday(
	ctx context.Context,
	pitchID uint,
	weekday int,
) ([]models.PitchAvailability, error) {
	var rows []models.PitchAvailability
	for _, row := range m.availability[pitchID] {
		if row.DayOfWeek == weekday {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (m *mockRepository) ListActiveBookingsForDay(
	ctx context.Context,
	pitchID uint,
	day time.Time,
) ([]models.Booking, error) {
	var result []models.Booking
	for _, b := range m.bookings {
		if b.PitchID != pitchID || !b.BookingDate.Equal(day) {
			continue
		}
		if b.Status == "PENDING" || b.Status == "CONFIRMED" {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (m *mockRepository) CreateBookingWithPayment(
	ctx context.Context,
	b *models.Booking,
	p *models.Payment,
) error {
	for _, existing := range m.bookings {
		if existing.PitchID == b.PitchID &&
			existing.BookingDate.Equal(b.BookingDate) &&
			existing.StartTime == b.StartTime &&
			(existing.Status == "PENDING" || existing.Status == "CONFIRMED") {
			return httperr.ErrBusiness("slot_unavailable")
		}
	}

	m.addBooking(b)
	if p != nil {
		p.BookingID = b.ID
		b.Payment = p
		m.savedPayments = append(m.savedPayments, p)
	}
	return nil
}

func (m *mockRepository) GetBookingByID(ctx context.Context, id uint) (*models.Booking, error) {
	if b, ok := m.bookings[id]; ok {
		return b, nil
	}
	return nil, httperr.ErrBusiness("booking_not_found")
}

func (m *mockRepository) UpdateBooking(ctx context.Context, b *models.Booking) error {
	m.bookings[b.ID] = b
	return nil
}

func (m *mockRepository) ApplyCancellationDecision(
	ctx context.Context,
	b *models.Booking,
	refunded *models.Payment,
	n *models.Notification,
) error {
	m.bookings[b.ID] = b
	if refunded != nil {
		m.savedPayments = append(m.savedPayments, refunded)
	}
	if n != nil {
		m.savedNotifications = append(m.savedNotifications, n)
	}
	return nil
}
