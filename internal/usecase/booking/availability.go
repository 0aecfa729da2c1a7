package booking

import (
	"context"

	domain "github.com/fieldplay/fieldplay-api/internal/domain/booking"
	"github.com/fieldplay/fieldplay-api/internal/dto"
	"github.com/fieldplay/fieldplay-api/internal/httperr"
	"github.com/fieldplay/fieldplay-api/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
	tz   string
}

func NewGetAvailability(repo domain.Repository, tz string) *GetAvailability {
	return &GetAvailability{repo: repo, tz: tz}
}

// Execute expands the pitch's weekly template for the date and subtracts the
// hours held by active bookings. A pitch with no template rows at all falls
// back to the default window; a pitch whose rows for the weekday are all
// inactive is closed that day.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	pitchID uint,
	dateStr string,
) (*dto.AvailabilityDTO, error) {

	if _, err := uc.repo.GetPitchByID(ctx, pitchID); err != nil {
		return nil, httperr.ErrBusiness("pitch_not_found")
	}

	date, err := timezone.ParseDate(uc.tz, dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	weekday := int(date.Weekday())

	rows, err := uc.repo.ListAvailabilityForWeekday(ctx, pitchID, weekday)
	if err != nil {
		return nil, err
	}

	templateHours := map[int]bool{}
	var ordered []int

	addHour := func(h int) {
		if !templateHours[h] {
			templateHours[h] = true
			ordered = append(ordered, h)
		}
	}

	if len(rows) == 0 {
		for _, h := range domain.DefaultTemplateHours() {
			addHour(h)
		}
	} else {
		for _, row := range rows {
			if !row.IsActive {
				continue
			}
			for _, h := range domain.ExpandHours(row.StartTime, row.EndTime) {
				addHour(h)
			}
		}
	}

	bookings, err := uc.repo.ListActiveBookingsForDay(ctx, pitchID, date)
	if err != nil {
		return nil, err
	}

	bookedHours := map[int]bool{}
	for _, b := range bookings {
		for _, h := range domain.SpanHours(b.StartTime, b.DurationMin) {
			if templateHours[h] {
				bookedHours[h] = true
			}
		}
	}

	out := &dto.AvailabilityDTO{
		AvailableSlots: []string{},
		BookedSlots:    []string{},
	}
	for _, h := range ordered {
		if bookedHours[h] {
			out.BookedSlots = append(out.BookedSlots, domain.SlotLabel(h))
		} else {
			out.AvailableSlots = append(out.AvailableSlots, domain.SlotLabel(h))
		}
	}

	return out, nil
}
