package booking

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fieldplay/fieldplay-api/internal/httperr"
)

// Fallback window for pitches with no availability template at all.
const (
	DefaultOpenHour  = 8
	DefaultCloseHour = 22
)

// SlotLabel renders an hour of day as its 12-hour display label ("8:00 AM").
// These labels are the slot identity on the wire.
func SlotLabel(hour int) string {
	switch {
	case hour == 0:
		return "12:00 AM"
	case hour < 12:
		return fmt.Sprintf("%d:00 AM", hour)
	case hour == 12:
		return "12:00 PM"
	default:
		return fmt.Sprintf("%d:00 PM", hour-12)
	}
}

// HourOf extracts the hour from an "HH:MM" time-of-day string.
func HourOf(timeStr string) (int, error) {
	parts := strings.SplitN(timeStr, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, httperr.ErrBusiness("invalid_time")
	}
	return hour, nil
}

// ExpandHours lists every whole hour in [startTime, endTime).
func ExpandHours(startTime, endTime string) []int {
	startHour, err := HourOf(startTime)
	if err != nil {
		return nil
	}
	endHour, err := HourOf(endTime)
	if err != nil {
		return nil
	}

	var hours []int
	for h := startHour; h < endHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// SpanHours lists every hour a booking occupies, so multi-hour bookings block
// their whole duration, not just their start hour.
func SpanHours(startTime string, durationMin int) []int {
	startHour, err := HourOf(startTime)
	if err != nil {
		return nil
	}

	slots := durationMin / 60
	if durationMin%60 != 0 {
		slots++
	}
	if slots < 1 {
		slots = 1
	}

	var hours []int
	for h := startHour; h < startHour+slots && h < 24; h++ {
		hours = append(hours, h)
	}
	return hours
}

// DefaultTemplateHours is the expanded fallback window.
func DefaultTemplateHours() []int {
	var hours []int
	for h := DefaultOpenHour; h < DefaultCloseHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// EndTimeFor computes the "HH:MM" end of a booking from its start and
// duration, capped at the end of day.
func EndTimeFor(startTime string, durationMin int) string {
	startHour, err := HourOf(startTime)
	if err != nil {
		return startTime
	}

	endHour := startHour + (durationMin+59)/60
	if endHour > 24 {
		endHour = 24
	}
	if endHour == 24 {
		return "23:59"
	}
	return fmt.Sprintf("%02d:00", endHour)
}
