package stats

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/fieldplay/fieldplay-api/internal/models"
)

// Aggregates are recomputed from freshly fetched rows on every request.

// AverageRating is the arithmetic mean of review ratings, rounded to one
// decimal place. Zero reviews average to exactly 0.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return Round1(float64(sum) / float64(len(reviews)))
}

// TotalRevenue sums payment amounts.
func TotalRevenue(payments []models.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// BookingRevenue sums the payments of COMPLETED bookings. Cancelled and
// in-flight bookings don't count, and neither do cash bookings that never
// recorded a payment.
func BookingRevenue(bookings []models.Booking) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bookings {
		if b.Status != "COMPLETED" || b.Payment == nil {
			continue
		}
		total = total.Add(b.Payment.Amount)
	}
	return total
}

// MonthlyGrowth is the month-over-month percentage change, rounded to one
// decimal place. A zero previous month reports 0 rather than blowing up.
func MonthlyGrowth(thisMonth, lastMonth int64) float64 {
	if lastMonth == 0 {
		return 0
	}
	return Round1(float64(thisMonth-lastMonth) / float64(lastMonth) * 100)
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
