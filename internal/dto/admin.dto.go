package dto

import (
	"github.com/shopspring/decimal"

	"github.com/fieldplay/fieldplay-api/internal/models"
)

type AdminStatsDTO struct {
	TotalUsers           int64           `json:"total_users"`
	TotalPitches         int64           `json:"total_pitches"`
	TotalBookings        int64           `json:"total_bookings"`
	TotalRevenue         decimal.Decimal `json:"total_revenue"`
	MonthlyGrowth        float64         `json:"monthly_growth"`
	ActiveUsers          int64           `json:"active_users"`
	NewUsersToday        int64           `json:"new_users_today"`
	PendingVerifications int64           `json:"pending_verifications"`
	ReportedIssues       int64           `json:"reported_issues"`
}

type AdminUserDTO struct {
	models.User
	BookingsCount int64           `json:"bookings_count"`
	PitchesCount  int64           `json:"pitches_count"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	Status        string          `json:"status"`
}

type AdminPitchDTO struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Address       string          `json:"address"`
	OwnerName     string          `json:"owner_name"`
	AverageRating float64         `json:"average_rating"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	Status        string          `json:"status"`
	BookingsCount int64           `json:"bookings_count"`
	ReviewsCount  int64           `json:"reviews_count"`
}
