package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Reference is the public confirmation code handed to the client.
	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	PitchID uint  `json:"pitch_id"`
	Pitch   Pitch `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"pitch"`

	BookingDate time.Time `gorm:"not null" json:"booking_date"`
	StartTime   string    `gorm:"size:5;not null" json:"start_time"`
	EndTime     string    `gorm:"size:5;not null" json:"end_time"`
	DurationMin int       `gorm:"default:60" json:"duration_min"`

	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`

	TeamName     string `gorm:"size:100" json:"team_name"`
	Notes        string `gorm:"size:1000" json:"notes"`
	CancelReason string `gorm:"size:255" json:"cancel_reason"`

	Status string `gorm:"size:30;default:'PENDING'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`

	Payment *Payment `json:"payment"`
	Review  *Review  `json:"review,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
