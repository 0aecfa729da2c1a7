package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdminSettings is a single-row table of platform-wide knobs. CommissionRate
// is surfaced in the admin dashboard only; booking totals are not net of it.
type AdminSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CommissionRate          decimal.Decimal `gorm:"type:decimal(5,4);default:0.10" json:"commission_rate"`
	CancellationWindowHours int             `gorm:"default:24" json:"cancellation_window_hours"`
	MaintenanceMode         bool            `gorm:"default:false" json:"maintenance_mode"`

	UpdatedAt time.Time `json:"updated_at"`
}
