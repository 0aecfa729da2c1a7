package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentMethodCard   = "CARD"
	PaymentMethodPayPal = "PAYPAL"
	PaymentMethodCash   = "CASH"
)

const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusRefunded  = "REFUNDED"
	PaymentStatusFailed    = "FAILED"
)

type Payment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	BookingID uint `gorm:"uniqueIndex" json:"booking_id"`

	Amount decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	Method string          `gorm:"size:20;not null" json:"method"`
	Status string          `gorm:"size:20;default:'PENDING'" json:"status"`

	RefundAmount *decimal.Decimal `gorm:"type:decimal(10,2)" json:"refund_amount"`
	RefundedAt   *time.Time       `json:"refunded_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
