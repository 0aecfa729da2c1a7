package models

import "time"

const (
	NotificationTypeBooking              = "BOOKING"
	NotificationTypePayment              = "PAYMENT"
	NotificationTypeReview               = "REVIEW"
	NotificationTypeSystem               = "SYSTEM"
	NotificationTypeCancellationResponse = "CANCELLATION_RESPONSE"
)

type Notification struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	Title   string `gorm:"size:100;not null" json:"title"`
	Message string `gorm:"size:1000;not null" json:"message"`
	Type    string `gorm:"size:30;not null" json:"type"`
	IsRead  bool   `gorm:"default:false" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
