package models

import "time"

// One review per completed booking.
type Review struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	BookingID uint `gorm:"uniqueIndex" json:"booking_id"`

	UserID  uint `json:"user_id"`
	User    User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`
	PitchID uint `gorm:"index" json:"pitch_id"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"size:1000" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
