package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PitchTypeIndoor  = "INDOOR"
	PitchTypeOutdoor = "OUTDOOR"
)

const (
	SurfaceNaturalGrass    = "NATURAL_GRASS"
	SurfaceArtificialGrass = "ARTIFICIAL_GRASS"
	SurfaceHybrid          = "HYBRID"
)

type Pitch struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint `json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"owner"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`
	Address     string `gorm:"size:255;not null" json:"address"`
	City        string `gorm:"size:100;not null" json:"city"`
	State       string `gorm:"size:100;not null" json:"state"`
	ZipCode     string `gorm:"size:20" json:"zip_code"`

	Type       string `gorm:"size:20;not null" json:"type"`
	Surface    string `gorm:"size:30;not null" json:"surface"`
	Size       string `gorm:"size:20" json:"size"`
	Dimensions string `gorm:"size:50" json:"dimensions"`
	Capacity   int    `json:"capacity"`

	PricePerHour decimal.Decimal `gorm:"type:decimal(10,2)" json:"price_per_hour"`

	IsActive   bool `gorm:"default:true" json:"is_active"`
	IsVerified bool `gorm:"default:false" json:"is_verified"`

	Images       []PitchImage        `json:"images"`
	Amenities    []PitchAmenity      `json:"amenities"`
	Availability []PitchAvailability `json:"availability"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PitchImage struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	PitchID uint   `json:"pitch_id"`
	URL     string `gorm:"size:500;not null" json:"url"`
	Alt     string `gorm:"size:255" json:"alt"`
	Order   int    `gorm:"column:display_order" json:"order"`

	CreatedAt time.Time `json:"created_at"`
}

type PitchAmenity struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	PitchID uint   `json:"pitch_id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Icon    string `gorm:"size:50" json:"icon"`
}

// PitchAvailability is the recurring weekly open-hours template. It does not
// encode booked state; bookings are subtracted at read time.
type PitchAvailability struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	PitchID uint `gorm:"index:idx_pitch_weekday" json:"pitch_id"`

	DayOfWeek int    `gorm:"index:idx_pitch_weekday" json:"day_of_week"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
