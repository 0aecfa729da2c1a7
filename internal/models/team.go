package models

import "time"

type Team struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	CaptainID uint   `json:"captain_id"`

	Members []TeamMember `json:"members"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TeamMember struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	TeamID uint `gorm:"index" json:"team_id"`
	UserID uint `json:"user_id"`

	Position string `gorm:"size:50" json:"position"`

	CreatedAt time.Time `json:"created_at"`
}
