package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/fieldplay/fieldplay-api/internal/models"
)

// Actions recorded across the platform.
const (
	ActionUserRegistered        = "user_registered"
	ActionPitchCreated          = "pitch_created"
	ActionBookingCreated        = "booking_created"
	ActionBookingCompleted      = "booking_completed"
	ActionCancellationRequested = "cancellation_requested"
	ActionCancellationApproved  = "cancellation_approved"
	ActionCancellationDenied    = "cancellation_denied"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	log := models.AuditLog{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&log).Error
}
