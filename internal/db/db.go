package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fieldplay/fieldplay-api/internal/config"
	"github.com/fieldplay/fieldplay-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate runs AutoMigrate plus the storage-level booking uniqueness guard.
// The partial index is what actually prevents two active bookings from landing
// on the same pitch/date/hour when concurrent requests pass the existence
// check together.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Pitch{},
		&models.PitchImage{},
		&models.PitchAmenity{},
		&models.PitchAvailability{},
		&models.Booking{},
		&models.Payment{},
		&models.Review{},
		&models.Team{},
		&models.TeamMember{},
		&models.Notification{},
		&models.AdminSettings{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	return db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_slot
        ON bookings (pitch_id, booking_date, start_time)
        WHERE status IN ('PENDING', 'CONFIRMED')
    `).Error
}
