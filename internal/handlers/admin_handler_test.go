package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbpkg "github.com/fieldplay/fieldplay-api/internal/db"
	"github.com/fieldplay/fieldplay-api/internal/dto"
	"github.com/fieldplay/fieldplay-api/internal/logger"
	"github.com/fieldplay/fieldplay-api/internal/models"
)

func TestMain(m *testing.M) {
	logger.Init("error")
	m.Run()
}

func newAdminRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	handler := NewAdminHandler(db, "UTC")

	r := gin.New()
	r.GET("/api/admin/stats", handler.Stats)
	r.GET("/api/admin/users", handler.Users)
	return r, db
}

func seedAdminData(t *testing.T, db *gorm.DB) {
	t.Helper()

	users := []models.User{
		{FirstName: "Jordan", LastName: "Lee", Email: "player@example.com", PasswordHash: "x", Role: models.RoleUser},
		{FirstName: "Sam", LastName: "Field", Email: "owner@example.com", PasswordHash: "x", Role: models.RoleOwner},
	}
	if err := db.Create(&users).Error; err != nil {
		t.Fatalf("seed users: %v", err)
	}

	pitch := models.Pitch{
		OwnerID:      users[1].ID,
		Name:         "Greenfield Arena",
		Address:      "1 Main St",
		City:         "Springfield",
		State:        "IL",
		Type:         models.PitchTypeOutdoor,
		Surface:      "Grass",
		Capacity:     10,
		PricePerHour: decimal.RequireFromString("75.00"),
		IsActive:     true,
		IsVerified:   true,
	}
	if err := db.Create(&pitch).Error; err != nil {
		t.Fatalf("seed pitch: %v", err)
	}

	booking := models.Booking{
		Reference:   "ref-1",
		UserID:      users[0].ID,
		PitchID:     pitch.ID,
		BookingDate: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:   "14:00",
		EndTime:     "15:00",
		DurationMin: 60,
		TotalAmount: decimal.RequireFromString("75.00"),
		Status:      "COMPLETED",
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	payment := models.Payment{
		BookingID: booking.ID,
		Amount:    decimal.RequireFromString("75.00"),
		Method:    models.PaymentMethodCard,
		Status:    models.PaymentStatusCompleted,
	}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}
}

func TestAdminStats(t *testing.T) {
	r, db := newAdminRouter(t)
	seedAdminData(t, db)

	req, _ := http.NewRequest("GET", "/api/admin/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var out dto.AdminStatsDTO
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, int64(2), out.TotalUsers)
	assert.Equal(t, int64(1), out.TotalPitches)
	assert.Equal(t, int64(1), out.TotalBookings)
	assert.True(t, out.TotalRevenue.Equal(decimal.RequireFromString("75.00")),
		"expected revenue 75.00, got %s", out.TotalRevenue)
}

func TestAdminStats_QueryFailureIsInternalError(t *testing.T) {
	r, db := newAdminRouter(t)
	seedAdminData(t, db)

	// A broken schema must surface as a 500, never as a stats payload full
	// of zeros.
	if err := db.Migrator().DropTable(&models.Booking{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	req, _ := http.NewRequest("GET", "/api/admin/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed_to_get_stats")
}

func TestAdminUsers_QueryFailureIsInternalError(t *testing.T) {
	r, db := newAdminRouter(t)
	seedAdminData(t, db)

	if err := db.Migrator().DropTable(&models.Booking{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	req, _ := http.NewRequest("GET", "/api/admin/users", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed_to_list_users")
}
