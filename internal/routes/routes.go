package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fieldplay/fieldplay-api/internal/audit"
	"github.com/fieldplay/fieldplay-api/internal/config"
	"github.com/fieldplay/fieldplay-api/internal/handlers"
	infraRepo "github.com/fieldplay/fieldplay-api/internal/infra/repository"
	"github.com/fieldplay/fieldplay-api/internal/middleware"
	"github.com/fieldplay/fieldplay-api/internal/models"
	ucBooking "github.com/fieldplay/fieldplay-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	requestCancellationUC := ucBooking.NewRequestCancellation(
		bookingRepo,
		auditDispatcher,
	)

	respondCancellationUC := ucBooking.NewRespondCancellation(
		bookingRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		cfg.Timezone,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)
	pitchHandler := handlers.NewPitchHandler(db, auditDispatcher, availabilityUC)
	bookingHandler := handlers.NewBookingHandler(
		db,
		createBookingUC,
		requestCancellationUC,
		respondCancellationUC,
	)
	reviewHandler := handlers.NewReviewHandler(db)
	ownerHandler := handlers.NewOwnerHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db)
	adminHandler := handlers.NewAdminHandler(db, cfg.Timezone)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	writeLimit := middleware.RateLimitMiddleware(int64(cfg.RateLimitPerMin), time.Minute)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC CATALOG
		// ------------------------------
		api.GET("/pitches", pitchHandler.List)
		api.GET("/pitches/:id", pitchHandler.Get)
		api.GET("/pitches/:id/availability", pitchHandler.Availability)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", writeLimit, authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/pitches", middleware.RequireRole(models.RoleOwner), pitchHandler.Create)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", writeLimit, bookingHandler.Create)
			secured.POST("/bookings/:id/cancel", bookingHandler.Cancel)
			secured.POST("/bookings/:id/cancellation-response", bookingHandler.CancellationResponse)
			secured.POST("/bookings/:id/review", reviewHandler.Create)

			secured.GET("/users/:id/bookings", bookingHandler.ListForUser)
			secured.GET("/owners/:id/pitches", ownerHandler.ListPitches)

			secured.GET("/me/notifications", notificationHandler.List)
			secured.PATCH("/me/notifications/:id/read", notificationHandler.MarkRead)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/users", adminHandler.Users)
				admin.GET("/pitches", adminHandler.Pitches)
				admin.GET("/stats", adminHandler.Stats)
				admin.GET("/settings", adminHandler.GetSettings)
				admin.PUT("/settings", adminHandler.UpdateSettings)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
