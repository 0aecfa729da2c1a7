package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"

	"github.com/fieldplay/fieldplay-api/internal/audit"
	"github.com/fieldplay/fieldplay-api/internal/config"
	dbpkg "github.com/fieldplay/fieldplay-api/internal/db"
	"github.com/fieldplay/fieldplay-api/internal/jobs"
	"github.com/fieldplay/fieldplay-api/internal/logger"
	"github.com/fieldplay/fieldplay-api/internal/middleware"
	"github.com/fieldplay/fieldplay-api/internal/routes"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.Init(cfg.LogLevel)
	if cfg.Env == "development" {
		logger.SetTextFormatter()
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Money fields serialize as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	db := dbpkg.NewDB(cfg)

	auditDispatcher := audit.NewDispatcher(audit.New(db))
	sweeper := jobs.NewBookingSweeper(db, auditDispatcher, cfg.Timezone)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.CompleteSweepSpec, func() {
		if err := sweeper.CompleteElapsedBookings(); err != nil {
			logger.Log.WithError(err).Error("booking sweep failed")
		}
	}); err != nil {
		logger.Log.WithError(err).Fatal("invalid sweep schedule")
	}
	scheduler.Start()
	defer scheduler.Stop()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	logger.Log.WithField("addr", cfg.Addr()).Info("server starting")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Log.WithError(err).Fatal("failed to start server")
	}
}
