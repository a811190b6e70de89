package main

import (
	"fmt"
	"log"
	"time"

	"detailpro-backend/config"
	"detailpro-backend/controllers"
	"detailpro-backend/geocode"
	"detailpro-backend/logging"
	"detailpro-backend/models"
	"detailpro-backend/routes"
	"detailpro-backend/services"
	"detailpro-backend/store"
	"detailpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := logging.NewLogger(cfg.LogLevel)

	db, err := config.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Service{},
		&models.Customer{},
		&models.Booking{},
		&models.Product{},
		&models.SocialLink{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if cfg.SeedDB {
		utils.SeedDatabase(db, logger)
	}

	var geocoder geocode.Geocoder
	if cfg.GoogleMapsAPIKey != "" {
		geocoder = geocode.NewGoogleGeocoder(cfg.GoogleMapsAPIKey, logger)
	} else {
		geocoder = geocode.NewFixedGeocoder(geocode.FallbackCoordinates, logger)
	}
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		geocoder = geocode.NewCachedGeocoder(geocoder, rdb, cfg.GeocodeCacheTTL, logger)
	}

	st := store.NewGormStore(db)
	business := geocode.Coordinates{Lat: cfg.BusinessLat, Lng: cfg.BusinessLng}
	bookingService := services.NewBookingService(st, geocoder, business, cfg.MileageRate, logger)
	statsService := services.NewStatsService(st)

	if cfg.RemindersEnabled() {
		reminders := services.NewReminderService(st, cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, logger)
		if err := reminders.StartScheduler(); err != nil {
			log.Fatalf("failed to start reminder scheduler: %v", err)
		}
		defer reminders.Stop()
	}

	r := routes.SetupRouter(routes.Deps{
		Services:      controllers.NewServiceController(st, logger),
		Catalog:       controllers.NewCatalogController(st, logger),
		Bookings:      controllers.NewBookingController(bookingService, st, logger),
		Admin:         controllers.NewAdminController(st, statsService, cfg.AdminPassword, cfg.SessionSecret, time.Duration(cfg.SessionExpiryHours)*time.Hour, logger),
		SessionSecret: cfg.SessionSecret,
		CORSOrigins:   cfg.CORSOrigins,
		Logger:        logger,
		DB:            db,
	})
	printRoutes(r)

	logger.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
