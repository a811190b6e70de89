package routes

import (
	"log/slog"
	"net/http"

	"detailpro-backend/config"
	"detailpro-backend/controllers"
	"detailpro-backend/observability"
	"detailpro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Deps is everything the router needs, constructed in main and passed in.
type Deps struct {
	Services *controllers.ServiceController
	Catalog  *controllers.CatalogController
	Bookings *controllers.BookingController
	Admin    *controllers.AdminController

	SessionSecret string
	CORSOrigins   []string
	Logger        *slog.Logger
	DB            *gorm.DB
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger(deps.Logger))
	r.Use(observability.Metrics())

	r.GET("/healthz", healthz(deps.DB))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/services", deps.Services.GetServices)
		api.POST("/services", deps.Services.CreateService)

		api.GET("/products", deps.Catalog.GetProducts)
		api.GET("/social-links", deps.Catalog.GetSocialLinks)

		api.POST("/calculate-distance", deps.Bookings.CalculateDistance)
		api.GET("/bookings", deps.Bookings.GetBookings)
		api.POST("/bookings", deps.Bookings.CreateBooking)

		admin := api.Group("/admin")
		{
			admin.POST("/login", deps.Admin.Login)
			admin.POST("/logout", deps.Admin.Logout)

			admin.Use(utils.AdminAuthMiddleware(deps.SessionSecret))
			admin.GET("/bookings", deps.Admin.GetBookings)
			admin.PATCH("/bookings", deps.Admin.UpdateBooking)
			admin.GET("/stats", deps.Admin.GetStats)
		}
	}

	return r
}

func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.PingContext(c.Request.Context())
			}
			if err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
