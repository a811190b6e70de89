// controllers/admin.go
package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"detailpro-backend/models"
	"detailpro-backend/services"
	"detailpro-backend/store"
	"detailpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminLoginInput defines the expected JSON structure for the admin login
type AdminLoginInput struct {
	Password string `json:"password" binding:"required"`
}

// UpdateBookingInput defines the expected JSON structure for updating a booking
type UpdateBookingInput struct {
	BookingID     string  `json:"bookingId" binding:"required"`
	Status        *string `json:"status"`
	InternalNotes *string `json:"internalNotes"`
}

var validStatuses = map[string]bool{
	models.BookingStatusPending:   true,
	models.BookingStatusConfirmed: true,
	models.BookingStatusCompleted: true,
}

// AdminController serves the admin dashboard: login, booking management and
// revenue stats. All routes except login sit behind the session middleware.
type AdminController struct {
	Store store.Store
	Stats *services.StatsService

	AdminPassword string
	SessionSecret string
	SessionExpiry time.Duration

	Logger *slog.Logger
}

func NewAdminController(st store.Store, stats *services.StatsService, adminPassword, sessionSecret string, sessionExpiry time.Duration, logger *slog.Logger) *AdminController {
	return &AdminController{
		Store:         st,
		Stats:         stats,
		AdminPassword: adminPassword,
		SessionSecret: sessionSecret,
		SessionExpiry: sessionExpiry,
		Logger:        logger,
	}
}

// Login trades the shared admin password for a signed session cookie.
func (ac *AdminController) Login(c *gin.Context) {
	var input AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Password is required")
		return
	}

	if !utils.CheckAdminPassword(input.Password, ac.AdminPassword) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, err := utils.GenerateAdminToken(ac.SessionSecret, ac.SessionExpiry)
	if err != nil {
		ac.Logger.Error("failed to issue admin session", "error", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.AdminSessionCookie, token, int(ac.SessionExpiry.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the session cookie.
func (ac *AdminController) Logout(c *gin.Context) {
	c.SetCookie(utils.AdminSessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetBookings lists bookings for the dashboard, optionally limited.
func (ac *AdminController) GetBookings(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	bookings, err := ac.Store.Bookings(c.Request.Context(), limit)
	if err != nil {
		ac.Logger.Error("failed to list bookings", "error", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateBooking changes a booking's status and internal notes. The first
// transition to completed stamps completedAt; the snapshot pricing fields are
// never touched.
func (ac *AdminController) UpdateBooking(c *gin.Context) {
	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	bookingID, err := uuid.Parse(input.BookingID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	booking, err := ac.Store.BookingByID(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
			return
		}
		ac.Logger.Error("failed to load booking", "booking_id", bookingID, "error", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	if input.Status != nil {
		if !validStatuses[*input.Status] {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
			return
		}
		booking.Status = *input.Status
		if booking.Status == models.BookingStatusCompleted && booking.CompletedAt == nil {
			now := time.Now()
			booking.CompletedAt = &now
		}
	}
	if input.InternalNotes != nil {
		booking.InternalNotes = *input.InternalNotes
	}

	if err := ac.Store.SaveBooking(c.Request.Context(), booking); err != nil {
		ac.Logger.Error("failed to save booking", "booking_id", bookingID, "error", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
}

// GetStats returns the dashboard stat block.
func (ac *AdminController) GetStats(c *gin.Context) {
	stats, err := ac.Stats.Overview(c.Request.Context())
	if err != nil {
		ac.Logger.Error("failed to compute stats", "error", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
