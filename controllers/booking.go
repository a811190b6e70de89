// controllers/booking.go
package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"detailpro-backend/observability"
	"detailpro-backend/services"
	"detailpro-backend/store"
	"detailpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateBookingInput defines the expected JSON structure for creating a booking
type CreateBookingInput struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Address   string `json:"address" binding:"required"`
	Postcode  string `json:"postcode" binding:"required"`
	ServiceID string `json:"serviceId" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

// CalculateDistanceInput defines the expected JSON structure for a price quote
type CalculateDistanceInput struct {
	Postcode  string `json:"postcode" binding:"required"`
	ServiceID string `json:"serviceId" binding:"required"`
}

// BookingController serves the public booking flow.
type BookingController struct {
	Bookings *services.BookingService
	Store    store.Store
	Logger   *slog.Logger
}

func NewBookingController(bookings *services.BookingService, st store.Store, logger *slog.Logger) *BookingController {
	return &BookingController{Bookings: bookings, Store: st, Logger: logger}
}

// GetBookings returns all bookings, newest scheduled first, with customer and
// service attached.
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.Store.Bookings(c.Request.Context(), 0)
	if err != nil {
		bc.Logger.Error("failed to list bookings", "error", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking runs the booking orchestrator.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	serviceID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	booking, err := bc.Bookings.Create(c.Request.Context(), services.CreateBookingInput{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		Postcode:  input.Postcode,
		ServiceID: serviceID,
		Date:      date,
		Time:      input.Time,
		Notes:     input.Notes,
	})
	if err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
			return
		}
		bc.Logger.Error("failed to create booking", "email", input.Email, "error", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	observability.BookingsCreated.Inc()
	c.JSON(http.StatusCreated, gin.H{"success": true, "booking": booking})
}

// CalculateDistance quotes a service for a postcode without creating anything.
func (bc *BookingController) CalculateDistance(c *gin.Context) {
	var input CalculateDistanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Postcode and service ID are required")
		return
	}

	serviceID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	quote, coords, err := bc.Bookings.Quote(c.Request.Context(), serviceID, input.Postcode)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrServiceNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		case errors.Is(err, services.ErrPostcodeNotFound):
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid postcode")
		default:
			bc.Logger.Error("failed to calculate distance", "postcode", input.Postcode, "error", err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to calculate distance")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"pricing":     quote,
		"coordinates": coords,
	})
}
