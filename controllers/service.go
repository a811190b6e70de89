// controllers/service.go
package controllers

import (
	"log/slog"
	"net/http"

	"detailpro-backend/models"
	"detailpro-backend/store"
	"detailpro-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"basePrice" binding:"required,min=0"`
	Duration    int     `json:"duration" binding:"min=0"` // in minutes
	Category    string  `json:"category"`
	IsActive    *bool   `json:"isActive"`
	Order       *int    `json:"order"`
}

// ServiceController serves the public service catalog.
type ServiceController struct {
	Store  store.Store
	Logger *slog.Logger
}

func NewServiceController(st store.Store, logger *slog.Logger) *ServiceController {
	return &ServiceController{Store: st, Logger: logger}
}

// GetServices returns the active services ordered by display order.
func (sc *ServiceController) GetServices(c *gin.Context) {
	services, err := sc.Store.ActiveServices(c.Request.Context())
	if err != nil {
		sc.Logger.Error("failed to list services", "error", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateService creates a new detailing service.
func (sc *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.Service{
		Name:        input.Name,
		Description: input.Description,
		BasePrice:   input.BasePrice,
		Duration:    input.Duration,
		Category:    input.Category,
		IsActive:    true,
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}
	if input.Order != nil {
		service.Order = *input.Order
	}

	if err := sc.Store.CreateService(c.Request.Context(), &service); err != nil {
		sc.Logger.Error("failed to create service", "name", input.Name, "error", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "service": service})
}
