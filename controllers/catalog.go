package controllers

import (
	"log/slog"
	"net/http"

	"detailpro-backend/store"
	"detailpro-backend/utils"

	"github.com/gin-gonic/gin"
)

// CatalogController serves the marketing-page extras: affiliate products and
// social links.
type CatalogController struct {
	Store  store.Store
	Logger *slog.Logger
}

func NewCatalogController(st store.Store, logger *slog.Logger) *CatalogController {
	return &CatalogController{Store: st, Logger: logger}
}

func (cc *CatalogController) GetProducts(c *gin.Context) {
	products, err := cc.Store.ActiveProducts(c.Request.Context())
	if err != nil {
		cc.Logger.Error("failed to list products", "error", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (cc *CatalogController) GetSocialLinks(c *gin.Context) {
	links, err := cc.Store.SocialLinks(c.Request.Context())
	if err != nil {
		cc.Logger.Error("failed to list social links", "error", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch social links")
		return
	}
	c.JSON(http.StatusOK, links)
}
