package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aryan-Mangla/FastFood-business-management-system/config"
	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/store"
)

type PublicHandler struct {
	Inventory *store.Inventory
}

func (h *PublicHandler) GetSiteInfo(c *gin.Context) {
	c.JSON(http.StatusOK, config.AppConfig.Site)
}

func (h *PublicHandler) GetPublicConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"company_name":    config.AppConfig.Defaults.CompanyName,
		"company_logo":    config.AppConfig.Defaults.CompanyLogo,
		"company_address": config.AppConfig.Defaults.CompanyAddress,
		"company_phone":   config.AppConfig.Defaults.CompanyPhone,
	})
}

func (h *PublicHandler) ListPublicProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Inventory.Products())
}
