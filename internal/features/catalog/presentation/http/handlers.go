package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"promptcraft/backend/internal/features/catalog/domain"
)

// CatalogHandler serves the read-only catalog.
type CatalogHandler struct {
	catalog *domain.Catalog
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog *domain.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GetCatalogHandler returns purposes, styles and component categories.
func (h *CatalogHandler) GetCatalogHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"purposes":   h.catalog.Purposes(),
		"styles":     h.catalog.Styles(),
		"categories": h.catalog.Categories(),
	})
}

// SearchComponentsHandler filters components with the q query parameter.
func (h *CatalogHandler) SearchComponentsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.catalog.Search(c.Query("q"))})
}

// GetStatsHandler returns category and component counts.
func (h *CatalogHandler) GetStatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Stats())
}

func (h *CatalogHandler) Register(r gin.IRouter) {
	catalogGroup := r.Group("/catalog")
	{
		catalogGroup.GET("", h.GetCatalogHandler)
		catalogGroup.GET("/components", h.SearchComponentsHandler)
		catalogGroup.GET("/stats", h.GetStatsHandler)
	}
}
