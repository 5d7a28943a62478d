package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/domain/catalog"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

// CatalogHandler exposes the fixed product catalog used for quote line items.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", catalog.All())
}
