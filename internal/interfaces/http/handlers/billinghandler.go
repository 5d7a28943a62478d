package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appbilling "github.com/opsdesk-inc/opsdesk/internal/application/billing"
	"github.com/opsdesk-inc/opsdesk/internal/application/billing/dto"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

// BillingHandler serves the aggregated revenue dashboard.
type BillingHandler struct {
	statsService *appbilling.StatsService
	logger       logger.Interface
}

func NewBillingHandler(statsService *appbilling.StatsService) *BillingHandler {
	return &BillingHandler{
		statsService: statsService,
		logger:       logger.NewLogger(),
	}
}

func (h *BillingHandler) GetStats(c *gin.Context) {
	var req dto.StatsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.statsService.GetStats(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
