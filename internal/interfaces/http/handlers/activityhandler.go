package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appactivity "github.com/opsdesk-inc/opsdesk/internal/application/activity"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

type ActivityHandler struct {
	activityService *appactivity.Service
	logger          logger.Interface
}

func NewActivityHandler(activityService *appactivity.Service) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		logger:          logger.NewLogger(),
	}
}

func (h *ActivityHandler) ListActivities(c *gin.Context) {
	var req appactivity.ListActivitiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	activities, err := h.activityService.ListActivities(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", activities)
}
