package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appservice "github.com/opsdesk-inc/opsdesk/internal/application/service"
	"github.com/opsdesk-inc/opsdesk/internal/application/service/dto"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

type ServiceHandler struct {
	serviceService *appservice.Service
	logger         logger.Interface
}

func NewServiceHandler(serviceService *appservice.Service) *ServiceHandler {
	return &ServiceHandler{
		serviceService: serviceService,
		logger:         logger.NewLogger(),
	}
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create service request", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.serviceService.CreateService(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid service id")
		return
	}

	result, err := h.serviceService.GetService(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ServiceHandler) UpdateService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid service id")
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.serviceService.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "service updated", result)
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid service id")
		return
	}

	if err := h.serviceService.DeleteService(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *ServiceHandler) ListServices(c *gin.Context) {
	var req dto.ListServicesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	pagination := utils.ValidatePagination(req.Page, req.PageSize)
	req.Page = pagination.Page
	req.PageSize = pagination.PageSize

	services, total, err := h.serviceService.ListServices(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, services, total, req.Page, req.PageSize)
}

// GetResourceReport returns the capacity report with recommendations.
func (h *ServiceHandler) GetResourceReport(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid service id")
		return
	}

	report, err := h.serviceService.GetResourceReport(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", report)
}

// RecordAllocation appends an allocation and updates current usage.
func (h *ServiceHandler) RecordAllocation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid service id")
		return
	}

	var req dto.RecordAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.serviceService.RecordAllocation(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *ServiceHandler) RecordMetric(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid service id")
		return
	}

	var req dto.RecordMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.serviceService.RecordMetric(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *ServiceHandler) ListMetrics(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid service id")
		return
	}

	limit := utils.ParseQueryInt(c, "limit", 0)

	metrics, err := h.serviceService.ListMetrics(c.Request.Context(), id, limit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", metrics)
}
