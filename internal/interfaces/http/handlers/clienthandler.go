package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appclient "github.com/opsdesk-inc/opsdesk/internal/application/client"
	"github.com/opsdesk-inc/opsdesk/internal/application/client/dto"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

type ClientHandler struct {
	clientService *appclient.Service
	logger        logger.Interface
}

func NewClientHandler(clientService *appclient.Service) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
		logger:        logger.NewLogger(),
	}
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create client request", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.clientService.CreateClient(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid client id")
		return
	}

	result, err := h.clientService.GetClient(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid client id")
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.clientService.UpdateClient(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "client updated", result)
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid client id")
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	var req dto.ListClientsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	pagination := utils.ValidatePagination(req.Page, req.PageSize)
	req.Page = pagination.Page
	req.PageSize = pagination.PageSize

	clients, total, err := h.clientService.ListClients(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, clients, total, req.Page, req.PageSize)
}

func (h *ClientHandler) GetClientServices(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid client id")
		return
	}

	services, err := h.clientService.GetClientServices(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", services)
}
