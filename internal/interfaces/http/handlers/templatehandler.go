package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apptemplate "github.com/opsdesk-inc/opsdesk/internal/application/template"
	"github.com/opsdesk-inc/opsdesk/internal/application/template/dto"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

type TemplateHandler struct {
	templateService *apptemplate.Service
	logger          logger.Interface
}

func NewTemplateHandler(templateService *apptemplate.Service) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
		logger:          logger.NewLogger(),
	}
}

func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create template request", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.templateService.CreateTemplate(c.Request.Context(), req, currentUser(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid template id")
		return
	}

	result, err := h.templateService.GetTemplate(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid template id")
		return
	}

	var req dto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.templateService.UpdateTemplate(c.Request.Context(), id, req, currentUser(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "template updated", result)
}

func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid template id")
		return
	}

	if err := h.templateService.DeleteTemplate(c.Request.Context(), id, currentUser(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	var req dto.ListTemplatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	pagination := utils.ValidatePagination(req.Page, req.PageSize)
	req.Page = pagination.Page
	req.PageSize = pagination.PageSize

	templates, total, err := h.templateService.ListTemplates(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, templates, total, req.Page, req.PageSize)
}

// PreviewTemplate renders the stored markdown as sanitized HTML.
func (h *TemplateHandler) PreviewTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid template id")
		return
	}

	result, err := h.templateService.PreviewTemplate(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
