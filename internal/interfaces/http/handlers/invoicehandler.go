package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appbilling "github.com/opsdesk-inc/opsdesk/internal/application/billing"
	"github.com/opsdesk-inc/opsdesk/internal/application/billing/dto"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

type InvoiceHandler struct {
	invoiceService *appbilling.InvoiceService
	logger         logger.Interface
}

func NewInvoiceHandler(invoiceService *appbilling.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		logger:         logger.NewLogger(),
	}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create invoice request", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid invoice id")
		return
	}

	result, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var req dto.ListInvoicesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	pagination := utils.ValidatePagination(req.Page, req.PageSize)
	req.Page = pagination.Page
	req.PageSize = pagination.PageSize

	invoices, total, err := h.invoiceService.ListInvoices(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, invoices, total, req.Page, req.PageSize)
}
