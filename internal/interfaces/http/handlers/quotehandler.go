package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	appbilling "github.com/opsdesk-inc/opsdesk/internal/application/billing"
	"github.com/opsdesk-inc/opsdesk/internal/application/billing/dto"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

type QuoteHandler struct {
	quoteService *appbilling.QuoteService
	logger       logger.Interface
}

func NewQuoteHandler(quoteService *appbilling.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
		logger:       logger.NewLogger(),
	}
}

func quoteNumberParam(c *gin.Context) (string, bool) {
	number := strings.TrimSpace(c.Param("number"))
	return number, number != ""
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create quote request", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.quoteService.CreateQuote(c.Request.Context(), req, currentUser(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	number, ok := quoteNumberParam(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid quote number")
		return
	}

	result, err := h.quoteService.GetQuote(c.Request.Context(), number)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	number, ok := quoteNumberParam(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid quote number")
		return
	}

	var req dto.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.quoteService.UpdateQuote(c.Request.Context(), number, req, currentUser(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "quote updated", result)
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	number, ok := quoteNumberParam(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid quote number")
		return
	}

	if err := h.quoteService.DeleteQuote(c.Request.Context(), number, currentUser(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	var req dto.ListQuotesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	pagination := utils.ValidatePagination(req.Page, req.PageSize)
	req.Page = pagination.Page
	req.PageSize = pagination.PageSize

	quotes, total, err := h.quoteService.ListQuotes(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, quotes, total, req.Page, req.PageSize)
}

// ChangeStatus moves a quote along the draft/sent/accepted/expired lifecycle.
func (h *QuoteHandler) ChangeStatus(c *gin.Context) {
	number, ok := quoteNumberParam(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid quote number")
		return
	}

	var req dto.ChangeQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.quoteService.ChangeStatus(c.Request.Context(), number, req, currentUser(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "quote status updated", result)
}

// DownloadPDF streams the rendered quote document.
func (h *QuoteHandler) DownloadPDF(c *gin.Context) {
	number, ok := quoteNumberParam(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid quote number")
		return
	}

	pdf, err := h.quoteService.GeneratePDF(c.Request.Context(), number)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=quote-%s.pdf", number))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// SendQuote emails the quote PDF to the client and marks drafts as sent.
func (h *QuoteHandler) SendQuote(c *gin.Context) {
	number, ok := quoteNumberParam(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid quote number")
		return
	}

	// Body is optional; without it the quote goes to the client's email on file.
	var req dto.SendQuoteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
			return
		}
	}

	result, err := h.quoteService.SendQuote(c.Request.Context(), number, req, currentUser(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "quote sent", result)
}
