// Package billing orchestrates quoting, invoicing and the billing
// dashboard aggregates.
package billing

import (
	"context"
	"fmt"

	"github.com/opsdesk-inc/opsdesk/internal/application/billing/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/activity"
	domainbilling "github.com/opsdesk-inc/opsdesk/internal/domain/billing"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/billing/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/domain/catalog"
	domainclient "github.com/opsdesk-inc/opsdesk/internal/domain/client"
	"github.com/opsdesk-inc/opsdesk/internal/shared/db"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

// QuotePDFGenerator renders a quote document for download or delivery.
type QuotePDFGenerator interface {
	Generate(q *domainbilling.Quote, c *domainclient.Client) ([]byte, error)
}

// QuoteSender delivers a rendered quote to a recipient.
type QuoteSender interface {
	SendQuote(to, clientName, quoteNumber string, pdf []byte) error
}

type QuoteService struct {
	quoteRepo    domainbilling.QuoteRepository
	clientRepo   domainclient.Repository
	activityRepo activity.Repository
	pdfGenerator QuotePDFGenerator
	sender       QuoteSender
	txManager    *db.TransactionManager
	logger       logger.Interface
}

func NewQuoteService(
	quoteRepo domainbilling.QuoteRepository,
	clientRepo domainclient.Repository,
	activityRepo activity.Repository,
	pdfGenerator QuotePDFGenerator,
	sender QuoteSender,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *QuoteService {
	return &QuoteService{
		quoteRepo:    quoteRepo,
		clientRepo:   clientRepo,
		activityRepo: activityRepo,
		pdfGenerator: pdfGenerator,
		sender:       sender,
		txManager:    txManager,
		logger:       logger,
	}
}

func (s *QuoteService) CreateQuote(ctx context.Context, req dto.CreateQuoteRequest, actor string) (*dto.QuoteDTO, error) {
	if _, err := s.clientRepo.FindByID(ctx, req.ClientID); err != nil {
		return nil, err
	}

	validUntil, err := utils.ParseDate(req.ValidUntil)
	if err != nil {
		return nil, errors.NewValidationError("valid_until must be a YYYY-MM-DD date")
	}

	q, err := domainbilling.NewQuote(req.Number, req.ClientID, req.TaxRate, validUntil)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	items, err := resolveLineItems(req.Items)
	if err != nil {
		return nil, err
	}
	if err := q.ReplaceItems(items, req.TaxRate); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return s.quoteRepo.Save(txCtx, q)
	})
	if err != nil {
		s.logger.Errorw("failed to save quote", "number", req.Number, "error", err)
		return nil, err
	}

	s.recordActivity(ctx, actor, fmt.Sprintf("created quote %s", q.Number()), q.Number())
	s.logger.Infow("quote created", "number", q.Number(), "client_id", q.ClientID(), "total", q.Total())

	return dto.ToQuoteDTO(q), nil
}

func (s *QuoteService) GetQuote(ctx context.Context, number string) (*dto.QuoteDTO, error) {
	q, err := s.quoteRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return dto.ToQuoteDTO(q), nil
}

// UpdateQuote recomputes all line totals and replaces the stored items
// wholesale inside one transaction.
func (s *QuoteService) UpdateQuote(ctx context.Context, number string, req dto.UpdateQuoteRequest, actor string) (*dto.QuoteDTO, error) {
	q, err := s.quoteRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	taxRate := q.TaxRate()
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}

	if req.ValidUntil != "" {
		validUntil, err := utils.ParseDate(req.ValidUntil)
		if err != nil {
			return nil, errors.NewValidationError("valid_until must be a YYYY-MM-DD date")
		}
		q.SetValidUntil(validUntil)
	}

	items, err := resolveLineItems(req.Items)
	if err != nil {
		return nil, err
	}
	if err := q.ReplaceItems(items, taxRate); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return s.quoteRepo.Update(txCtx, q)
	})
	if err != nil {
		s.logger.Errorw("failed to update quote", "number", number, "error", err)
		return nil, err
	}

	s.recordActivity(ctx, actor, fmt.Sprintf("updated quote %s", number), number)
	return dto.ToQuoteDTO(q), nil
}

func (s *QuoteService) DeleteQuote(ctx context.Context, number string, actor string) error {
	err := s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return s.quoteRepo.Delete(txCtx, number)
	})
	if err != nil {
		return err
	}

	s.recordActivity(ctx, actor, fmt.Sprintf("deleted quote %s", number), number)
	s.logger.Infow("quote deleted", "number", number)
	return nil
}

func (s *QuoteService) ListQuotes(ctx context.Context, req dto.ListQuotesRequest) ([]*dto.QuoteDTO, int64, error) {
	filter := domainbilling.QuoteFilter{
		ClientID: req.ClientID,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.Status != "" {
		status, err := vo.NewQuoteStatus(req.Status)
		if err != nil {
			return nil, 0, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	quotes, total, err := s.quoteRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return dto.ToQuoteDTOs(quotes), total, nil
}

func (s *QuoteService) ChangeStatus(ctx context.Context, number string, req dto.ChangeQuoteStatusRequest, actor string) (*dto.QuoteDTO, error) {
	q, err := s.quoteRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	status, err := vo.NewQuoteStatus(req.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := q.ChangeStatus(status); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	err = s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return s.quoteRepo.Update(txCtx, q)
	})
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, actor, fmt.Sprintf("quote %s status changed to %s", number, status), number)
	return dto.ToQuoteDTO(q), nil
}

// GeneratePDF renders the quote document for download.
func (s *QuoteService) GeneratePDF(ctx context.Context, number string) ([]byte, error) {
	q, err := s.quoteRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	c, err := s.clientRepo.FindByID(ctx, q.ClientID())
	if err != nil {
		return nil, err
	}

	pdf, err := s.pdfGenerator.Generate(q, c)
	if err != nil {
		s.logger.Errorw("failed to render quote pdf", "number", number, "error", err)
		return nil, errors.NewInternalError("failed to render quote document")
	}
	return pdf, nil
}

// SendQuote emails the PDF to the client and moves a draft to sent.
func (s *QuoteService) SendQuote(ctx context.Context, number string, req dto.SendQuoteRequest, actor string) (*dto.QuoteDTO, error) {
	q, err := s.quoteRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	c, err := s.clientRepo.FindByID(ctx, q.ClientID())
	if err != nil {
		return nil, err
	}

	recipient := req.Email
	if recipient == "" {
		recipient = c.Email()
	}
	if recipient == "" {
		return nil, errors.NewValidationError("client has no email on file and no recipient was provided")
	}

	pdf, err := s.pdfGenerator.Generate(q, c)
	if err != nil {
		s.logger.Errorw("failed to render quote pdf", "number", number, "error", err)
		return nil, errors.NewInternalError("failed to render quote document")
	}

	if err := s.sender.SendQuote(recipient, c.Name(), q.Number(), pdf); err != nil {
		s.logger.Errorw("failed to send quote", "number", number, "recipient", recipient, "error", err)
		return nil, errors.NewInternalError("failed to send quote")
	}

	if q.Status().IsDraft() {
		if err := q.ChangeStatus(vo.QuoteStatusSent); err != nil {
			return nil, errors.NewConflictError(err.Error())
		}
		err = s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			return s.quoteRepo.Update(txCtx, q)
		})
		if err != nil {
			return nil, err
		}
	}

	s.recordActivity(ctx, actor, fmt.Sprintf("sent quote %s to %s", number, recipient), number)
	s.logger.Infow("quote sent", "number", number, "recipient", recipient)
	return dto.ToQuoteDTO(q), nil
}

// resolveLineItems prices each requested item against the catalog. The
// totals are derived later by the quote entity.
func resolveLineItems(items []dto.QuoteItemRequest) ([]domainbilling.LineItem, error) {
	resolved := make([]domainbilling.LineItem, len(items))
	for i, item := range items {
		product, ok := catalog.FindByID(item.ProductID)
		if !ok && item.CustomPrice <= 0 {
			return nil, errors.NewValidationError(fmt.Sprintf("unknown product %d and no custom price given", item.ProductID))
		}

		description := item.Description
		if description == "" {
			description = product.Name
		}

		resolved[i] = domainbilling.LineItem{
			ProductID:   item.ProductID,
			Description: description,
			Quantity:    item.Quantity,
			UnitPrice:   product.UnitPrice,
			CustomPrice: item.CustomPrice,
			Discount:    item.Discount,
		}
	}
	return resolved, nil
}

func (s *QuoteService) recordActivity(ctx context.Context, actor, description, target string) {
	entry := activity.New(activity.TypeQuote, description, actor, target)
	if err := s.activityRepo.Save(ctx, entry); err != nil {
		s.logger.Warnw("failed to record activity", "description", description, "error", err)
	}
}
