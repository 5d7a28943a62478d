package billing

import (
	"context"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/application/billing/dto"
	domainbilling "github.com/opsdesk-inc/opsdesk/internal/domain/billing"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/billing/valueobjects"
	domainclient "github.com/opsdesk-inc/opsdesk/internal/domain/client"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

type InvoiceService struct {
	invoiceRepo domainbilling.InvoiceRepository
	clientRepo  domainclient.Repository
	logger      logger.Interface
}

func NewInvoiceService(
	invoiceRepo domainbilling.InvoiceRepository,
	clientRepo domainclient.Repository,
	logger logger.Interface,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		logger:      logger,
	}
}

func (s *InvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceDTO, error) {
	if _, err := s.clientRepo.FindByID(ctx, req.ClientID); err != nil {
		return nil, err
	}

	invType, err := vo.NewInvoiceType(req.Type)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	dueDate, err := utils.ParseDate(req.DueDate)
	if err != nil {
		return nil, errors.NewValidationError("due_date must be a YYYY-MM-DD date")
	}

	inv, err := domainbilling.NewInvoice(req.ClientID, req.Amount, invType, dueDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if req.Status != "" {
		status, err := vo.NewInvoiceStatus(req.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := inv.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := s.invoiceRepo.Save(ctx, inv); err != nil {
		s.logger.Errorw("failed to save invoice", "client_id", req.ClientID, "error", err)
		return nil, err
	}

	s.logger.Infow("invoice created", "invoice_id", inv.ID(), "client_id", inv.ClientID(), "amount", inv.Amount())
	return dto.ToInvoiceDTO(inv, time.Now()), nil
}

func (s *InvoiceService) GetInvoice(ctx context.Context, id uint) (*dto.InvoiceDTO, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToInvoiceDTO(inv, time.Now()), nil
}

func (s *InvoiceService) ListInvoices(ctx context.Context, req dto.ListInvoicesRequest) ([]*dto.InvoiceDTO, int64, error) {
	filter := domainbilling.InvoiceFilter{
		ClientID: req.ClientID,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.Status != "" {
		status, err := vo.NewInvoiceStatus(req.Status)
		if err != nil {
			return nil, 0, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if req.Type != "" {
		invType, err := vo.NewInvoiceType(req.Type)
		if err != nil {
			return nil, 0, errors.NewValidationError(err.Error())
		}
		filter.Type = &invType
	}

	invoices, total, err := s.invoiceRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return dto.ToInvoiceDTOs(invoices, time.Now()), total, nil
}
