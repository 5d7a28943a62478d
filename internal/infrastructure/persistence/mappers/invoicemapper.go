package mappers

import (
	"fmt"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/billing"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/billing/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
)

// InvoiceMapper handles the conversion between Invoice domain entities and persistence models.
type InvoiceMapper interface {
	ToModel(i *billing.Invoice) *models.InvoiceModel
	ToDomain(model *models.InvoiceModel) (*billing.Invoice, error)
}

type InvoiceMapperImpl struct{}

func NewInvoiceMapper() InvoiceMapper {
	return &InvoiceMapperImpl{}
}

func (m *InvoiceMapperImpl) ToModel(i *billing.Invoice) *models.InvoiceModel {
	return &models.InvoiceModel{
		ID:        i.ID(),
		ClientID:  i.ClientID(),
		Amount:    i.Amount(),
		Type:      i.Type().String(),
		Status:    i.Status().String(),
		DueDate:   i.DueDate().UnixMilli(),
		CreatedAt: i.CreatedAt().UnixMilli(),
		UpdatedAt: i.UpdatedAt().UnixMilli(),
	}
}

func (m *InvoiceMapperImpl) ToDomain(model *models.InvoiceModel) (*billing.Invoice, error) {
	invType, err := vo.NewInvoiceType(model.Type)
	if err != nil {
		return nil, fmt.Errorf("invoice %d: %w", model.ID, err)
	}
	status, err := vo.NewInvoiceStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invoice %d: %w", model.ID, err)
	}

	return billing.ReconstructInvoice(
		model.ID,
		model.ClientID,
		model.Amount,
		invType,
		status,
		time.UnixMilli(model.DueDate),
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
