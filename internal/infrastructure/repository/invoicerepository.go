package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/opsdesk-inc/opsdesk/internal/domain/billing"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/mappers"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
	"github.com/opsdesk-inc/opsdesk/internal/shared/db"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

type InvoiceRepository struct {
	db     *gorm.DB
	mapper mappers.InvoiceMapper
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{
		db:     db,
		mapper: mappers.NewInvoiceMapper(),
	}
}

func (r *InvoiceRepository) Save(ctx context.Context, i *billing.Invoice) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save invoice: %w", err)
	}

	return i.SetID(model.ID)
}

func (r *InvoiceRepository) Update(ctx context.Context, i *billing.Invoice) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InvoiceModel{}).
		Where("id = ?", model.ID).
		Select("client_id", "amount", "type", "status", "due_date", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update invoice: %w", result.Error)
	}

	return nil
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id uint) (*billing.Invoice, error) {
	var model models.InvoiceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("invoice not found")
		}
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *InvoiceRepository) List(ctx context.Context, filter billing.InvoiceFilter) ([]*billing.Invoice, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.InvoiceModel{})

	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	query = query.Order("created_at DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var invoiceModels []models.InvoiceModel
	if err := query.Find(&invoiceModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}

	invoices, err := r.toDomainList(invoiceModels)
	if err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

func (r *InvoiceRepository) FindRecentByClientID(ctx context.Context, clientID uint, limit int) ([]*billing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Limit(limit).
		Find(&invoiceModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find invoices: %w", err)
	}

	return r.toDomainList(invoiceModels)
}

func (r *InvoiceRepository) toDomainList(invoiceModels []models.InvoiceModel) ([]*billing.Invoice, error) {
	invoices := make([]*billing.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		inv, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		invoices[i] = inv
	}
	return invoices, nil
}
