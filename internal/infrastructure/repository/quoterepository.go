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

type QuoteRepository struct {
	db     *gorm.DB
	mapper mappers.QuoteMapper
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{
		db:     db,
		mapper: mappers.NewQuoteMapper(),
	}
}

func (r *QuoteRepository) Save(ctx context.Context, q *billing.Quote) error {
	model := r.mapper.ToModel(q)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("quote number already exists")
		}
		return fmt.Errorf("failed to save quote: %w", err)
	}

	if err := q.SetID(model.ID); err != nil {
		return err
	}

	itemModels := r.mapper.ItemsToModels(model.ID, q.Items())
	if len(itemModels) > 0 {
		if err := tx.Create(&itemModels).Error; err != nil {
			return fmt.Errorf("failed to save quote items: %w", err)
		}
	}

	return nil
}

// Update writes the quote header and replaces its items wholesale. Items are
// deleted and reinserted; callers wrap this in a transaction so the swap is
// never observable partially.
func (r *QuoteRepository) Update(ctx context.Context, q *billing.Quote) error {
	model := r.mapper.ToModel(q)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.QuoteModel{}).
		Where("id = ?", model.ID).
		Select("client_id", "status", "subtotal", "tax_rate", "tax", "total", "valid_until", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update quote: %w", result.Error)
	}

	if err := tx.Where("quote_id = ?", model.ID).Delete(&models.QuoteItemModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear quote items: %w", err)
	}

	itemModels := r.mapper.ItemsToModels(model.ID, q.Items())
	if len(itemModels) > 0 {
		if err := tx.Create(&itemModels).Error; err != nil {
			return fmt.Errorf("failed to save quote items: %w", err)
		}
	}

	return nil
}

func (r *QuoteRepository) FindByNumber(ctx context.Context, number string) (*billing.Quote, error) {
	var model models.QuoteModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("number = ?", number).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("quote not found")
		}
		return nil, fmt.Errorf("failed to find quote: %w", err)
	}

	itemModels, err := r.findItems(tx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, itemModels)
}

func (r *QuoteRepository) Delete(ctx context.Context, number string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.QuoteModel
	if err := tx.Where("number = ?", number).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NewNotFoundError("quote not found")
		}
		return fmt.Errorf("failed to find quote: %w", err)
	}

	if err := tx.Where("quote_id = ?", model.ID).Delete(&models.QuoteItemModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete quote items: %w", err)
	}

	if err := tx.Delete(&models.QuoteModel{}, model.ID).Error; err != nil {
		return fmt.Errorf("failed to delete quote: %w", err)
	}

	return nil
}

func (r *QuoteRepository) List(ctx context.Context, filter billing.QuoteFilter) ([]*billing.Quote, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.QuoteModel{})

	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count quotes: %w", err)
	}

	query = query.Order("created_at DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var quoteModels []models.QuoteModel
	if err := query.Find(&quoteModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list quotes: %w", err)
	}

	quotes, err := r.toDomainList(tx, quoteModels)
	if err != nil {
		return nil, 0, err
	}

	return quotes, total, nil
}

func (r *QuoteRepository) FindRecentByClientID(ctx context.Context, clientID uint, limit int) ([]*billing.Quote, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var quoteModels []models.QuoteModel
	if err := tx.
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Limit(limit).
		Find(&quoteModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find quotes: %w", err)
	}

	return r.toDomainList(tx, quoteModels)
}

func (r *QuoteRepository) findItems(tx *gorm.DB, quoteID uint) ([]models.QuoteItemModel, error) {
	var itemModels []models.QuoteItemModel
	if err := tx.
		Where("quote_id = ?", quoteID).
		Order("id ASC").
		Find(&itemModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find quote items: %w", err)
	}
	return itemModels, nil
}

func (r *QuoteRepository) toDomainList(tx *gorm.DB, quoteModels []models.QuoteModel) ([]*billing.Quote, error) {
	quotes := make([]*billing.Quote, len(quoteModels))
	for i, model := range quoteModels {
		itemModels, err := r.findItems(tx, model.ID)
		if err != nil {
			return nil, err
		}
		q, err := r.mapper.ToDomain(&model, itemModels)
		if err != nil {
			return nil, err
		}
		quotes[i] = q
	}
	return quotes, nil
}
