package mappers

import (
	"fmt"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/billing"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/billing/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
)

// QuoteMapper handles the conversion between Quote domain entities and persistence models.
// Items are carried separately because they live in their own table.
type QuoteMapper interface {
	ToModel(q *billing.Quote) *models.QuoteModel
	ItemsToModels(quoteID uint, items []billing.LineItem) []models.QuoteItemModel
	ToDomain(model *models.QuoteModel, itemModels []models.QuoteItemModel) (*billing.Quote, error)
}

type QuoteMapperImpl struct{}

func NewQuoteMapper() QuoteMapper {
	return &QuoteMapperImpl{}
}

func (m *QuoteMapperImpl) ToModel(q *billing.Quote) *models.QuoteModel {
	return &models.QuoteModel{
		ID:         q.ID(),
		Number:     q.Number(),
		ClientID:   q.ClientID(),
		Status:     q.Status().String(),
		Subtotal:   q.Subtotal(),
		TaxRate:    q.TaxRate(),
		Tax:        q.Tax(),
		Total:      q.Total(),
		ValidUntil: q.ValidUntil().UnixMilli(),
		CreatedAt:  q.CreatedAt().UnixMilli(),
		UpdatedAt:  q.UpdatedAt().UnixMilli(),
	}
}

func (m *QuoteMapperImpl) ItemsToModels(quoteID uint, items []billing.LineItem) []models.QuoteItemModel {
	out := make([]models.QuoteItemModel, len(items))
	for i, item := range items {
		out[i] = models.QuoteItemModel{
			QuoteID:     quoteID,
			ProductID:   item.ProductID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			CustomPrice: item.CustomPrice,
			Discount:    item.Discount,
			Total:       item.Total,
		}
	}
	return out
}

func (m *QuoteMapperImpl) ToDomain(model *models.QuoteModel, itemModels []models.QuoteItemModel) (*billing.Quote, error) {
	status, err := vo.NewQuoteStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("quote %s: %w", model.Number, err)
	}

	items := make([]billing.LineItem, len(itemModels))
	for i, im := range itemModels {
		items[i] = billing.LineItem{
			ProductID:   im.ProductID,
			Description: im.Description,
			Quantity:    im.Quantity,
			UnitPrice:   im.UnitPrice,
			CustomPrice: im.CustomPrice,
			Discount:    im.Discount,
			Total:       im.Total,
		}
	}

	return billing.ReconstructQuote(
		model.ID,
		model.Number,
		model.ClientID,
		status,
		model.Subtotal,
		model.TaxRate,
		model.Tax,
		model.Total,
		time.UnixMilli(model.ValidUntil),
		items,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
