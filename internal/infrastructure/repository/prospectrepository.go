package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/opsdesk-inc/opsdesk/internal/domain/prospect"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
	"github.com/opsdesk-inc/opsdesk/internal/shared/db"
)

type ProspectRepository struct {
	db *gorm.DB
}

func NewProspectRepository(db *gorm.DB) *ProspectRepository {
	return &ProspectRepository{db: db}
}

func (r *ProspectRepository) List(ctx context.Context) ([]*prospect.Prospect, error) {
	var prospectModels []models.ProspectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("probability DESC").Find(&prospectModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list prospects: %w", err)
	}

	return toProspectDomainList(prospectModels)
}

// FindByInterest filters in memory; the prospect table stays small and
// JSON containment queries differ across the supported databases.
func (r *ProspectRepository) FindByInterest(ctx context.Context, serviceType string) ([]*prospect.Prospect, error) {
	prospects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*prospect.Prospect, 0, len(prospects))
	for _, p := range prospects {
		if p.InterestedIn(serviceType) {
			matched = append(matched, p)
		}
	}

	return matched, nil
}

func toProspectDomainList(prospectModels []models.ProspectModel) ([]*prospect.Prospect, error) {
	prospects := make([]*prospect.Prospect, len(prospectModels))
	for i, model := range prospectModels {
		var interested []string
		if len(model.InterestedServices) > 0 {
			if err := json.Unmarshal(model.InterestedServices, &interested); err != nil {
				return nil, fmt.Errorf("malformed interested services for prospect %d: %w", model.ID, err)
			}
		}

		prospects[i] = &prospect.Prospect{
			ID:                 model.ID,
			Name:               model.Name,
			InterestedServices: interested,
			Probability:        model.Probability,
			Status:             model.Status,
			CreatedAt:          time.UnixMilli(model.CreatedAt),
		}
	}
	return prospects, nil
}
