package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/opsdesk-inc/opsdesk/internal/domain/activity"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
	"github.com/opsdesk-inc/opsdesk/internal/shared/db"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Save(ctx context.Context, a *activity.Activity) error {
	model := &models.ActivityModel{
		Type:        a.Type,
		Description: a.Description,
		User:        a.User,
		Target:      a.Target,
		Status:      a.Status,
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save activity: %w", err)
	}

	a.ID = model.ID
	a.CreatedAt = time.UnixMilli(model.CreatedAt)
	return nil
}

func (r *ActivityRepository) List(ctx context.Context, filter activity.Filter) ([]*activity.Activity, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ActivityModel{})

	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.User != nil {
		query = query.Where("user = ?", *filter.User)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var activityModels []models.ActivityModel
	if err := query.Find(&activityModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	activities := make([]*activity.Activity, len(activityModels))
	for i, model := range activityModels {
		activities[i] = &activity.Activity{
			ID:          model.ID,
			Type:        model.Type,
			Description: model.Description,
			User:        model.User,
			Target:      model.Target,
			Status:      model.Status,
			CreatedAt:   time.UnixMilli(model.CreatedAt),
		}
	}

	return activities, nil
}
