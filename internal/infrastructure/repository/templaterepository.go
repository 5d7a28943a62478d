package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/opsdesk-inc/opsdesk/internal/domain/template"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
	"github.com/opsdesk-inc/opsdesk/internal/shared/db"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

// TemplateRepository maps inline; the record is flat enough that a
// dedicated mapper adds nothing.
type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Save(ctx context.Context, t *template.Template) error {
	model := &models.TemplateModel{
		Name:    t.Name,
		Author:  t.Author,
		Content: t.Content,
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}

	t.ID = model.ID
	t.CreatedAt = time.UnixMilli(model.CreatedAt)
	t.UpdatedAt = time.UnixMilli(model.UpdatedAt)
	return nil
}

func (r *TemplateRepository) Update(ctx context.Context, t *template.Template) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TemplateModel{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"name":       t.Name,
			"author":     t.Author,
			"content":    t.Content,
			"updated_at": time.Now().UnixMilli(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update template: %w", result.Error)
	}

	return nil
}

func (r *TemplateRepository) FindByID(ctx context.Context, id uint) (*template.Template, error) {
	var model models.TemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("template not found")
		}
		return nil, fmt.Errorf("failed to find template: %w", err)
	}

	return toTemplateDomain(&model), nil
}

func (r *TemplateRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TemplateModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete template: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("template not found")
	}
	return nil
}

func (r *TemplateRepository) List(ctx context.Context, filter template.Filter) ([]*template.Template, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TemplateModel{})

	if filter.Author != nil {
		query = query.Where("author = ?", *filter.Author)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count templates: %w", err)
	}

	query = query.Order("updated_at DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var templateModels []models.TemplateModel
	if err := query.Find(&templateModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list templates: %w", err)
	}

	templates := make([]*template.Template, len(templateModels))
	for i, model := range templateModels {
		templates[i] = toTemplateDomain(&model)
	}

	return templates, total, nil
}

func toTemplateDomain(model *models.TemplateModel) *template.Template {
	return &template.Template{
		ID:        model.ID,
		Name:      model.Name,
		Author:    model.Author,
		Content:   model.Content,
		CreatedAt: time.UnixMilli(model.CreatedAt),
		UpdatedAt: time.UnixMilli(model.UpdatedAt),
	}
}
