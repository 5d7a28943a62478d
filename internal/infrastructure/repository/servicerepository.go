package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/opsdesk-inc/opsdesk/internal/domain/service"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/mappers"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
	"github.com/opsdesk-inc/opsdesk/internal/shared/db"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

type ServiceRepository struct {
	db     *gorm.DB
	mapper mappers.ServiceMapper
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{
		db:     db,
		mapper: mappers.NewServiceMapper(),
	}
}

func (r *ServiceRepository) Save(ctx context.Context, s *service.Service) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save service: %w", err)
	}

	return s.SetID(model.ID)
}

func (r *ServiceRepository) Update(ctx context.Context, s *service.Service) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ServiceModel{}).
		Where("id = ?", model.ID).
		Select("client_id", "type", "capacity_limit", "current_usage", "cost_per_unit", "status", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update service: %w", result.Error)
	}

	return nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uint) (*service.Service, error) {
	var model models.ServiceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("service not found")
		}
		return nil, fmt.Errorf("failed to find service: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ServiceRepository) FindByClientID(ctx context.Context, clientID uint) ([]*service.Service, error) {
	var serviceModels []models.ServiceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&serviceModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find services: %w", err)
	}

	services := make([]*service.Service, len(serviceModels))
	for i, model := range serviceModels {
		s, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		services[i] = s
	}

	return services, nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ServiceModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("service not found")
	}
	return nil
}

func (r *ServiceRepository) List(ctx context.Context, filter service.Filter) ([]*service.Service, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ServiceModel{})

	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count services: %w", err)
	}

	query = query.Order("created_at DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var serviceModels []models.ServiceModel
	if err := query.Find(&serviceModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list services: %w", err)
	}

	services := make([]*service.Service, len(serviceModels))
	for i, model := range serviceModels {
		s, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		services[i] = s
	}

	return services, total, nil
}

// AllocationRepository persists the append-only allocation log. Records
// are simple enough to map inline.
type AllocationRepository struct {
	db *gorm.DB
}

func NewAllocationRepository(db *gorm.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

func (r *AllocationRepository) Save(ctx context.Context, a *service.Allocation) error {
	model := &models.AllocationModel{
		ServiceID:  a.ServiceID,
		ClientID:   a.ClientID,
		Allocated:  a.Allocated,
		Used:       a.Used,
		Cost:       a.Cost,
		RecordedAt: a.RecordedAt.UnixMilli(),
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save allocation: %w", err)
	}

	a.ID = model.ID
	return nil
}

func (r *AllocationRepository) FindRecentByServiceID(ctx context.Context, serviceID uint, limit int) ([]*service.Allocation, error) {
	var allocationModels []models.AllocationModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("service_id = ?", serviceID).
		Order("recorded_at DESC").
		Limit(limit).
		Find(&allocationModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find allocations: %w", err)
	}

	allocations := make([]*service.Allocation, len(allocationModels))
	for i, model := range allocationModels {
		allocations[i] = &service.Allocation{
			ID:         model.ID,
			ServiceID:  model.ServiceID,
			ClientID:   model.ClientID,
			Allocated:  model.Allocated,
			Used:       model.Used,
			Cost:       model.Cost,
			RecordedAt: time.UnixMilli(model.RecordedAt),
		}
	}

	return allocations, nil
}

// MetricRepository persists the append-only metric log.
type MetricRepository struct {
	db *gorm.DB
}

func NewMetricRepository(db *gorm.DB) *MetricRepository {
	return &MetricRepository{db: db}
}

func (r *MetricRepository) Save(ctx context.Context, m *service.Metric) error {
	model := &models.MetricModel{
		ServiceID:    m.ServiceID,
		CPUUsage:     m.CPUUsage,
		MemoryUsage:  m.MemoryUsage,
		StorageUsage: m.StorageUsage,
		Uptime:       m.Uptime,
		RecordedAt:   m.RecordedAt.UnixMilli(),
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save metric: %w", err)
	}

	m.ID = model.ID
	return nil
}

func (r *MetricRepository) FindRecentByServiceID(ctx context.Context, serviceID uint, limit int) ([]*service.Metric, error) {
	var metricModels []models.MetricModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("service_id = ?", serviceID).
		Order("recorded_at DESC").
		Limit(limit).
		Find(&metricModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find metrics: %w", err)
	}

	metrics := make([]*service.Metric, len(metricModels))
	for i, model := range metricModels {
		metrics[i] = &service.Metric{
			ID:           model.ID,
			ServiceID:    model.ServiceID,
			CPUUsage:     model.CPUUsage,
			MemoryUsage:  model.MemoryUsage,
			StorageUsage: model.StorageUsage,
			Uptime:       model.Uptime,
			RecordedAt:   time.UnixMilli(model.RecordedAt),
		}
	}

	return metrics, nil
}
