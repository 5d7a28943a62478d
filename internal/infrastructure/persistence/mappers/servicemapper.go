package mappers

import (
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/service"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
)

// ServiceMapper handles the conversion between Service domain entities and persistence models.
type ServiceMapper interface {
	ToModel(s *service.Service) *models.ServiceModel
	ToDomain(model *models.ServiceModel) (*service.Service, error)
}

type ServiceMapperImpl struct{}

func NewServiceMapper() ServiceMapper {
	return &ServiceMapperImpl{}
}

func (m *ServiceMapperImpl) ToModel(s *service.Service) *models.ServiceModel {
	return &models.ServiceModel{
		ID:            s.ID(),
		ClientID:      s.ClientID(),
		Type:          s.Type(),
		CapacityLimit: s.CapacityLimit(),
		CurrentUsage:  s.CurrentUsage(),
		CostPerUnit:   s.CostPerUnit(),
		Status:        s.Status().String(),
		CreatedAt:     s.CreatedAt().UnixMilli(),
		UpdatedAt:     s.UpdatedAt().UnixMilli(),
	}
}

func (m *ServiceMapperImpl) ToDomain(model *models.ServiceModel) (*service.Service, error) {
	status, err := service.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return service.ReconstructService(
		model.ID,
		model.ClientID,
		model.Type,
		model.CapacityLimit,
		model.CurrentUsage,
		model.CostPerUnit,
		status,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
