// Package service orchestrates managed service lifecycle, resource
// allocation bookkeeping and health metrics.
package service

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/application/service/dto"
	domainclient "github.com/opsdesk-inc/opsdesk/internal/domain/client"
	"github.com/opsdesk-inc/opsdesk/internal/domain/prospect"
	domainservice "github.com/opsdesk-inc/opsdesk/internal/domain/service"
	"github.com/opsdesk-inc/opsdesk/internal/shared/db"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

const (
	allocationHistoryLimit = 10
	metricHistoryLimit     = 5
)

type Service struct {
	serviceRepo    domainservice.Repository
	allocationRepo domainservice.AllocationRepository
	metricRepo     domainservice.MetricRepository
	clientRepo     domainclient.Repository
	prospectRepo   prospect.Repository
	txManager      *db.TransactionManager
	logger         logger.Interface
}

func NewService(
	serviceRepo domainservice.Repository,
	allocationRepo domainservice.AllocationRepository,
	metricRepo domainservice.MetricRepository,
	clientRepo domainclient.Repository,
	prospectRepo prospect.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *Service {
	return &Service{
		serviceRepo:    serviceRepo,
		allocationRepo: allocationRepo,
		metricRepo:     metricRepo,
		clientRepo:     clientRepo,
		prospectRepo:   prospectRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (s *Service) CreateService(ctx context.Context, req dto.CreateServiceRequest) (*dto.ServiceDTO, error) {
	if _, err := s.clientRepo.FindByID(ctx, req.ClientID); err != nil {
		return nil, err
	}

	newService, err := domainservice.NewService(req.ClientID, req.Type, req.CapacityLimit, req.CostPerUnit)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.serviceRepo.Save(ctx, newService); err != nil {
		s.logger.Errorw("failed to save service", "error", err)
		return nil, err
	}

	s.logger.Infow("service created", "service_id", newService.ID(), "client_id", req.ClientID, "type", req.Type)
	return dto.ToServiceDTO(newService), nil
}

func (s *Service) GetService(ctx context.Context, id uint) (*dto.ServiceDTO, error) {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToServiceDTO(svc), nil
}

func (s *Service) UpdateService(ctx context.Context, id uint, req dto.UpdateServiceRequest) (*dto.ServiceDTO, error) {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := svc.UpdateLimits(req.CapacityLimit, req.CostPerUnit); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if req.Status != "" {
		status, err := domainservice.NewStatus(req.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := svc.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		s.logger.Errorw("failed to update service", "service_id", id, "error", err)
		return nil, err
	}

	return dto.ToServiceDTO(svc), nil
}

func (s *Service) DeleteService(ctx context.Context, id uint) error {
	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("service deleted", "service_id", id)
	return nil
}

func (s *Service) ListServices(ctx context.Context, req dto.ListServicesRequest) ([]*dto.ServiceDTO, int64, error) {
	filter := domainservice.Filter{
		ClientID: req.ClientID,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.Type != "" {
		filter.Type = &req.Type
	}
	if req.Status != "" {
		status, err := domainservice.NewStatus(req.Status)
		if err != nil {
			return nil, 0, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	services, total, err := s.serviceRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return dto.ToServiceDTOs(services), total, nil
}

// RecordAllocation appends an allocation record and rolls the service's
// current usage forward in the same transaction.
func (s *Service) RecordAllocation(ctx context.Context, serviceID uint, req dto.RecordAllocationRequest) (*dto.AllocationDTO, error) {
	var allocation *domainservice.Allocation

	err := s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		svc, err := s.serviceRepo.FindByID(txCtx, serviceID)
		if err != nil {
			return err
		}

		a, err := domainservice.NewAllocation(serviceID, svc.ClientID(), req.Allocated, req.Used, req.Cost)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := s.allocationRepo.Save(txCtx, a); err != nil {
			return err
		}

		if err := svc.RecordUsage(req.Used); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := s.serviceRepo.Update(txCtx, svc); err != nil {
			return err
		}

		allocation = a
		return nil
	})
	if err != nil {
		s.logger.Errorw("failed to record allocation", "service_id", serviceID, "error", err)
		return nil, err
	}

	s.logger.Infow("allocation recorded", "service_id", serviceID, "allocation_id", allocation.ID, "used", req.Used)
	return dto.ToAllocationDTO(allocation), nil
}

func (s *Service) RecordMetric(ctx context.Context, serviceID uint, req dto.RecordMetricRequest) (*dto.MetricDTO, error) {
	if _, err := s.serviceRepo.FindByID(ctx, serviceID); err != nil {
		return nil, err
	}

	m, err := domainservice.NewMetric(serviceID, req.CPUUsage, req.MemoryUsage, req.StorageUsage, req.Uptime)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.metricRepo.Save(ctx, m); err != nil {
		s.logger.Errorw("failed to save metric", "service_id", serviceID, "error", err)
		return nil, err
	}

	return dto.ToMetricDTO(m), nil
}

func (s *Service) ListMetrics(ctx context.Context, serviceID uint, limit int) ([]*dto.MetricDTO, error) {
	if _, err := s.serviceRepo.FindByID(ctx, serviceID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = metricHistoryLimit
	}

	metrics, err := s.metricRepo.FindRecentByServiceID(ctx, serviceID, limit)
	if err != nil {
		return nil, err
	}
	return dto.ToMetricDTOs(metrics), nil
}
