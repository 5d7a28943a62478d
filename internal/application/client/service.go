// Package client orchestrates client account management.
package client

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/application/client/dto"
	servicedto "github.com/opsdesk-inc/opsdesk/internal/application/service/dto"
	ticketdto "github.com/opsdesk-inc/opsdesk/internal/application/ticket/dto"
	domainclient "github.com/opsdesk-inc/opsdesk/internal/domain/client"
	domainservice "github.com/opsdesk-inc/opsdesk/internal/domain/service"
	domainticket "github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type Service struct {
	clientRepo  domainclient.Repository
	serviceRepo domainservice.Repository
	ticketRepo  domainticket.Repository
	logger      logger.Interface
}

func NewService(
	clientRepo domainclient.Repository,
	serviceRepo domainservice.Repository,
	ticketRepo domainticket.Repository,
	logger logger.Interface,
) *Service {
	return &Service{
		clientRepo:  clientRepo,
		serviceRepo: serviceRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

func (s *Service) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientDTO, error) {
	newClient, err := domainclient.NewClient(req.Name, req.Email, req.Phone, req.Company, req.Address)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.clientRepo.Save(ctx, newClient); err != nil {
		s.logger.Errorw("failed to save client", "error", err)
		return nil, err
	}

	s.logger.Infow("client created", "client_id", newClient.ID(), "name", newClient.Name())
	return dto.ToClientDTO(newClient), nil
}

func (s *Service) GetClient(ctx context.Context, id uint) (*dto.ClientDTO, error) {
	c, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := dto.ToClientDTO(c)
	if err := s.attachIncludes(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// attachIncludes loads the fixed nested includes every client read path
// carries: the client's services and its open tickets.
func (s *Service) attachIncludes(ctx context.Context, c *dto.ClientDTO) error {
	services, err := s.serviceRepo.FindByClientID(ctx, c.ID)
	if err != nil {
		return err
	}
	c.Services = servicedto.ToServiceDTOs(services)

	openTickets, err := s.ticketRepo.FindOpenByClientID(ctx, c.ID)
	if err != nil {
		return err
	}
	c.OpenTickets = ticketdto.ToTicketDTOs(openTickets)

	return nil
}

func (s *Service) UpdateClient(ctx context.Context, id uint, req dto.UpdateClientRequest) (*dto.ClientDTO, error) {
	c, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := c.UpdateProfile(req.Name, req.Email, req.Phone, req.Company, req.Address); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if req.Status != "" {
		status, err := domainclient.NewStatus(req.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := c.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := s.clientRepo.Update(ctx, c); err != nil {
		s.logger.Errorw("failed to update client", "client_id", id, "error", err)
		return nil, err
	}

	return dto.ToClientDTO(c), nil
}

// DeleteClient refuses to remove a client that still has services
// attached; they have to be retired or reassigned first.
func (s *Service) DeleteClient(ctx context.Context, id uint) error {
	if _, err := s.clientRepo.FindByID(ctx, id); err != nil {
		return err
	}

	services, err := s.serviceRepo.FindByClientID(ctx, id)
	if err != nil {
		return err
	}
	if len(services) > 0 {
		return errors.NewConflictError("client has active services and cannot be deleted")
	}

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		s.logger.Errorw("failed to delete client", "client_id", id, "error", err)
		return err
	}

	s.logger.Infow("client deleted", "client_id", id)
	return nil
}

func (s *Service) ListClients(ctx context.Context, req dto.ListClientsRequest) ([]*dto.ClientDTO, int64, error) {
	filter := domainclient.Filter{
		Search:   req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.Status != "" {
		status, err := domainclient.NewStatus(req.Status)
		if err != nil {
			return nil, 0, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	clients, total, err := s.clientRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	results := dto.ToClientDTOs(clients)
	for _, c := range results {
		if err := s.attachIncludes(ctx, c); err != nil {
			return nil, 0, err
		}
	}

	return results, total, nil
}

// GetClientServices returns all services for the client, newest first.
func (s *Service) GetClientServices(ctx context.Context, clientID uint) ([]*servicedto.ServiceDTO, error) {
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		return nil, err
	}

	services, err := s.serviceRepo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return servicedto.ToServiceDTOs(services), nil
}
