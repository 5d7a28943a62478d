// Package ticket orchestrates support ticket workflows.
package ticket

import (
	"context"
	"fmt"

	"github.com/opsdesk-inc/opsdesk/internal/application/ticket/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/activity"
	domainclient "github.com/opsdesk-inc/opsdesk/internal/domain/client"
	domainticket "github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/ticket/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type Service struct {
	ticketRepo   domainticket.Repository
	clientRepo   domainclient.Repository
	activityRepo activity.Repository
	logger       logger.Interface
}

func NewService(
	ticketRepo domainticket.Repository,
	clientRepo domainclient.Repository,
	activityRepo activity.Repository,
	logger logger.Interface,
) *Service {
	return &Service{
		ticketRepo:   ticketRepo,
		clientRepo:   clientRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

func (s *Service) CreateTicket(ctx context.Context, req dto.CreateTicketRequest, actor string) (*dto.TicketDTO, error) {
	if _, err := s.clientRepo.FindByID(ctx, req.ClientID); err != nil {
		return nil, err
	}

	priority, err := vo.NewPriority(req.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newTicket, err := domainticket.NewTicket(req.Title, req.Description, priority, req.ClientID, req.Assignee)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(req.Tags) > 0 {
		newTicket.SetTags(req.Tags)
	}

	number, err := s.ticketRepo.NextNumber(ctx)
	if err != nil {
		return nil, err
	}
	if err := newTicket.SetNumber(number); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.ticketRepo.Save(ctx, newTicket); err != nil {
		s.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	s.recordActivity(ctx, actor, fmt.Sprintf("created ticket %s", newTicket.Number()), newTicket.Number())
	s.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "number", newTicket.Number())

	return dto.ToTicketDTO(newTicket), nil
}

func (s *Service) GetTicket(ctx context.Context, id uint) (*dto.TicketDTO, error) {
	t, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToTicketDTO(t), nil
}

func (s *Service) UpdateTicket(ctx context.Context, id uint, req dto.UpdateTicketRequest, actor string) (*dto.TicketDTO, error) {
	t, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" || req.Description != "" {
		title := req.Title
		if title == "" {
			title = t.Title()
		}
		description := req.Description
		if description == "" {
			description = t.Description()
		}
		if err := t.UpdateDetails(title, description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if req.Priority != "" {
		priority, err := vo.NewPriority(req.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := t.ChangePriority(priority); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if req.Status != "" {
		status, err := vo.NewTicketStatus(req.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := t.ChangeStatus(status); err != nil {
			return nil, errors.NewConflictError(err.Error())
		}
	}

	if req.Assignee != nil {
		t.Assign(*req.Assignee)
	}
	if req.Tags != nil {
		t.SetTags(req.Tags)
	}

	if err := s.ticketRepo.Update(ctx, t); err != nil {
		s.logger.Errorw("failed to update ticket", "ticket_id", id, "error", err)
		return nil, err
	}

	s.recordActivity(ctx, actor, fmt.Sprintf("updated ticket %s", t.Number()), t.Number())
	return dto.ToTicketDTO(t), nil
}

func (s *Service) DeleteTicket(ctx context.Context, id uint, actor string) error {
	t, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.ticketRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.recordActivity(ctx, actor, fmt.Sprintf("deleted ticket %s", t.Number()), t.Number())
	s.logger.Infow("ticket deleted", "ticket_id", id, "number", t.Number())
	return nil
}

func (s *Service) ListTickets(ctx context.Context, req dto.ListTicketsRequest) ([]*dto.TicketDTO, int64, error) {
	filter := domainticket.Filter{
		ClientID: req.ClientID,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.Status != "" {
		status, err := vo.NewTicketStatus(req.Status)
		if err != nil {
			return nil, 0, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if req.Priority != "" {
		priority, err := vo.NewPriority(req.Priority)
		if err != nil {
			return nil, 0, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}
	if req.Assignee != "" {
		filter.Assignee = &req.Assignee
	}

	tickets, total, err := s.ticketRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return dto.ToTicketDTOs(tickets), total, nil
}

// recordActivity appends to the audit feed outside the primary
// transaction. A failed audit write is logged, never surfaced.
func (s *Service) recordActivity(ctx context.Context, actor, description, target string) {
	entry := activity.New(activity.TypeTicket, description, actor, target)
	if err := s.activityRepo.Save(ctx, entry); err != nil {
		s.logger.Warnw("failed to record activity", "description", description, "error", err)
	}
}
