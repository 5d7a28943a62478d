// Package activity exposes the audit feed.
package activity

import (
	"context"
	"time"

	domainactivity "github.com/opsdesk-inc/opsdesk/internal/domain/activity"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

const defaultFeedLimit = 50

type ActivityDTO struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	User        string    `json:"user"`
	Target      string    `json:"target"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListActivitiesRequest struct {
	Type   string `form:"type" binding:"omitempty,oneof=ticket template quote"`
	User   string `form:"user"`
	Status string `form:"status" binding:"omitempty,oneof=completed failed"`
	Limit  int    `form:"limit" binding:"omitempty,gt=0,lte=500"`
}

type Service struct {
	activityRepo domainactivity.Repository
	logger       logger.Interface
}

func NewService(activityRepo domainactivity.Repository, logger logger.Interface) *Service {
	return &Service{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

func (s *Service) ListActivities(ctx context.Context, req ListActivitiesRequest) ([]*ActivityDTO, error) {
	filter := domainactivity.Filter{Limit: req.Limit}
	if filter.Limit <= 0 {
		filter.Limit = defaultFeedLimit
	}
	if req.Type != "" {
		filter.Type = &req.Type
	}
	if req.User != "" {
		filter.User = &req.User
	}
	if req.Status != "" {
		filter.Status = &req.Status
	}

	activities, err := s.activityRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]*ActivityDTO, len(activities))
	for i, a := range activities {
		dtos[i] = &ActivityDTO{
			ID:          a.ID,
			Type:        a.Type,
			Description: a.Description,
			User:        a.User,
			Target:      a.Target,
			Status:      a.Status,
			CreatedAt:   a.CreatedAt,
		}
	}

	return dtos, nil
}
