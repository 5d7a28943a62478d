// Package template orchestrates document template management and
// preview rendering.
package template

import (
	"context"
	"fmt"

	"github.com/opsdesk-inc/opsdesk/internal/application/template/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/activity"
	domaintemplate "github.com/opsdesk-inc/opsdesk/internal/domain/template"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/services/markdown"
)

type Service struct {
	templateRepo domaintemplate.Repository
	activityRepo activity.Repository
	markdown     markdown.MarkdownService
	logger       logger.Interface
}

func NewService(
	templateRepo domaintemplate.Repository,
	activityRepo activity.Repository,
	markdown markdown.MarkdownService,
	logger logger.Interface,
) *Service {
	return &Service{
		templateRepo: templateRepo,
		activityRepo: activityRepo,
		markdown:     markdown,
		logger:       logger,
	}
}

func (s *Service) CreateTemplate(ctx context.Context, req dto.CreateTemplateRequest, actor string) (*dto.TemplateDTO, error) {
	t, err := domaintemplate.New(req.Name, req.Author, req.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.templateRepo.Save(ctx, t); err != nil {
		s.logger.Errorw("failed to save template", "error", err)
		return nil, err
	}

	s.recordActivity(ctx, actor, fmt.Sprintf("created template %q", t.Name), t.Name)
	return dto.ToTemplateDTO(t), nil
}

func (s *Service) GetTemplate(ctx context.Context, id uint) (*dto.TemplateDTO, error) {
	t, err := s.templateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToTemplateDTO(t), nil
}

func (s *Service) UpdateTemplate(ctx context.Context, id uint, req dto.UpdateTemplateRequest, actor string) (*dto.TemplateDTO, error) {
	t, err := s.templateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		t.Name = req.Name
	}
	if req.Author != "" {
		t.Author = req.Author
	}
	if req.Content != nil {
		t.Content = *req.Content
	}

	if err := s.templateRepo.Update(ctx, t); err != nil {
		s.logger.Errorw("failed to update template", "template_id", id, "error", err)
		return nil, err
	}

	s.recordActivity(ctx, actor, fmt.Sprintf("updated template %q", t.Name), t.Name)
	return dto.ToTemplateDTO(t), nil
}

func (s *Service) DeleteTemplate(ctx context.Context, id uint, actor string) error {
	t, err := s.templateRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.templateRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.recordActivity(ctx, actor, fmt.Sprintf("deleted template %q", t.Name), t.Name)
	return nil
}

func (s *Service) ListTemplates(ctx context.Context, req dto.ListTemplatesRequest) ([]*dto.TemplateDTO, int64, error) {
	filter := domaintemplate.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.Author != "" {
		filter.Author = &req.Author
	}

	templates, total, err := s.templateRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return dto.ToTemplateDTOs(templates), total, nil
}

// PreviewTemplate renders the template's markdown content as sanitized
// HTML.
func (s *Service) PreviewTemplate(ctx context.Context, id uint) (*dto.PreviewDTO, error) {
	t, err := s.templateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	html, err := s.markdown.ToHTMLSanitized(t.Content)
	if err != nil {
		s.logger.Errorw("failed to render template preview", "template_id", id, "error", err)
		return nil, errors.NewInternalError("failed to render template preview")
	}

	return &dto.PreviewDTO{
		ID:   t.ID,
		Name: t.Name,
		HTML: html,
	}, nil
}

func (s *Service) recordActivity(ctx context.Context, actor, description, target string) {
	entry := activity.New(activity.TypeTemplate, description, actor, target)
	if err := s.activityRepo.Save(ctx, entry); err != nil {
		s.logger.Warnw("failed to record activity", "description", description, "error", err)
	}
}
