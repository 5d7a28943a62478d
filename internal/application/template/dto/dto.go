package dto

import (
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/template"
)

type TemplateDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateTemplateRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Author  string `json:"author" binding:"max=100"`
	Content string `json:"content"`
}

type UpdateTemplateRequest struct {
	Name    string `json:"name" binding:"omitempty,max=200"`
	Author  string `json:"author" binding:"omitempty,max=100"`
	Content *string `json:"content"`
}

type ListTemplatesRequest struct {
	Author   string `form:"author"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type PreviewDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	HTML string `json:"html"`
}

func ToTemplateDTO(t *template.Template) *TemplateDTO {
	if t == nil {
		return nil
	}
	return &TemplateDTO{
		ID:        t.ID,
		Name:      t.Name,
		Author:    t.Author,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func ToTemplateDTOs(templates []*template.Template) []*TemplateDTO {
	dtos := make([]*TemplateDTO, len(templates))
	for i, t := range templates {
		dtos[i] = ToTemplateDTO(t)
	}
	return dtos
}
