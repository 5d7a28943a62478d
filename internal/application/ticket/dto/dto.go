package dto

import (
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID          uint       `json:"id"`
	Number      string     `json:"number"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	ClientID    uint       `json:"client_id"`
	Assignee    string     `json:"assignee"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ClosedAt    *time.Time `json:"closed_at"`
}

type CreateTicketRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"max=5000"`
	Priority    string   `json:"priority" binding:"required,oneof=low medium high urgent"`
	ClientID    uint     `json:"client_id" binding:"required"`
	Assignee    string   `json:"assignee" binding:"max=100"`
	Tags        []string `json:"tags"`
}

type UpdateTicketRequest struct {
	Title       string   `json:"title" binding:"omitempty,max=200"`
	Description string   `json:"description" binding:"omitempty,max=5000"`
	Priority    string   `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status      string   `json:"status" binding:"omitempty,oneof=open in_progress closed"`
	Assignee    *string  `json:"assignee" binding:"omitempty,max=100"`
	Tags        []string `json:"tags"`
}

type ListTicketsRequest struct {
	Status   string `form:"status" binding:"omitempty,oneof=open in_progress closed"`
	Priority string `form:"priority" binding:"omitempty,oneof=low medium high urgent"`
	ClientID *uint  `form:"client_id"`
	Assignee string `form:"assignee"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}
	return &TicketDTO{
		ID:          t.ID(),
		Number:      t.Number(),
		Title:       t.Title(),
		Description: t.Description(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		ClientID:    t.ClientID(),
		Assignee:    t.Assignee(),
		Tags:        t.Tags(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		ClosedAt:    t.ClosedAt(),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket) []*TicketDTO {
	dtos := make([]*TicketDTO, len(tickets))
	for i, t := range tickets {
		dtos[i] = ToTicketDTO(t)
	}
	return dtos
}
