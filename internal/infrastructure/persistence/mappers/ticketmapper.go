package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/ticket/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:          t.ID(),
		Number:      t.Number(),
		Title:       t.Title(),
		Description: t.Description(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		ClientID:    t.ClientID(),
		Assignee:    t.Assignee(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}

	if len(t.Tags()) > 0 {
		tagsJSON, _ := json.Marshal(t.Tags())
		model.Tags = string(tagsJSON)
	}

	if t.ClosedAt() != nil {
		closed := t.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}

	var tags []string
	if model.Tags != "" {
		if err := json.Unmarshal([]byte(model.Tags), &tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket tags (id=%d): %w", model.ID, err)
		}
	}

	var closedAt *time.Time
	if model.ClosedAt != nil {
		t := time.UnixMilli(*model.ClosedAt)
		closedAt = &t
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Title,
		model.Description,
		priority,
		status,
		model.ClientID,
		model.Assignee,
		tags,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
		closedAt,
	)
}
