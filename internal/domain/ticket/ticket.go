package ticket

import (
	"fmt"
	"time"

	vo "github.com/opsdesk-inc/opsdesk/internal/domain/ticket/valueobjects"
)

type Ticket struct {
	id          uint
	number      string
	title       string
	description string
	priority    vo.Priority
	status      vo.TicketStatus
	clientID    uint
	assignee    string
	tags        []string
	createdAt   time.Time
	updatedAt   time.Time
	closedAt    *time.Time
}

func NewTicket(
	title string,
	description string,
	priority vo.Priority,
	clientID uint,
	assignee string,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}

	now := time.Now()
	return &Ticket{
		title:       title,
		description: description,
		priority:    priority,
		status:      vo.StatusOpen,
		clientID:    clientID,
		assignee:    assignee,
		tags:        []string{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	number string,
	title string,
	description string,
	priority vo.Priority,
	status vo.TicketStatus,
	clientID uint,
	assignee string,
	tags []string,
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if tags == nil {
		tags = []string{}
	}

	return &Ticket{
		id:          id,
		number:      number,
		title:       title,
		description: description,
		priority:    priority,
		status:      status,
		clientID:    clientID,
		assignee:    assignee,
		tags:        tags,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		closedAt:    closedAt,
	}, nil
}

func (t *Ticket) ID() uint              { return t.id }
func (t *Ticket) Number() string        { return t.number }
func (t *Ticket) Title() string         { return t.title }
func (t *Ticket) Description() string   { return t.description }
func (t *Ticket) Priority() vo.Priority { return t.priority }
func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}
func (t *Ticket) ClientID() uint        { return t.clientID }
func (t *Ticket) Assignee() string      { return t.assignee }
func (t *Ticket) CreatedAt() time.Time  { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time  { return t.updatedAt }
func (t *Ticket) ClosedAt() *time.Time  { return t.closedAt }

func (t *Ticket) Tags() []string {
	tagsCopy := make([]string, len(t.tags))
	copy(tagsCopy, t.tags)
	return tagsCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetNumber(number string) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

// ChangeStatus applies a status transition, rejecting moves not allowed
// by the transition table.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = time.Now()

	if newStatus.IsClosed() && t.closedAt == nil {
		now := time.Now()
		t.closedAt = &now
	}
	if !newStatus.IsClosed() {
		t.closedAt = nil
	}

	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	if t.priority == newPriority {
		return nil
	}

	t.priority = newPriority
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) Assign(assignee string) {
	t.assignee = assignee
	t.updatedAt = time.Now()
}

func (t *Ticket) UpdateDetails(title, description string) error {
	if title != "" {
		if len(title) > 200 {
			return fmt.Errorf("title exceeds maximum length of 200 characters")
		}
		t.title = title
	}
	if description != "" {
		if len(description) > 5000 {
			return fmt.Errorf("description exceeds maximum length of 5000 characters")
		}
		t.description = description
	}
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) SetTags(tags []string) {
	if tags == nil {
		tags = []string{}
	}
	t.tags = tags
	t.updatedAt = time.Now()
}
