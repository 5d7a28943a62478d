package ticket

import (
	"context"

	vo "github.com/opsdesk-inc/opsdesk/internal/domain/ticket/valueobjects"
)

// Filter narrows ticket list queries.
type Filter struct {
	Status   *vo.TicketStatus
	Priority *vo.Priority
	ClientID *uint
	Assignee *string
	Page     int
	PageSize int
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	FindOpenByClientID(ctx context.Context, clientID uint) ([]*Ticket, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	// NextNumber allocates the next ticket number, e.g. TKT-1042.
	NextNumber(ctx context.Context) (string, error)
}
