package billing

import (
	"context"

	vo "github.com/opsdesk-inc/opsdesk/internal/domain/billing/valueobjects"
)

// QuoteFilter narrows quote list queries.
type QuoteFilter struct {
	ClientID *uint
	Status   *vo.QuoteStatus
	Page     int
	PageSize int
}

// InvoiceFilter narrows invoice list queries.
type InvoiceFilter struct {
	ClientID *uint
	Status   *vo.InvoiceStatus
	Type     *vo.InvoiceType
	Page     int
	PageSize int
}

type QuoteRepository interface {
	// Save persists the quote and its items.
	Save(ctx context.Context, q *Quote) error
	// Update persists the quote header and replaces its items wholesale.
	// The delete-then-insert of items must not be observable partially,
	// so implementations run it inside the ambient transaction.
	Update(ctx context.Context, q *Quote) error
	FindByNumber(ctx context.Context, number string) (*Quote, error)
	Delete(ctx context.Context, number string) error
	List(ctx context.Context, filter QuoteFilter) ([]*Quote, int64, error)
	// FindRecentByClientID returns up to limit quotes, newest first.
	FindRecentByClientID(ctx context.Context, clientID uint, limit int) ([]*Quote, error)
}

type InvoiceRepository interface {
	Save(ctx context.Context, i *Invoice) error
	Update(ctx context.Context, i *Invoice) error
	FindByID(ctx context.Context, id uint) (*Invoice, error)
	List(ctx context.Context, filter InvoiceFilter) ([]*Invoice, int64, error)
	// FindRecentByClientID returns up to limit invoices, newest first.
	FindRecentByClientID(ctx context.Context, clientID uint, limit int) ([]*Invoice, error)
}
