package billing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/application/billing/dto"
	domainbilling "github.com/opsdesk-inc/opsdesk/internal/domain/billing"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/billing/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type fakeQuoteRepo struct {
	saveFn         func(ctx context.Context, q *domainbilling.Quote) error
	updateFn       func(ctx context.Context, q *domainbilling.Quote) error
	findByNumberFn func(ctx context.Context, number string) (*domainbilling.Quote, error)
	deleteFn       func(ctx context.Context, number string) error
	listFn         func(ctx context.Context, filter domainbilling.QuoteFilter) ([]*domainbilling.Quote, int64, error)
	findRecentFn   func(ctx context.Context, clientID uint, limit int) ([]*domainbilling.Quote, error)
}

func (f *fakeQuoteRepo) Save(ctx context.Context, q *domainbilling.Quote) error {
	return f.saveFn(ctx, q)
}

func (f *fakeQuoteRepo) Update(ctx context.Context, q *domainbilling.Quote) error {
	return f.updateFn(ctx, q)
}

func (f *fakeQuoteRepo) FindByNumber(ctx context.Context, number string) (*domainbilling.Quote, error) {
	return f.findByNumberFn(ctx, number)
}

func (f *fakeQuoteRepo) Delete(ctx context.Context, number string) error {
	return f.deleteFn(ctx, number)
}

func (f *fakeQuoteRepo) List(ctx context.Context, filter domainbilling.QuoteFilter) ([]*domainbilling.Quote, int64, error) {
	return f.listFn(ctx, filter)
}

func (f *fakeQuoteRepo) FindRecentByClientID(ctx context.Context, clientID uint, limit int) ([]*domainbilling.Quote, error) {
	return f.findRecentFn(ctx, clientID, limit)
}

type fakeInvoiceRepo struct {
	saveFn       func(ctx context.Context, i *domainbilling.Invoice) error
	updateFn     func(ctx context.Context, i *domainbilling.Invoice) error
	findByIDFn   func(ctx context.Context, id uint) (*domainbilling.Invoice, error)
	listFn       func(ctx context.Context, filter domainbilling.InvoiceFilter) ([]*domainbilling.Invoice, int64, error)
	findRecentFn func(ctx context.Context, clientID uint, limit int) ([]*domainbilling.Invoice, error)
}

func (f *fakeInvoiceRepo) Save(ctx context.Context, i *domainbilling.Invoice) error {
	return f.saveFn(ctx, i)
}

func (f *fakeInvoiceRepo) Update(ctx context.Context, i *domainbilling.Invoice) error {
	return f.updateFn(ctx, i)
}

func (f *fakeInvoiceRepo) FindByID(ctx context.Context, id uint) (*domainbilling.Invoice, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeInvoiceRepo) List(ctx context.Context, filter domainbilling.InvoiceFilter) ([]*domainbilling.Invoice, int64, error) {
	return f.listFn(ctx, filter)
}

func (f *fakeInvoiceRepo) FindRecentByClientID(ctx context.Context, clientID uint, limit int) ([]*domainbilling.Invoice, error) {
	return f.findRecentFn(ctx, clientID, limit)
}

func statsInvoice(t *testing.T, id uint, amount float64, invType vo.InvoiceType, status vo.InvoiceStatus, dueDate time.Time) *domainbilling.Invoice {
	t.Helper()
	inv, err := domainbilling.ReconstructInvoice(id, 1, amount, invType, status, dueDate, time.Now(), time.Now())
	require.NoError(t, err)
	return inv
}

func statsQuote(t *testing.T, id uint, status vo.QuoteStatus, validUntil time.Time) *domainbilling.Quote {
	t.Helper()
	q, err := domainbilling.ReconstructQuote(
		id, fmt.Sprintf("Q-%d", id), 1, status,
		100, 0, 0, 100, validUntil, nil, time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return q
}

func TestGetStats_Aggregates(t *testing.T) {
	now := time.Now()
	past := now.Add(-48 * time.Hour)
	future := now.Add(30 * 24 * time.Hour)

	invoices := []*domainbilling.Invoice{
		statsInvoice(t, 1, 100, vo.InvoiceTypeOneTime, vo.InvoiceStatusPaid, future),
		statsInvoice(t, 2, 50, vo.InvoiceTypeMonthly, vo.InvoiceStatusPaid, future),
		statsInvoice(t, 3, 200, vo.InvoiceTypeOneTime, vo.InvoiceStatusSent, future),
		statsInvoice(t, 4, 75, vo.InvoiceTypeMonthly, vo.InvoiceStatusSent, past),
		statsInvoice(t, 5, 30, vo.InvoiceTypeMonthly, vo.InvoiceStatusCancelled, future),
		statsInvoice(t, 6, 40, vo.InvoiceTypeOneTime, vo.InvoiceStatusDraft, future),
	}
	quotes := []*domainbilling.Quote{
		statsQuote(t, 1, vo.QuoteStatusSent, future),
		statsQuote(t, 2, vo.QuoteStatusSent, past),
		statsQuote(t, 3, vo.QuoteStatusAccepted, future),
		statsQuote(t, 4, vo.QuoteStatusDraft, future),
		statsQuote(t, 5, vo.QuoteStatusExpired, past),
	}

	quoteRepo := &fakeQuoteRepo{
		listFn: func(ctx context.Context, filter domainbilling.QuoteFilter) ([]*domainbilling.Quote, int64, error) {
			return quotes, int64(len(quotes)), nil
		},
	}
	invoiceRepo := &fakeInvoiceRepo{
		listFn: func(ctx context.Context, filter domainbilling.InvoiceFilter) ([]*domainbilling.Invoice, int64, error) {
			return invoices, int64(len(invoices)), nil
		},
	}

	s := NewStatsService(quoteRepo, invoiceRepo, logger.NewLogger())

	stats, err := s.GetStats(context.Background(), dto.StatsRequest{})
	require.NoError(t, err)

	assert.InDelta(t, 150.0, stats.TotalRevenue, 1e-9)
	assert.InDelta(t, 125.0, stats.MonthlyRecurring, 1e-9) // paid + sent monthly, cancelled excluded
	assert.InDelta(t, 275.0, stats.PendingAmount, 1e-9)
	assert.InDelta(t, 75.0, stats.OverdueAmount, 1e-9)
	assert.Equal(t, 1, stats.ActiveQuotes) // only the sent quote still in validity
	assert.InDelta(t, 50.0, stats.ConversionRate, 1e-9) // 1 accepted / 2 sent
	assert.Nil(t, stats.RecentQuotes)
	assert.Nil(t, stats.RecentInvoices)
}

func TestGetStats_ClientScope(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour)
	clientID := uint(7)

	var listedClient *uint
	quoteRepo := &fakeQuoteRepo{
		listFn: func(ctx context.Context, filter domainbilling.QuoteFilter) ([]*domainbilling.Quote, int64, error) {
			listedClient = filter.ClientID
			return nil, 0, nil
		},
		findRecentFn: func(ctx context.Context, id uint, limit int) ([]*domainbilling.Quote, error) {
			assert.Equal(t, clientID, id)
			assert.Equal(t, 3, limit)
			return []*domainbilling.Quote{statsQuote(t, 1, vo.QuoteStatusDraft, future)}, nil
		},
	}
	invoiceRepo := &fakeInvoiceRepo{
		listFn: func(ctx context.Context, filter domainbilling.InvoiceFilter) ([]*domainbilling.Invoice, int64, error) {
			return nil, 0, nil
		},
		findRecentFn: func(ctx context.Context, id uint, limit int) ([]*domainbilling.Invoice, error) {
			assert.Equal(t, clientID, id)
			assert.Equal(t, 3, limit)
			return []*domainbilling.Invoice{
				statsInvoice(t, 1, 10, vo.InvoiceTypeOneTime, vo.InvoiceStatusDraft, future),
			}, nil
		},
	}

	s := NewStatsService(quoteRepo, invoiceRepo, logger.NewLogger())

	stats, err := s.GetStats(context.Background(), dto.StatsRequest{ClientID: &clientID})
	require.NoError(t, err)

	require.NotNil(t, listedClient)
	assert.Equal(t, clientID, *listedClient)
	assert.Len(t, stats.RecentQuotes, 1)
	assert.Len(t, stats.RecentInvoices, 1)
}

func TestConversionRate(t *testing.T) {
	tests := []struct {
		name     string
		accepted int
		sent     int
		expected float64
	}{
		{"no sent quotes", 0, 0, 0},
		{"accepted but none sent", 3, 0, 0},
		{"half converted", 1, 2, 50},
		{"one third rounded", 1, 3, 33.3},
		{"two thirds rounded", 2, 3, 66.7},
		{"more accepted than sent", 3, 2, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, conversionRate(tt.accepted, tt.sent), 1e-9)
		})
	}
}
