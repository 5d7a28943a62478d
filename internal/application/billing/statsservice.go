package billing

import (
	"context"
	"math"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/application/billing/dto"
	domainbilling "github.com/opsdesk-inc/opsdesk/internal/domain/billing"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

const recentDocumentLimit = 3

type StatsService struct {
	quoteRepo   domainbilling.QuoteRepository
	invoiceRepo domainbilling.InvoiceRepository
	logger      logger.Interface
}

func NewStatsService(
	quoteRepo domainbilling.QuoteRepository,
	invoiceRepo domainbilling.InvoiceRepository,
	logger logger.Interface,
) *StatsService {
	return &StatsService{
		quoteRepo:   quoteRepo,
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

// GetStats aggregates the billing dashboard numbers, optionally scoped
// to one client.
func (s *StatsService) GetStats(ctx context.Context, req dto.StatsRequest) (*dto.StatsDTO, error) {
	now := time.Now()

	invoices, _, err := s.invoiceRepo.List(ctx, domainbilling.InvoiceFilter{ClientID: req.ClientID})
	if err != nil {
		return nil, err
	}

	quotes, _, err := s.quoteRepo.List(ctx, domainbilling.QuoteFilter{ClientID: req.ClientID})
	if err != nil {
		return nil, err
	}

	stats := &dto.StatsDTO{}

	for _, inv := range invoices {
		switch {
		case inv.Status().IsPaid():
			stats.TotalRevenue += inv.Amount()
		case inv.Status().IsSent():
			stats.PendingAmount += inv.Amount()
			if inv.IsOverdue(now) {
				stats.OverdueAmount += inv.Amount()
			}
		}
		if inv.Type().IsMonthly() && !inv.Status().IsCancelled() {
			stats.MonthlyRecurring += inv.Amount()
		}
	}

	var sent, accepted int
	for _, q := range quotes {
		switch {
		case q.Status().IsSent():
			sent++
			if q.ValidUntil().After(now) {
				stats.ActiveQuotes++
			}
		case q.Status().IsAccepted():
			accepted++
		}
	}
	stats.ConversionRate = conversionRate(accepted, sent)

	if req.ClientID != nil {
		recentQuotes, err := s.quoteRepo.FindRecentByClientID(ctx, *req.ClientID, recentDocumentLimit)
		if err != nil {
			return nil, err
		}
		recentInvoices, err := s.invoiceRepo.FindRecentByClientID(ctx, *req.ClientID, recentDocumentLimit)
		if err != nil {
			return nil, err
		}
		stats.RecentQuotes = dto.ToQuoteDTOs(recentQuotes)
		stats.RecentInvoices = dto.ToInvoiceDTOs(recentInvoices, now)
	}

	return stats, nil
}

// conversionRate is accepted over sent as a percentage, rounded to one
// decimal. Zero when nothing was sent.
func conversionRate(accepted, sent int) float64 {
	if sent == 0 {
		return 0
	}
	return math.Round(float64(accepted)/float64(sent)*1000) / 10
}
