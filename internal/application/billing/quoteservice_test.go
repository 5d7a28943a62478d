package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/opsdesk-inc/opsdesk/internal/application/billing/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/activity"
	domainbilling "github.com/opsdesk-inc/opsdesk/internal/domain/billing"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/billing/valueobjects"
	domainclient "github.com/opsdesk-inc/opsdesk/internal/domain/client"
	"github.com/opsdesk-inc/opsdesk/internal/shared/db"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type fakeBillingClientRepo struct {
	findByIDFn func(ctx context.Context, id uint) (*domainclient.Client, error)
}

func (f *fakeBillingClientRepo) Save(ctx context.Context, c *domainclient.Client) error   { return nil }
func (f *fakeBillingClientRepo) Update(ctx context.Context, c *domainclient.Client) error { return nil }
func (f *fakeBillingClientRepo) Delete(ctx context.Context, id uint) error                { return nil }

func (f *fakeBillingClientRepo) FindByID(ctx context.Context, id uint) (*domainclient.Client, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeBillingClientRepo) List(ctx context.Context, filter domainclient.Filter) ([]*domainclient.Client, int64, error) {
	return nil, 0, nil
}

type recordingActivityRepo struct {
	entries []*activity.Activity
}

func (r *recordingActivityRepo) Save(ctx context.Context, a *activity.Activity) error {
	r.entries = append(r.entries, a)
	return nil
}

func (r *recordingActivityRepo) List(ctx context.Context, filter activity.Filter) ([]*activity.Activity, error) {
	return r.entries, nil
}

type fakePDFGenerator struct {
	err error
}

func (f *fakePDFGenerator) Generate(q *domainbilling.Quote, c *domainclient.Client) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 test"), nil
}

type fakeSender struct {
	to     string
	number string
	err    error
}

func (f *fakeSender) SendQuote(to, clientName, quoteNumber string, pdf []byte) error {
	if f.err != nil {
		return f.err
	}
	f.to = to
	f.number = quoteNumber
	return nil
}

func testTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(gdb)
}

func testClient(t *testing.T, email string) *domainclient.Client {
	t.Helper()
	c, err := domainclient.ReconstructClient(
		1, "Acme Corp", email, "", "Acme", "",
		domainclient.StatusActive, time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return c
}

func newQuoteServiceForTest(t *testing.T, quoteRepo domainbilling.QuoteRepository, clientEmail string, sender *fakeSender) (*QuoteService, *recordingActivityRepo) {
	t.Helper()
	activityRepo := &recordingActivityRepo{}
	clientRepo := &fakeBillingClientRepo{
		findByIDFn: func(ctx context.Context, id uint) (*domainclient.Client, error) {
			return testClient(t, clientEmail), nil
		},
	}
	svc := NewQuoteService(
		quoteRepo, clientRepo, activityRepo,
		&fakePDFGenerator{}, sender,
		testTxManager(t), logger.NewLogger(),
	)
	return svc, activityRepo
}

func TestCreateQuote_PricesFromCatalog(t *testing.T) {
	var saved *domainbilling.Quote
	quoteRepo := &fakeQuoteRepo{
		saveFn: func(ctx context.Context, q *domainbilling.Quote) error {
			saved = q
			return nil
		},
	}

	svc, activityRepo := newQuoteServiceForTest(t, quoteRepo, "billing@acme.test", &fakeSender{})

	req := dto.CreateQuoteRequest{
		Number:     "Q-2024-100",
		ClientID:   1,
		TaxRate:    8,
		ValidUntil: "2026-12-31",
		Items: []dto.QuoteItemRequest{
			// Managed Server, catalog price 150
			{ProductID: 1, Quantity: 2},
			// Backup Service priced 35, overridden to 20
			{ProductID: 6, Quantity: 1, CustomPrice: 20},
		},
	}

	result, err := svc.CreateQuote(context.Background(), req, "admin")
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.InDelta(t, 320.0, result.Subtotal, 1e-9)
	assert.InDelta(t, 25.6, result.Tax, 1e-9)
	assert.InDelta(t, 345.6, result.Total, 1e-9)
	assert.Equal(t, "draft", result.Status)

	// Catalog description fills in when the request omits one.
	require.Len(t, result.Items, 2)
	assert.Equal(t, "Managed Server", result.Items[0].Description)

	require.Len(t, activityRepo.entries, 1)
	assert.Equal(t, activity.TypeQuote, activityRepo.entries[0].Type)
	assert.Equal(t, "admin", activityRepo.entries[0].User)
}

func TestCreateQuote_UnknownProductWithoutCustomPrice(t *testing.T) {
	quoteRepo := &fakeQuoteRepo{
		saveFn: func(ctx context.Context, q *domainbilling.Quote) error { return nil },
	}
	svc, _ := newQuoteServiceForTest(t, quoteRepo, "billing@acme.test", &fakeSender{})

	req := dto.CreateQuoteRequest{
		Number:     "Q-2024-101",
		ClientID:   1,
		TaxRate:    0,
		ValidUntil: "2026-12-31",
		Items: []dto.QuoteItemRequest{
			{ProductID: 999, Quantity: 1},
		},
	}

	_, err := svc.CreateQuote(context.Background(), req, "admin")
	assert.Error(t, err)
}

func TestCreateQuote_UnknownProductWithCustomPrice(t *testing.T) {
	quoteRepo := &fakeQuoteRepo{
		saveFn: func(ctx context.Context, q *domainbilling.Quote) error { return nil },
	}
	svc, _ := newQuoteServiceForTest(t, quoteRepo, "billing@acme.test", &fakeSender{})

	req := dto.CreateQuoteRequest{
		Number:     "Q-2024-102",
		ClientID:   1,
		TaxRate:    0,
		ValidUntil: "2026-12-31",
		Items: []dto.QuoteItemRequest{
			{ProductID: 999, Quantity: 3, CustomPrice: 10, Description: "Custom work"},
		},
	}

	result, err := svc.CreateQuote(context.Background(), req, "admin")
	require.NoError(t, err)
	assert.InDelta(t, 30.0, result.Subtotal, 1e-9)
}

func TestSendQuote_DraftBecomesSent(t *testing.T) {
	q, err := domainbilling.ReconstructQuote(
		1, "Q-2024-200", 1, vo.QuoteStatusDraft,
		100, 0, 0, 100, time.Now().Add(240*time.Hour), nil, time.Now(), time.Now(),
	)
	require.NoError(t, err)

	updated := false
	quoteRepo := &fakeQuoteRepo{
		findByNumberFn: func(ctx context.Context, number string) (*domainbilling.Quote, error) {
			return q, nil
		},
		updateFn: func(ctx context.Context, q *domainbilling.Quote) error {
			updated = true
			return nil
		},
	}
	sender := &fakeSender{}
	svc, _ := newQuoteServiceForTest(t, quoteRepo, "billing@acme.test", sender)

	result, err := svc.SendQuote(context.Background(), "Q-2024-200", dto.SendQuoteRequest{}, "admin")
	require.NoError(t, err)

	assert.Equal(t, "sent", result.Status)
	assert.True(t, updated, "transition to sent must be persisted")
	assert.Equal(t, "billing@acme.test", sender.to)
	assert.Equal(t, "Q-2024-200", sender.number)
}

func TestSendQuote_RecipientOverride(t *testing.T) {
	q, err := domainbilling.ReconstructQuote(
		1, "Q-2024-201", 1, vo.QuoteStatusSent,
		100, 0, 0, 100, time.Now().Add(240*time.Hour), nil, time.Now(), time.Now(),
	)
	require.NoError(t, err)

	quoteRepo := &fakeQuoteRepo{
		findByNumberFn: func(ctx context.Context, number string) (*domainbilling.Quote, error) {
			return q, nil
		},
	}
	sender := &fakeSender{}
	svc, _ := newQuoteServiceForTest(t, quoteRepo, "billing@acme.test", sender)

	result, err := svc.SendQuote(context.Background(), "Q-2024-201",
		dto.SendQuoteRequest{Email: "other@example.test"}, "admin")
	require.NoError(t, err)

	assert.Equal(t, "other@example.test", sender.to)
	// Already sent, status stays put.
	assert.Equal(t, "sent", result.Status)
}

func TestSendQuote_NoRecipient(t *testing.T) {
	q, err := domainbilling.ReconstructQuote(
		1, "Q-2024-202", 1, vo.QuoteStatusDraft,
		100, 0, 0, 100, time.Now().Add(240*time.Hour), nil, time.Now(), time.Now(),
	)
	require.NoError(t, err)

	quoteRepo := &fakeQuoteRepo{
		findByNumberFn: func(ctx context.Context, number string) (*domainbilling.Quote, error) {
			return q, nil
		},
	}
	svc, _ := newQuoteServiceForTest(t, quoteRepo, "", &fakeSender{})

	_, err = svc.SendQuote(context.Background(), "Q-2024-202", dto.SendQuoteRequest{}, "admin")
	assert.Error(t, err)
}

func TestSendQuote_SenderFailure(t *testing.T) {
	q, err := domainbilling.ReconstructQuote(
		1, "Q-2024-203", 1, vo.QuoteStatusDraft,
		100, 0, 0, 100, time.Now().Add(240*time.Hour), nil, time.Now(), time.Now(),
	)
	require.NoError(t, err)

	quoteRepo := &fakeQuoteRepo{
		findByNumberFn: func(ctx context.Context, number string) (*domainbilling.Quote, error) {
			return q, nil
		},
	}
	sender := &fakeSender{err: errors.New("smtp unreachable")}
	svc, _ := newQuoteServiceForTest(t, quoteRepo, "billing@acme.test", sender)

	_, err = svc.SendQuote(context.Background(), "Q-2024-203", dto.SendQuoteRequest{}, "admin")
	assert.Error(t, err)
	// Failed delivery must not flip the status.
	assert.True(t, q.Status().IsDraft())
}

func TestChangeStatus_InvalidTransition(t *testing.T) {
	q, err := domainbilling.ReconstructQuote(
		1, "Q-2024-300", 1, vo.QuoteStatusDraft,
		100, 0, 0, 100, time.Now().Add(240*time.Hour), nil, time.Now(), time.Now(),
	)
	require.NoError(t, err)

	quoteRepo := &fakeQuoteRepo{
		findByNumberFn: func(ctx context.Context, number string) (*domainbilling.Quote, error) {
			return q, nil
		},
		updateFn: func(ctx context.Context, q *domainbilling.Quote) error { return nil },
	}
	svc, _ := newQuoteServiceForTest(t, quoteRepo, "billing@acme.test", &fakeSender{})

	_, err = svc.ChangeStatus(context.Background(), "Q-2024-300",
		dto.ChangeQuoteStatusRequest{Status: "accepted"}, "admin")
	assert.Error(t, err)

	result, err := svc.ChangeStatus(context.Background(), "Q-2024-300",
		dto.ChangeQuoteStatusRequest{Status: "sent"}, "admin")
	require.NoError(t, err)
	assert.Equal(t, "sent", result.Status)
}
