package ticket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/application/ticket/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/activity"
	domainclient "github.com/opsdesk-inc/opsdesk/internal/domain/client"
	domainticket "github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/ticket/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type fakeTicketRepo struct {
	saveFn       func(ctx context.Context, t *domainticket.Ticket) error
	updateFn     func(ctx context.Context, t *domainticket.Ticket) error
	findByIDFn   func(ctx context.Context, id uint) (*domainticket.Ticket, error)
	findOpenFn   func(ctx context.Context, clientID uint) ([]*domainticket.Ticket, error)
	deleteFn     func(ctx context.Context, id uint) error
	listFn       func(ctx context.Context, filter domainticket.Filter) ([]*domainticket.Ticket, int64, error)
	nextNumberFn func(ctx context.Context) (string, error)
}

func (f *fakeTicketRepo) Save(ctx context.Context, t *domainticket.Ticket) error {
	return f.saveFn(ctx, t)
}

func (f *fakeTicketRepo) Update(ctx context.Context, t *domainticket.Ticket) error {
	return f.updateFn(ctx, t)
}

func (f *fakeTicketRepo) FindByID(ctx context.Context, id uint) (*domainticket.Ticket, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeTicketRepo) FindOpenByClientID(ctx context.Context, clientID uint) ([]*domainticket.Ticket, error) {
	return f.findOpenFn(ctx, clientID)
}

func (f *fakeTicketRepo) Delete(ctx context.Context, id uint) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeTicketRepo) List(ctx context.Context, filter domainticket.Filter) ([]*domainticket.Ticket, int64, error) {
	return f.listFn(ctx, filter)
}

func (f *fakeTicketRepo) NextNumber(ctx context.Context) (string, error) {
	return f.nextNumberFn(ctx)
}

type fakeClientRepo struct {
	findByIDFn func(ctx context.Context, id uint) (*domainclient.Client, error)
}

func (f *fakeClientRepo) Save(ctx context.Context, c *domainclient.Client) error   { return nil }
func (f *fakeClientRepo) Update(ctx context.Context, c *domainclient.Client) error { return nil }
func (f *fakeClientRepo) Delete(ctx context.Context, id uint) error                { return nil }

func (f *fakeClientRepo) FindByID(ctx context.Context, id uint) (*domainclient.Client, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeClientRepo) List(ctx context.Context, filter domainclient.Filter) ([]*domainclient.Client, int64, error) {
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

func existingClient(t *testing.T) *domainclient.Client {
	t.Helper()
	c, err := domainclient.ReconstructClient(
		1, "Acme Corp", "it@acme.test", "", "Acme", "",
		domainclient.StatusActive, time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return c
}

func TestCreateTicket(t *testing.T) {
	var saved *domainticket.Ticket
	ticketRepo := &fakeTicketRepo{
		nextNumberFn: func(ctx context.Context) (string, error) { return "TKT-42", nil },
		saveFn: func(ctx context.Context, tk *domainticket.Ticket) error {
			saved = tk
			return tk.SetID(7)
		},
	}
	clientRepo := &fakeClientRepo{
		findByIDFn: func(ctx context.Context, id uint) (*domainclient.Client, error) {
			return existingClient(t), nil
		},
	}
	activityRepo := &recordingActivityRepo{}
	svc := NewService(ticketRepo, clientRepo, activityRepo, logger.NewLogger())

	result, err := svc.CreateTicket(context.Background(), dto.CreateTicketRequest{
		Title:       "Mail server down",
		Description: "No inbound mail since 9am",
		Priority:    "high",
		ClientID:    1,
		Tags:        []string{"email", "outage"},
	}, "admin")
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, "TKT-42", result.Number)
	assert.Equal(t, "open", result.Status)
	assert.Equal(t, "high", result.Priority)
	assert.Equal(t, []string{"email", "outage"}, result.Tags)

	require.Len(t, activityRepo.entries, 1)
	assert.Equal(t, activity.TypeTicket, activityRepo.entries[0].Type)
	assert.Equal(t, "admin", activityRepo.entries[0].User)
	assert.Equal(t, "TKT-42", activityRepo.entries[0].Target)
}

func TestCreateTicket_UnknownClient(t *testing.T) {
	clientRepo := &fakeClientRepo{
		findByIDFn: func(ctx context.Context, id uint) (*domainclient.Client, error) {
			return nil, errors.NewNotFoundError("client not found")
		},
	}
	svc := NewService(&fakeTicketRepo{}, clientRepo, &recordingActivityRepo{}, logger.NewLogger())

	_, err := svc.CreateTicket(context.Background(), dto.CreateTicketRequest{
		Title:    "Anything",
		Priority: "low",
		ClientID: 99,
	}, "admin")
	assert.Error(t, err)
}

func TestCreateTicket_InvalidPriority(t *testing.T) {
	clientRepo := &fakeClientRepo{
		findByIDFn: func(ctx context.Context, id uint) (*domainclient.Client, error) {
			return existingClient(t), nil
		},
	}
	svc := NewService(&fakeTicketRepo{}, clientRepo, &recordingActivityRepo{}, logger.NewLogger())

	_, err := svc.CreateTicket(context.Background(), dto.CreateTicketRequest{
		Title:    "Anything",
		Priority: "blocker",
		ClientID: 1,
	}, "admin")
	assert.Error(t, err)
}

func TestUpdateTicket_StatusAndAssignee(t *testing.T) {
	tk, err := domainticket.ReconstructTicket(
		7, "TKT-42", "Mail server down", "desc",
		vo.PriorityHigh, vo.StatusOpen, 1, "", nil,
		time.Now(), time.Now(), nil,
	)
	require.NoError(t, err)

	ticketRepo := &fakeTicketRepo{
		findByIDFn: func(ctx context.Context, id uint) (*domainticket.Ticket, error) { return tk, nil },
		updateFn:   func(ctx context.Context, tk *domainticket.Ticket) error { return nil },
	}
	activityRepo := &recordingActivityRepo{}
	svc := NewService(ticketRepo, &fakeClientRepo{}, activityRepo, logger.NewLogger())

	assignee := "sam"
	result, err := svc.UpdateTicket(context.Background(), 7, dto.UpdateTicketRequest{
		Status:   "in_progress",
		Assignee: &assignee,
	}, "admin")
	require.NoError(t, err)

	assert.Equal(t, "in_progress", result.Status)
	assert.Equal(t, "sam", result.Assignee)
	require.Len(t, activityRepo.entries, 1)
}

func TestUpdateTicket_IllegalTransition(t *testing.T) {
	tk, err := domainticket.ReconstructTicket(
		7, "TKT-42", "Mail server down", "desc",
		vo.PriorityHigh, vo.StatusClosed, 1, "", nil,
		time.Now(), time.Now(), nil,
	)
	require.NoError(t, err)

	ticketRepo := &fakeTicketRepo{
		findByIDFn: func(ctx context.Context, id uint) (*domainticket.Ticket, error) { return tk, nil },
		updateFn:   func(ctx context.Context, tk *domainticket.Ticket) error { return nil },
	}
	svc := NewService(ticketRepo, &fakeClientRepo{}, &recordingActivityRepo{}, logger.NewLogger())

	_, err = svc.UpdateTicket(context.Background(), 7, dto.UpdateTicketRequest{
		Status: "in_progress",
	}, "admin")
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestUpdateTicket_PartialDetailsKeepOther(t *testing.T) {
	tk, err := domainticket.ReconstructTicket(
		7, "TKT-42", "Original title", "Original description",
		vo.PriorityLow, vo.StatusOpen, 1, "", nil,
		time.Now(), time.Now(), nil,
	)
	require.NoError(t, err)

	ticketRepo := &fakeTicketRepo{
		findByIDFn: func(ctx context.Context, id uint) (*domainticket.Ticket, error) { return tk, nil },
		updateFn:   func(ctx context.Context, tk *domainticket.Ticket) error { return nil },
	}
	svc := NewService(ticketRepo, &fakeClientRepo{}, &recordingActivityRepo{}, logger.NewLogger())

	result, err := svc.UpdateTicket(context.Background(), 7, dto.UpdateTicketRequest{
		Title: "New title",
	}, "admin")
	require.NoError(t, err)

	assert.Equal(t, "New title", result.Title)
	assert.Equal(t, "Original description", result.Description)
}

func TestDeleteTicket_RecordsActivity(t *testing.T) {
	tk, err := domainticket.ReconstructTicket(
		7, "TKT-42", "Title", "desc",
		vo.PriorityLow, vo.StatusOpen, 1, "", nil,
		time.Now(), time.Now(), nil,
	)
	require.NoError(t, err)

	ticketRepo := &fakeTicketRepo{
		findByIDFn: func(ctx context.Context, id uint) (*domainticket.Ticket, error) { return tk, nil },
		deleteFn:   func(ctx context.Context, id uint) error { return nil },
	}
	activityRepo := &recordingActivityRepo{}
	svc := NewService(ticketRepo, &fakeClientRepo{}, activityRepo, logger.NewLogger())

	require.NoError(t, svc.DeleteTicket(context.Background(), 7, "admin"))
	require.Len(t, activityRepo.entries, 1)
	assert.Contains(t, activityRepo.entries[0].Description, "TKT-42")
}
