package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/application/client/dto"
	domainclient "github.com/opsdesk-inc/opsdesk/internal/domain/client"
	domainservice "github.com/opsdesk-inc/opsdesk/internal/domain/service"
	domainticket "github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
	ticketvo "github.com/opsdesk-inc/opsdesk/internal/domain/ticket/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type fakeClientRepo struct {
	saveFn   func(ctx context.Context, c *domainclient.Client) error
	updateFn func(ctx context.Context, c *domainclient.Client) error
	findFn   func(ctx context.Context, id uint) (*domainclient.Client, error)
	deleteFn func(ctx context.Context, id uint) error
	listFn   func(ctx context.Context, filter domainclient.Filter) ([]*domainclient.Client, int64, error)
}

func (f *fakeClientRepo) Save(ctx context.Context, c *domainclient.Client) error {
	return f.saveFn(ctx, c)
}

func (f *fakeClientRepo) Update(ctx context.Context, c *domainclient.Client) error {
	return f.updateFn(ctx, c)
}

func (f *fakeClientRepo) FindByID(ctx context.Context, id uint) (*domainclient.Client, error) {
	return f.findFn(ctx, id)
}

func (f *fakeClientRepo) Delete(ctx context.Context, id uint) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeClientRepo) List(ctx context.Context, filter domainclient.Filter) ([]*domainclient.Client, int64, error) {
	return f.listFn(ctx, filter)
}

type fakeServiceRepo struct {
	byClientFn func(ctx context.Context, clientID uint) ([]*domainservice.Service, error)
}

func (f *fakeServiceRepo) Save(ctx context.Context, s *domainservice.Service) error   { return nil }
func (f *fakeServiceRepo) Update(ctx context.Context, s *domainservice.Service) error { return nil }
func (f *fakeServiceRepo) FindByID(ctx context.Context, id uint) (*domainservice.Service, error) {
	return nil, errors.NewNotFoundError("service not found")
}
func (f *fakeServiceRepo) FindByClientID(ctx context.Context, clientID uint) ([]*domainservice.Service, error) {
	return f.byClientFn(ctx, clientID)
}
func (f *fakeServiceRepo) Delete(ctx context.Context, id uint) error { return nil }
func (f *fakeServiceRepo) List(ctx context.Context, filter domainservice.Filter) ([]*domainservice.Service, int64, error) {
	return nil, 0, nil
}

type fakeTicketRepo struct {
	openByClientFn func(ctx context.Context, clientID uint) ([]*domainticket.Ticket, error)
}

func (f *fakeTicketRepo) Save(ctx context.Context, t *domainticket.Ticket) error   { return nil }
func (f *fakeTicketRepo) Update(ctx context.Context, t *domainticket.Ticket) error { return nil }
func (f *fakeTicketRepo) FindByID(ctx context.Context, id uint) (*domainticket.Ticket, error) {
	return nil, errors.NewNotFoundError("ticket not found")
}
func (f *fakeTicketRepo) FindOpenByClientID(ctx context.Context, clientID uint) ([]*domainticket.Ticket, error) {
	return f.openByClientFn(ctx, clientID)
}
func (f *fakeTicketRepo) Delete(ctx context.Context, id uint) error { return nil }
func (f *fakeTicketRepo) List(ctx context.Context, filter domainticket.Filter) ([]*domainticket.Ticket, int64, error) {
	return nil, 0, nil
}
func (f *fakeTicketRepo) NextNumber(ctx context.Context) (string, error) { return "TKT-1", nil }

func reconstructTestClient(t *testing.T, id uint, name string) *domainclient.Client {
	t.Helper()
	now := time.Now()
	c, err := domainclient.ReconstructClient(
		id, name, "ops@example.com", "", "Example Corp", "",
		domainclient.StatusActive, now, now,
	)
	require.NoError(t, err)
	return c
}

func reconstructOpenTicket(t *testing.T, id uint, clientID uint) *domainticket.Ticket {
	t.Helper()
	now := time.Now()
	tk, err := domainticket.ReconstructTicket(
		id, "TKT-1", "printer down", "", ticketvo.PriorityMedium,
		ticketvo.StatusOpen, clientID, "", nil, now, now, nil,
	)
	require.NoError(t, err)
	return tk
}

func TestGetClient_IncludesServicesAndOpenTickets(t *testing.T) {
	svc, err := domainservice.NewService(1, "hosting", 100, 0.5)
	require.NoError(t, err)

	clientRepo := &fakeClientRepo{
		findFn: func(ctx context.Context, id uint) (*domainclient.Client, error) {
			return reconstructTestClient(t, id, "Acme"), nil
		},
	}
	serviceRepo := &fakeServiceRepo{
		byClientFn: func(ctx context.Context, clientID uint) ([]*domainservice.Service, error) {
			return []*domainservice.Service{svc}, nil
		},
	}
	ticketRepo := &fakeTicketRepo{
		openByClientFn: func(ctx context.Context, clientID uint) ([]*domainticket.Ticket, error) {
			return []*domainticket.Ticket{reconstructOpenTicket(t, 3, clientID)}, nil
		},
	}

	s := NewService(clientRepo, serviceRepo, ticketRepo, logger.NewLogger())

	result, err := s.GetClient(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Acme", result.Name)
	require.Len(t, result.Services, 1)
	assert.Equal(t, "hosting", result.Services[0].Type)
	require.Len(t, result.OpenTickets, 1)
	assert.Equal(t, "printer down", result.OpenTickets[0].Title)
}

func TestListClients_AttachesIncludesPerClient(t *testing.T) {
	clientRepo := &fakeClientRepo{
		listFn: func(ctx context.Context, filter domainclient.Filter) ([]*domainclient.Client, int64, error) {
			return []*domainclient.Client{
				reconstructTestClient(t, 1, "Acme"),
				reconstructTestClient(t, 2, "Globex"),
			}, 2, nil
		},
	}

	var serviceLookups []uint
	serviceRepo := &fakeServiceRepo{
		byClientFn: func(ctx context.Context, clientID uint) ([]*domainservice.Service, error) {
			serviceLookups = append(serviceLookups, clientID)
			return nil, nil
		},
	}
	var ticketLookups []uint
	ticketRepo := &fakeTicketRepo{
		openByClientFn: func(ctx context.Context, clientID uint) ([]*domainticket.Ticket, error) {
			ticketLookups = append(ticketLookups, clientID)
			return nil, nil
		},
	}

	s := NewService(clientRepo, serviceRepo, ticketRepo, logger.NewLogger())

	results, total, err := s.ListClients(context.Background(), dto.ListClientsRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, results, 2)
	assert.Equal(t, []uint{1, 2}, serviceLookups)
	assert.Equal(t, []uint{1, 2}, ticketLookups)
}

func TestDeleteClient_BlockedByServices(t *testing.T) {
	svc, err := domainservice.NewService(1, "hosting", 100, 0.5)
	require.NoError(t, err)

	clientRepo := &fakeClientRepo{
		findFn: func(ctx context.Context, id uint) (*domainclient.Client, error) {
			return reconstructTestClient(t, id, "Acme"), nil
		},
	}
	serviceRepo := &fakeServiceRepo{
		byClientFn: func(ctx context.Context, clientID uint) ([]*domainservice.Service, error) {
			return []*domainservice.Service{svc}, nil
		},
	}

	s := NewService(clientRepo, serviceRepo, &fakeTicketRepo{}, logger.NewLogger())

	err = s.DeleteClient(context.Background(), 1)
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}
