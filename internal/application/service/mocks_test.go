package service

import (
	"context"

	domainclient "github.com/opsdesk-inc/opsdesk/internal/domain/client"
	"github.com/opsdesk-inc/opsdesk/internal/domain/prospect"
	domainservice "github.com/opsdesk-inc/opsdesk/internal/domain/service"
)

type fakeServiceRepo struct {
	saveFn         func(ctx context.Context, s *domainservice.Service) error
	updateFn       func(ctx context.Context, s *domainservice.Service) error
	findByIDFn     func(ctx context.Context, id uint) (*domainservice.Service, error)
	findByClientFn func(ctx context.Context, clientID uint) ([]*domainservice.Service, error)
	deleteFn       func(ctx context.Context, id uint) error
	listFn         func(ctx context.Context, filter domainservice.Filter) ([]*domainservice.Service, int64, error)
}

func (f *fakeServiceRepo) Save(ctx context.Context, s *domainservice.Service) error {
	return f.saveFn(ctx, s)
}

func (f *fakeServiceRepo) Update(ctx context.Context, s *domainservice.Service) error {
	return f.updateFn(ctx, s)
}

func (f *fakeServiceRepo) FindByID(ctx context.Context, id uint) (*domainservice.Service, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeServiceRepo) FindByClientID(ctx context.Context, clientID uint) ([]*domainservice.Service, error) {
	return f.findByClientFn(ctx, clientID)
}

func (f *fakeServiceRepo) Delete(ctx context.Context, id uint) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeServiceRepo) List(ctx context.Context, filter domainservice.Filter) ([]*domainservice.Service, int64, error) {
	return f.listFn(ctx, filter)
}

type fakeAllocationRepo struct {
	saveFn       func(ctx context.Context, a *domainservice.Allocation) error
	findRecentFn func(ctx context.Context, serviceID uint, limit int) ([]*domainservice.Allocation, error)
}

func (f *fakeAllocationRepo) Save(ctx context.Context, a *domainservice.Allocation) error {
	return f.saveFn(ctx, a)
}

func (f *fakeAllocationRepo) FindRecentByServiceID(ctx context.Context, serviceID uint, limit int) ([]*domainservice.Allocation, error) {
	return f.findRecentFn(ctx, serviceID, limit)
}

type fakeMetricRepo struct {
	saveFn       func(ctx context.Context, m *domainservice.Metric) error
	findRecentFn func(ctx context.Context, serviceID uint, limit int) ([]*domainservice.Metric, error)
}

func (f *fakeMetricRepo) Save(ctx context.Context, m *domainservice.Metric) error {
	return f.saveFn(ctx, m)
}

func (f *fakeMetricRepo) FindRecentByServiceID(ctx context.Context, serviceID uint, limit int) ([]*domainservice.Metric, error) {
	return f.findRecentFn(ctx, serviceID, limit)
}

type fakeClientRepo struct {
	saveFn     func(ctx context.Context, c *domainclient.Client) error
	updateFn   func(ctx context.Context, c *domainclient.Client) error
	findByIDFn func(ctx context.Context, id uint) (*domainclient.Client, error)
	deleteFn   func(ctx context.Context, id uint) error
	listFn     func(ctx context.Context, filter domainclient.Filter) ([]*domainclient.Client, int64, error)
}

func (f *fakeClientRepo) Save(ctx context.Context, c *domainclient.Client) error {
	return f.saveFn(ctx, c)
}

func (f *fakeClientRepo) Update(ctx context.Context, c *domainclient.Client) error {
	return f.updateFn(ctx, c)
}

func (f *fakeClientRepo) FindByID(ctx context.Context, id uint) (*domainclient.Client, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeClientRepo) Delete(ctx context.Context, id uint) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeClientRepo) List(ctx context.Context, filter domainclient.Filter) ([]*domainclient.Client, int64, error) {
	return f.listFn(ctx, filter)
}

type fakeProspectRepo struct {
	listFn           func(ctx context.Context) ([]*prospect.Prospect, error)
	findByInterestFn func(ctx context.Context, serviceType string) ([]*prospect.Prospect, error)
}

func (f *fakeProspectRepo) List(ctx context.Context) ([]*prospect.Prospect, error) {
	return f.listFn(ctx)
}

func (f *fakeProspectRepo) FindByInterest(ctx context.Context, serviceType string) ([]*prospect.Prospect, error) {
	return f.findByInterestFn(ctx, serviceType)
}
