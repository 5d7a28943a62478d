package service

import "context"

// Filter narrows service list queries.
type Filter struct {
	ClientID *uint
	Type     *string
	Status   *Status
	Page     int
	PageSize int
}

type Repository interface {
	Save(ctx context.Context, s *Service) error
	Update(ctx context.Context, s *Service) error
	FindByID(ctx context.Context, id uint) (*Service, error)
	FindByClientID(ctx context.Context, clientID uint) ([]*Service, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter Filter) ([]*Service, int64, error)
}

// AllocationRepository stores the append-only allocation log.
type AllocationRepository interface {
	Save(ctx context.Context, a *Allocation) error
	// FindRecentByServiceID returns up to limit allocations, newest first.
	FindRecentByServiceID(ctx context.Context, serviceID uint, limit int) ([]*Allocation, error)
}

// MetricRepository stores the append-only metric log.
type MetricRepository interface {
	Save(ctx context.Context, m *Metric) error
	// FindRecentByServiceID returns up to limit metrics, newest first.
	FindRecentByServiceID(ctx context.Context, serviceID uint, limit int) ([]*Metric, error)
}
