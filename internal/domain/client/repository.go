package client

import "context"

// Filter narrows client list queries.
type Filter struct {
	Status   *Status
	Search   string
	Page     int
	PageSize int
}

type Repository interface {
	Save(ctx context.Context, c *Client) error
	Update(ctx context.Context, c *Client) error
	FindByID(ctx context.Context, id uint) (*Client, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter Filter) ([]*Client, int64, error)
}
