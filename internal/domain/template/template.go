// Package template holds reusable document definitions used for
// generating quotes and client communications.
package template

import (
	"context"
	"fmt"
	"time"
)

type Template struct {
	ID        uint
	Name      string
	Author    string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func New(name, author, content string) (*Template, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("name exceeds maximum length of 200 characters")
	}

	now := time.Now()
	return &Template{
		Name:      name,
		Author:    author,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Filter narrows template list queries.
type Filter struct {
	Author   *string
	Page     int
	PageSize int
}

type Repository interface {
	Save(ctx context.Context, t *Template) error
	Update(ctx context.Context, t *Template) error
	FindByID(ctx context.Context, id uint) (*Template, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter Filter) ([]*Template, int64, error)
}
