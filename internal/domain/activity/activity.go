// Package activity records the audit trail written as a side effect of
// other mutations and displayed in the activity feed.
package activity

import (
	"context"
	"time"
)

const (
	TypeTicket   = "ticket"
	TypeTemplate = "template"
	TypeQuote    = "quote"

	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Activity is one append-only audit entry.
type Activity struct {
	ID          uint
	Type        string
	Description string
	User        string
	Target      string
	Status      string
	CreatedAt   time.Time
}

func New(activityType, description, user, target string) *Activity {
	return &Activity{
		Type:        activityType,
		Description: description,
		User:        user,
		Target:      target,
		Status:      StatusCompleted,
		CreatedAt:   time.Now(),
	}
}

// Filter narrows activity feed queries.
type Filter struct {
	Type   *string
	User   *string
	Status *string
	Limit  int
}

type Repository interface {
	Save(ctx context.Context, a *Activity) error
	// List returns activities newest first, capped by filter.Limit.
	List(ctx context.Context, filter Filter) ([]*Activity, error)
}
