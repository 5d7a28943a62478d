// Package prospect holds potential clients used as read-only input to
// capacity recommendations.
package prospect

import (
	"context"
	"time"
)

// Prospect is a potential client with declared service interests and a
// close probability between 0 and 1.
type Prospect struct {
	ID                 uint
	Name               string
	InterestedServices []string
	Probability        float64
	Status             string
	CreatedAt          time.Time
}

// InterestedIn reports whether the prospect declared interest in the
// given service type.
func (p *Prospect) InterestedIn(serviceType string) bool {
	for _, s := range p.InterestedServices {
		if s == serviceType {
			return true
		}
	}
	return false
}

type Repository interface {
	List(ctx context.Context) ([]*Prospect, error)
	FindByInterest(ctx context.Context, serviceType string) ([]*Prospect, error)
}
