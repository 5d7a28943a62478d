package valueobjects

import "fmt"

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusExpired  QuoteStatus = "expired"
)

var validQuoteStatuses = map[QuoteStatus]bool{
	QuoteStatusDraft:    true,
	QuoteStatusSent:     true,
	QuoteStatusAccepted: true,
	QuoteStatusExpired:  true,
}

var quoteStatusTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusDraft: {
		QuoteStatusSent,
	},
	QuoteStatusSent: {
		QuoteStatusAccepted,
		QuoteStatusExpired,
	},
}

func (s QuoteStatus) String() string { return string(s) }

func (s QuoteStatus) IsValid() bool { return validQuoteStatuses[s] }

func (s QuoteStatus) CanTransitionTo(newStatus QuoteStatus) bool {
	allowed, ok := quoteStatusTransitions[s]
	if !ok {
		return false
	}
	for _, a := range allowed {
		if a == newStatus {
			return true
		}
	}
	return false
}

func (s QuoteStatus) IsDraft() bool    { return s == QuoteStatusDraft }
func (s QuoteStatus) IsSent() bool     { return s == QuoteStatusSent }
func (s QuoteStatus) IsAccepted() bool { return s == QuoteStatusAccepted }
func (s QuoteStatus) IsExpired() bool  { return s == QuoteStatusExpired }

func NewQuoteStatus(s string) (QuoteStatus, error) {
	qs := QuoteStatus(s)
	if !qs.IsValid() {
		return "", fmt.Errorf("invalid quote status: %s", s)
	}
	return qs, nil
}
