package billing

import (
	"fmt"
	"time"

	vo "github.com/opsdesk-inc/opsdesk/internal/domain/billing/valueobjects"
)

// LineItem is one priced row of a quote. Total is derived, never taken
// from the caller.
type LineItem struct {
	ProductID   uint
	Description string
	Quantity    int
	UnitPrice   float64
	CustomPrice float64
	Discount    float64
	Total       float64
}

// ComputeTotal derives the line total:
// (unitPrice - unitPrice*discount/100) * quantity, where unitPrice is
// the custom price when one is set.
func (li *LineItem) ComputeTotal() float64 {
	price := li.UnitPrice
	if li.CustomPrice > 0 {
		price = li.CustomPrice
	}
	discounted := price - price*li.Discount/100
	li.Total = discounted * float64(li.Quantity)
	return li.Total
}

// Quote is a proposed, itemized price offer to a client. quoteNumber is
// the natural key; all monetary fields are derived from the items.
type Quote struct {
	id         uint
	number     string
	clientID   uint
	status     vo.QuoteStatus
	subtotal   float64
	taxRate    float64
	tax        float64
	total      float64
	validUntil time.Time
	items      []LineItem
	createdAt  time.Time
	updatedAt  time.Time
}

func NewQuote(number string, clientID uint, taxRate float64, validUntil time.Time) (*Quote, error) {
	if number == "" {
		return nil, fmt.Errorf("quote number is required")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if taxRate < 0 || taxRate > 100 {
		return nil, fmt.Errorf("tax rate must be between 0 and 100")
	}

	now := time.Now()
	return &Quote{
		number:     number,
		clientID:   clientID,
		status:     vo.QuoteStatusDraft,
		taxRate:    taxRate,
		validUntil: validUntil,
		items:      []LineItem{},
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructQuote(
	id uint,
	number string,
	clientID uint,
	status vo.QuoteStatus,
	subtotal, taxRate, tax, total float64,
	validUntil time.Time,
	items []LineItem,
	createdAt, updatedAt time.Time,
) (*Quote, error) {
	if id == 0 {
		return nil, fmt.Errorf("quote ID cannot be zero")
	}
	if number == "" {
		return nil, fmt.Errorf("quote number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if items == nil {
		items = []LineItem{}
	}

	return &Quote{
		id:         id,
		number:     number,
		clientID:   clientID,
		status:     status,
		subtotal:   subtotal,
		taxRate:    taxRate,
		tax:        tax,
		total:      total,
		validUntil: validUntil,
		items:      items,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (q *Quote) ID() uint               { return q.id }
func (q *Quote) Number() string         { return q.number }
func (q *Quote) ClientID() uint         { return q.clientID }
func (q *Quote) Status() vo.QuoteStatus { return q.status }
func (q *Quote) Subtotal() float64      { return q.subtotal }
func (q *Quote) TaxRate() float64       { return q.taxRate }
func (q *Quote) Tax() float64           { return q.tax }
func (q *Quote) Total() float64         { return q.total }
func (q *Quote) ValidUntil() time.Time  { return q.validUntil }
func (q *Quote) CreatedAt() time.Time   { return q.createdAt }
func (q *Quote) UpdatedAt() time.Time   { return q.updatedAt }

func (q *Quote) Items() []LineItem {
	itemsCopy := make([]LineItem, len(q.items))
	copy(itemsCopy, q.items)
	return itemsCopy
}

func (q *Quote) SetID(id uint) error {
	if q.id != 0 {
		return fmt.Errorf("quote ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("quote ID cannot be zero")
	}
	q.id = id
	return nil
}

// ReplaceItems swaps the full item set and recomputes every derived
// figure. Persisting the swap atomically is the repository's job.
func (q *Quote) ReplaceItems(items []LineItem, taxRate float64) error {
	if taxRate < 0 || taxRate > 100 {
		return fmt.Errorf("tax rate must be between 0 and 100")
	}
	for i := range items {
		if items[i].Quantity <= 0 {
			return fmt.Errorf("item %d: quantity must be positive", i)
		}
		if items[i].Discount < 0 || items[i].Discount > 100 {
			return fmt.Errorf("item %d: discount must be between 0 and 100", i)
		}
	}

	q.taxRate = taxRate
	q.items = items
	q.recompute()
	q.updatedAt = time.Now()
	return nil
}

// recompute folds the line totals into subtotal, tax, and total.
func (q *Quote) recompute() {
	subtotal := 0.0
	for i := range q.items {
		subtotal += q.items[i].ComputeTotal()
	}
	q.subtotal = subtotal
	q.tax = subtotal * q.taxRate / 100
	q.total = q.subtotal + q.tax
}

func (q *Quote) ChangeStatus(newStatus vo.QuoteStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid quote status: %s", newStatus)
	}
	if q.status == newStatus {
		return nil
	}
	if !q.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition quote from %s to %s", q.status, newStatus)
	}
	q.status = newStatus
	q.updatedAt = time.Now()
	return nil
}

func (q *Quote) SetValidUntil(validUntil time.Time) {
	q.validUntil = validUntil
	q.updatedAt = time.Now()
}

// IsActive reports whether the quote counts toward the active-quotes
// figure: sent and not yet past its validity date.
func (q *Quote) IsActive(now time.Time) bool {
	return q.status.IsSent() && q.validUntil.After(now)
}
