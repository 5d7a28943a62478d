package billing

import (
	"fmt"
	"time"

	vo "github.com/opsdesk-inc/opsdesk/internal/domain/billing/valueobjects"
)

// Invoice is a billed amount owed by a client.
type Invoice struct {
	id        uint
	clientID  uint
	amount    float64
	invType   vo.InvoiceType
	status    vo.InvoiceStatus
	dueDate   time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewInvoice(clientID uint, amount float64, invType vo.InvoiceType, dueDate time.Time) (*Invoice, error) {
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if amount < 0 {
		return nil, fmt.Errorf("amount cannot be negative")
	}
	if !invType.IsValid() {
		return nil, fmt.Errorf("invalid invoice type")
	}

	now := time.Now()
	return &Invoice{
		clientID:  clientID,
		amount:    amount,
		invType:   invType,
		status:    vo.InvoiceStatusDraft,
		dueDate:   dueDate,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructInvoice(
	id uint,
	clientID uint,
	amount float64,
	invType vo.InvoiceType,
	status vo.InvoiceStatus,
	dueDate time.Time,
	createdAt, updatedAt time.Time,
) (*Invoice, error) {
	if id == 0 {
		return nil, fmt.Errorf("invoice ID cannot be zero")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if !invType.IsValid() {
		return nil, fmt.Errorf("invalid invoice type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid invoice status")
	}

	return &Invoice{
		id:        id,
		clientID:  clientID,
		amount:    amount,
		invType:   invType,
		status:    status,
		dueDate:   dueDate,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (i *Invoice) ID() uint                  { return i.id }
func (i *Invoice) ClientID() uint            { return i.clientID }
func (i *Invoice) Amount() float64           { return i.amount }
func (i *Invoice) Type() vo.InvoiceType      { return i.invType }
func (i *Invoice) Status() vo.InvoiceStatus  { return i.status }
func (i *Invoice) DueDate() time.Time        { return i.dueDate }
func (i *Invoice) CreatedAt() time.Time      { return i.createdAt }
func (i *Invoice) UpdatedAt() time.Time      { return i.updatedAt }

func (i *Invoice) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("invoice ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("invoice ID cannot be zero")
	}
	i.id = id
	return nil
}

func (i *Invoice) ChangeStatus(status vo.InvoiceStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid invoice status: %s", status)
	}
	i.status = status
	i.updatedAt = time.Now()
	return nil
}

// IsOverdue reports whether the invoice is awaiting payment past its
// due date.
func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.status.IsSent() && i.dueDate.Before(now)
}
