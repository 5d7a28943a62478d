package valueobjects

import "fmt"

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

var validInvoiceStatuses = map[InvoiceStatus]bool{
	InvoiceStatusDraft:     true,
	InvoiceStatusSent:      true,
	InvoiceStatusPaid:      true,
	InvoiceStatusCancelled: true,
}

func (s InvoiceStatus) String() string { return string(s) }

func (s InvoiceStatus) IsValid() bool { return validInvoiceStatuses[s] }

func (s InvoiceStatus) IsPaid() bool      { return s == InvoiceStatusPaid }
func (s InvoiceStatus) IsSent() bool      { return s == InvoiceStatusSent }
func (s InvoiceStatus) IsCancelled() bool { return s == InvoiceStatusCancelled }

func NewInvoiceStatus(s string) (InvoiceStatus, error) {
	is := InvoiceStatus(s)
	if !is.IsValid() {
		return "", fmt.Errorf("invalid invoice status: %s", s)
	}
	return is, nil
}

type InvoiceType string

const (
	InvoiceTypeMonthly InvoiceType = "monthly"
	InvoiceTypeOneTime InvoiceType = "one_time"
)

var validInvoiceTypes = map[InvoiceType]bool{
	InvoiceTypeMonthly: true,
	InvoiceTypeOneTime: true,
}

func (t InvoiceType) String() string { return string(t) }

func (t InvoiceType) IsValid() bool { return validInvoiceTypes[t] }

func (t InvoiceType) IsMonthly() bool { return t == InvoiceTypeMonthly }

func NewInvoiceType(s string) (InvoiceType, error) {
	it := InvoiceType(s)
	if !it.IsValid() {
		return "", fmt.Errorf("invalid invoice type: %s", s)
	}
	return it, nil
}
