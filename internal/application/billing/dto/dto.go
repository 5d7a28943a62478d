package dto

import (
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/billing"
	"github.com/opsdesk-inc/opsdesk/internal/shared/constants"
)

type LineItemDTO struct {
	ProductID   uint    `json:"product_id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	CustomPrice float64 `json:"custom_price,omitempty"`
	Discount    float64 `json:"discount,omitempty"`
	Total       float64 `json:"total"`
}

type QuoteDTO struct {
	ID         uint          `json:"id"`
	Number     string        `json:"number"`
	ClientID   uint          `json:"client_id"`
	Status     string        `json:"status"`
	Subtotal   float64       `json:"subtotal"`
	TaxRate    float64       `json:"tax_rate"`
	Tax        float64       `json:"tax"`
	Total      float64       `json:"total"`
	ValidUntil string        `json:"valid_until"`
	Items      []LineItemDTO `json:"items"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

type QuoteItemRequest struct {
	ProductID   uint    `json:"product_id" binding:"required"`
	Description string  `json:"description" binding:"max=500"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	CustomPrice float64 `json:"custom_price" binding:"gte=0"`
	Discount    float64 `json:"discount" binding:"gte=0,lte=100"`
}

type CreateQuoteRequest struct {
	Number     string             `json:"number" binding:"required,max=50"`
	ClientID   uint               `json:"client_id" binding:"required"`
	TaxRate    float64            `json:"tax_rate" binding:"gte=0,lte=100"`
	ValidUntil string             `json:"valid_until" binding:"required"`
	Items      []QuoteItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateQuoteRequest struct {
	TaxRate    *float64           `json:"tax_rate" binding:"omitempty,gte=0,lte=100"`
	ValidUntil string             `json:"valid_until" binding:"omitempty"`
	Items      []QuoteItemRequest `json:"items" binding:"required,min=1,dive"`
}

type ChangeQuoteStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft sent accepted expired"`
}

type SendQuoteRequest struct {
	// Recipient override; defaults to the client's email on file.
	Email string `json:"email" binding:"omitempty,email"`
}

type ListQuotesRequest struct {
	ClientID *uint  `form:"client_id"`
	Status   string `form:"status" binding:"omitempty,oneof=draft sent accepted expired"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type InvoiceDTO struct {
	ID        uint      `json:"id"`
	ClientID  uint      `json:"client_id"`
	Amount    float64   `json:"amount"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	DueDate   string    `json:"due_date"`
	Overdue   bool      `json:"overdue"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateInvoiceRequest struct {
	ClientID uint    `json:"client_id" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Type     string  `json:"type" binding:"required,oneof=monthly one_time"`
	Status   string  `json:"status" binding:"omitempty,oneof=draft sent paid cancelled"`
	DueDate  string  `json:"due_date" binding:"required"`
}

type ListInvoicesRequest struct {
	ClientID *uint  `form:"client_id"`
	Status   string `form:"status" binding:"omitempty,oneof=draft sent paid cancelled"`
	Type     string `form:"type" binding:"omitempty,oneof=monthly one_time"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type StatsRequest struct {
	ClientID *uint `form:"client_id"`
}

// StatsDTO is the billing dashboard aggregate.
type StatsDTO struct {
	TotalRevenue     float64       `json:"total_revenue"`
	MonthlyRecurring float64       `json:"monthly_recurring"`
	PendingAmount    float64       `json:"pending_amount"`
	OverdueAmount    float64       `json:"overdue_amount"`
	ActiveQuotes     int           `json:"active_quotes"`
	ConversionRate   float64       `json:"conversion_rate"`
	RecentQuotes     []*QuoteDTO   `json:"recent_quotes,omitempty"`
	RecentInvoices   []*InvoiceDTO `json:"recent_invoices,omitempty"`
}

func ToLineItemDTO(li billing.LineItem) LineItemDTO {
	return LineItemDTO{
		ProductID:   li.ProductID,
		Description: li.Description,
		Quantity:    li.Quantity,
		UnitPrice:   li.UnitPrice,
		CustomPrice: li.CustomPrice,
		Discount:    li.Discount,
		Total:       li.Total,
	}
}

func ToQuoteDTO(q *billing.Quote) *QuoteDTO {
	if q == nil {
		return nil
	}

	items := make([]LineItemDTO, len(q.Items()))
	for i, li := range q.Items() {
		items[i] = ToLineItemDTO(li)
	}

	return &QuoteDTO{
		ID:         q.ID(),
		Number:     q.Number(),
		ClientID:   q.ClientID(),
		Status:     q.Status().String(),
		Subtotal:   q.Subtotal(),
		TaxRate:    q.TaxRate(),
		Tax:        q.Tax(),
		Total:      q.Total(),
		ValidUntil: q.ValidUntil().Format(constants.DateFormat),
		Items:      items,
		CreatedAt:  q.CreatedAt(),
		UpdatedAt:  q.UpdatedAt(),
	}
}

func ToQuoteDTOs(quotes []*billing.Quote) []*QuoteDTO {
	dtos := make([]*QuoteDTO, len(quotes))
	for i, q := range quotes {
		dtos[i] = ToQuoteDTO(q)
	}
	return dtos
}

func ToInvoiceDTO(i *billing.Invoice, now time.Time) *InvoiceDTO {
	if i == nil {
		return nil
	}
	return &InvoiceDTO{
		ID:        i.ID(),
		ClientID:  i.ClientID(),
		Amount:    i.Amount(),
		Type:      i.Type().String(),
		Status:    i.Status().String(),
		DueDate:   i.DueDate().Format(constants.DateFormat),
		Overdue:   i.IsOverdue(now),
		CreatedAt: i.CreatedAt(),
		UpdatedAt: i.UpdatedAt(),
	}
}

func ToInvoiceDTOs(invoices []*billing.Invoice, now time.Time) []*InvoiceDTO {
	dtos := make([]*InvoiceDTO, len(invoices))
	for i, inv := range invoices {
		dtos[i] = ToInvoiceDTO(inv, now)
	}
	return dtos
}
