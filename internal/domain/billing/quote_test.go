package billing

import (
	"math"
	"testing"
	"time"

	vo "github.com/opsdesk-inc/opsdesk/internal/domain/billing/valueobjects"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLineItem_ComputeTotal(t *testing.T) {
	tests := []struct {
		name     string
		item     LineItem
		expected float64
	}{
		{
			name:     "plain quantity times price",
			item:     LineItem{Quantity: 3, UnitPrice: 10},
			expected: 30,
		},
		{
			name:     "discount applied",
			item:     LineItem{Quantity: 2, UnitPrice: 50, Discount: 10},
			expected: 90,
		},
		{
			name:     "custom price overrides unit price",
			item:     LineItem{Quantity: 1, UnitPrice: 100, CustomPrice: 75},
			expected: 75,
		},
		{
			name:     "custom price with discount",
			item:     LineItem{Quantity: 4, UnitPrice: 100, CustomPrice: 25, Discount: 50},
			expected: 50,
		},
		{
			name:     "full discount",
			item:     LineItem{Quantity: 5, UnitPrice: 20, Discount: 100},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.item.ComputeTotal()
			if !almostEqual(got, tt.expected) {
				t.Errorf("ComputeTotal() = %v, want %v", got, tt.expected)
			}
			if !almostEqual(tt.item.Total, tt.expected) {
				t.Errorf("Total field = %v, want %v", tt.item.Total, tt.expected)
			}
		})
	}
}

func TestNewQuote_Validation(t *testing.T) {
	validUntil := time.Now().Add(30 * 24 * time.Hour)

	tests := []struct {
		name     string
		number   string
		clientID uint
		taxRate  float64
		wantErr  bool
	}{
		{"valid quote", "Q-2024-001", 1, 8, false},
		{"zero tax rate", "Q-2024-002", 1, 0, false},
		{"empty number", "", 1, 8, true},
		{"zero client", "Q-2024-003", 0, 8, true},
		{"negative tax rate", "Q-2024-004", 1, -1, true},
		{"tax rate above 100", "Q-2024-005", 1, 101, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewQuote(tt.number, tt.clientID, tt.taxRate, validUntil)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewQuote() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Errorf("NewQuote() error = %v, want nil", err)
				return
			}
			if !q.Status().IsDraft() {
				t.Errorf("new quote status = %v, want draft", q.Status())
			}
		})
	}
}

func TestQuote_ReplaceItems(t *testing.T) {
	validUntil := time.Now().Add(30 * 24 * time.Hour)
	q, err := NewQuote("Q-2024-010", 1, 8, validUntil)
	if err != nil {
		t.Fatalf("NewQuote() error = %v", err)
	}

	items := []LineItem{
		{ProductID: 1, Description: "Managed hosting", Quantity: 2, UnitPrice: 50, Discount: 10},
		{ProductID: 2, Description: "Monitoring", Quantity: 1, UnitPrice: 20},
	}
	if err := q.ReplaceItems(items, 8); err != nil {
		t.Fatalf("ReplaceItems() error = %v", err)
	}

	if !almostEqual(q.Subtotal(), 110) {
		t.Errorf("Subtotal() = %v, want 110", q.Subtotal())
	}
	if !almostEqual(q.Tax(), 8.8) {
		t.Errorf("Tax() = %v, want 8.8", q.Tax())
	}
	if !almostEqual(q.Total(), 118.8) {
		t.Errorf("Total() = %v, want 118.8", q.Total())
	}

	// Replacing with the same items again must not drift the figures.
	if err := q.ReplaceItems(q.Items(), q.TaxRate()); err != nil {
		t.Fatalf("ReplaceItems() second pass error = %v", err)
	}
	if !almostEqual(q.Total(), 118.8) {
		t.Errorf("Total() after second pass = %v, want 118.8", q.Total())
	}
}

func TestQuote_ReplaceItems_Invalid(t *testing.T) {
	validUntil := time.Now().Add(30 * 24 * time.Hour)
	q, _ := NewQuote("Q-2024-011", 1, 0, validUntil)

	tests := []struct {
		name    string
		items   []LineItem
		taxRate float64
	}{
		{"zero quantity", []LineItem{{Quantity: 0, UnitPrice: 10}}, 0},
		{"negative quantity", []LineItem{{Quantity: -1, UnitPrice: 10}}, 0},
		{"discount above 100", []LineItem{{Quantity: 1, UnitPrice: 10, Discount: 150}}, 0},
		{"negative tax rate", []LineItem{{Quantity: 1, UnitPrice: 10}}, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := q.ReplaceItems(tt.items, tt.taxRate); err == nil {
				t.Errorf("ReplaceItems() error = nil, want error")
			}
		})
	}
}

func TestQuote_ChangeStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    vo.QuoteStatus
		to      vo.QuoteStatus
		wantErr bool
	}{
		{"draft to sent", vo.QuoteStatusDraft, vo.QuoteStatusSent, false},
		{"sent to accepted", vo.QuoteStatusSent, vo.QuoteStatusAccepted, false},
		{"sent to expired", vo.QuoteStatusSent, vo.QuoteStatusExpired, false},
		{"same status is a no-op", vo.QuoteStatusDraft, vo.QuoteStatusDraft, false},
		{"draft to accepted", vo.QuoteStatusDraft, vo.QuoteStatusAccepted, true},
		{"draft to expired", vo.QuoteStatusDraft, vo.QuoteStatusExpired, true},
		{"accepted to sent", vo.QuoteStatusAccepted, vo.QuoteStatusSent, true},
		{"expired to sent", vo.QuoteStatusExpired, vo.QuoteStatusSent, true},
		{"accepted to expired", vo.QuoteStatusAccepted, vo.QuoteStatusExpired, true},
	}

	validUntil := time.Now().Add(30 * 24 * time.Hour)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := ReconstructQuote(1, "Q-1", 1, tt.from, 0, 0, 0, 0, validUntil, nil, time.Now(), time.Now())
			if err != nil {
				t.Fatalf("ReconstructQuote() error = %v", err)
			}

			err = q.ChangeStatus(tt.to)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ChangeStatus(%v -> %v) error = nil, want error", tt.from, tt.to)
				}
				return
			}
			if err != nil {
				t.Errorf("ChangeStatus(%v -> %v) error = %v, want nil", tt.from, tt.to, err)
				return
			}
			if q.Status() != tt.to {
				t.Errorf("Status() = %v, want %v", q.Status(), tt.to)
			}
		})
	}
}

func TestQuote_IsActive(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		status     vo.QuoteStatus
		validUntil time.Time
		expected   bool
	}{
		{"sent and valid", vo.QuoteStatusSent, now.Add(time.Hour), true},
		{"sent but past validity", vo.QuoteStatusSent, now.Add(-time.Hour), false},
		{"draft and valid", vo.QuoteStatusDraft, now.Add(time.Hour), false},
		{"accepted and valid", vo.QuoteStatusAccepted, now.Add(time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := ReconstructQuote(1, "Q-1", 1, tt.status, 0, 0, 0, 0, tt.validUntil, nil, now, now)
			if err != nil {
				t.Fatalf("ReconstructQuote() error = %v", err)
			}
			if got := q.IsActive(now); got != tt.expected {
				t.Errorf("IsActive() = %v, want %v", got, tt.expected)
			}
		})
	}
}
