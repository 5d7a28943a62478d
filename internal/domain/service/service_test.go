package service

import (
	"math"
	"testing"
	"time"
)

func TestNewService_Validation(t *testing.T) {
	tests := []struct {
		name          string
		clientID      uint
		serviceType   string
		capacityLimit float64
		costPerUnit   float64
		wantErr       bool
	}{
		{"valid service", 1, "hosting", 100, 0.5, false},
		{"zero cost is allowed", 1, "backup", 100, 0, false},
		{"zero client", 0, "hosting", 100, 0.5, true},
		{"empty type", 1, "", 100, 0.5, true},
		{"zero capacity", 1, "hosting", 0, 0.5, true},
		{"negative capacity", 1, "hosting", -1, 0.5, true},
		{"negative cost", 1, "hosting", 100, -0.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewService(tt.clientID, tt.serviceType, tt.capacityLimit, tt.costPerUnit)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewService() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Errorf("NewService() error = %v, want nil", err)
				return
			}
			if svc.Status() != StatusActive {
				t.Errorf("new service status = %v, want active", svc.Status())
			}
		})
	}
}

func TestService_UsagePercentage(t *testing.T) {
	tests := []struct {
		name     string
		capacity float64
		usage    float64
		expected float64
	}{
		{"half used", 100, 50, 50},
		{"fully used", 200, 200, 100},
		{"over capacity", 100, 120, 120},
		{"no usage", 100, 0, 0},
		{"zero capacity yields zero", 0, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := reconstructTestService(t, tt.capacity, tt.usage)
			got := svc.UsagePercentage()
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("UsagePercentage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestService_RecordUsage(t *testing.T) {
	svc := reconstructTestService(t, 100, 10)

	if err := svc.RecordUsage(42); err != nil {
		t.Fatalf("RecordUsage() error = %v", err)
	}
	if svc.CurrentUsage() != 42 {
		t.Errorf("CurrentUsage() = %v, want 42", svc.CurrentUsage())
	}

	if err := svc.RecordUsage(-1); err == nil {
		t.Error("RecordUsage(-1) error = nil, want error")
	}
}

func TestService_UpdateLimits(t *testing.T) {
	svc := reconstructTestService(t, 100, 10)

	capacity := 250.0
	cost := 0.75
	if err := svc.UpdateLimits(&capacity, &cost); err != nil {
		t.Fatalf("UpdateLimits() error = %v", err)
	}
	if svc.CapacityLimit() != 250 {
		t.Errorf("CapacityLimit() = %v, want 250", svc.CapacityLimit())
	}
	if svc.CostPerUnit() != 0.75 {
		t.Errorf("CostPerUnit() = %v, want 0.75", svc.CostPerUnit())
	}

	bad := -5.0
	if err := svc.UpdateLimits(&bad, nil); err == nil {
		t.Error("UpdateLimits() error = nil for negative capacity, want error")
	}
}

func TestNewAllocation_Validation(t *testing.T) {
	tests := []struct {
		name      string
		allocated float64
		used      float64
		wantErr   bool
	}{
		{"valid allocation", 100, 60, false},
		{"fully used", 100, 100, false},
		{"unused", 100, 0, false},
		{"zero allocated", 0, 0, true},
		{"negative used", 100, -1, true},
		{"used exceeds allocated", 100, 101, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAllocation(1, 1, tt.allocated, tt.used, 10)
			if tt.wantErr && err == nil {
				t.Errorf("NewAllocation() error = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("NewAllocation() error = %v, want nil", err)
			}
		})
	}
}

func TestAllocation_UtilizationRatio(t *testing.T) {
	tests := []struct {
		name      string
		allocated float64
		used      float64
		expected  float64
	}{
		{"sixty percent", 100, 60, 0.6},
		{"full", 50, 50, 1},
		{"idle", 100, 0, 0},
		{"zero allocated guards division", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Allocation{Allocated: tt.allocated, Used: tt.used}
			got := a.UtilizationRatio()
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("UtilizationRatio() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func reconstructTestService(t *testing.T, capacity, usage float64) *Service {
	t.Helper()
	svc, err := ReconstructService(1, 1, "hosting", capacity, usage, 0.5, StatusActive, time.Now(), time.Now())
	if err != nil {
		t.Fatalf("ReconstructService() error = %v", err)
	}
	return svc
}
