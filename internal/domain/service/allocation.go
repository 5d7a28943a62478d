package service

import (
	"fmt"
	"time"
)

// Allocation is an append-only record of resource capacity assigned to a
// client's service at a point in time.
type Allocation struct {
	ID         uint
	ServiceID  uint
	ClientID   uint
	Allocated  float64
	Used       float64
	Cost       float64
	RecordedAt time.Time
}

func NewAllocation(serviceID, clientID uint, allocated, used, cost float64) (*Allocation, error) {
	if serviceID == 0 {
		return nil, fmt.Errorf("service ID is required")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if allocated <= 0 {
		return nil, fmt.Errorf("allocated amount must be positive")
	}
	if used < 0 {
		return nil, fmt.Errorf("used amount cannot be negative")
	}
	if used > allocated {
		return nil, fmt.Errorf("used amount cannot exceed allocated amount")
	}

	return &Allocation{
		ServiceID:  serviceID,
		ClientID:   clientID,
		Allocated:  allocated,
		Used:       used,
		Cost:       cost,
		RecordedAt: time.Now(),
	}, nil
}

// UtilizationRatio is used/allocated, guarding zero allocation.
func (a *Allocation) UtilizationRatio() float64 {
	if a.Allocated <= 0 {
		return 0
	}
	return a.Used / a.Allocated
}

// Metric is an append-only health sample for a service.
type Metric struct {
	ID           uint
	ServiceID    uint
	CPUUsage     float64
	MemoryUsage  float64
	StorageUsage float64
	Uptime       float64
	RecordedAt   time.Time
}

func NewMetric(serviceID uint, cpuUsage, memoryUsage, storageUsage, uptime float64) (*Metric, error) {
	if serviceID == 0 {
		return nil, fmt.Errorf("service ID is required")
	}

	return &Metric{
		ServiceID:    serviceID,
		CPUUsage:     cpuUsage,
		MemoryUsage:  memoryUsage,
		StorageUsage: storageUsage,
		Uptime:       uptime,
		RecordedAt:   time.Now(),
	}, nil
}
