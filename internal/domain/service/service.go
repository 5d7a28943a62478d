package service

import (
	"fmt"
	"time"
)

// Service is a subscribed offering provisioned for a client, carrying a
// capacity limit and the usage level reported by the most recent
// allocation.
type Service struct {
	id            uint
	clientID      uint
	serviceType   string
	capacityLimit float64
	currentUsage  float64
	costPerUnit   float64
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

func NewService(clientID uint, serviceType string, capacityLimit, costPerUnit float64) (*Service, error) {
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if serviceType == "" {
		return nil, fmt.Errorf("service type is required")
	}
	if capacityLimit <= 0 {
		return nil, fmt.Errorf("capacity limit must be positive")
	}
	if costPerUnit < 0 {
		return nil, fmt.Errorf("cost per unit cannot be negative")
	}

	now := time.Now()
	return &Service{
		clientID:      clientID,
		serviceType:   serviceType,
		capacityLimit: capacityLimit,
		costPerUnit:   costPerUnit,
		status:        StatusActive,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructService(
	id uint,
	clientID uint,
	serviceType string,
	capacityLimit, currentUsage, costPerUnit float64,
	status Status,
	createdAt, updatedAt time.Time,
) (*Service, error) {
	if id == 0 {
		return nil, fmt.Errorf("service ID cannot be zero")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Service{
		id:            id,
		clientID:      clientID,
		serviceType:   serviceType,
		capacityLimit: capacityLimit,
		currentUsage:  currentUsage,
		costPerUnit:   costPerUnit,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (s *Service) ID() uint               { return s.id }
func (s *Service) ClientID() uint         { return s.clientID }
func (s *Service) Type() string           { return s.serviceType }
func (s *Service) CapacityLimit() float64 { return s.capacityLimit }
func (s *Service) CurrentUsage() float64  { return s.currentUsage }
func (s *Service) CostPerUnit() float64   { return s.costPerUnit }
func (s *Service) Status() Status         { return s.status }
func (s *Service) CreatedAt() time.Time   { return s.createdAt }
func (s *Service) UpdatedAt() time.Time   { return s.updatedAt }

func (s *Service) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("service ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("service ID cannot be zero")
	}
	s.id = id
	return nil
}

// UsagePercentage reports current usage as a fraction of capacity,
// scaled to 0-100. Zero capacity yields zero to avoid division by zero.
func (s *Service) UsagePercentage() float64 {
	if s.capacityLimit <= 0 {
		return 0
	}
	return s.currentUsage / s.capacityLimit * 100
}

// RecordUsage overwrites the denormalized usage column with the used
// value of the latest allocation. The allocation log stays the source
// of truth; this is a read optimization only.
func (s *Service) RecordUsage(used float64) error {
	if used < 0 {
		return fmt.Errorf("usage cannot be negative")
	}
	s.currentUsage = used
	s.updatedAt = time.Now()
	return nil
}

func (s *Service) UpdateLimits(capacityLimit, costPerUnit *float64) error {
	if capacityLimit != nil {
		if *capacityLimit <= 0 {
			return fmt.Errorf("capacity limit must be positive")
		}
		s.capacityLimit = *capacityLimit
	}
	if costPerUnit != nil {
		if *costPerUnit < 0 {
			return fmt.Errorf("cost per unit cannot be negative")
		}
		s.costPerUnit = *costPerUnit
	}
	s.updatedAt = time.Now()
	return nil
}

func (s *Service) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid service status: %s", status)
	}
	s.status = status
	s.updatedAt = time.Now()
	return nil
}
