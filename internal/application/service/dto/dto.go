package dto

import (
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/service"
)

type ServiceDTO struct {
	ID              uint      `json:"id"`
	ClientID        uint      `json:"client_id"`
	Type            string    `json:"type"`
	CapacityLimit   float64   `json:"capacity_limit"`
	CurrentUsage    float64   `json:"current_usage"`
	UsagePercentage float64   `json:"usage_percentage"`
	CostPerUnit     float64   `json:"cost_per_unit"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateServiceRequest struct {
	ClientID      uint    `json:"client_id" binding:"required"`
	Type          string  `json:"type" binding:"required,max=100"`
	CapacityLimit float64 `json:"capacity_limit" binding:"required,gt=0"`
	CostPerUnit   float64 `json:"cost_per_unit" binding:"gte=0"`
}

type UpdateServiceRequest struct {
	CapacityLimit *float64 `json:"capacity_limit" binding:"omitempty,gt=0"`
	CostPerUnit   *float64 `json:"cost_per_unit" binding:"omitempty,gte=0"`
	Status        string   `json:"status" binding:"omitempty,oneof=active suspended retired"`
}

type ListServicesRequest struct {
	ClientID *uint  `form:"client_id"`
	Type     string `form:"type"`
	Status   string `form:"status" binding:"omitempty,oneof=active suspended retired"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type RecordAllocationRequest struct {
	Allocated float64 `json:"allocated" binding:"required,gt=0"`
	Used      float64 `json:"used" binding:"gte=0"`
	Cost      float64 `json:"cost" binding:"gte=0"`
}

type RecordMetricRequest struct {
	CPUUsage     float64 `json:"cpu_usage" binding:"gte=0,lte=100"`
	MemoryUsage  float64 `json:"memory_usage" binding:"gte=0,lte=100"`
	StorageUsage float64 `json:"storage_usage" binding:"gte=0,lte=100"`
	Uptime       float64 `json:"uptime" binding:"gte=0,lte=100"`
}

type AllocationDTO struct {
	ID         uint      `json:"id"`
	ServiceID  uint      `json:"service_id"`
	ClientID   uint      `json:"client_id"`
	Allocated  float64   `json:"allocated"`
	Used       float64   `json:"used"`
	Cost       float64   `json:"cost"`
	RecordedAt time.Time `json:"recorded_at"`
}

type MetricDTO struct {
	ID           uint      `json:"id"`
	ServiceID    uint      `json:"service_id"`
	CPUUsage     float64   `json:"cpu_usage"`
	MemoryUsage  float64   `json:"memory_usage"`
	StorageUsage float64   `json:"storage_usage"`
	Uptime       float64   `json:"uptime"`
	RecordedAt   time.Time `json:"recorded_at"`
}

// RecommendationDTO is one row of the capacity recommendation report.
type RecommendationDTO struct {
	Type             string  `json:"type"`
	Impact           string  `json:"impact"`
	Message          string  `json:"message"`
	EstimatedSavings float64 `json:"estimated_savings,omitempty"`
}

// ResourceReportDTO summarizes a service's allocation history and
// current utilization.
type ResourceReportDTO struct {
	Service         *ServiceDTO         `json:"service"`
	UsagePercentage float64             `json:"usage_percentage"`
	AverageUsage    float64             `json:"average_usage"`
	PeakUsage       float64             `json:"peak_usage"`
	Allocations     []*AllocationDTO    `json:"allocations"`
	Metrics         []*MetricDTO        `json:"metrics"`
	Recommendations []RecommendationDTO `json:"recommendations"`
}

func ToServiceDTO(s *service.Service) *ServiceDTO {
	if s == nil {
		return nil
	}
	return &ServiceDTO{
		ID:              s.ID(),
		ClientID:        s.ClientID(),
		Type:            s.Type(),
		CapacityLimit:   s.CapacityLimit(),
		CurrentUsage:    s.CurrentUsage(),
		UsagePercentage: s.UsagePercentage(),
		CostPerUnit:     s.CostPerUnit(),
		Status:          s.Status().String(),
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
	}
}

func ToServiceDTOs(services []*service.Service) []*ServiceDTO {
	dtos := make([]*ServiceDTO, len(services))
	for i, s := range services {
		dtos[i] = ToServiceDTO(s)
	}
	return dtos
}

func ToAllocationDTO(a *service.Allocation) *AllocationDTO {
	return &AllocationDTO{
		ID:         a.ID,
		ServiceID:  a.ServiceID,
		ClientID:   a.ClientID,
		Allocated:  a.Allocated,
		Used:       a.Used,
		Cost:       a.Cost,
		RecordedAt: a.RecordedAt,
	}
}

func ToAllocationDTOs(allocations []*service.Allocation) []*AllocationDTO {
	dtos := make([]*AllocationDTO, len(allocations))
	for i, a := range allocations {
		dtos[i] = ToAllocationDTO(a)
	}
	return dtos
}

func ToMetricDTO(m *service.Metric) *MetricDTO {
	return &MetricDTO{
		ID:           m.ID,
		ServiceID:    m.ServiceID,
		CPUUsage:     m.CPUUsage,
		MemoryUsage:  m.MemoryUsage,
		StorageUsage: m.StorageUsage,
		Uptime:       m.Uptime,
		RecordedAt:   m.RecordedAt,
	}
}

func ToMetricDTOs(metrics []*service.Metric) []*MetricDTO {
	dtos := make([]*MetricDTO, len(metrics))
	for i, m := range metrics {
		dtos[i] = ToMetricDTO(m)
	}
	return dtos
}
