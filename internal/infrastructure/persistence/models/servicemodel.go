package models

type ServiceModel struct {
	ID            uint    `gorm:"primaryKey"`
	ClientID      uint    `gorm:"not null;index"`
	Type          string  `gorm:"size:100;not null;index"`
	CapacityLimit float64 `gorm:"not null"`
	CurrentUsage  float64 `gorm:"not null;default:0"`
	CostPerUnit   float64 `gorm:"not null;default:0"`
	Status        string  `gorm:"size:20;not null;index"`
	CreatedAt     int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (ServiceModel) TableName() string {
	return "services"
}

type AllocationModel struct {
	ID         uint    `gorm:"primaryKey"`
	ServiceID  uint    `gorm:"not null;index"`
	ClientID   uint    `gorm:"not null;index"`
	Allocated  float64 `gorm:"not null"`
	Used       float64 `gorm:"not null"`
	Cost       float64 `gorm:"not null;default:0"`
	RecordedAt int64   `gorm:"not null;index"`
}

func (AllocationModel) TableName() string {
	return "resource_allocations"
}

type MetricModel struct {
	ID           uint    `gorm:"primaryKey"`
	ServiceID    uint    `gorm:"not null;index"`
	CPUUsage     float64 `gorm:"column:cpu_usage"`
	MemoryUsage  float64
	StorageUsage float64
	Uptime       float64
	RecordedAt   int64 `gorm:"not null;index"`
}

func (MetricModel) TableName() string {
	return "service_metrics"
}
