package models

import "gorm.io/datatypes"

type ProspectModel struct {
	ID                 uint           `gorm:"primaryKey"`
	Name               string         `gorm:"size:200;not null"`
	InterestedServices datatypes.JSON `gorm:"column:interested_services"`
	Probability        float64        `gorm:"not null;default:0"`
	Status             string         `gorm:"size:20;not null;index"`
	CreatedAt          int64          `gorm:"autoCreateTime:milli;not null"`
}

func (ProspectModel) TableName() string {
	return "potential_clients"
}
