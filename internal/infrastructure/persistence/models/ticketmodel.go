package models

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Number      string `gorm:"uniqueIndex;size:50;not null"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	Priority    string `gorm:"size:20;not null;index"`
	Status      string `gorm:"size:20;not null;index"`
	ClientID    uint   `gorm:"not null;index"`
	Assignee    string `gorm:"size:100;index"`
	Tags        string `gorm:"type:json"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
	ClosedAt    *int64
}

func (TicketModel) TableName() string {
	return "tickets"
}
