package models

type ClientModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null;index"`
	Email     string `gorm:"size:255"`
	Phone     string `gorm:"size:50"`
	Company   string `gorm:"size:200"`
	Address   string `gorm:"size:500"`
	Status    string `gorm:"size:20;not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ClientModel) TableName() string {
	return "clients"
}
