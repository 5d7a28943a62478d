package models

type InvoiceModel struct {
	ID        uint    `gorm:"primaryKey"`
	ClientID  uint    `gorm:"not null;index"`
	Amount    float64 `gorm:"not null"`
	Type      string  `gorm:"size:20;not null;index"`
	Status    string  `gorm:"size:20;not null;index"`
	DueDate   int64   `gorm:"not null;index"`
	CreatedAt int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (InvoiceModel) TableName() string {
	return "invoices"
}
