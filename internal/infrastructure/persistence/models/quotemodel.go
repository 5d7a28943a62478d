package models

type QuoteModel struct {
	ID         uint    `gorm:"primaryKey"`
	Number     string  `gorm:"uniqueIndex;size:50;not null"`
	ClientID   uint    `gorm:"not null;index"`
	Status     string  `gorm:"size:20;not null;index"`
	Subtotal   float64 `gorm:"not null;default:0"`
	TaxRate    float64 `gorm:"not null;default:0"`
	Tax        float64 `gorm:"not null;default:0"`
	Total      float64 `gorm:"not null;default:0"`
	ValidUntil int64   `gorm:"not null"`
	CreatedAt  int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (QuoteModel) TableName() string {
	return "quotes"
}

type QuoteItemModel struct {
	ID          uint    `gorm:"primaryKey"`
	QuoteID     uint    `gorm:"not null;index"`
	ProductID   uint    `gorm:"not null"`
	Description string  `gorm:"size:500"`
	Quantity    int     `gorm:"not null"`
	UnitPrice   float64 `gorm:"not null"`
	CustomPrice float64 `gorm:"not null;default:0"`
	Discount    float64 `gorm:"not null;default:0"`
	Total       float64 `gorm:"not null;default:0"`
}

func (QuoteItemModel) TableName() string {
	return "quote_items"
}
