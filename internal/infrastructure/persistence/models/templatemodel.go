package models

type TemplateModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null;index"`
	Author    string `gorm:"size:100;index"`
	Content   string `gorm:"type:text"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TemplateModel) TableName() string {
	return "templates"
}

type ActivityModel struct {
	ID          uint   `gorm:"primaryKey"`
	Type        string `gorm:"size:50;not null;index"`
	Description string `gorm:"size:500;not null"`
	User        string `gorm:"size:100;index"`
	Target      string `gorm:"size:200"`
	Status      string `gorm:"size:20;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (ActivityModel) TableName() string {
	return "activities"
}
