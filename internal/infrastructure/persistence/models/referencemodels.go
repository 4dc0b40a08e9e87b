package models

type VisitModel struct {
	ID         uint   `gorm:"primaryKey"`
	FirstName  string `gorm:"size:100;not null"`
	LastName   string `gorm:"size:100"`
	NationalID string `gorm:"size:30;index"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (VisitModel) TableName() string {
	return "visits"
}

type ResidentModel struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100"`
	Email     string `gorm:"size:255;uniqueIndex"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ResidentModel) TableName() string {
	return "residents"
}

type OrderModel struct {
	ID           uint   `gorm:"primaryKey"`
	SupplierName string `gorm:"size:200;not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (OrderModel) TableName() string {
	return "service_orders"
}
