package models

type PermitModel struct {
	ID             uint   `gorm:"primaryKey"`
	QRToken        string `gorm:"uniqueIndex;size:64;not null"`
	PermissionType string `gorm:"size:20;not null;index"`
	Status         string `gorm:"size:20;not null;index"`
	Lifecycle      string `gorm:"size:20;not null;index"`
	Description    string `gorm:"type:text"`
	ValidFrom      int64  `gorm:"not null;index"`
	ValidUntil     int64  `gorm:"not null;index"`
	EntryTime      *int64
	DepartureTime  *int64
	CheckInBy      *uint
	CheckOutBy     *uint
	VisitID        uint  `gorm:"not null;index"`
	ResidentID     uint  `gorm:"not null;index"`
	OrderID        *uint `gorm:"index"`
	Version        int   `gorm:"not null;default:1"`
	CreatedAt      int64 `gorm:"autoCreateTime:milli;not null"`
	CreatedBy      uint  `gorm:"not null"`
	UpdatedAt      int64 `gorm:"autoUpdateTime:milli;not null"`
	UpdatedBy      uint  `gorm:"not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (PermitModel) TableName() string {
	return "entry_permissions"
}
