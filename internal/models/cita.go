package models

import "time"

type Cita struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null;index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ScheduledAt time.Time `gorm:"not null;index" json:"scheduled_at"`

	// Derived: sum of the line items' snapshotted prices. Kept consistent
	// in the same transaction whenever the line items change.
	TotalAmount int64 `gorm:"not null;default:0" json:"total_amount"`

	// Business cancellation, not a soft delete. A cancelled cita keeps its
	// full line-item history.
	Cancelled bool `gorm:"default:false" json:"cancelled"`

	Notes             string `gorm:"size:255" json:"notes"`
	ReminderRequested bool   `gorm:"default:false" json:"reminder_requested"`

	SubServices []CitaSubService `gorm:"foreignKey:CitaID;constraint:OnDelete:CASCADE;" json:"sub_services,omitempty"`
	Reminder    *Reminder        `gorm:"foreignKey:CitaID" json:"reminder,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CitaSubService links a cita to one chosen sub-service, snapshotting the
// price at booking time. Rows are replaced wholesale on edit, never patched.
type CitaSubService struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	CitaID uint `gorm:"not null;index" json:"cita_id"`

	SubServiceID uint       `gorm:"not null;index" json:"sub_service_id"`
	SubService   SubService `json:"sub_service"`

	Price int64 `gorm:"not null" json:"price"`
}
