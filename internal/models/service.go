package models

import (
	"time"

	"gorm.io/gorm"
)

// Service is a catalog category grouping priced sub-services.
type Service struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	SubServices []SubService `gorm:"foreignKey:ServiceID" json:"sub_services,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// SubService is the bookable unit. Price is in guaraníes (no decimals);
// it is authoritative for new bookings only; existing citas keep the
// price snapshotted on their line items.
type SubService struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ServiceID uint `gorm:"not null;index" json:"service_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Price int64  `gorm:"not null;default:0" json:"price"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
