package models

import (
	"time"

	"gorm.io/gorm"
)

// Cliente del negocio, sin login propio
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	IsMinor      bool   `gorm:"default:false" json:"is_minor"`
	GuardianName string `gorm:"size:100" json:"guardian_name"`
	Sex          string `gorm:"size:1" json:"sex"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
