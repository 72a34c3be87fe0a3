package models

import "time"

type ReminderStatus string

const (
	ReminderPending ReminderStatus = "pending"
	ReminderSent    ReminderStatus = "sent"
	ReminderFailed  ReminderStatus = "failed"
)

// Reminder is a scheduled outbound message. The pending→sent/failed
// transition is driven by the delivery worker, never by booking.
type Reminder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint  `gorm:"not null;index" json:"client_id"`
	CitaID   *uint `gorm:"index" json:"cita_id"`
	Cita     *Cita `gorm:"foreignKey:CitaID" json:"-"`

	Recipient string    `gorm:"size:30;not null" json:"recipient"`
	SendAt    time.Time `gorm:"not null;index" json:"send_at"`

	Status ReminderStatus `gorm:"size:10;default:'pending'" json:"status"`

	// Opaque payloads exchanged with the messaging integration.
	RequestPayload  string `gorm:"type:text" json:"request_payload,omitempty"`
	ResponsePayload string `gorm:"type:text" json:"response_payload,omitempty"`

	ExternalID string `gorm:"size:36" json:"external_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
