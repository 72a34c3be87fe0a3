package dto

import (
	"time"

	"github.com/agendapy/cita-scheduler/internal/models"
)

type LineItemDTO struct {
	SubServiceID uint   `json:"sub_service_id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
}

type ReminderDTO struct {
	ID        uint      `json:"id"`
	Recipient string    `json:"recipient"`
	SendAt    time.Time `json:"send_at"`
	Status    string    `json:"status"`
}

// CitaDTO is the joined representation returned to callers. Line item prices
// are the booking-time snapshots, never the live catalog prices.
type CitaDTO struct {
	ID          uint          `json:"id"`
	ClientID    uint          `json:"client_id"`
	ClientName  string        `json:"client_name,omitempty"`
	ScheduledAt time.Time     `json:"scheduled_at"`
	TotalAmount int64         `json:"total_amount"`
	Cancelled   bool          `json:"cancelled"`
	Notes       string        `json:"notes,omitempty"`
	LineItems   []LineItemDTO `json:"line_items"`
	Reminder    *ReminderDTO  `json:"reminder,omitempty"`
}

func NewCitaDTO(c *models.Cita) CitaDTO {
	items := make([]LineItemDTO, 0, len(c.SubServices))
	for _, li := range c.SubServices {
		items = append(items, LineItemDTO{
			SubServiceID: li.SubServiceID,
			Name:         li.SubService.Name,
			Price:        li.Price,
		})
	}

	out := CitaDTO{
		ID:          c.ID,
		ClientID:    c.ClientID,
		ClientName:  c.Client.Name,
		ScheduledAt: c.ScheduledAt,
		TotalAmount: c.TotalAmount,
		Cancelled:   c.Cancelled,
		Notes:       c.Notes,
		LineItems:   items,
	}

	if c.Reminder != nil {
		out.Reminder = &ReminderDTO{
			ID:        c.Reminder.ID,
			Recipient: c.Reminder.Recipient,
			SendAt:    c.Reminder.SendAt,
			Status:    string(c.Reminder.Status),
		}
	}

	return out
}

func NewCitaDTOs(citas []models.Cita) []CitaDTO {
	out := make([]CitaDTO, 0, len(citas))
	for i := range citas {
		out = append(out, NewCitaDTO(&citas[i]))
	}
	return out
}
