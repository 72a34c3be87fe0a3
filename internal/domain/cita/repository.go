package cita

import (
	"context"
	"time"

	"github.com/agendapy/cita-scheduler/internal/models"
)

// Repository is the data-access contract for booking. It carries no business
// rules: validation lives in the use cases.
type Repository interface {
	// -------- Client --------
	GetClientByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	// -------- Catalog --------
	// FindSubServicesByIDs returns only the rows that resolve; the caller
	// diffs against the requested set to detect missing ids.
	FindSubServicesByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.SubService, error)

	// -------- Cita (create / read) --------
	// CreateCita persists the cita together with its line items in one
	// transaction.
	CreateCita(
		ctx context.Context,
		c *models.Cita,
		items []models.CitaSubService,
	) error

	GetCitaByID(
		ctx context.Context,
		id uint,
	) (*models.Cita, error)

	FindByClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Cita, error)

	FindByDateRange(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Cita, error)

	CountByDate(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) (map[string]int64, error)

	// -------- Cita (mutation) --------
	UpdateCita(
		ctx context.Context,
		c *models.Cita,
	) error

	// ReplaceLineItems deletes the cita's current line items, inserts the
	// new set and updates the denormalized total, all in one transaction.
	ReplaceLineItems(
		ctx context.Context,
		citaID uint,
		items []models.CitaSubService,
		total int64,
	) error

	SetCancelled(
		ctx context.Context,
		citaID uint,
		cancelled bool,
	) error
}

// ReminderScheduler is the collaborator that records scheduled reminders.
// Delivery itself belongs to the messaging integration, not to booking.
type ReminderScheduler interface {
	CreateReminder(
		ctx context.Context,
		clientID uint,
		recipient string,
		sendAt time.Time,
		citaID *uint,
	) (*models.Reminder, error)
}
