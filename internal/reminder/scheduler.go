package reminder

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/agendapy/cita-scheduler/internal/domain/cita"
	"github.com/agendapy/cita-scheduler/internal/models"
)

// Scheduler records reminders for later delivery. Booking talks to it
// through the domain.ReminderScheduler interface.
type Scheduler struct {
	db *gorm.DB
}

func NewScheduler(db *gorm.DB) *Scheduler {
	return &Scheduler{db: db}
}

func (s *Scheduler) CreateReminder(
	ctx context.Context,
	clientID uint,
	recipient string,
	sendAt time.Time,
	citaID *uint,
) (*models.Reminder, error) {

	rem := models.Reminder{
		ClientID:   clientID,
		CitaID:     citaID,
		Recipient:  recipient,
		SendAt:     sendAt,
		Status:     models.ReminderPending,
		ExternalID: uuid.NewString(),
	}

	if err := s.db.WithContext(ctx).Create(&rem).Error; err != nil {
		return nil, err
	}

	return &rem, nil
}

// --------------------------------------------------
// Delivery-side store (used by the worker)
// --------------------------------------------------

// FindDue returns pending reminders whose send time has arrived. Reminders
// older than the lookback window are skipped so a long outage does not
// flood clients with stale messages.
func (s *Scheduler) FindDue(
	ctx context.Context,
	now time.Time,
	lookback time.Duration,
) ([]models.Reminder, error) {

	var due []models.Reminder
	if err := s.db.WithContext(ctx).
		Preload("Cita").
		Where(
			"status = ? AND send_at <= ? AND send_at > ?",
			models.ReminderPending, now, now.Add(-lookback),
		).
		Order("send_at ASC").
		Find(&due).Error; err != nil {
		return nil, err
	}

	return due, nil
}

func (s *Scheduler) MarkSent(
	ctx context.Context,
	id uint,
	request string,
	response string,
) error {
	return s.db.WithContext(ctx).
		Model(&models.Reminder{}).
		Where("id = ? AND status = ?", id, models.ReminderPending).
		Updates(map[string]any{
			"status":           models.ReminderSent,
			"request_payload":  request,
			"response_payload": response,
		}).Error
}

func (s *Scheduler) MarkFailed(
	ctx context.Context,
	id uint,
	request string,
	deliveryErr string,
) error {
	return s.db.WithContext(ctx).
		Model(&models.Reminder{}).
		Where("id = ? AND status = ?", id, models.ReminderPending).
		Updates(map[string]any{
			"status":           models.ReminderFailed,
			"request_payload":  request,
			"response_payload": deliveryErr,
		}).Error
}

// TemplateBody returns the body of the named message template, or an empty
// string when none exists (the worker falls back to its default text).
func (s *Scheduler) TemplateBody(
	ctx context.Context,
	name string,
) (string, error) {

	var tmpl models.MessageTemplate
	err := s.db.WithContext(ctx).
		Where("name = ?", name).
		First(&tmpl).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}

	return tmpl.Body, nil
}

func (s *Scheduler) ListByStatus(
	ctx context.Context,
	status models.ReminderStatus,
) ([]models.Reminder, error) {

	q := s.db.WithContext(ctx).Order("send_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var reminders []models.Reminder
	if err := q.Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

// Compile-time checks
var (
	_ domain.ReminderScheduler = (*Scheduler)(nil)
	_ Store                    = (*Scheduler)(nil)
)
