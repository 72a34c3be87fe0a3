package reminder

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agendapy/cita-scheduler/internal/metrics"
	"github.com/agendapy/cita-scheduler/internal/models"
	"github.com/agendapy/cita-scheduler/internal/timezone"
)

// Notifier hands a rendered message to the external messaging integration
// and returns its raw response payload.
type Notifier interface {
	Send(ctx context.Context, recipient string, message string) (string, error)
}

// Store is the slice of the reminder persistence the worker needs.
type Store interface {
	FindDue(ctx context.Context, now time.Time, lookback time.Duration) ([]models.Reminder, error)
	MarkSent(ctx context.Context, id uint, request string, response string) error
	MarkFailed(ctx context.Context, id uint, request string, deliveryErr string) error
	TemplateBody(ctx context.Context, name string) (string, error)
}

const (
	templateName = "recordatorio_cita"
	defaultBody  = "Le recordamos su cita del {fecha} a las {hora}."
)

// Worker polls for due pending reminders and drives the pending→sent or
// pending→failed transition. Booking never touches delivery state.
type Worker struct {
	store    Store
	notifier Notifier
	logger   zerolog.Logger

	poll     time.Duration
	lookback time.Duration
	tz       string
}

func NewWorker(
	store Store,
	notifier Notifier,
	logger zerolog.Logger,
	poll time.Duration,
	lookback time.Duration,
	tz string,
) *Worker {
	return &Worker{
		store:    store,
		notifier: notifier,
		logger:   logger.With().Str("component", "reminder_worker").Logger(),
		poll:     poll,
		lookback: lookback,
		tz:       tz,
	}
}

// Run blocks until the context is cancelled; launch it in its own goroutine.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.poll)
	defer ticker.Stop()

	w.logger.Info().Dur("poll", w.poll).Msg("reminder worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("reminder worker stopped")
			return
		case <-ticker.C:
			w.ProcessDue(ctx)
		}
	}
}

// ProcessDue runs one delivery pass. Exported so a pass can be triggered
// directly in tests.
func (w *Worker) ProcessDue(ctx context.Context) {
	due, err := w.store.FindDue(ctx, time.Now(), w.lookback)
	if err != nil {
		w.logger.Error().Err(err).Msg("failed to load due reminders")
		return
	}

	for _, rem := range due {
		w.deliver(ctx, rem)
	}
}

func (w *Worker) deliver(ctx context.Context, rem models.Reminder) {
	message := w.render(ctx, rem)

	request, _ := json.Marshal(map[string]string{
		"external_id": rem.ExternalID,
		"recipient":   rem.Recipient,
		"message":     message,
	})

	response, err := w.notifier.Send(ctx, rem.Recipient, message)
	if err != nil {
		metrics.IncReminder("failed")
		w.logger.Warn().
			Err(err).
			Uint("reminder_id", rem.ID).
			Str("recipient", rem.Recipient).
			Msg("reminder delivery failed")

		if err := w.store.MarkFailed(ctx, rem.ID, string(request), err.Error()); err != nil {
			w.logger.Error().Err(err).Uint("reminder_id", rem.ID).Msg("failed to mark reminder failed")
		}
		return
	}

	metrics.IncReminder("sent")
	w.logger.Info().
		Uint("reminder_id", rem.ID).
		Str("recipient", rem.Recipient).
		Msg("reminder sent")

	if err := w.store.MarkSent(ctx, rem.ID, string(request), response); err != nil {
		w.logger.Error().Err(err).Uint("reminder_id", rem.ID).Msg("failed to mark reminder sent")
	}
}

func (w *Worker) render(ctx context.Context, rem models.Reminder) string {
	body, err := w.store.TemplateBody(ctx, templateName)
	if err != nil || strings.TrimSpace(body) == "" {
		body = defaultBody
	}

	eventAt := rem.SendAt
	if rem.Cita != nil {
		eventAt = rem.Cita.ScheduledAt
	}

	local := eventAt.In(timezone.Location(w.tz))
	body = strings.ReplaceAll(body, "{fecha}", local.Format("02/01/2006"))
	body = strings.ReplaceAll(body, "{hora}", local.Format("15:04"))
	return body
}
