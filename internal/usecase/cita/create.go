package cita

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agendapy/cita-scheduler/internal/audit"
	domain "github.com/agendapy/cita-scheduler/internal/domain/cita"
	"github.com/agendapy/cita-scheduler/internal/httperr"
	"github.com/agendapy/cita-scheduler/internal/metrics"
	"github.com/agendapy/cita-scheduler/internal/models"
)

const DefaultReminderLeadMinutes = 60

// ======================================================
// INPUT
// ======================================================

type CreateCitaInput struct {
	ClientID      uint
	ScheduledAt   string
	SubServiceIDs []uint

	Notes string

	SendReminder        bool
	ReminderLeadMinutes int
}

// ======================================================
// USE CASE
// ======================================================

type CreateCita struct {
	repo      domain.Repository
	reminders domain.ReminderScheduler
	audit     *audit.Dispatcher
	logger    zerolog.Logger
}

func NewCreateCita(
	repo domain.Repository,
	reminders domain.ReminderScheduler,
	auditDispatcher *audit.Dispatcher,
	logger zerolog.Logger,
) *CreateCita {
	return &CreateCita{
		repo:      repo,
		reminders: reminders,
		audit:     auditDispatcher,
		logger:    logger.With().Str("usecase", "create_cita").Logger(),
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute books a cita: it validates everything up front, writes the cita
// with its line items in one transaction, then schedules the reminder. A
// reminder failure after the booking committed is compensated by flagging
// the cita cancelled (the row stays visible to auditing) and the error is
// still returned to the caller.
func (uc *CreateCita) Execute(
	ctx context.Context,
	in CreateCitaInput,
) (*models.Cita, error) {

	// --------------------------------------------------
	// Validation: fail fast, before any write
	// --------------------------------------------------

	client, err := uc.repo.GetClientByID(ctx, in.ClientID)
	if err != nil {
		return nil, classifyClientErr(err)
	}

	if len(in.SubServiceIDs) == 0 {
		return nil, httperr.ErrValidation(
			"sub_services_required",
			"Debe seleccionar al menos un sub-servicio.",
		)
	}

	ids := domain.DedupIDs(in.SubServiceIDs)

	subServices, err := uc.repo.FindSubServicesByIDs(ctx, ids)
	if err != nil {
		return nil, httperr.ErrExternal("database_error", err)
	}
	if err := missingIDsErr(ids, subServices); err != nil {
		return nil, err
	}

	scheduledAt, err := parseScheduledAt(in.ScheduledAt)
	if err != nil {
		return nil, err
	}

	if in.SendReminder && strings.TrimSpace(client.Phone) == "" {
		return nil, httperr.ErrBusiness(
			"client_has_no_contact",
			"El cliente no tiene un medio de contacto para el recordatorio.",
		)
	}

	// --------------------------------------------------
	// Booking transaction: cita + line items
	// --------------------------------------------------

	c := &models.Cita{
		ClientID:          client.ID,
		ScheduledAt:       scheduledAt,
		TotalAmount:       domain.ComputeTotal(subServices),
		Cancelled:         false,
		Notes:             in.Notes,
		ReminderRequested: in.SendReminder,
	}

	items := domain.BuildLineItems(0, subServices)

	if err := uc.repo.CreateCita(ctx, c, items); err != nil {
		metrics.IncBookingFailure("create_failed")
		return nil, httperr.ErrExternal("failed_to_create_cita", err)
	}

	// --------------------------------------------------
	// Reminder (outside the booking transaction)
	// --------------------------------------------------

	if in.SendReminder {
		lead := in.ReminderLeadMinutes
		if lead <= 0 {
			lead = DefaultReminderLeadMinutes
		}
		sendAt := scheduledAt.Add(-time.Duration(lead) * time.Minute)

		if _, err := uc.reminders.CreateReminder(
			ctx,
			client.ID,
			client.Phone,
			sendAt,
			&c.ID,
		); err != nil {
			uc.compensate(ctx, c.ID)
			metrics.IncBookingFailure("reminder_failed")
			return nil, httperr.ErrExternal("failed_to_schedule_reminder", err)
		}
	}

	metrics.IncCitaCreated()

	uc.audit.Dispatch(audit.Event{
		Action:   "cita_created",
		Entity:   "cita",
		EntityID: &c.ID,
		Metadata: map[string]any{
			"client_id":    client.ID,
			"total_amount": c.TotalAmount,
			"sub_services": len(items),
		},
	})

	return uc.repo.GetCitaByID(ctx, c.ID)
}

// compensate marks the committed cita cancelled so a priced-but-incomplete
// booking is never presented as active. Retry-safe: the flag write is
// idempotent.
func (uc *CreateCita) compensate(ctx context.Context, citaID uint) {
	if err := uc.repo.SetCancelled(ctx, citaID, true); err != nil {
		uc.logger.Error().
			Err(err).
			Uint("cita_id", citaID).
			Msg("compensation failed, cita left active without reminder")
		return
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "cita_compensated",
		Entity:   "cita",
		EntityID: &citaID,
	})
}
