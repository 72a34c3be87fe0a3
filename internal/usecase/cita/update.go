package cita

import (
	"context"
	"time"

	"github.com/agendapy/cita-scheduler/internal/audit"
	domain "github.com/agendapy/cita-scheduler/internal/domain/cita"
	"github.com/agendapy/cita-scheduler/internal/httperr"
	"github.com/agendapy/cita-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// UpdateCitaInput patches any subset of the cita. A present SubServiceIDs
// list fully replaces the selection; nil leaves line items and total alone.
type UpdateCitaInput struct {
	ClientID      *uint
	ScheduledAt   *string
	SubServiceIDs *[]uint
	Notes         *string
	Cancelled     *bool
}

// ======================================================
// USE CASE
// ======================================================

type UpdateCita struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateCita(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *UpdateCita {
	return &UpdateCita{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateCita) Execute(
	ctx context.Context,
	citaID uint,
	in UpdateCitaInput,
) (*models.Cita, error) {

	c, err := uc.repo.GetCitaByID(ctx, citaID)
	if err != nil {
		return nil, classifyCitaErr(err)
	}

	// --------------------------------------------------
	// Validate every provided field before any write
	// --------------------------------------------------

	if in.ClientID != nil {
		if _, err := uc.repo.GetClientByID(ctx, *in.ClientID); err != nil {
			return nil, classifyClientErr(err)
		}
	}

	var scheduledAt *time.Time
	if in.ScheduledAt != nil {
		t, err := parseScheduledAt(*in.ScheduledAt)
		if err != nil {
			return nil, err
		}
		scheduledAt = &t
	}

	var newItems []models.CitaSubService
	var newTotal int64
	replaceItems := false

	if in.SubServiceIDs != nil {
		if len(*in.SubServiceIDs) == 0 {
			return nil, httperr.ErrValidation(
				"sub_services_required",
				"Debe seleccionar al menos un sub-servicio.",
			)
		}

		ids := domain.DedupIDs(*in.SubServiceIDs)

		subServices, err := uc.repo.FindSubServicesByIDs(ctx, ids)
		if err != nil {
			return nil, httperr.ErrExternal("database_error", err)
		}
		if err := missingIDsErr(ids, subServices); err != nil {
			return nil, err
		}

		newItems = domain.BuildLineItems(citaID, subServices)
		newTotal = domain.ComputeTotal(subServices)
		replaceItems = true
	}

	// --------------------------------------------------
	// Patch scalar fields
	// --------------------------------------------------

	if in.ClientID != nil {
		c.ClientID = *in.ClientID
	}
	if scheduledAt != nil {
		c.ScheduledAt = *scheduledAt
	}
	if in.Notes != nil {
		c.Notes = *in.Notes
	}
	if in.Cancelled != nil {
		c.Cancelled = *in.Cancelled
	}

	if err := uc.repo.UpdateCita(ctx, c); err != nil {
		return nil, httperr.ErrExternal("failed_to_update_cita", err)
	}

	// --------------------------------------------------
	// Wholesale line-item replacement, total in the same
	// logical step, never field-level diffing
	// --------------------------------------------------

	if replaceItems {
		if err := uc.repo.ReplaceLineItems(ctx, citaID, newItems, newTotal); err != nil {
			return nil, httperr.ErrExternal("failed_to_replace_line_items", err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "cita_updated",
		Entity:   "cita",
		EntityID: &citaID,
	})

	return uc.repo.GetCitaByID(ctx, citaID)
}
