package cita

import (
	"context"

	"github.com/agendapy/cita-scheduler/internal/audit"
	domain "github.com/agendapy/cita-scheduler/internal/domain/cita"
	"github.com/agendapy/cita-scheduler/internal/httperr"
	"github.com/agendapy/cita-scheduler/internal/models"
)

type CancelCita struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelCita(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *CancelCita {
	return &CancelCita{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// Execute flips the cancelled flag on. Cancelling twice is a no-op; line
// items and reminders are untouched so the history stays reportable.
func (uc *CancelCita) Execute(
	ctx context.Context,
	citaID uint,
) (*models.Cita, error) {

	c, err := uc.repo.GetCitaByID(ctx, citaID)
	if err != nil {
		return nil, classifyCitaErr(err)
	}

	domain.Cancel(c)

	if err := uc.repo.SetCancelled(ctx, c.ID, true); err != nil {
		return nil, httperr.ErrExternal("failed_to_cancel_cita", err)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "cita_cancelled",
		Entity:   "cita",
		EntityID: &c.ID,
	})

	return c, nil
}
