package cita

import (
	"context"

	"github.com/agendapy/cita-scheduler/internal/audit"
	domain "github.com/agendapy/cita-scheduler/internal/domain/cita"
	"github.com/agendapy/cita-scheduler/internal/httperr"
	"github.com/agendapy/cita-scheduler/internal/models"
)

type RestoreCita struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRestoreCita(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *RestoreCita {
	return &RestoreCita{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// Execute clears the cancelled flag. Total, line items and reminder come
// back exactly as they were before the cancel.
func (uc *RestoreCita) Execute(
	ctx context.Context,
	citaID uint,
) (*models.Cita, error) {

	c, err := uc.repo.GetCitaByID(ctx, citaID)
	if err != nil {
		return nil, classifyCitaErr(err)
	}

	domain.Restore(c)

	if err := uc.repo.SetCancelled(ctx, c.ID, false); err != nil {
		return nil, httperr.ErrExternal("failed_to_restore_cita", err)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "cita_restored",
		Entity:   "cita",
		EntityID: &c.ID,
	})

	return c, nil
}
