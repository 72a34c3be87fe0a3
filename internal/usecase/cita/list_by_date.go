package cita

import (
	"context"
	"time"

	domain "github.com/agendapy/cita-scheduler/internal/domain/cita"
	"github.com/agendapy/cita-scheduler/internal/httperr"
	"github.com/agendapy/cita-scheduler/internal/models"
	"github.com/agendapy/cita-scheduler/internal/timezone"
)

type ListCitasByDate struct {
	repo domain.Repository
	tz   string
}

func NewListCitasByDate(repo domain.Repository, tz string) *ListCitasByDate {
	return &ListCitasByDate{repo: repo, tz: tz}
}

// Execute lists the citas of one business-timezone calendar day.
func (uc *ListCitasByDate) Execute(
	ctx context.Context,
	dateStr string,
) ([]models.Cita, error) {

	day, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location(uc.tz))
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date", "Fecha inválida.")
	}

	start, end := timezone.DayBounds(day, uc.tz)

	citas, err := uc.repo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, httperr.ErrExternal("database_error", err)
	}
	return citas, nil
}
