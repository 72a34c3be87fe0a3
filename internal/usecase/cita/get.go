package cita

import (
	"context"

	domain "github.com/agendapy/cita-scheduler/internal/domain/cita"
	"github.com/agendapy/cita-scheduler/internal/models"
)

type GetCita struct {
	repo domain.Repository
}

func NewGetCita(repo domain.Repository) *GetCita {
	return &GetCita{repo: repo}
}

func (uc *GetCita) Execute(
	ctx context.Context,
	citaID uint,
) (*models.Cita, error) {

	c, err := uc.repo.GetCitaByID(ctx, citaID)
	if err != nil {
		return nil, classifyCitaErr(err)
	}
	return c, nil
}
