package cita

import (
	"context"

	domain "github.com/agendapy/cita-scheduler/internal/domain/cita"
	"github.com/agendapy/cita-scheduler/internal/httperr"
	"github.com/agendapy/cita-scheduler/internal/models"
)

type ListCitasByClient struct {
	repo domain.Repository
}

func NewListCitasByClient(repo domain.Repository) *ListCitasByClient {
	return &ListCitasByClient{repo: repo}
}

func (uc *ListCitasByClient) Execute(
	ctx context.Context,
	clientID uint,
) ([]models.Cita, error) {

	if _, err := uc.repo.GetClientByID(ctx, clientID); err != nil {
		return nil, classifyClientErr(err)
	}

	citas, err := uc.repo.FindByClient(ctx, clientID)
	if err != nil {
		return nil, httperr.ErrExternal("database_error", err)
	}
	return citas, nil
}
