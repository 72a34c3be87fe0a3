package cita

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendapy/cita-scheduler/internal/httperr"
	"github.com/agendapy/cita-scheduler/internal/models"
)

func bookCita(t *testing.T, repo *fakeRepo, ids []uint) *models.Cita {
	t.Helper()

	uc := newCreateUC(repo, &fakeScheduler{})
	c, err := uc.Execute(context.Background(), CreateCitaInput{
		ClientID:      1,
		ScheduledAt:   "2025-03-01T10:00:00Z",
		SubServiceIDs: ids,
	})
	require.NoError(t, err)
	return c
}

func TestUpdateCita(t *testing.T) {
	ctx := context.Background()

	t.Run("new list fully replaces line items and total", func(t *testing.T) {
		repo := seedRepo()
		booked := bookCita(t, repo, []uint{10, 11})

		uc := NewUpdateCita(repo, nil)
		newIDs := []uint{11}
		updated, err := uc.Execute(ctx, booked.ID, UpdateCitaInput{
			SubServiceIDs: &newIDs,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(30000), updated.TotalAmount)
		require.Len(t, updated.SubServices, 1)
		assert.Equal(t, uint(11), updated.SubServices[0].SubServiceID)
	})

	t.Run("absent list leaves total untouched", func(t *testing.T) {
		repo := seedRepo()
		booked := bookCita(t, repo, []uint{10, 11})

		uc := NewUpdateCita(repo, nil)
		notes := "trae su propio esmalte"
		updated, err := uc.Execute(ctx, booked.ID, UpdateCitaInput{
			Notes: &notes,
		})
		require.NoError(t, err)

		assert.Equal(t, "trae su propio esmalte", updated.Notes)
		assert.Equal(t, int64(80000), updated.TotalAmount)
		assert.Len(t, updated.SubServices, 2)
	})

	t.Run("provided empty list is rejected", func(t *testing.T) {
		repo := seedRepo()
		booked := bookCita(t, repo, []uint{10})

		uc := NewUpdateCita(repo, nil)
		empty := []uint{}
		_, err := uc.Execute(ctx, booked.ID, UpdateCitaInput{
			SubServiceIDs: &empty,
		})
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation))

		// selection unchanged
		current, err := repo.GetCitaByID(ctx, booked.ID)
		require.NoError(t, err)
		assert.Len(t, current.SubServices, 1)
		assert.Equal(t, int64(50000), current.TotalAmount)
	})

	t.Run("missing ids in new list are named", func(t *testing.T) {
		repo := seedRepo()
		booked := bookCita(t, repo, []uint{10})

		uc := NewUpdateCita(repo, nil)
		ids := []uint{11, 404}
		_, err := uc.Execute(ctx, booked.ID, UpdateCitaInput{
			SubServiceIDs: &ids,
		})
		require.Error(t, err)
		assert.True(t, httperr.IsCode(err, "sub_services_not_found"))
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("unknown cita", func(t *testing.T) {
		repo := seedRepo()

		uc := NewUpdateCita(repo, nil)
		_, err := uc.Execute(ctx, 42, UpdateCitaInput{})
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	})

	t.Run("unknown client in patch", func(t *testing.T) {
		repo := seedRepo()
		booked := bookCita(t, repo, []uint{10})

		uc := NewUpdateCita(repo, nil)
		clientID := uint(77)
		_, err := uc.Execute(ctx, booked.ID, UpdateCitaInput{
			ClientID: &clientID,
		})
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	})
}
