package cita

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendapy/cita-scheduler/internal/httperr"
)

func TestCancelRestoreCita(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel then restore round-trips every other field", func(t *testing.T) {
		repo := seedRepo()
		booked := bookCita(t, repo, []uint{10, 11})

		cancelUC := NewCancelCita(repo, nil)
		cancelled, err := cancelUC.Execute(ctx, booked.ID)
		require.NoError(t, err)
		assert.True(t, cancelled.Cancelled)

		restoreUC := NewRestoreCita(repo, nil)
		restored, err := restoreUC.Execute(ctx, booked.ID)
		require.NoError(t, err)

		assert.False(t, restored.Cancelled)
		assert.Equal(t, booked.TotalAmount, restored.TotalAmount)

		current, err := repo.GetCitaByID(ctx, booked.ID)
		require.NoError(t, err)
		assert.Len(t, current.SubServices, 2)
		assert.Equal(t, int64(80000), current.TotalAmount)
	})

	t.Run("cancelling twice is a no-op", func(t *testing.T) {
		repo := seedRepo()
		booked := bookCita(t, repo, []uint{10})

		uc := NewCancelCita(repo, nil)
		_, err := uc.Execute(ctx, booked.ID)
		require.NoError(t, err)

		again, err := uc.Execute(ctx, booked.ID)
		require.NoError(t, err)
		assert.True(t, again.Cancelled)
	})

	t.Run("unknown cita", func(t *testing.T) {
		repo := seedRepo()

		_, err := NewCancelCita(repo, nil).Execute(ctx, 9)
		assert.True(t, httperr.IsKind(err, httperr.KindNotFound))

		_, err = NewRestoreCita(repo, nil).Execute(ctx, 9)
		assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	})
}
