package cita

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendapy/cita-scheduler/internal/httperr"
	"github.com/agendapy/cita-scheduler/internal/models"
)

func seedRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.addClient(models.Client{ID: 1, Name: "Ana López", Phone: "+595981111111"})
	repo.addClient(models.Client{ID: 2, Name: "Sin Teléfono"})
	repo.addSubService(models.SubService{ID: 10, ServiceID: 1, Name: "Corte", Price: 50000})
	repo.addSubService(models.SubService{ID: 11, ServiceID: 1, Name: "Tintura", Price: 30000})
	return repo
}

func newCreateUC(repo *fakeRepo, sched *fakeScheduler) *CreateCita {
	return NewCreateCita(repo, sched, nil, zerolog.Nop())
}

func TestCreateCita(t *testing.T) {
	ctx := context.Background()

	t.Run("computes total over selected sub-services", func(t *testing.T) {
		repo := seedRepo()
		uc := newCreateUC(repo, &fakeScheduler{})

		c, err := uc.Execute(ctx, CreateCitaInput{
			ClientID:      1,
			ScheduledAt:   "2025-03-01T10:00:00Z",
			SubServiceIDs: []uint{10, 11},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(80000), c.TotalAmount)
		assert.Len(t, c.SubServices, 2)
		assert.False(t, c.Cancelled)
		assert.Equal(t, int64(50000), c.SubServices[0].Price)
	})

	t.Run("duplicate ids count once", func(t *testing.T) {
		repo := seedRepo()
		uc := newCreateUC(repo, &fakeScheduler{})

		c, err := uc.Execute(ctx, CreateCitaInput{
			ClientID:      1,
			ScheduledAt:   "2025-03-01T10:00:00Z",
			SubServiceIDs: []uint{10, 10},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(50000), c.TotalAmount)
		assert.Len(t, c.SubServices, 1)
	})

	t.Run("past timestamps are allowed", func(t *testing.T) {
		repo := seedRepo()
		uc := newCreateUC(repo, &fakeScheduler{})

		c, err := uc.Execute(ctx, CreateCitaInput{
			ClientID:      1,
			ScheduledAt:   "2020-01-15T09:00:00Z",
			SubServiceIDs: []uint{10},
		})
		require.NoError(t, err)
		assert.Equal(t, 2020, c.ScheduledAt.Year())
	})

	t.Run("unknown client", func(t *testing.T) {
		repo := seedRepo()
		uc := newCreateUC(repo, &fakeScheduler{})

		_, err := uc.Execute(ctx, CreateCitaInput{
			ClientID:      99,
			ScheduledAt:   "2025-03-01T10:00:00Z",
			SubServiceIDs: []uint{10},
		})
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
		assert.Empty(t, repo.citas)
	})

	t.Run("empty sub-service list writes nothing", func(t *testing.T) {
		repo := seedRepo()
		uc := newCreateUC(repo, &fakeScheduler{})

		_, err := uc.Execute(ctx, CreateCitaInput{
			ClientID:      1,
			ScheduledAt:   "2025-03-01T10:00:00Z",
			SubServiceIDs: []uint{},
		})
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation))
		assert.Empty(t, repo.citas)
	})

	t.Run("partial resolution names the missing ids", func(t *testing.T) {
		repo := seedRepo()
		uc := newCreateUC(repo, &fakeScheduler{})

		_, err := uc.Execute(ctx, CreateCitaInput{
			ClientID:      1,
			ScheduledAt:   "2025-03-01T10:00:00Z",
			SubServiceIDs: []uint{10, 999},
		})
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation))
		assert.True(t, httperr.IsCode(err, "sub_services_not_found"))
		assert.Contains(t, err.Error(), "999")
		assert.Empty(t, repo.citas)
	})

	t.Run("invalid timestamp", func(t *testing.T) {
		repo := seedRepo()
		uc := newCreateUC(repo, &fakeScheduler{})

		_, err := uc.Execute(ctx, CreateCitaInput{
			ClientID:      1,
			ScheduledAt:   "01/03/2025 10:00",
			SubServiceIDs: []uint{10},
		})
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation))
		assert.Empty(t, repo.citas)
	})
}

func TestCreateCitaReminder(t *testing.T) {
	ctx := context.Background()

	t.Run("schedules reminder with lead time", func(t *testing.T) {
		repo := seedRepo()
		sched := &fakeScheduler{}
		uc := newCreateUC(repo, sched)

		c, err := uc.Execute(ctx, CreateCitaInput{
			ClientID:            1,
			ScheduledAt:         "2025-03-01T10:00:00Z",
			SubServiceIDs:       []uint{10},
			SendReminder:        true,
			ReminderLeadMinutes: 30,
		})
		require.NoError(t, err)

		require.Len(t, sched.created, 1)
		rem := sched.created[0]
		assert.Equal(t, "+595981111111", rem.Recipient)
		assert.Equal(t, models.ReminderPending, rem.Status)
		require.NotNil(t, rem.CitaID)
		assert.Equal(t, c.ID, *rem.CitaID)

		wantSendAt, _ := time.Parse(time.RFC3339, "2025-03-01T09:30:00Z")
		assert.True(t, rem.SendAt.Equal(wantSendAt))
	})

	t.Run("defaults to a 60 minute lead", func(t *testing.T) {
		repo := seedRepo()
		sched := &fakeScheduler{}
		uc := newCreateUC(repo, sched)

		_, err := uc.Execute(ctx, CreateCitaInput{
			ClientID:      1,
			ScheduledAt:   "2025-03-01T10:00:00Z",
			SubServiceIDs: []uint{10},
			SendReminder:  true,
		})
		require.NoError(t, err)

		require.Len(t, sched.created, 1)
		wantSendAt, _ := time.Parse(time.RFC3339, "2025-03-01T09:00:00Z")
		assert.True(t, sched.created[0].SendAt.Equal(wantSendAt))
	})

	t.Run("reminder without contact writes nothing", func(t *testing.T) {
		repo := seedRepo()
		sched := &fakeScheduler{}
		uc := newCreateUC(repo, sched)

		_, err := uc.Execute(ctx, CreateCitaInput{
			ClientID:      2,
			ScheduledAt:   "2025-03-01T10:00:00Z",
			SubServiceIDs: []uint{10},
			SendReminder:  true,
		})
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindBusiness))
		assert.Empty(t, repo.citas)
		assert.Empty(t, sched.created)
	})

	t.Run("scheduler failure compensates by cancelling the cita", func(t *testing.T) {
		repo := seedRepo()
		sched := &fakeScheduler{failNext: errSchedulerDown}
		uc := newCreateUC(repo, sched)

		_, err := uc.Execute(ctx, CreateCitaInput{
			ClientID:      1,
			ScheduledAt:   "2025-03-01T10:00:00Z",
			SubServiceIDs: []uint{10},
			SendReminder:  true,
		})
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindExternal))

		// the committed row survives, flagged cancelled for auditing
		require.Len(t, repo.citas, 1)
		for _, c := range repo.citas {
			assert.True(t, c.Cancelled)
			assert.Equal(t, int64(50000), c.TotalAmount)
		}
	})
}
