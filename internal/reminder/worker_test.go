package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendapy/cita-scheduler/internal/models"
)

type fakeStore struct {
	due      []models.Reminder
	template string

	sent   map[uint]string
	failed map[uint]string
}

func newFakeStore(due ...models.Reminder) *fakeStore {
	return &fakeStore{
		due:    due,
		sent:   make(map[uint]string),
		failed: make(map[uint]string),
	}
}

func (f *fakeStore) FindDue(_ context.Context, _ time.Time, _ time.Duration) ([]models.Reminder, error) {
	return f.due, nil
}

func (f *fakeStore) MarkSent(_ context.Context, id uint, _ string, response string) error {
	f.sent[id] = response
	return nil
}

func (f *fakeStore) MarkFailed(_ context.Context, id uint, _ string, deliveryErr string) error {
	f.failed[id] = deliveryErr
	return nil
}

func (f *fakeStore) TemplateBody(_ context.Context, _ string) (string, error) {
	return f.template, nil
}

type fakeNotifier struct {
	messages []string
	err      error
}

func (f *fakeNotifier) Send(_ context.Context, _ string, message string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.messages = append(f.messages, message)
	return `{"status":"accepted"}`, nil
}

func newTestWorker(store Store, notifier Notifier) *Worker {
	return NewWorker(store, notifier, zerolog.Nop(), time.Second, 24*time.Hour, "America/Asuncion")
}

func TestWorkerDelivery(t *testing.T) {
	ctx := context.Background()

	citaAt := time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC)
	rem := models.Reminder{
		ID:        1,
		Recipient: "+595981111111",
		SendAt:    citaAt.Add(-time.Hour),
		Status:    models.ReminderPending,
		Cita:      &models.Cita{ID: 5, ScheduledAt: citaAt},
	}

	t.Run("due reminder transitions to sent", func(t *testing.T) {
		store := newFakeStore(rem)
		notifier := &fakeNotifier{}

		newTestWorker(store, notifier).ProcessDue(ctx)

		require.Len(t, notifier.messages, 1)
		assert.Contains(t, store.sent, uint(1))
		assert.Empty(t, store.failed)
	})

	t.Run("delivery failure transitions to failed", func(t *testing.T) {
		store := newFakeStore(rem)
		notifier := &fakeNotifier{err: errors.New("gateway timeout")}

		newTestWorker(store, notifier).ProcessDue(ctx)

		assert.Empty(t, store.sent)
		require.Contains(t, store.failed, uint(1))
		assert.Equal(t, "gateway timeout", store.failed[1])
	})

	t.Run("template placeholders render the cita time", func(t *testing.T) {
		store := newFakeStore(rem)
		store.template = "Su cita: {fecha} {hora}"
		notifier := &fakeNotifier{}

		newTestWorker(store, notifier).ProcessDue(ctx)

		require.Len(t, notifier.messages, 1)
		// 13:00 UTC is 10:00 in Asunción (UTC-3)
		assert.Equal(t, "Su cita: 01/03/2025 10:00", notifier.messages[0])
	})

	t.Run("empty template falls back to default body", func(t *testing.T) {
		store := newFakeStore(rem)
		notifier := &fakeNotifier{}

		newTestWorker(store, notifier).ProcessDue(ctx)

		require.Len(t, notifier.messages, 1)
		assert.Contains(t, notifier.messages[0], "Le recordamos su cita")
	})
}
