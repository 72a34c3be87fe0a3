package cita

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/agendapy/cita-scheduler/internal/models"
)

// fakeRepo is an in-memory domain.Repository for exercising the use cases
// without a database.
type fakeRepo struct {
	clients     map[uint]models.Client
	subServices map[uint]models.SubService

	citas map[uint]*models.Cita
	items map[uint][]models.CitaSubService

	nextCitaID uint

	failCreate  error
	failReplace error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients:     make(map[uint]models.Client),
		subServices: make(map[uint]models.SubService),
		citas:       make(map[uint]*models.Cita),
		items:       make(map[uint][]models.CitaSubService),
	}
}

func (f *fakeRepo) addClient(c models.Client) {
	f.clients[c.ID] = c
}

func (f *fakeRepo) addSubService(s models.SubService) {
	f.subServices[s.ID] = s
}

func (f *fakeRepo) GetClientByID(_ context.Context, id uint) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (f *fakeRepo) FindSubServicesByIDs(_ context.Context, ids []uint) ([]models.SubService, error) {
	var out []models.SubService
	for _, id := range ids {
		if s, ok := f.subServices[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateCita(_ context.Context, c *models.Cita, items []models.CitaSubService) error {
	if f.failCreate != nil {
		return f.failCreate
	}

	f.nextCitaID++
	c.ID = f.nextCitaID
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt

	copied := *c
	f.citas[c.ID] = &copied

	stored := make([]models.CitaSubService, len(items))
	copy(stored, items)
	for i := range stored {
		stored[i].ID = uint(i + 1)
		stored[i].CitaID = c.ID
	}
	f.items[c.ID] = stored
	return nil
}

func (f *fakeRepo) GetCitaByID(_ context.Context, id uint) (*models.Cita, error) {
	c, ok := f.citas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	out := *c
	out.SubServices = make([]models.CitaSubService, len(f.items[id]))
	copy(out.SubServices, f.items[id])
	for i := range out.SubServices {
		out.SubServices[i].SubService = f.subServices[out.SubServices[i].SubServiceID]
	}
	return &out, nil
}

func (f *fakeRepo) FindByClient(_ context.Context, clientID uint) ([]models.Cita, error) {
	var out []models.Cita
	for _, c := range f.citas {
		if c.ClientID == clientID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindByDateRange(_ context.Context, start, end time.Time) ([]models.Cita, error) {
	var out []models.Cita
	for _, c := range f.citas {
		if !c.ScheduledAt.Before(start) && c.ScheduledAt.Before(end) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeRepo) CountByDate(_ context.Context, start, end time.Time) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, c := range f.citas {
		if c.Cancelled {
			continue
		}
		if !c.ScheduledAt.Before(start) && c.ScheduledAt.Before(end) {
			counts[c.ScheduledAt.Format("2006-01-02")]++
		}
	}
	return counts, nil
}

func (f *fakeRepo) UpdateCita(_ context.Context, c *models.Cita) error {
	if _, ok := f.citas[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *c
	copied.UpdatedAt = time.Now()
	f.citas[c.ID] = &copied
	return nil
}

func (f *fakeRepo) ReplaceLineItems(_ context.Context, citaID uint, items []models.CitaSubService, total int64) error {
	if f.failReplace != nil {
		return f.failReplace
	}

	c, ok := f.citas[citaID]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	stored := make([]models.CitaSubService, len(items))
	copy(stored, items)
	for i := range stored {
		stored[i].ID = uint(i + 1)
		stored[i].CitaID = citaID
	}
	f.items[citaID] = stored
	c.TotalAmount = total
	c.UpdatedAt = time.Now()
	return nil
}

func (f *fakeRepo) SetCancelled(_ context.Context, citaID uint, cancelled bool) error {
	c, ok := f.citas[citaID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Cancelled = cancelled
	return nil
}

// fakeScheduler records reminders in memory and can be told to fail.
type fakeScheduler struct {
	created  []models.Reminder
	failNext error
}

var errSchedulerDown = errors.New("scheduler unavailable")

func (f *fakeScheduler) CreateReminder(
	_ context.Context,
	clientID uint,
	recipient string,
	sendAt time.Time,
	citaID *uint,
) (*models.Reminder, error) {

	if f.failNext != nil {
		return nil, f.failNext
	}

	rem := models.Reminder{
		ID:        uint(len(f.created) + 1),
		ClientID:  clientID,
		CitaID:    citaID,
		Recipient: recipient,
		SendAt:    sendAt,
		Status:    models.ReminderPending,
	}
	f.created = append(f.created, rem)
	return &rem, nil
}
