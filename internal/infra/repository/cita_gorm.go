package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/agendapy/cita-scheduler/internal/domain/cita"
	"github.com/agendapy/cita-scheduler/internal/models"
)

type CitaGormRepository struct {
	db *gorm.DB
}

func NewCitaGormRepository(db *gorm.DB) *CitaGormRepository {
	return &CitaGormRepository{db: db}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *CitaGormRepository) GetClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *CitaGormRepository) FindSubServicesByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.SubService, error) {

	if len(ids) == 0 {
		return nil, nil
	}

	var subServices []models.SubService
	if err := r.db.WithContext(ctx).
		Unscoped().
		Where("id IN ?", ids).
		Find(&subServices).Error; err != nil {
		return nil, err
	}
	return subServices, nil
}

// --------------------------------------------------
// Cita (create / read)
// --------------------------------------------------

func (r *CitaGormRepository) CreateCita(
	ctx context.Context,
	c *models.Cita,
	items []models.CitaSubService,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("SubServices", "Reminder", "Client").Create(c).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].ID = 0
			items[i].CitaID = c.ID
		}

		return tx.Omit("SubService").Create(&items).Error
	})
}

func (r *CitaGormRepository) GetCitaByID(
	ctx context.Context,
	id uint,
) (*models.Cita, error) {

	var c models.Cita
	if err := r.db.WithContext(ctx).
		Preload("Client", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
		Preload("SubServices.SubService", func(db *gorm.DB) *gorm.DB {
			// Deleted sub-services stay valid on existing citas.
			return db.Unscoped()
		}).
		Preload("Reminder").
		First(&c, id).Error; err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *CitaGormRepository) FindByClient(
	ctx context.Context,
	clientID uint,
) ([]models.Cita, error) {

	var citas []models.Cita
	if err := r.db.WithContext(ctx).
		Preload("SubServices.SubService", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
		Where("client_id = ?", clientID).
		Order("scheduled_at DESC").
		Find(&citas).Error; err != nil {
		return nil, err
	}

	return citas, nil
}

func (r *CitaGormRepository) FindByDateRange(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Cita, error) {

	var citas []models.Cita
	if err := r.db.WithContext(ctx).
		Preload("Client", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
		Preload("SubServices.SubService", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
		Where("scheduled_at >= ? AND scheduled_at < ?", start, end).
		Order("scheduled_at ASC").
		Find(&citas).Error; err != nil {
		return nil, err
	}

	return citas, nil
}

func (r *CitaGormRepository) CountByDate(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (map[string]int64, error) {

	type row struct {
		Day   time.Time
		Total int64
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&models.Cita{}).
		Select("DATE(scheduled_at) AS day, COUNT(*) AS total").
		Where("scheduled_at >= ? AND scheduled_at < ? AND cancelled = ?", start, end, false).
		Group("DATE(scheduled_at)").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Day.Format("2006-01-02")] = r.Total
	}
	return counts, nil
}

// --------------------------------------------------
// Cita (mutation)
// --------------------------------------------------

func (r *CitaGormRepository) UpdateCita(
	ctx context.Context,
	c *models.Cita,
) error {
	return r.db.WithContext(ctx).
		Omit("SubServices", "Reminder", "Client").
		Save(c).Error
}

func (r *CitaGormRepository) ReplaceLineItems(
	ctx context.Context,
	citaID uint,
	items []models.CitaSubService,
	total int64,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("cita_id = ?", citaID).
			Delete(&models.CitaSubService{}).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].ID = 0
			items[i].CitaID = citaID
		}

		if len(items) > 0 {
			if err := tx.Omit("SubService").Create(&items).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.Cita{}).
			Where("id = ?", citaID).
			Updates(map[string]any{
				"total_amount": total,
				"updated_at":   time.Now(),
			}).Error
	})
}

func (r *CitaGormRepository) SetCancelled(
	ctx context.Context,
	citaID uint,
	cancelled bool,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Cita{}).
		Where("id = ?", citaID).
		Update("cancelled", cancelled).Error
}

// Compile-time check
var _ domain.Repository = (*CitaGormRepository)(nil)
