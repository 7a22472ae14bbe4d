package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CalendarRepository interface {
	List(ctx context.Context, vendorID uuid.UUID, from, to *time.Time) ([]models.VendorAvailability, error)
	ListBooked(ctx context.Context, vendorID uuid.UUID) ([]models.VendorAvailability, error)
	Upsert(ctx context.Context, day *models.VendorAvailability) error
}

type CalendarRepo struct {
	db *gorm.DB
}

func NewCalendarRepo(db *gorm.DB) *CalendarRepo {
	return &CalendarRepo{db: db}
}

func (r *CalendarRepo) List(ctx context.Context, vendorID uuid.UUID, from, to *time.Time) ([]models.VendorAvailability, error) {
	q := r.db.WithContext(ctx).Where("vendor_id = ?", vendorID)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}
	days := []models.VendorAvailability{}
	if err := q.Order("date ASC").Find(&days).Error; err != nil {
		return nil, translate(err)
	}
	return days, nil
}

func (r *CalendarRepo) ListBooked(ctx context.Context, vendorID uuid.UUID) ([]models.VendorAvailability, error) {
	days := []models.VendorAvailability{}
	err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND is_available = ?", vendorID, false).
		Order("date ASC").
		Find(&days).Error
	if err != nil {
		return nil, translate(err)
	}
	return days, nil
}

// Upsert writes the day in a single INSERT ... ON CONFLICT statement keyed on
// (vendor_id, date). day is refreshed with the stored row.
func (r *CalendarRepo) Upsert(ctx context.Context, day *models.VendorAvailability) error {
	if day.ID == uuid.Nil {
		day.ID = uuid.New()
	}
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "vendor_id"}, {Name: "date"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"is_available", "event_type", "event_title", "notes", "updated_at",
				}),
			},
			clause.Returning{},
		).
		Create(day).Error
	return translate(err)
}
