package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SavedVendorRepository interface {
	Save(ctx context.Context, userID, vendorID uuid.UUID) (*models.SavedVendor, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.SavedVendor, error)
	Delete(ctx context.Context, userID, vendorID uuid.UUID) error
}

type SavedVendorRepo struct {
	db *gorm.DB
}

func NewSavedVendorRepo(db *gorm.DB) *SavedVendorRepo {
	return &SavedVendorRepo{db: db}
}

// Save inserts the pair unless it exists and returns the stored row either way.
func (r *SavedVendorRepo) Save(ctx context.Context, userID, vendorID uuid.UUID) (*models.SavedVendor, error) {
	db := r.db.WithContext(ctx)
	row := models.SavedVendor{ID: uuid.New(), UserID: userID, VendorID: vendorID}
	err := db.Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "vendor_id"}},
			DoNothing: true,
		}).
		Create(&row).Error
	if err != nil {
		return nil, translate(err)
	}

	var stored models.SavedVendor
	err = db.Where("user_id = ? AND vendor_id = ?", userID, vendorID).First(&stored).Error
	if err != nil {
		return nil, translate(err)
	}
	return &stored, nil
}

func (r *SavedVendorRepo) List(ctx context.Context, userID uuid.UUID) ([]models.SavedVendor, error) {
	saved := []models.SavedVendor{}
	err := r.db.WithContext(ctx).
		Preload("Vendor").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error
	if err != nil {
		return nil, translate(err)
	}
	return saved, nil
}

func (r *SavedVendorRepo) Delete(ctx context.Context, userID, vendorID uuid.UUID) error {
	return affected(r.db.WithContext(ctx).
		Where("user_id = ? AND vendor_id = ?", userID, vendorID).
		Delete(&models.SavedVendor{}))
}
