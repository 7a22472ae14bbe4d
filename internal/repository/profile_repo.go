package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	CoupleByUserID(ctx context.Context, userID uuid.UUID) (*models.Couple, error)
	IndividualByUserID(ctx context.Context, userID uuid.UUID) (*models.Individual, error)
	VendorByUserID(ctx context.Context, userID uuid.UUID) (*models.Vendor, error)
	Attach(ctx context.Context, user *models.User, profile models.Profile) error
	Save(ctx context.Context, profile models.Profile) error
}

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) CoupleByUserID(ctx context.Context, userID uuid.UUID) (*models.Couple, error) {
	var couple models.Couple
	if err := r.db.WithContext(ctx).First(&couple, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &couple, nil
}

func (r *ProfileRepo) IndividualByUserID(ctx context.Context, userID uuid.UUID) (*models.Individual, error) {
	var individual models.Individual
	if err := r.db.WithContext(ctx).First(&individual, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &individual, nil
}

func (r *ProfileRepo) VendorByUserID(ctx context.Context, userID uuid.UUID) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.WithContext(ctx).First(&vendor, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &vendor, nil
}

// Attach stores the user's role and names and inserts the profile in one
// transaction. The user row is locked first so concurrent setups for the
// same user serialize; the loser gets ErrDuplicate.
func (r *ProfileRepo) Attach(ctx context.Context, user *models.User, profile models.Profile) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, "id = ?", user.ID).Error; err != nil {
			return err
		}

		exists, err := hasProfile(tx, user.ID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicate
		}

		changes := map[string]any{"role": user.Role}
		if user.FirstName != "" {
			changes["first_name"] = user.FirstName
		}
		if user.LastName != "" {
			changes["last_name"] = user.LastName
		}
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(changes).Error; err != nil {
			return err
		}

		return tx.Omit(clause.Associations).Create(profile).Error
	}))
}

func hasProfile(tx *gorm.DB, userID uuid.UUID) (bool, error) {
	for _, table := range []any{&models.Couple{}, &models.Individual{}, &models.Vendor{}} {
		var n int64
		if err := tx.Model(table).Where("user_id = ?", userID).Count(&n).Error; err != nil {
			return false, err
		}
		if n > 0 {
			return true, nil
		}
	}
	return false, nil
}

func (r *ProfileRepo) Save(ctx context.Context, profile models.Profile) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(profile).Error)
}
